package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ValidationError rejects a request before any state is touched. The
// message is safe to surface to the caller verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationErrorf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError means the referenced template, line item or meal does
// not exist (or belongs to someone else, which callers cannot tell apart).
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

// ExternalLookupError wraps a failure from an external food database.
// Never retried here; the user can retry the action.
type ExternalLookupError struct {
	Service string
	Err     error
}

func (e *ExternalLookupError) Error() string {
	return fmt.Sprintf("%s lookup failed: %v", e.Service, e.Err)
}

func (e *ExternalLookupError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// notFoundOr maps gorm's record-not-found onto our taxonomy and passes
// everything else through.
func notFoundOr(err error, resource string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Resource: resource}
	}
	return err
}
