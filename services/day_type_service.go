package services

import (
	"errors"
	"time"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Day types are consumed read-only by the day view; this service is the
// plumbing that maintains them and the per-date assignment.

type DayTypeInput struct {
	Name        string  `json:"name"`
	CaloriesMin float64 `json:"calories_min"`
	CaloriesMax float64 `json:"calories_max"`
	ProteinMin  float64 `json:"protein_min"`
	ProteinMax  float64 `json:"protein_max"`
	CarbsMin    float64 `json:"carbs_min"`
	CarbsMax    float64 `json:"carbs_max"`
	FatMin      float64 `json:"fat_min"`
	FatMax      float64 `json:"fat_max"`
	FiberMin    float64 `json:"fiber_min"`
	FiberMax    float64 `json:"fiber_max"`
}

func ListDayTypes(userID uint) ([]models.DayType, error) {
	var types []models.DayType
	err := config.DB.Where("user_id = ?", userID).Order("name").Find(&types).Error
	return types, err
}

func CreateDayType(userID uint, in DayTypeInput) (*models.DayType, error) {
	if in.Name == "" {
		return nil, validationErrorf("day type name is required")
	}
	dt := models.DayType{
		UserID:      userID,
		Name:        in.Name,
		CaloriesMin: in.CaloriesMin,
		CaloriesMax: in.CaloriesMax,
		ProteinMin:  in.ProteinMin,
		ProteinMax:  in.ProteinMax,
		CarbsMin:    in.CarbsMin,
		CarbsMax:    in.CarbsMax,
		FatMin:      in.FatMin,
		FatMax:      in.FatMax,
		FiberMin:    in.FiberMin,
		FiberMax:    in.FiberMax,
	}
	if err := config.DB.Create(&dt).Error; err != nil {
		return nil, err
	}
	return &dt, nil
}

func UpdateDayType(userID, dayTypeID uint, in DayTypeInput) (*models.DayType, error) {
	var dt models.DayType
	err := config.DB.Where("id = ? AND user_id = ?", dayTypeID, userID).First(&dt).Error
	if err != nil {
		return nil, notFoundOr(err, "day type")
	}
	if in.Name != "" {
		dt.Name = in.Name
	}
	dt.CaloriesMin = in.CaloriesMin
	dt.CaloriesMax = in.CaloriesMax
	dt.ProteinMin = in.ProteinMin
	dt.ProteinMax = in.ProteinMax
	dt.CarbsMin = in.CarbsMin
	dt.CarbsMax = in.CarbsMax
	dt.FatMin = in.FatMin
	dt.FatMax = in.FatMax
	dt.FiberMin = in.FiberMin
	dt.FiberMax = in.FiberMax
	if err := config.DB.Save(&dt).Error; err != nil {
		return nil, err
	}
	return &dt, nil
}

func DeleteDayType(userID, dayTypeID uint) error {
	res := config.DB.Where("id = ? AND user_id = ?", dayTypeID, userID).Delete(&models.DayType{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Resource: "day type"}
	}
	return nil
}

// SetDayLog assigns a day type to a date, replacing any earlier
// assignment for the same date.
func SetDayLog(userID uint, day time.Time, dayTypeID uint) (*models.DayType, error) {
	var dt models.DayType
	err := config.DB.Where("id = ? AND user_id = ?", dayTypeID, userID).First(&dt).Error
	if err != nil {
		return nil, notFoundOr(err, "day type")
	}

	log := models.DayLog{UserID: userID, LoggedDate: dateOnly(day), DayTypeID: dt.ID}
	err = config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "logged_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"day_type_id"}),
	}).Create(&log).Error
	if err != nil {
		return nil, err
	}
	return &dt, nil
}

func ClearDayLog(userID uint, day time.Time) error {
	return config.DB.
		Where("user_id = ? AND logged_date = ?", userID, dateOnly(day)).
		Delete(&models.DayLog{}).Error
}

// DayTypeForDate returns the type assigned to a date, or nil when the
// date has none.
func DayTypeForDate(userID uint, day time.Time) (*models.DayType, error) {
	var log models.DayLog
	err := config.DB.
		Where("user_id = ? AND logged_date = ?", userID, dateOnly(day)).
		First(&log).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var dt models.DayType
	if err := config.DB.First(&dt, log.DayTypeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // type deleted after assignment
		}
		return nil, err
	}
	return &dt, nil
}
