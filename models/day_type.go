package models

import (
	"time"

	"gorm.io/gorm"
)

// DayType is a named set of target ranges, e.g. "Training day" or
// "Rest day". The day view colors each macro channel by where the day's
// total falls inside the assigned type's range.
type DayType struct {
	gorm.Model
	UserID uint   `gorm:"index;not null"`
	Name   string `gorm:"not null"`

	CaloriesMin float64
	CaloriesMax float64
	ProteinMin  float64
	ProteinMax  float64
	CarbsMin    float64
	CarbsMax    float64
	FatMin      float64
	FatMax      float64
	FiberMin    float64
	FiberMax    float64
}

// DayLog assigns a day type to a calendar date.
type DayLog struct {
	gorm.Model
	UserID     uint      `gorm:"index;not null;uniqueIndex:idx_day_logs_user_date"`
	LoggedDate time.Time `gorm:"not null;uniqueIndex:idx_day_logs_user_date"`
	DayTypeID  uint      `gorm:"not null"`
}
