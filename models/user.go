package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email       string `gorm:"uniqueIndex;not null"`
	Password    string `gorm:"not null"`
	DisplayName string

	// Daily intake targets shown on the dashboard.
	CalorieGoal int `gorm:"default:2000"`
	ProteinGoal int
	CarbsGoal   int
	FatGoal     int
	FiberGoal   int
}
