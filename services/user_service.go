package services

import (
	"backend/config"
	"backend/models"
)

// ProfileInput carries partial profile updates; nil fields are left
// unchanged.
type ProfileInput struct {
	DisplayName *string `json:"display_name"`
	CalorieGoal *int    `json:"calorie_goal"`
	ProteinGoal *int    `json:"protein_goal"`
	CarbsGoal   *int    `json:"carbs_goal"`
	FatGoal     *int    `json:"fat_goal"`
	FiberGoal   *int    `json:"fiber_goal"`
}

type ProfileResponse struct {
	ID          uint   `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	CalorieGoal int    `json:"calorie_goal"`
	ProteinGoal int    `json:"protein_goal"`
	CarbsGoal   int    `json:"carbs_goal"`
	FatGoal     int    `json:"fat_goal"`
	FiberGoal   int    `json:"fiber_goal"`
}

func profileResponse(u *models.User) *ProfileResponse {
	return &ProfileResponse{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		CalorieGoal: u.CalorieGoal,
		ProteinGoal: u.ProteinGoal,
		CarbsGoal:   u.CarbsGoal,
		FatGoal:     u.FatGoal,
		FiberGoal:   u.FiberGoal,
	}
}

func GetUserProfile(userID uint) (*ProfileResponse, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, notFoundOr(err, "user")
	}
	return profileResponse(&user), nil
}

func UpdateUserProfile(userID uint, in ProfileInput) (*ProfileResponse, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, notFoundOr(err, "user")
	}

	if in.DisplayName != nil {
		user.DisplayName = *in.DisplayName
	}
	if in.CalorieGoal != nil {
		if *in.CalorieGoal < 500 || *in.CalorieGoal > 10000 {
			return nil, validationErrorf("calorie goal must be between 500 and 10000")
		}
		user.CalorieGoal = *in.CalorieGoal
	}
	if in.ProteinGoal != nil {
		user.ProteinGoal = *in.ProteinGoal
	}
	if in.CarbsGoal != nil {
		user.CarbsGoal = *in.CarbsGoal
	}
	if in.FatGoal != nil {
		user.FatGoal = *in.FatGoal
	}
	if in.FiberGoal != nil {
		user.FiberGoal = *in.FiberGoal
	}

	if err := config.DB.Save(&user).Error; err != nil {
		return nil, err
	}
	return profileResponse(&user), nil
}
