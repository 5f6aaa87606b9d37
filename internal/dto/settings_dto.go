package dto

import "github.com/AsanTolepov/softwash/internal/model"

type UpdateSettingsRequest struct {
	Language       *string `json:"language" binding:"omitempty,oneof=uz ru en"`
	Currency       *string `json:"currency"`
	Theme          *string `json:"theme" binding:"omitempty,oneof=light dark"`
	DashboardTheme *string `json:"dashboardTheme"`
}

func (r UpdateSettingsRequest) Patch() model.SettingsPatch {
	return model.SettingsPatch{
		Language:       r.Language,
		Currency:       r.Currency,
		Theme:          r.Theme,
		DashboardTheme: r.DashboardTheme,
	}
}
