package dto

import (
	"github.com/shopspring/decimal"

	"github.com/AsanTolepov/softwash/internal/i18n"
	"github.com/AsanTolepov/softwash/internal/model"
	"github.com/AsanTolepov/softwash/internal/service"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateStaffRequest struct {
	FirstName string          `json:"firstName" binding:"required"`
	LastName  string          `json:"lastName"`
	Role      string          `json:"role"`
	Phone     string          `json:"phone"`
	Shift     string          `json:"shift"`
	HiredAt   string          `json:"hiredAt"`
	DailyRate decimal.Decimal `json:"dailyRate" validate:"min=0"`
	Login     string          `json:"login" binding:"required"`
	Password  string          `json:"password" binding:"required,min=4"`

	Capabilities model.CapabilitySet `json:"capabilities"`
}

func (r CreateStaffRequest) Input(tenantID string) service.StaffInput {
	return service.StaffInput{
		TenantID:     tenantID,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Role:         r.Role,
		Phone:        r.Phone,
		Shift:        r.Shift,
		HiredAt:      r.HiredAt,
		DailyRate:    r.DailyRate,
		Login:        r.Login,
		Password:     r.Password,
		Capabilities: r.Capabilities,
	}
}

type UpdateStaffRequest struct {
	FirstName    *string              `json:"firstName"`
	LastName     *string              `json:"lastName"`
	Role         *model.LocalizedText `json:"role"`
	Phone        *string              `json:"phone"`
	Shift        *string              `json:"shift"`
	IsActive     *bool                `json:"isActive"`
	HiredAt      *string              `json:"hiredAt"`
	DailyRate    *decimal.Decimal     `json:"dailyRate" validate:"omitempty,min=0"`
	Login        *string              `json:"login"`
	Password     *string              `json:"password" binding:"omitempty,min=4"`
	Capabilities *model.CapabilitySet `json:"capabilities"`
}

func (r UpdateStaffRequest) Patch() model.StaffPatch {
	return model.StaffPatch{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Role:         r.Role,
		Phone:        r.Phone,
		Shift:        r.Shift,
		IsActive:     r.IsActive,
		HiredAt:      r.HiredAt,
		DailyRate:    r.DailyRate,
		Login:        r.Login,
		Password:     r.Password,
		Capabilities: r.Capabilities,
	}
}

type AttendanceRequest struct {
	Date    string `json:"date" binding:"required"`
	Present bool   `json:"present"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// StaffResponse resolves the role for display in the caller's language.
// The credential pair is write-only through the API.
type StaffResponse struct {
	ID           string              `json:"id"`
	TenantID     string              `json:"tenantId"`
	FirstName    string              `json:"firstName"`
	LastName     string              `json:"lastName"`
	Role         model.LocalizedText `json:"role"`
	RoleDisplay  string              `json:"roleDisplay"`
	Phone        string              `json:"phone"`
	Shift        string              `json:"shift"`
	IsActive     bool                `json:"isActive"`
	HiredAt      string              `json:"hiredAt"`
	DailyRate    decimal.Decimal     `json:"dailyRate"`
	Attendance   []string            `json:"attendance"`
	Capabilities model.CapabilitySet `json:"capabilities"`
}

func NewStaffResponse(s model.Staff, lang string) StaffResponse {
	return StaffResponse{
		ID:           s.ID,
		TenantID:     s.TenantID,
		FirstName:    s.FirstName,
		LastName:     s.LastName,
		Role:         s.Role,
		RoleDisplay:  i18n.Resolve(s.Role, lang),
		Phone:        s.Phone,
		Shift:        s.Shift,
		IsActive:     s.IsActive,
		HiredAt:      s.HiredAt,
		DailyRate:    s.DailyRate,
		Attendance:   s.Attendance,
		Capabilities: s.Capabilities,
	}
}

func NewStaffListResponse(staff []model.Staff, lang string) []StaffResponse {
	out := make([]StaffResponse, len(staff))
	for i, s := range staff {
		out[i] = NewStaffResponse(s, lang)
	}
	return out
}
