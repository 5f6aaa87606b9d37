package service

import (
	"context"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/AsanTolepov/softwash/internal/model"
)

// StaffInput is the create shape. The role arrives as a base-language
// string and is localized by the pipeline.
type StaffInput struct {
	TenantID  string
	FirstName string
	LastName  string
	Role      string
	Phone     string
	Shift     string
	HiredAt   string
	DailyRate decimal.Decimal
	Login     string
	Password  string

	Capabilities model.CapabilitySet
}

// CreateStaff validates, localizes the role best-effort, and stores the
// employee as active with an empty attendance list.
func (s *Service) CreateStaff(ctx context.Context, in StaffInput) (model.Staff, error) {
	if _, ok := s.cache.TenantByID(in.TenantID); !ok {
		return model.Staff{}, ErrTenantNotFound
	}
	if in.FirstName == "" {
		return model.Staff{}, ErrStaffNameRequired
	}
	if in.Login == "" || in.Password == "" {
		return model.Staff{}, ErrCredentialsRequired
	}

	staff := model.Staff{
		TenantID:     in.TenantID,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         s.localize(ctx, in.Role),
		Phone:        in.Phone,
		Shift:        in.Shift,
		IsActive:     true,
		HiredAt:      in.HiredAt,
		DailyRate:    in.DailyRate,
		Login:        in.Login,
		Password:     in.Password,
		Capabilities: in.Capabilities,
	}
	return s.cache.AddStaff(staff), nil
}

// UpdateStaff applies a patch.
func (s *Service) UpdateStaff(id string, p model.StaffPatch) (model.Staff, error) {
	updated, ok := s.cache.UpdateStaff(id, p)
	if !ok {
		return model.Staff{}, ErrStaffNotFound
	}
	return updated, nil
}

// SetAttendance marks or unmarks a date in the employee's attendance list.
func (s *Service) SetAttendance(id, date string, present bool) (model.Staff, error) {
	staff, ok := s.cache.StaffByID(id)
	if !ok {
		return model.Staff{}, ErrStaffNotFound
	}

	attendance := slices.Clone(staff.Attendance)
	has := slices.Contains(attendance, date)
	switch {
	case present && !has:
		attendance = append(attendance, date)
		slices.Sort(attendance)
	case !present && has:
		attendance = slices.DeleteFunc(attendance, func(d string) bool { return d == date })
	default:
		return staff, nil
	}

	updated, ok := s.cache.UpdateStaff(id, model.StaffPatch{Attendance: &attendance})
	if !ok {
		return model.Staff{}, ErrStaffNotFound
	}
	return updated, nil
}

// DeleteStaff removes a single employee.
func (s *Service) DeleteStaff(id string) error {
	if _, ok := s.cache.StaffByID(id); !ok {
		return ErrStaffNotFound
	}
	s.cache.DeleteStaff(id)
	return nil
}
