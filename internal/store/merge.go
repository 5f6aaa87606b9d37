package store

import "github.com/AsanTolepov/softwash/internal/model"

// The store owns the merge of a typed partial into its entity. Only fields
// present in the patch change; everything else stays as-is. Nested
// sub-records replace wholesale, mirroring the shallow top-level merge the
// remote patch performs.

func mergeTenant(t *model.Tenant, p model.TenantPatch) {
	setStr(&t.Name, p.Name)
	setStr(&t.Login, p.Login)
	setStr(&t.Password, p.Password)
	setStr(&t.BackupLogin, p.BackupLogin)
	setStr(&t.BackupPassword, p.BackupPassword)
	if p.IsEnabled != nil {
		t.IsEnabled = *p.IsEnabled
	}
	setStr(&t.ValidFrom, p.ValidFrom)
	setStr(&t.ValidTo, p.ValidTo)
	setStr(&t.AdminFirstName, p.AdminFirstName)
	setStr(&t.AdminLastName, p.AdminLastName)
	setStr(&t.AdminAvatar, p.AdminAvatar)
}

func mergeOrder(o *model.Order, p model.OrderPatch) {
	if p.Customer != nil {
		o.Customer = *p.Customer
	}
	if p.Details != nil {
		o.Details = *p.Details
	}
	if p.Payment != nil {
		o.Payment = *p.Payment
	}
	if p.Status != nil {
		o.Status = *p.Status
	}
}

func mergeStaff(s *model.Staff, p model.StaffPatch) {
	setStr(&s.FirstName, p.FirstName)
	setStr(&s.LastName, p.LastName)
	if p.Role != nil {
		s.Role = *p.Role
	}
	setStr(&s.Phone, p.Phone)
	setStr(&s.Shift, p.Shift)
	if p.IsActive != nil {
		s.IsActive = *p.IsActive
	}
	setStr(&s.HiredAt, p.HiredAt)
	if p.DailyRate != nil {
		s.DailyRate = *p.DailyRate
	}
	if p.Attendance != nil {
		s.Attendance = *p.Attendance
	}
	setStr(&s.Login, p.Login)
	setStr(&s.Password, p.Password)
	if p.Capabilities != nil {
		s.Capabilities = *p.Capabilities
	}
}

func mergeExpense(e *model.Expense, p model.ExpensePatch) {
	setStr(&e.Date, p.Date)
	if p.Product != nil {
		e.Product = *p.Product
	}
	if p.Quantity != nil {
		e.Quantity = *p.Quantity
	}
	setStr(&e.Unit, p.Unit)
	if p.Amount != nil {
		e.Amount = *p.Amount
	}
	if p.Notes != nil {
		notes := *p.Notes
		e.Notes = &notes
	}
}

func mergeSettings(s *model.Settings, p model.SettingsPatch) {
	setStr(&s.Language, p.Language)
	setStr(&s.Currency, p.Currency)
	setStr(&s.Theme, p.Theme)
	setStr(&s.DashboardTheme, p.DashboardTheme)
}

func setStr(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
