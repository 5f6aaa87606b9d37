package model

import "github.com/shopspring/decimal"

// Patch types are structurally-typed partials of the full entities. A nil
// field means "leave unchanged". The cache store performs the in-memory
// merge; Doc() produces the diff actually sent to the remote store — only
// the fields present in the patch, never the full merged entity.

// TenantPatch is a partial Tenant.
type TenantPatch struct {
	Name           *string
	Login          *string
	Password       *string
	BackupLogin    *string
	BackupPassword *string
	IsEnabled      *bool
	ValidFrom      *string
	ValidTo        *string
	AdminFirstName *string
	AdminLastName  *string
	AdminAvatar    *string
}

func (p TenantPatch) Doc() map[string]any {
	m := map[string]any{}
	putStr(m, "name", p.Name)
	putStr(m, "login", p.Login)
	putStr(m, "password", p.Password)
	putStr(m, "backupLogin", p.BackupLogin)
	putStr(m, "backupPassword", p.BackupPassword)
	if p.IsEnabled != nil {
		m["isEnabled"] = *p.IsEnabled
	}
	putStr(m, "validFrom", p.ValidFrom)
	putStr(m, "validTo", p.ValidTo)
	putStr(m, "adminFirstName", p.AdminFirstName)
	putStr(m, "adminLastName", p.AdminLastName)
	putStr(m, "adminAvatar", p.AdminAvatar)
	return m
}

// OrderPatch is a partial Order. Sub-records replace wholesale, matching
// the shallow top-level merge the cache applies.
type OrderPatch struct {
	Customer *Customer
	Details  *OrderDetails
	Payment  *OrderPayment
	Status   *OrderStatus
}

func (p OrderPatch) Doc() map[string]any {
	m := map[string]any{}
	if p.Customer != nil {
		m["customer"] = *p.Customer
	}
	if p.Details != nil {
		m["details"] = *p.Details
	}
	if p.Payment != nil {
		m["payment"] = *p.Payment
	}
	if p.Status != nil {
		m["status"] = *p.Status
	}
	return m
}

// StaffPatch is a partial Staff.
type StaffPatch struct {
	FirstName    *string
	LastName     *string
	Role         *LocalizedText
	Phone        *string
	Shift        *string
	IsActive     *bool
	HiredAt      *string
	DailyRate    *decimal.Decimal
	Attendance   *[]string
	Login        *string
	Password     *string
	Capabilities *CapabilitySet
}

func (p StaffPatch) Doc() map[string]any {
	m := map[string]any{}
	putStr(m, "firstName", p.FirstName)
	putStr(m, "lastName", p.LastName)
	if p.Role != nil {
		m["role"] = *p.Role
	}
	putStr(m, "phone", p.Phone)
	putStr(m, "shift", p.Shift)
	if p.IsActive != nil {
		m["isActive"] = *p.IsActive
	}
	putStr(m, "hiredAt", p.HiredAt)
	if p.DailyRate != nil {
		m["dailyRate"] = *p.DailyRate
	}
	if p.Attendance != nil {
		m["attendance"] = *p.Attendance
	}
	putStr(m, "login", p.Login)
	putStr(m, "password", p.Password)
	if p.Capabilities != nil {
		m["capabilities"] = *p.Capabilities
	}
	return m
}

// ExpensePatch is a partial Expense.
type ExpensePatch struct {
	Date     *string
	Product  *LocalizedText
	Quantity *int
	Unit     *string
	Amount   *decimal.Decimal
	Notes    *LocalizedText
}

func (p ExpensePatch) Doc() map[string]any {
	m := map[string]any{}
	putStr(m, "date", p.Date)
	if p.Product != nil {
		m["product"] = *p.Product
	}
	if p.Quantity != nil {
		m["quantity"] = *p.Quantity
	}
	putStr(m, "unit", p.Unit)
	if p.Amount != nil {
		m["amount"] = *p.Amount
	}
	if p.Notes != nil {
		m["notes"] = *p.Notes
	}
	return m
}

// SettingsPatch is a partial Settings.
type SettingsPatch struct {
	Language       *string
	Currency       *string
	Theme          *string
	DashboardTheme *string
}

func (p SettingsPatch) Doc() map[string]any {
	m := map[string]any{}
	putStr(m, "language", p.Language)
	putStr(m, "currency", p.Currency)
	putStr(m, "theme", p.Theme)
	putStr(m, "dashboardTheme", p.DashboardTheme)
	return m
}

func putStr(m map[string]any, key string, v *string) {
	if v != nil {
		m[key] = *v
	}
}
