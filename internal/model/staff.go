package model

import "github.com/shopspring/decimal"

// Staff is a tenant employee. Created, edited and deleted by the tenant
// admin only. The login pair lets the employee sign in at the staff tier,
// gated by the capability set.
type Staff struct {
	ID        string        `json:"id"`
	TenantID  string        `json:"tenantId"`
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	Role      LocalizedText `json:"role"`
	Phone     string        `json:"phone"`
	Shift     string        `json:"shift"`
	IsActive  bool          `json:"isActive"`
	HiredAt   string        `json:"hiredAt"`

	DailyRate decimal.Decimal `json:"dailyRate"`

	// Attendance holds the dates (YYYY-MM-DD) the employee was marked present.
	Attendance []string `json:"attendance"`

	Login    string `json:"login"`
	Password string `json:"password"`

	Capabilities CapabilitySet `json:"capabilities"`
}
