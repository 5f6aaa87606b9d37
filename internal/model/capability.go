package model

// Capability names a single staff permission area.
type Capability string

const (
	CapViewDashboard Capability = "dashboard"
	CapViewOrders    Capability = "orders"
	CapViewStaff     Capability = "staff"
	CapViewExpenses  Capability = "expenses"
	CapViewReports   Capability = "reports"
	CapViewSettings  Capability = "settings"
)

// CapabilitySet carries the per-staff-member permission flags. Flags absent
// from a remote document unmarshal to false, which gives deny-by-default
// without any extra handling.
type CapabilitySet struct {
	CanViewDashboard bool `json:"canViewDashboard,omitempty"`
	CanViewOrders    bool `json:"canViewOrders,omitempty"`
	CanViewStaff     bool `json:"canViewStaff,omitempty"`
	CanViewExpenses  bool `json:"canViewExpenses,omitempty"`
	CanViewReports   bool `json:"canViewReports,omitempty"`
	CanViewSettings  bool `json:"canViewSettings,omitempty"`
}

// Allows reports whether the set grants the named capability. Unknown
// capability names are denied.
func (c CapabilitySet) Allows(cap Capability) bool {
	switch cap {
	case CapViewDashboard:
		return c.CanViewDashboard
	case CapViewOrders:
		return c.CanViewOrders
	case CapViewStaff:
		return c.CanViewStaff
	case CapViewExpenses:
		return c.CanViewExpenses
	case CapViewReports:
		return c.CanViewReports
	case CapViewSettings:
		return c.CanViewSettings
	default:
		return false
	}
}
