package model

import "github.com/shopspring/decimal"

// Expense is a tenant operating expense. Product and notes are localized;
// notes may be absent entirely.
type Expense struct {
	ID       string          `json:"id"`
	TenantID string          `json:"tenantId"`
	Date     string          `json:"date"`
	Product  LocalizedText   `json:"product"`
	Quantity int             `json:"quantity"`
	Unit     string          `json:"unit"`
	Amount   decimal.Decimal `json:"amount"`
	Notes    *LocalizedText  `json:"notes,omitempty"`
}
