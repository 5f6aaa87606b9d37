package dto

import (
	"github.com/shopspring/decimal"

	"github.com/AsanTolepov/softwash/internal/i18n"
	"github.com/AsanTolepov/softwash/internal/model"
	"github.com/AsanTolepov/softwash/internal/service"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateExpenseRequest struct {
	Date     string          `json:"date" binding:"required"`
	Product  string          `json:"product" binding:"required"`
	Quantity int             `json:"quantity" validate:"min=0"`
	Unit     string          `json:"unit"`
	Amount   decimal.Decimal `json:"amount" validate:"min=0"`
	Notes    string          `json:"notes"`
}

func (r CreateExpenseRequest) Input(tenantID string) service.ExpenseInput {
	return service.ExpenseInput{
		TenantID: tenantID,
		Date:     r.Date,
		Product:  r.Product,
		Quantity: r.Quantity,
		Unit:     r.Unit,
		Amount:   r.Amount,
		Notes:    r.Notes,
	}
}

type UpdateExpenseRequest struct {
	Date     *string              `json:"date"`
	Product  *model.LocalizedText `json:"product"`
	Quantity *int                 `json:"quantity" validate:"omitempty,min=0"`
	Unit     *string              `json:"unit"`
	Amount   *decimal.Decimal     `json:"amount" validate:"omitempty,min=0"`
	Notes    *model.LocalizedText `json:"notes"`
}

func (r UpdateExpenseRequest) Patch() model.ExpensePatch {
	return model.ExpensePatch{
		Date:     r.Date,
		Product:  r.Product,
		Quantity: r.Quantity,
		Unit:     r.Unit,
		Amount:   r.Amount,
		Notes:    r.Notes,
	}
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ExpenseResponse struct {
	ID             string               `json:"id"`
	TenantID       string               `json:"tenantId"`
	Date           string               `json:"date"`
	Product        model.LocalizedText  `json:"product"`
	ProductDisplay string               `json:"productDisplay"`
	Quantity       int                  `json:"quantity"`
	Unit           string               `json:"unit"`
	Amount         decimal.Decimal      `json:"amount"`
	Notes          *model.LocalizedText `json:"notes,omitempty"`
}

func NewExpenseResponse(e model.Expense, lang string) ExpenseResponse {
	return ExpenseResponse{
		ID:             e.ID,
		TenantID:       e.TenantID,
		Date:           e.Date,
		Product:        e.Product,
		ProductDisplay: i18n.Resolve(e.Product, lang),
		Quantity:       e.Quantity,
		Unit:           e.Unit,
		Amount:         e.Amount,
		Notes:          e.Notes,
	}
}

func NewExpenseListResponse(expenses []model.Expense, lang string) []ExpenseResponse {
	out := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		out[i] = NewExpenseResponse(e, lang)
	}
	return out
}
