package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/AsanTolepov/softwash/internal/model"
)

// ExpenseInput is the create shape. Product and notes arrive as
// base-language strings and are localized by the pipeline.
type ExpenseInput struct {
	TenantID string
	Date     string
	Product  string
	Quantity int
	Unit     string
	Amount   decimal.Decimal
	Notes    string
}

// CreateExpense validates and stores an expense. Notes stay absent
// entirely when empty — an empty localized record would survive
// sanitizing and pollute the document.
func (s *Service) CreateExpense(ctx context.Context, in ExpenseInput) (model.Expense, error) {
	if _, ok := s.cache.TenantByID(in.TenantID); !ok {
		return model.Expense{}, ErrTenantNotFound
	}
	if in.Product == "" {
		return model.Expense{}, ErrProductRequired
	}

	expense := model.Expense{
		TenantID: in.TenantID,
		Date:     in.Date,
		Product:  s.localize(ctx, in.Product),
		Quantity: in.Quantity,
		Unit:     in.Unit,
		Amount:   in.Amount,
	}
	if in.Notes != "" {
		notes := s.localize(ctx, in.Notes)
		expense.Notes = &notes
	}
	return s.cache.AddExpense(expense), nil
}

// UpdateExpense applies a patch.
func (s *Service) UpdateExpense(id string, p model.ExpensePatch) (model.Expense, error) {
	updated, ok := s.cache.UpdateExpense(id, p)
	if !ok {
		return model.Expense{}, ErrExpenseNotFound
	}
	return updated, nil
}

// DeleteExpense removes a single expense.
func (s *Service) DeleteExpense(id string) error {
	found := false
	for _, e := range s.cache.Expenses() {
		if e.ID == id {
			found = true
			break
		}
	}
	if !found {
		return ErrExpenseNotFound
	}
	s.cache.DeleteExpense(id)
	return nil
}

// UpdateSettings merge-patches the global settings document.
func (s *Service) UpdateSettings(p model.SettingsPatch) model.Settings {
	return s.cache.UpdateSettings(p)
}
