package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AsanTolepov/softwash/internal/model"
)

func TestCreateExpenseLocalizesProductAndNotes(t *testing.T) {
	f := newFixture(t)
	tenant := f.addTenant(t, "CleanWave", "cleanwave")

	expense, err := f.svc.CreateExpense(context.Background(), ExpenseInput{
		TenantID: tenant.ID, Date: "2026-08-30",
		Product: "Kir kukuni", Quantity: 5, Unit: "kg",
		Amount: decimal.NewFromInt(250000),
		Notes:  "Yuvuvchi",
	})
	require.NoError(t, err)

	assert.Equal(t, "Kir kukuni", expense.Product.Base)
	assert.Equal(t, "Стиральный порошок", expense.Product.Alt1)
	require.NotNil(t, expense.Notes)
	assert.Equal(t, "Yuvuvchi", expense.Notes.Base)
}

func TestCreateExpenseEmptyNotesStayAbsent(t *testing.T) {
	f := newFixture(t)
	tenant := f.addTenant(t, "CleanWave", "cleanwave")

	expense, err := f.svc.CreateExpense(context.Background(), ExpenseInput{
		TenantID: tenant.ID, Product: "Kir kukuni", Amount: decimal.NewFromInt(1000),
	})
	require.NoError(t, err)
	assert.Nil(t, expense.Notes)
}

func TestCreateExpenseValidation(t *testing.T) {
	f := newFixture(t)
	tenant := f.addTenant(t, "CleanWave", "cleanwave")
	ctx := context.Background()

	_, err := f.svc.CreateExpense(ctx, ExpenseInput{TenantID: "missing", Product: "X"})
	assert.ErrorIs(t, err, ErrTenantNotFound)

	_, err = f.svc.CreateExpense(ctx, ExpenseInput{TenantID: tenant.ID})
	assert.ErrorIs(t, err, ErrProductRequired)
}

func TestUpdateAndDeleteExpense(t *testing.T) {
	f := newFixture(t)
	tenant := f.addTenant(t, "CleanWave", "cleanwave")
	expense, err := f.svc.CreateExpense(context.Background(), ExpenseInput{
		TenantID: tenant.ID, Product: "Kir kukuni", Amount: decimal.NewFromInt(1000),
	})
	require.NoError(t, err)

	amount := decimal.NewFromInt(1500)
	updated, err := f.svc.UpdateExpense(expense.ID, model.ExpensePatch{Amount: &amount})
	require.NoError(t, err)
	assert.True(t, updated.Amount.Equal(amount))

	require.NoError(t, f.svc.DeleteExpense(expense.ID))
	assert.ErrorIs(t, f.svc.DeleteExpense(expense.ID), ErrExpenseNotFound)

	_, err = f.svc.UpdateExpense("missing", model.ExpensePatch{})
	assert.ErrorIs(t, err, ErrExpenseNotFound)
}

func TestUpdateSettingsThroughPipeline(t *testing.T) {
	f := newFixture(t)

	lang := "ru"
	merged := f.svc.UpdateSettings(model.SettingsPatch{Language: &lang})
	assert.Equal(t, "ru", merged.Language)
	assert.Equal(t, model.DefaultSettings().Currency, merged.Currency)
}
