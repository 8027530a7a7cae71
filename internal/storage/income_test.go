package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentfolio/rentfolio/internal/common"
	"github.com/rentfolio/rentfolio/internal/model"
)

func TestIncomeCRUD(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	inc := model.Income{
		Date:        "2025-01-15",
		Property:    "123 Main St",
		Amount:      1200,
		Type:        model.IncomeRent,
		Description: "January rent",
		PaidBy:      "J. Tenant",
		BankAccount: "1",
	}

	id, err := store.AddIncome(ctx, inc)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	got, err := store.GetIncome(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, inc.Date, got.Date)
	assert.Equal(t, inc.Property, got.Property)
	assert.InDelta(t, inc.Amount, got.Amount, 0.001)
	assert.Equal(t, inc.Type, got.Type)
	assert.Equal(t, inc.PaidBy, got.PaidBy)
	assert.Equal(t, inc.BankAccount, got.BankAccount)

	got.Amount = 1250
	got.Description = "January rent plus utilities"
	require.NoError(t, store.UpdateIncome(ctx, *got))

	updated, err := store.GetIncome(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.InDelta(t, 1250.0, updated.Amount, 0.001)
	assert.Equal(t, "January rent plus utilities", updated.Description)

	require.NoError(t, store.DeleteIncome(ctx, id))

	gone, err := store.GetIncome(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, gone, "deleted record should read back as nil")
}

func TestAddIncomeValidation(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	tests := []struct {
		name string
		inc  model.Income
	}{
		{
			name: "bad date",
			inc:  model.Income{Date: "01/15/2025", Property: "123 Main St", Amount: 100, Type: model.IncomeRent},
		},
		{
			name: "empty property",
			inc:  model.Income{Date: "2025-01-15", Property: "", Amount: 100, Type: model.IncomeRent},
		},
		{
			name: "negative amount",
			inc:  model.Income{Date: "2025-01-15", Property: "123 Main St", Amount: -5, Type: model.IncomeRent},
		},
		{
			name: "unknown type code",
			inc:  model.Income{Date: "2025-01-15", Property: "123 Main St", Amount: 100, Type: "bribes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.AddIncome(ctx, tt.inc)
			assert.Error(t, err)
		})
	}
}

func TestUpdateIncomeMissing(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	err := store.UpdateIncome(ctx, model.Income{
		ID:       999,
		Date:     "2025-01-15",
		Property: "123 Main St",
		Amount:   100,
		Type:     model.IncomeRent,
	})
	assert.True(t, errors.Is(err, common.ErrNotFound), "want ErrNotFound, got %v", err)
}

func TestDeleteIncomeIdempotent(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	assert.NoError(t, store.DeleteIncome(ctx, 12345))
}

func TestIncomeIDsNotReused(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	inc := model.Income{Date: "2025-01-15", Property: "123 Main St", Amount: 100, Type: model.IncomeRent}

	first, err := store.AddIncome(ctx, inc)
	require.NoError(t, err)
	require.NoError(t, store.DeleteIncome(ctx, first))

	second, err := store.AddIncome(ctx, inc)
	require.NoError(t, err)
	assert.Greater(t, second, first, "identifier of deleted record must not be reassigned")

	require.NoError(t, store.ClearIncome(ctx))

	third, err := store.AddIncome(ctx, inc)
	require.NoError(t, err)
	assert.Greater(t, third, second, "identifiers must stay monotonic across Clear")
}

func TestClearIncomeScope(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	_, err := store.AddIncome(ctx, model.Income{Date: "2025-01-15", Property: "123 Main St", Amount: 100, Type: model.IncomeRent})
	require.NoError(t, err)
	_, err = store.AddExpense(ctx, model.Expense{Date: "2025-02-01", Property: "123 Main St", Amount: 50, Category: model.CategorySupplies})
	require.NoError(t, err)

	require.NoError(t, store.ClearIncome(ctx))

	income, err := store.ListIncome(ctx)
	require.NoError(t, err)
	assert.Empty(t, income)

	expenses, err := store.ListExpenses(ctx)
	require.NoError(t, err)
	assert.Len(t, expenses, 1, "clearing income must not touch expenses")
}
