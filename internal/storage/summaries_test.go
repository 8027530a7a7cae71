package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentfolio/rentfolio/internal/model"
)

func seedSummaryData(t *testing.T, store *Store) {
	t.Helper()
	ctx := context.Background()

	income := []model.Income{
		{Date: "2025-01-15", Property: "123 Main St", Amount: 1200, Type: model.IncomeRent},
		{Date: "2025-02-15", Property: "123 Main St", Amount: 1200, Type: model.IncomeRent},
		{Date: "2025-02-20", Property: "456 Oak Ave", Amount: 50, Type: model.IncomeLateFee},
		{Date: "2024-12-15", Property: "123 Main St", Amount: 1150, Type: model.IncomeRent},
	}
	for _, inc := range income {
		_, err := store.AddIncome(ctx, inc)
		require.NoError(t, err)
	}

	expenses := []model.Expense{
		{Date: "2025-01-20", Property: "123 Main St", Amount: 300, Category: model.CategoryMaintenance, TaxDeductible: true},
		{Date: "2025-03-05", Property: "456 Oak Ave", Amount: 120, Category: model.CategoryUtilities},
		{Date: "2024-11-01", Property: "123 Main St", Amount: 900, Category: model.CategoryInsurance, TaxDeductible: true},
	}
	for _, exp := range expenses {
		_, err := store.AddExpense(ctx, exp)
		require.NoError(t, err)
	}

	deposits := []model.Deposit{
		{Date: "2025-01-01", Property: "123 Main St", Amount: 1800, Status: model.StatusHeld},
		{Date: "2025-01-01", Property: "456 Oak Ave", Amount: 1500, Status: model.StatusHeld},
		{Date: "2024-06-01", Property: "789 Pine Rd", Amount: 2000, Status: model.StatusReturned},
	}
	for _, dep := range deposits {
		_, err := store.AddDeposit(ctx, dep)
		require.NoError(t, err)
	}
}

func TestSumIncomeByType(t *testing.T) {
	store := createTestStore(t)
	seedSummaryData(t, store)
	ctx := context.Background()

	totals, err := store.SumIncomeByType(ctx, 2025)
	require.NoError(t, err)
	assert.InDelta(t, 2400.0, totals[model.IncomeRent], 0.001)
	assert.InDelta(t, 50.0, totals[model.IncomeLateFee], 0.001)

	allYears, err := store.SumIncomeByType(ctx, 0)
	require.NoError(t, err)
	assert.InDelta(t, 3550.0, allYears[model.IncomeRent], 0.001)
}

func TestSumIncomeByProperty(t *testing.T) {
	store := createTestStore(t)
	seedSummaryData(t, store)

	totals, err := store.SumIncomeByProperty(context.Background(), 2025)
	require.NoError(t, err)
	assert.InDelta(t, 2400.0, totals["123 Main St"], 0.001)
	assert.InDelta(t, 50.0, totals["456 Oak Ave"], 0.001)
}

func TestSumExpensesByCategory(t *testing.T) {
	store := createTestStore(t)
	seedSummaryData(t, store)
	ctx := context.Background()

	totals, err := store.SumExpensesByCategory(ctx, 2025, false)
	require.NoError(t, err)
	assert.InDelta(t, 300.0, totals[model.CategoryMaintenance], 0.001)
	assert.InDelta(t, 120.0, totals[model.CategoryUtilities], 0.001)

	deductible, err := store.SumExpensesByCategory(ctx, 2025, true)
	require.NoError(t, err)
	assert.InDelta(t, 300.0, deductible[model.CategoryMaintenance], 0.001)
	assert.NotContains(t, deductible, model.CategoryUtilities)
}

func TestSumExpensesByProperty(t *testing.T) {
	store := createTestStore(t)
	seedSummaryData(t, store)

	totals, err := store.SumExpensesByProperty(context.Background(), 0)
	require.NoError(t, err)
	assert.InDelta(t, 1200.0, totals["123 Main St"], 0.001)
	assert.InDelta(t, 120.0, totals["456 Oak Ave"], 0.001)
}

func TestTotalHeldDeposits(t *testing.T) {
	store := createTestStore(t)
	seedSummaryData(t, store)

	total, err := store.TotalHeldDeposits(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 3300.0, total, 0.001)
}

func TestTotalHeldDepositsEmpty(t *testing.T) {
	store := createTestStore(t)

	total, err := store.TotalHeldDeposits(context.Background())
	require.NoError(t, err)
	assert.Zero(t, total)
}
