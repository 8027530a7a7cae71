// Package report derives dashboard totals and yearly categorized summaries
// from store reads. It holds no state of its own.
package report

import (
	"context"
	"fmt"

	"github.com/rentfolio/rentfolio/internal/model"
	"github.com/rentfolio/rentfolio/internal/service"
)

// Dashboard holds the headline numbers for one year.
type Dashboard struct {
	Year         int
	IncomeTotal  float64
	ExpenseTotal float64
	NetIncome    float64
	HeldDeposits float64
}

// BuildDashboard computes year totals plus the held-deposit balance. The
// deposit balance is not year-scoped; a deposit stays on the books until
// returned or applied.
func BuildDashboard(ctx context.Context, store service.Store, year int) (*Dashboard, error) {
	incomeByType, err := store.SumIncomeByType(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	expensesByCategory, err := store.SumExpensesByCategory(ctx, year, false)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	held, err := store.TotalHeldDeposits(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}

	d := &Dashboard{Year: year, HeldDeposits: held}
	for _, amount := range incomeByType {
		d.IncomeTotal += amount
	}
	for _, amount := range expensesByCategory {
		d.ExpenseTotal += amount
	}
	d.NetIncome = d.IncomeTotal - d.ExpenseTotal

	return d, nil
}

// YearReport is the categorized breakdown for one year.
type YearReport struct {
	Year                 int
	IncomeByType         map[model.IncomeType]float64
	IncomeByProperty     map[string]float64
	ExpensesByCategory   map[model.ExpenseCategory]float64
	ExpensesByProperty   map[string]float64
	DeductibleByCategory map[model.ExpenseCategory]float64
	IncomeTotal          float64
	ExpenseTotal         float64
	DeductibleTotal      float64
	NetIncome            float64
}

// BuildYearReport assembles every breakdown the yearly report shows.
func BuildYearReport(ctx context.Context, store service.Store, year int) (*YearReport, error) {
	r := &YearReport{Year: year}

	var err error
	if r.IncomeByType, err = store.SumIncomeByType(ctx, year); err != nil {
		return nil, fmt.Errorf("year report: %w", err)
	}
	if r.IncomeByProperty, err = store.SumIncomeByProperty(ctx, year); err != nil {
		return nil, fmt.Errorf("year report: %w", err)
	}
	if r.ExpensesByCategory, err = store.SumExpensesByCategory(ctx, year, false); err != nil {
		return nil, fmt.Errorf("year report: %w", err)
	}
	if r.ExpensesByProperty, err = store.SumExpensesByProperty(ctx, year); err != nil {
		return nil, fmt.Errorf("year report: %w", err)
	}
	if r.DeductibleByCategory, err = store.SumExpensesByCategory(ctx, year, true); err != nil {
		return nil, fmt.Errorf("year report: %w", err)
	}

	for _, amount := range r.IncomeByType {
		r.IncomeTotal += amount
	}
	for _, amount := range r.ExpensesByCategory {
		r.ExpenseTotal += amount
	}
	for _, amount := range r.DeductibleByCategory {
		r.DeductibleTotal += amount
	}
	r.NetIncome = r.IncomeTotal - r.ExpenseTotal

	return r, nil
}
