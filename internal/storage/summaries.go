package storage

import (
	"context"
	"fmt"

	"github.com/rentfolio/rentfolio/internal/model"
)

// yearFilter returns a WHERE clause fragment and its argument for an
// optional year restriction. Dates are canonical YYYY-MM-DD strings, so the
// first four characters are the year. A zero year means all years.
func yearFilter(year int) (string, []any) {
	if year == 0 {
		return "", nil
	}
	return " WHERE substr(date, 1, 4) = ?", []any{fmt.Sprintf("%04d", year)}
}

// SumIncomeByType totals income amounts grouped by type code for the given
// year (zero for all years).
func (s *Store) SumIncomeByType(ctx context.Context, year int) (map[model.IncomeType]float64, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	clause, args := yearFilter(year)
	rows, err := s.db.QueryContext(ctx,
		`SELECT type, SUM(amount) FROM income`+clause+` GROUP BY type`, args...)
	if err != nil {
		return nil, storageFault("failed to sum income by type", err)
	}
	defer func() { _ = rows.Close() }()

	totals := make(map[model.IncomeType]float64)
	for rows.Next() {
		var t model.IncomeType
		var sum float64
		if err := rows.Scan(&t, &sum); err != nil {
			return nil, storageFault("failed to scan income summary", err)
		}
		totals[t] = sum
	}

	return totals, rows.Err()
}

// SumIncomeByProperty totals income amounts grouped by property address for
// the given year (zero for all years).
func (s *Store) SumIncomeByProperty(ctx context.Context, year int) (map[string]float64, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	clause, args := yearFilter(year)
	rows, err := s.db.QueryContext(ctx,
		`SELECT property, SUM(amount) FROM income`+clause+` GROUP BY property`, args...)
	if err != nil {
		return nil, storageFault("failed to sum income by property", err)
	}
	defer func() { _ = rows.Close() }()

	totals := make(map[string]float64)
	for rows.Next() {
		var prop string
		var sum float64
		if err := rows.Scan(&prop, &sum); err != nil {
			return nil, storageFault("failed to scan income summary", err)
		}
		totals[prop] = sum
	}

	return totals, rows.Err()
}

// SumExpensesByCategory totals expense amounts grouped by category code for
// the given year (zero for all years). With deductibleOnly set, only
// tax-deductible expenses count.
func (s *Store) SumExpensesByCategory(ctx context.Context, year int, deductibleOnly bool) (map[model.ExpenseCategory]float64, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `SELECT category, SUM(amount) FROM expenses`
	var args []any
	clause, yearArgs := yearFilter(year)
	if clause != "" {
		query += clause
		args = yearArgs
		if deductibleOnly {
			query += ` AND tax_deductible = 1`
		}
	} else if deductibleOnly {
		query += ` WHERE tax_deductible = 1`
	}
	query += ` GROUP BY category`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageFault("failed to sum expenses by category", err)
	}
	defer func() { _ = rows.Close() }()

	totals := make(map[model.ExpenseCategory]float64)
	for rows.Next() {
		var cat model.ExpenseCategory
		var sum float64
		if err := rows.Scan(&cat, &sum); err != nil {
			return nil, storageFault("failed to scan expense summary", err)
		}
		totals[cat] = sum
	}

	return totals, rows.Err()
}

// SumExpensesByProperty totals expense amounts grouped by property address
// for the given year (zero for all years).
func (s *Store) SumExpensesByProperty(ctx context.Context, year int) (map[string]float64, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	clause, args := yearFilter(year)
	rows, err := s.db.QueryContext(ctx,
		`SELECT property, SUM(amount) FROM expenses`+clause+` GROUP BY property`, args...)
	if err != nil {
		return nil, storageFault("failed to sum expenses by property", err)
	}
	defer func() { _ = rows.Close() }()

	totals := make(map[string]float64)
	for rows.Next() {
		var prop string
		var sum float64
		if err := rows.Scan(&prop, &sum); err != nil {
			return nil, storageFault("failed to scan expense summary", err)
		}
		totals[prop] = sum
	}

	return totals, rows.Err()
}

// TotalHeldDeposits returns the sum of deposits currently in held status.
func (s *Store) TotalHeldDeposits(ctx context.Context) (float64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var total float64
	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(amount), 0) FROM deposits WHERE status = ?
	`, string(model.StatusHeld)).Scan(&total)
	if err != nil {
		return 0, storageFault("failed to total held deposits", err)
	}

	return total, nil
}
