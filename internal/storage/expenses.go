package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rentfolio/rentfolio/internal/common"
	"github.com/rentfolio/rentfolio/internal/model"
)

// AddExpense inserts an expense record and returns its store-assigned
// identifier. Amount must already be non-negative; sign flipping is an
// export concern.
func (s *Store) AddExpense(ctx context.Context, exp model.Expense) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateExpense(&exp); err != nil {
		return 0, err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO expenses (date, property, amount, category, tax_deductible, description, credit_card)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, exp.Date, exp.Property, exp.Amount, string(exp.Category), exp.TaxDeductible,
		exp.Description, exp.CreditCard)
	if err != nil {
		return 0, storageFault("failed to insert expense record", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, storageFault("failed to get expense id", err)
	}

	return id, nil
}

// GetExpense retrieves a single expense record, (nil, nil) when absent.
func (s *Store) GetExpense(ctx context.Context, id int64) (*model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var exp model.Expense
	err := s.db.QueryRowContext(ctx, `
		SELECT id, date, property, amount, category, tax_deductible, description, credit_card
		FROM expenses
		WHERE id = ?
	`, id).Scan(&exp.ID, &exp.Date, &exp.Property, &exp.Amount, &exp.Category,
		&exp.TaxDeductible, &exp.Description, &exp.CreditCard)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, storageFault("failed to get expense record", err)
	}

	return &exp, nil
}

// ListExpenses returns all expense records.
func (s *Store) ListExpenses(ctx context.Context) ([]model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, date, property, amount, category, tax_deductible, description, credit_card
		FROM expenses
	`)
	if err != nil {
		return nil, storageFault("failed to query expense records", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.Expense
	for rows.Next() {
		var exp model.Expense
		if err := rows.Scan(&exp.ID, &exp.Date, &exp.Property, &exp.Amount, &exp.Category,
			&exp.TaxDeductible, &exp.Description, &exp.CreditCard); err != nil {
			return nil, storageFault("failed to scan expense record", err)
		}
		records = append(records, exp)
	}

	return records, rows.Err()
}

// UpdateExpense replaces the stored record matching the identifier, failing
// with common.ErrNotFound for a missing one.
func (s *Store) UpdateExpense(ctx context.Context, exp model.Expense) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateExpense(&exp); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE expenses
		SET date = ?, property = ?, amount = ?, category = ?, tax_deductible = ?, description = ?, credit_card = ?
		WHERE id = ?
	`, exp.Date, exp.Property, exp.Amount, string(exp.Category), exp.TaxDeductible,
		exp.Description, exp.CreditCard, exp.ID)
	if err != nil {
		return storageFault("failed to update expense record", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return storageFault("failed to check update result", err)
	}
	if affected == 0 {
		return fmt.Errorf("expense %d: %w", exp.ID, common.ErrNotFound)
	}

	return nil
}

// DeleteExpense removes a record by identifier, idempotently.
func (s *Store) DeleteExpense(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id); err != nil {
		return storageFault("failed to delete expense record", err)
	}
	return nil
}

// ClearExpenses empties the expense collection. Used only by snapshot
// import.
func (s *Store) ClearExpenses(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM expenses`); err != nil {
		return storageFault("failed to clear expense records", err)
	}
	return nil
}
