package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rentfolio/rentfolio/internal/common"
	"github.com/rentfolio/rentfolio/internal/model"
)

// AddIncome inserts an income record and returns its store-assigned
// identifier. Any identifier on the passed record is ignored.
func (s *Store) AddIncome(ctx context.Context, inc model.Income) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateIncome(&inc); err != nil {
		return 0, err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO income (date, property, amount, type, description, paid_by, bank_account)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, inc.Date, inc.Property, inc.Amount, string(inc.Type), inc.Description, inc.PaidBy, inc.BankAccount)
	if err != nil {
		return 0, storageFault("failed to insert income record", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, storageFault("failed to get income id", err)
	}

	return id, nil
}

// GetIncome retrieves a single income record. A missing identifier is not
// an error; it returns (nil, nil).
func (s *Store) GetIncome(ctx context.Context, id int64) (*model.Income, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var inc model.Income
	err := s.db.QueryRowContext(ctx, `
		SELECT id, date, property, amount, type, description, paid_by, bank_account
		FROM income
		WHERE id = ?
	`, id).Scan(&inc.ID, &inc.Date, &inc.Property, &inc.Amount, &inc.Type,
		&inc.Description, &inc.PaidBy, &inc.BankAccount)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, storageFault("failed to get income record", err)
	}

	return &inc, nil
}

// ListIncome returns all income records. Ordering is left to callers.
func (s *Store) ListIncome(ctx context.Context) ([]model.Income, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	return s.listIncome(ctx, s.db)
}

func (s *Store) listIncome(ctx context.Context, q queryable) ([]model.Income, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, date, property, amount, type, description, paid_by, bank_account
		FROM income
	`)
	if err != nil {
		return nil, storageFault("failed to query income records", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.Income
	for rows.Next() {
		var inc model.Income
		if err := rows.Scan(&inc.ID, &inc.Date, &inc.Property, &inc.Amount, &inc.Type,
			&inc.Description, &inc.PaidBy, &inc.BankAccount); err != nil {
			return nil, storageFault("failed to scan income record", err)
		}
		records = append(records, inc)
	}

	return records, rows.Err()
}

// UpdateIncome replaces the stored record matching the identifier. Updating
// a missing identifier fails with common.ErrNotFound; the store never
// upserts.
func (s *Store) UpdateIncome(ctx context.Context, inc model.Income) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateIncome(&inc); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE income
		SET date = ?, property = ?, amount = ?, type = ?, description = ?, paid_by = ?, bank_account = ?
		WHERE id = ?
	`, inc.Date, inc.Property, inc.Amount, string(inc.Type), inc.Description,
		inc.PaidBy, inc.BankAccount, inc.ID)
	if err != nil {
		return storageFault("failed to update income record", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return storageFault("failed to check update result", err)
	}
	if affected == 0 {
		return fmt.Errorf("income %d: %w", inc.ID, common.ErrNotFound)
	}

	return nil
}

// DeleteIncome removes a record by identifier. Deleting an absent
// identifier is not an error.
func (s *Store) DeleteIncome(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM income WHERE id = ?`, id); err != nil {
		return storageFault("failed to delete income record", err)
	}
	return nil
}

// ClearIncome empties the income collection. Used only by snapshot import.
func (s *Store) ClearIncome(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM income`); err != nil {
		return storageFault("failed to clear income records", err)
	}
	return nil
}
