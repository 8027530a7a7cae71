package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rentfolio/rentfolio/internal/common"
	"github.com/rentfolio/rentfolio/internal/model"
)

// AddDeposit inserts a security deposit record and returns its
// store-assigned identifier.
func (s *Store) AddDeposit(ctx context.Context, dep model.Deposit) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateDeposit(&dep); err != nil {
		return 0, err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO deposits (date, property, amount, tenant, status, bank_account, description)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, dep.Date, dep.Property, dep.Amount, dep.Tenant, string(dep.Status),
		dep.BankAccount, dep.Description)
	if err != nil {
		return 0, storageFault("failed to insert deposit record", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, storageFault("failed to get deposit id", err)
	}

	return id, nil
}

// GetDeposit retrieves a single deposit record, (nil, nil) when absent.
func (s *Store) GetDeposit(ctx context.Context, id int64) (*model.Deposit, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var dep model.Deposit
	err := s.db.QueryRowContext(ctx, `
		SELECT id, date, property, amount, tenant, status, bank_account, description
		FROM deposits
		WHERE id = ?
	`, id).Scan(&dep.ID, &dep.Date, &dep.Property, &dep.Amount, &dep.Tenant,
		&dep.Status, &dep.BankAccount, &dep.Description)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, storageFault("failed to get deposit record", err)
	}

	return &dep, nil
}

// ListDeposits returns all deposit records.
func (s *Store) ListDeposits(ctx context.Context) ([]model.Deposit, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, date, property, amount, tenant, status, bank_account, description
		FROM deposits
	`)
	if err != nil {
		return nil, storageFault("failed to query deposit records", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.Deposit
	for rows.Next() {
		var dep model.Deposit
		if err := rows.Scan(&dep.ID, &dep.Date, &dep.Property, &dep.Amount, &dep.Tenant,
			&dep.Status, &dep.BankAccount, &dep.Description); err != nil {
			return nil, storageFault("failed to scan deposit record", err)
		}
		records = append(records, dep)
	}

	return records, rows.Err()
}

// UpdateDeposit replaces the stored record matching the identifier, failing
// with common.ErrNotFound for a missing one.
func (s *Store) UpdateDeposit(ctx context.Context, dep model.Deposit) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateDeposit(&dep); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE deposits
		SET date = ?, property = ?, amount = ?, tenant = ?, status = ?, bank_account = ?, description = ?
		WHERE id = ?
	`, dep.Date, dep.Property, dep.Amount, dep.Tenant, string(dep.Status),
		dep.BankAccount, dep.Description, dep.ID)
	if err != nil {
		return storageFault("failed to update deposit record", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return storageFault("failed to check update result", err)
	}
	if affected == 0 {
		return fmt.Errorf("deposit %d: %w", dep.ID, common.ErrNotFound)
	}

	return nil
}

// DeleteDeposit removes a record by identifier, idempotently.
func (s *Store) DeleteDeposit(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM deposits WHERE id = ?`, id); err != nil {
		return storageFault("failed to delete deposit record", err)
	}
	return nil
}

// ClearDeposits empties the deposit collection. Used only by snapshot
// import.
func (s *Store) ClearDeposits(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM deposits`); err != nil {
		return storageFault("failed to clear deposit records", err)
	}
	return nil
}
