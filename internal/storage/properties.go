package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/rentfolio/rentfolio/internal/common"
	"github.com/rentfolio/rentfolio/internal/model"
)

// AddProperty inserts a property record and returns its store-assigned
// identifier. It does not check for duplicates; use RegisterPropertyIfNew
// when the address comes from user or import input.
func (s *Store) AddProperty(ctx context.Context, prop model.Property) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateProperty(&prop); err != nil {
		return 0, err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO properties (address) VALUES (?)
	`, prop.Address)
	if err != nil {
		return 0, storageFault("failed to insert property", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, storageFault("failed to get property id", err)
	}

	return id, nil
}

// GetProperty retrieves a single property, (nil, nil) when absent.
func (s *Store) GetProperty(ctx context.Context, id int64) (*model.Property, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var prop model.Property
	err := s.db.QueryRowContext(ctx, `
		SELECT id, address FROM properties WHERE id = ?
	`, id).Scan(&prop.ID, &prop.Address)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, storageFault("failed to get property", err)
	}

	return &prop, nil
}

// ListProperties returns all properties.
func (s *Store) ListProperties(ctx context.Context) ([]model.Property, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT id, address FROM properties`)
	if err != nil {
		return nil, storageFault("failed to query properties", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.Property
	for rows.Next() {
		var prop model.Property
		if err := rows.Scan(&prop.ID, &prop.Address); err != nil {
			return nil, storageFault("failed to scan property", err)
		}
		records = append(records, prop)
	}

	return records, rows.Err()
}

// UpdateProperty replaces the stored record matching the identifier, failing
// with common.ErrNotFound for a missing one.
func (s *Store) UpdateProperty(ctx context.Context, prop model.Property) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateProperty(&prop); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE properties SET address = ? WHERE id = ?
	`, prop.Address, prop.ID)
	if err != nil {
		return storageFault("failed to update property", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return storageFault("failed to check update result", err)
	}
	if affected == 0 {
		return fmt.Errorf("property %d: %w", prop.ID, common.ErrNotFound)
	}

	return nil
}

// DeleteProperty removes a record by identifier, idempotently. Transactions
// that name the address are untouched.
func (s *Store) DeleteProperty(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM properties WHERE id = ?`, id); err != nil {
		return storageFault("failed to delete property", err)
	}
	return nil
}

// RegisterPropertyIfNew inserts the address into the property collection
// unless a case-insensitive match already exists. Either way it returns the
// identifier of the surviving record. The stored address keeps the casing of
// whichever spelling arrived first.
func (s *Store) RegisterPropertyIfNew(ctx context.Context, address string) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateString(address, "address"); err != nil {
		return 0, err
	}
	address = strings.TrimSpace(address)

	var id int64
	err := s.db.QueryRowContext(ctx, `
		SELECT id FROM properties WHERE LOWER(address) = LOWER(?) LIMIT 1
	`, address).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, storageFault("failed to look up property", err)
	}

	result, err := s.db.ExecContext(ctx, `INSERT INTO properties (address) VALUES (?)`, address)
	if err != nil {
		return 0, storageFault("failed to insert property", err)
	}

	id, err = result.LastInsertId()
	if err != nil {
		return 0, storageFault("failed to get property id", err)
	}

	return id, nil
}
