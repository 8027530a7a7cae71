package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application
// expects. If the database cannot be migrated to this version, it's a fatal
// error.
const ExpectedSchemaVersion = 2

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				// AUTOINCREMENT keeps identifiers monotonic; deleted ids are
				// never handed out again.
				`CREATE TABLE IF NOT EXISTS income (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					date TEXT NOT NULL,
					property TEXT NOT NULL,
					amount REAL NOT NULL,
					type TEXT NOT NULL,
					description TEXT NOT NULL DEFAULT '',
					paid_by TEXT NOT NULL DEFAULT '',
					bank_account TEXT NOT NULL DEFAULT '',
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_income_date ON income(date)`,
				`CREATE INDEX idx_income_property ON income(property)`,

				`CREATE TABLE IF NOT EXISTS expenses (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					date TEXT NOT NULL,
					property TEXT NOT NULL,
					amount REAL NOT NULL,
					category TEXT NOT NULL,
					tax_deductible INTEGER NOT NULL DEFAULT 0,
					description TEXT NOT NULL DEFAULT '',
					credit_card TEXT NOT NULL DEFAULT '',
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_expenses_date ON expenses(date)`,
				`CREATE INDEX idx_expenses_property ON expenses(property)`,

				`CREATE TABLE IF NOT EXISTS deposits (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					date TEXT NOT NULL,
					property TEXT NOT NULL,
					amount REAL NOT NULL,
					tenant TEXT NOT NULL DEFAULT '',
					status TEXT NOT NULL,
					bank_account TEXT NOT NULL DEFAULT '',
					description TEXT NOT NULL DEFAULT '',
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_deposits_date ON deposits(date)`,
				`CREATE INDEX idx_deposits_property ON deposits(property)`,

				`CREATE TABLE IF NOT EXISTS bank_accounts (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					account_name TEXT NOT NULL,
					bank TEXT NOT NULL,
					account_type TEXT NOT NULL,
					last_four_digits TEXT NOT NULL DEFAULT '',
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_bank_accounts_name ON bank_accounts(account_name)`,

				`CREATE TABLE IF NOT EXISTS credit_cards (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					card_name TEXT NOT NULL,
					issuer TEXT NOT NULL,
					card_type TEXT NOT NULL,
					last_four_digits TEXT NOT NULL DEFAULT '',
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_credit_cards_name ON credit_cards(card_name)`,

				// Address uniqueness is enforced case-insensitively by
				// RegisterPropertyIfNew, not by the schema.
				`CREATE TABLE IF NOT EXISTS properties (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					address TEXT NOT NULL,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_properties_address ON properties(address)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Add categorical indexes for filtered report queries",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE INDEX IF NOT EXISTS idx_income_type ON income(type)`,
				`CREATE INDEX IF NOT EXISTS idx_expenses_category ON expenses(category)`,
				`CREATE INDEX IF NOT EXISTS idx_deposits_status ON deposits(status)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query '%s': %w", query, err)
				}
			}
			return nil
		},
	},
}

// Migrate brings the database schema up to ExpectedSchemaVersion. It is
// idempotent and safe to call on every startup.
func (s *Store) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var currentVersion int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion); err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	if currentVersion >= ExpectedSchemaVersion {
		return nil
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		slog.Info("applying migration",
			"version", migration.Version,
			"description", migration.Description)

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin migration transaction: %w", err)
		}

		if err := migration.Up(tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, err)
		}

		// PRAGMA doesn't support placeholders
		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to set schema version: %w", err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}
	}

	return nil
}
