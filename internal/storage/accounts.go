package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rentfolio/rentfolio/internal/common"
	"github.com/rentfolio/rentfolio/internal/model"
)

// AddBankAccount inserts a bank account record and returns its
// store-assigned identifier.
func (s *Store) AddBankAccount(ctx context.Context, acct model.BankAccount) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateBankAccount(&acct); err != nil {
		return 0, err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO bank_accounts (account_name, bank, account_type, last_four_digits)
		VALUES (?, ?, ?, ?)
	`, acct.AccountName, acct.Bank, string(acct.AccountType), acct.LastFourDigits)
	if err != nil {
		return 0, storageFault("failed to insert bank account", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, storageFault("failed to get bank account id", err)
	}

	return id, nil
}

// GetBankAccount retrieves a single bank account, (nil, nil) when absent.
func (s *Store) GetBankAccount(ctx context.Context, id int64) (*model.BankAccount, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var acct model.BankAccount
	err := s.db.QueryRowContext(ctx, `
		SELECT id, account_name, bank, account_type, last_four_digits
		FROM bank_accounts
		WHERE id = ?
	`, id).Scan(&acct.ID, &acct.AccountName, &acct.Bank, &acct.AccountType, &acct.LastFourDigits)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, storageFault("failed to get bank account", err)
	}

	return &acct, nil
}

// ListBankAccounts returns all bank accounts.
func (s *Store) ListBankAccounts(ctx context.Context) ([]model.BankAccount, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, account_name, bank, account_type, last_four_digits
		FROM bank_accounts
	`)
	if err != nil {
		return nil, storageFault("failed to query bank accounts", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.BankAccount
	for rows.Next() {
		var acct model.BankAccount
		if err := rows.Scan(&acct.ID, &acct.AccountName, &acct.Bank, &acct.AccountType,
			&acct.LastFourDigits); err != nil {
			return nil, storageFault("failed to scan bank account", err)
		}
		records = append(records, acct)
	}

	return records, rows.Err()
}

// UpdateBankAccount replaces the stored record matching the identifier,
// failing with common.ErrNotFound for a missing one.
func (s *Store) UpdateBankAccount(ctx context.Context, acct model.BankAccount) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateBankAccount(&acct); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE bank_accounts
		SET account_name = ?, bank = ?, account_type = ?, last_four_digits = ?
		WHERE id = ?
	`, acct.AccountName, acct.Bank, string(acct.AccountType), acct.LastFourDigits, acct.ID)
	if err != nil {
		return storageFault("failed to update bank account", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return storageFault("failed to check update result", err)
	}
	if affected == 0 {
		return fmt.Errorf("bank account %d: %w", acct.ID, common.ErrNotFound)
	}

	return nil
}

// DeleteBankAccount removes a record by identifier, idempotently. Income
// and deposit rows that reference it keep their dangling reference.
func (s *Store) DeleteBankAccount(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM bank_accounts WHERE id = ?`, id); err != nil {
		return storageFault("failed to delete bank account", err)
	}
	return nil
}

// AddCreditCard inserts a credit card record and returns its store-assigned
// identifier.
func (s *Store) AddCreditCard(ctx context.Context, card model.CreditCard) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateCreditCard(&card); err != nil {
		return 0, err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO credit_cards (card_name, issuer, card_type, last_four_digits)
		VALUES (?, ?, ?, ?)
	`, card.CardName, card.Issuer, string(card.CardType), card.LastFourDigits)
	if err != nil {
		return 0, storageFault("failed to insert credit card", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, storageFault("failed to get credit card id", err)
	}

	return id, nil
}

// GetCreditCard retrieves a single credit card, (nil, nil) when absent.
func (s *Store) GetCreditCard(ctx context.Context, id int64) (*model.CreditCard, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var card model.CreditCard
	err := s.db.QueryRowContext(ctx, `
		SELECT id, card_name, issuer, card_type, last_four_digits
		FROM credit_cards
		WHERE id = ?
	`, id).Scan(&card.ID, &card.CardName, &card.Issuer, &card.CardType, &card.LastFourDigits)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, storageFault("failed to get credit card", err)
	}

	return &card, nil
}

// ListCreditCards returns all credit cards.
func (s *Store) ListCreditCards(ctx context.Context) ([]model.CreditCard, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, card_name, issuer, card_type, last_four_digits
		FROM credit_cards
	`)
	if err != nil {
		return nil, storageFault("failed to query credit cards", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.CreditCard
	for rows.Next() {
		var card model.CreditCard
		if err := rows.Scan(&card.ID, &card.CardName, &card.Issuer, &card.CardType,
			&card.LastFourDigits); err != nil {
			return nil, storageFault("failed to scan credit card", err)
		}
		records = append(records, card)
	}

	return records, rows.Err()
}

// UpdateCreditCard replaces the stored record matching the identifier,
// failing with common.ErrNotFound for a missing one.
func (s *Store) UpdateCreditCard(ctx context.Context, card model.CreditCard) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateCreditCard(&card); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE credit_cards
		SET card_name = ?, issuer = ?, card_type = ?, last_four_digits = ?
		WHERE id = ?
	`, card.CardName, card.Issuer, string(card.CardType), card.LastFourDigits, card.ID)
	if err != nil {
		return storageFault("failed to update credit card", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return storageFault("failed to check update result", err)
	}
	if affected == 0 {
		return fmt.Errorf("credit card %d: %w", card.ID, common.ErrNotFound)
	}

	return nil
}

// DeleteCreditCard removes a record by identifier, idempotently.
func (s *Store) DeleteCreditCard(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM credit_cards WHERE id = ?`, id); err != nil {
		return storageFault("failed to delete credit card", err)
	}
	return nil
}
