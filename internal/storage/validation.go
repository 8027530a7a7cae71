package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rentfolio/rentfolio/internal/model"
)

// Validation errors.
var (
	ErrNilContext        = errors.New("context cannot be nil")
	ErrEmptyString       = errors.New("string parameter cannot be empty")
	ErrInvalidRecord     = errors.New("invalid record")
	ErrInvalidDate       = errors.New("invalid date")
	ErrNegativeAmount    = errors.New("amount cannot be negative")
	ErrInvalidEnumValue  = errors.New("value outside declared code set")
	ErrInvalidLastDigits = errors.New("last four digits must be 0-4 digits")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateDate ensures a date string is in canonical YYYY-MM-DD form.
func validateDate(date string) error {
	if _, err := time.Parse(model.DateFormat, date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return nil
}

// validateLastFour allows an empty value or up to four digit characters.
// The field is a string so leading zeros survive.
func validateLastFour(digits string) error {
	if len(digits) > 4 {
		return fmt.Errorf("%w: %q", ErrInvalidLastDigits, digits)
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: %q", ErrInvalidLastDigits, digits)
		}
	}
	return nil
}

func validateIncome(inc *model.Income) error {
	if err := validateDate(inc.Date); err != nil {
		return err
	}
	if err := validateString(inc.Property, "property"); err != nil {
		return err
	}
	if inc.Amount < 0 {
		return fmt.Errorf("%w: income amount %f", ErrNegativeAmount, inc.Amount)
	}
	if !inc.Type.Valid() {
		return fmt.Errorf("%w: income type %q", ErrInvalidEnumValue, inc.Type)
	}
	return nil
}

func validateExpense(exp *model.Expense) error {
	if err := validateDate(exp.Date); err != nil {
		return err
	}
	if err := validateString(exp.Property, "property"); err != nil {
		return err
	}
	if exp.Amount < 0 {
		return fmt.Errorf("%w: expense amount %f", ErrNegativeAmount, exp.Amount)
	}
	if !exp.Category.Valid() {
		return fmt.Errorf("%w: expense category %q", ErrInvalidEnumValue, exp.Category)
	}
	return nil
}

func validateDeposit(dep *model.Deposit) error {
	if err := validateDate(dep.Date); err != nil {
		return err
	}
	if err := validateString(dep.Property, "property"); err != nil {
		return err
	}
	if dep.Amount < 0 {
		return fmt.Errorf("%w: deposit amount %f", ErrNegativeAmount, dep.Amount)
	}
	if !dep.Status.Valid() {
		return fmt.Errorf("%w: deposit status %q", ErrInvalidEnumValue, dep.Status)
	}
	return nil
}

func validateBankAccount(acct *model.BankAccount) error {
	if err := validateString(acct.AccountName, "accountName"); err != nil {
		return err
	}
	if err := validateString(acct.Bank, "bank"); err != nil {
		return err
	}
	if !acct.AccountType.Valid() {
		return fmt.Errorf("%w: account type %q", ErrInvalidEnumValue, acct.AccountType)
	}
	return validateLastFour(acct.LastFourDigits)
}

func validateCreditCard(card *model.CreditCard) error {
	if err := validateString(card.CardName, "cardName"); err != nil {
		return err
	}
	if err := validateString(card.Issuer, "issuer"); err != nil {
		return err
	}
	if !card.CardType.Valid() {
		return fmt.Errorf("%w: card type %q", ErrInvalidEnumValue, card.CardType)
	}
	return validateLastFour(card.LastFourDigits)
}

func validateProperty(prop *model.Property) error {
	return validateString(prop.Address, "address")
}
