// Package service defines the interfaces between the CLI, the transfer
// codec, and the persistence layer.
package service

import (
	"context"

	"github.com/rentfolio/rentfolio/internal/model"
)

// Store defines the contract for the persistence layer. Add assigns a fresh
// identifier and returns it; Get returns (nil, nil) when the identifier is
// absent; Update replaces the full record and fails with common.ErrNotFound
// for a missing identifier; Delete is idempotent. Clear exists only for the
// three transaction collections and is used by snapshot import.
type Store interface {
	// Income operations
	AddIncome(ctx context.Context, inc model.Income) (int64, error)
	GetIncome(ctx context.Context, id int64) (*model.Income, error)
	ListIncome(ctx context.Context) ([]model.Income, error)
	UpdateIncome(ctx context.Context, inc model.Income) error
	DeleteIncome(ctx context.Context, id int64) error
	ClearIncome(ctx context.Context) error

	// Expense operations
	AddExpense(ctx context.Context, exp model.Expense) (int64, error)
	GetExpense(ctx context.Context, id int64) (*model.Expense, error)
	ListExpenses(ctx context.Context) ([]model.Expense, error)
	UpdateExpense(ctx context.Context, exp model.Expense) error
	DeleteExpense(ctx context.Context, id int64) error
	ClearExpenses(ctx context.Context) error

	// Deposit operations
	AddDeposit(ctx context.Context, dep model.Deposit) (int64, error)
	GetDeposit(ctx context.Context, id int64) (*model.Deposit, error)
	ListDeposits(ctx context.Context) ([]model.Deposit, error)
	UpdateDeposit(ctx context.Context, dep model.Deposit) error
	DeleteDeposit(ctx context.Context, id int64) error
	ClearDeposits(ctx context.Context) error

	// Bank account operations
	AddBankAccount(ctx context.Context, acct model.BankAccount) (int64, error)
	GetBankAccount(ctx context.Context, id int64) (*model.BankAccount, error)
	ListBankAccounts(ctx context.Context) ([]model.BankAccount, error)
	UpdateBankAccount(ctx context.Context, acct model.BankAccount) error
	DeleteBankAccount(ctx context.Context, id int64) error

	// Credit card operations
	AddCreditCard(ctx context.Context, card model.CreditCard) (int64, error)
	GetCreditCard(ctx context.Context, id int64) (*model.CreditCard, error)
	ListCreditCards(ctx context.Context) ([]model.CreditCard, error)
	UpdateCreditCard(ctx context.Context, card model.CreditCard) error
	DeleteCreditCard(ctx context.Context, id int64) error

	// Property operations
	AddProperty(ctx context.Context, prop model.Property) (int64, error)
	GetProperty(ctx context.Context, id int64) (*model.Property, error)
	ListProperties(ctx context.Context) ([]model.Property, error)
	UpdateProperty(ctx context.Context, prop model.Property) error
	DeleteProperty(ctx context.Context, id int64) error

	// RegisterPropertyIfNew matches address case-insensitively against the
	// property collection and inserts only when no match exists. It is the
	// single lookup point for the property-by-text soft reference.
	RegisterPropertyIfNew(ctx context.Context, address string) (int64, error)

	// Summary queries for the report layer
	SumIncomeByType(ctx context.Context, year int) (map[model.IncomeType]float64, error)
	SumIncomeByProperty(ctx context.Context, year int) (map[string]float64, error)
	SumExpensesByCategory(ctx context.Context, year int, deductibleOnly bool) (map[model.ExpenseCategory]float64, error)
	SumExpensesByProperty(ctx context.Context, year int) (map[string]float64, error)
	TotalHeldDeposits(ctx context.Context) (float64, error)

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}
