package codec

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rentfolio/rentfolio/internal/common"
	"github.com/rentfolio/rentfolio/internal/model"
	"github.com/rentfolio/rentfolio/internal/service"
)

// snapshotVersion tags the snapshot document format.
const snapshotVersion = "2.0"

// Snapshot is the full-fidelity backup document. It is the only export
// that carries identifiers and therefore the only one that restores a
// store wholesale.
type Snapshot struct {
	Income       []model.Income      `json:"income"`
	Expenses     []model.Expense     `json:"expenses"`
	Deposits     []model.Deposit     `json:"deposits"`
	BankAccounts []model.BankAccount `json:"bankAccounts"`
	CreditCards  []model.CreditCard  `json:"creditCards"`
	Properties   []model.Property    `json:"properties"`
	ExportDate   string              `json:"exportDate"`
	Version      string              `json:"version"`
}

// Exporter renders store contents into the external formats.
type Exporter struct {
	store service.Store
}

// NewExporter creates an exporter over the given store.
func NewExporter(store service.Store) *Exporter {
	return &Exporter{store: store}
}

// Snapshot marshals the full contents of all six collections.
func (e *Exporter) Snapshot(ctx context.Context) ([]byte, error) {
	snap := Snapshot{
		ExportDate: time.Now().Format(time.RFC3339),
		Version:    snapshotVersion,
	}

	var err error
	if snap.Income, err = e.store.ListIncome(ctx); err != nil {
		return nil, fmt.Errorf("snapshot export: %w", err)
	}
	if snap.Expenses, err = e.store.ListExpenses(ctx); err != nil {
		return nil, fmt.Errorf("snapshot export: %w", err)
	}
	if snap.Deposits, err = e.store.ListDeposits(ctx); err != nil {
		return nil, fmt.Errorf("snapshot export: %w", err)
	}
	if snap.BankAccounts, err = e.store.ListBankAccounts(ctx); err != nil {
		return nil, fmt.Errorf("snapshot export: %w", err)
	}
	if snap.CreditCards, err = e.store.ListCreditCards(ctx); err != nil {
		return nil, fmt.Errorf("snapshot export: %w", err)
	}
	if snap.Properties, err = e.store.ListProperties(ctx); err != nil {
		return nil, fmt.Errorf("snapshot export: %w", err)
	}

	// Empty collections marshal as [] rather than null so a fresh export
	// is immediately re-importable.
	if snap.Income == nil {
		snap.Income = []model.Income{}
	}
	if snap.Expenses == nil {
		snap.Expenses = []model.Expense{}
	}
	if snap.Deposits == nil {
		snap.Deposits = []model.Deposit{}
	}
	if snap.BankAccounts == nil {
		snap.BankAccounts = []model.BankAccount{}
	}
	if snap.CreditCards == nil {
		snap.CreditCards = []model.CreditCard{}
	}
	if snap.Properties == nil {
		snap.Properties = []model.Property{}
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("snapshot export: %w", err)
	}

	return data, nil
}

// importSnapshot validates and applies a snapshot document. The three
// transaction arrays must be present in the raw document; presence is
// checked before any store write so a malformed file leaves the store
// untouched. Transactions are replaced wholesale with fresh identifiers,
// reference collections are appended.
func (i *Importer) importSnapshot(ctx context.Context, data []byte, onRow func()) (*ImportResult, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrMalformedFile, err)
	}
	for _, key := range []string{"income", "expenses", "deposits"} {
		if _, ok := raw[key]; !ok {
			return nil, fmt.Errorf("%w: missing %q collection", common.ErrMalformedFile, key)
		}
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrMalformedFile, err)
	}

	if err := i.store.ClearIncome(ctx); err != nil {
		return nil, fmt.Errorf("snapshot import: %w", err)
	}
	if err := i.store.ClearExpenses(ctx); err != nil {
		return nil, fmt.Errorf("snapshot import: %w", err)
	}
	if err := i.store.ClearDeposits(ctx); err != nil {
		return nil, fmt.Errorf("snapshot import: %w", err)
	}

	result := &ImportResult{Format: FormatSnapshot, Replaced: true}

	for _, inc := range snap.Income {
		inc.Type = model.NormalizeIncomeType(inc.Type)
		if _, err := i.store.AddIncome(ctx, inc); err != nil {
			if abortErr := rowError(result, err); abortErr != nil {
				return result, fmt.Errorf("snapshot import: %w", abortErr)
			}
			continue
		}
		result.Income++
		notify(onRow)
	}
	for _, exp := range snap.Expenses {
		exp.Category = model.NormalizeExpenseCategory(exp.Category)
		if _, err := i.store.AddExpense(ctx, exp); err != nil {
			if abortErr := rowError(result, err); abortErr != nil {
				return result, fmt.Errorf("snapshot import: %w", abortErr)
			}
			continue
		}
		result.Expenses++
		notify(onRow)
	}
	for _, dep := range snap.Deposits {
		dep.Status = model.NormalizeDepositStatus(dep.Status)
		if _, err := i.store.AddDeposit(ctx, dep); err != nil {
			if abortErr := rowError(result, err); abortErr != nil {
				return result, fmt.Errorf("snapshot import: %w", abortErr)
			}
			continue
		}
		result.Deposits++
		notify(onRow)
	}

	// Reference collections accumulate across restores.
	for _, acct := range snap.BankAccounts {
		acct.AccountType = model.NormalizeAccountType(acct.AccountType)
		if _, err := i.store.AddBankAccount(ctx, acct); err != nil {
			if abortErr := rowError(result, err); abortErr != nil {
				return result, fmt.Errorf("snapshot import: %w", abortErr)
			}
			continue
		}
		result.BankAccounts++
		notify(onRow)
	}
	for _, card := range snap.CreditCards {
		card.CardType = model.NormalizeCardType(card.CardType)
		if _, err := i.store.AddCreditCard(ctx, card); err != nil {
			if abortErr := rowError(result, err); abortErr != nil {
				return result, fmt.Errorf("snapshot import: %w", abortErr)
			}
			continue
		}
		result.CreditCards++
		notify(onRow)
	}
	for _, prop := range snap.Properties {
		if _, err := i.store.AddProperty(ctx, prop); err != nil {
			if abortErr := rowError(result, err); abortErr != nil {
				return result, fmt.Errorf("snapshot import: %w", abortErr)
			}
			continue
		}
		result.Properties++
		notify(onRow)
	}

	return result, nil
}
