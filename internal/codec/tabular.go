package codec

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rentfolio/rentfolio/internal/common"
	"github.com/rentfolio/rentfolio/internal/model"
)

// Column layout of the combined transactions table. Irrelevant columns are
// blank per row; the Type column discriminates the target collection.
var transactionHeader = []string{
	"Date", "Type", "Property", "Amount", "Description", "Category",
	"Income Type", "Paid By", "Tax Deductible", "Credit Card",
	"Tenant", "Status", "Bank Account",
}

var accountHeader = []string{"Type", "Name", "Bank/Issuer", "Account/Card Type", "Last 4 Digits"}

var propertyHeader = []string{"Address"}

// Type discriminator values in the transactions table.
const (
	rowTypeIncome  = "Income"
	rowTypeExpense = "Expense"
	rowTypeDeposit = "Security Deposit"
)

// Kind tags in the accounts table.
const (
	rowKindBank = "Bank Account"
	rowKindCard = "Credit Card"
)

// formatAmount renders amounts with no trailing zeros, so 1200.0 exports
// as "1200" and 52.50 as "52.5".
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// transactionRows builds the combined table, enum codes translated to
// labels, expense amounts negated, rows sorted date descending.
func (e *Exporter) transactionRows(ctx context.Context) ([][]string, error) {
	income, err := e.store.ListIncome(ctx)
	if err != nil {
		return nil, fmt.Errorf("transactions export: %w", err)
	}
	expenses, err := e.store.ListExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("transactions export: %w", err)
	}
	deposits, err := e.store.ListDeposits(ctx)
	if err != nil {
		return nil, fmt.Errorf("transactions export: %w", err)
	}

	rows := make([][]string, 0, len(income)+len(expenses)+len(deposits))
	for _, inc := range income {
		rows = append(rows, []string{
			inc.Date, rowTypeIncome, inc.Property, formatAmount(inc.Amount),
			inc.Description, "", inc.Type.Label(), inc.PaidBy, "", "", "", "",
			inc.BankAccount,
		})
	}
	for _, exp := range expenses {
		deductible := "No"
		if exp.TaxDeductible {
			deductible = "Yes"
		}
		rows = append(rows, []string{
			exp.Date, rowTypeExpense, exp.Property, formatAmount(-exp.Amount),
			exp.Description, exp.Category.Label(), "", "", deductible,
			exp.CreditCard, "", "", "",
		})
	}
	for _, dep := range deposits {
		rows = append(rows, []string{
			dep.Date, rowTypeDeposit, dep.Property, formatAmount(dep.Amount),
			dep.Description, "", "", "", "", "", dep.Tenant, dep.Status.Label(),
			dep.BankAccount,
		})
	}

	// Dates are canonical YYYY-MM-DD so plain string comparison orders
	// chronologically.
	sort.SliceStable(rows, func(a, b int) bool {
		return rows[a][0] > rows[b][0]
	})

	return rows, nil
}

// TransactionsCSV renders the combined transactions table. The header row
// is always present even when the store is empty.
func (e *Exporter) TransactionsCSV(ctx context.Context) ([]byte, error) {
	rows, err := e.transactionRows(ctx)
	if err != nil {
		return nil, err
	}
	return writeCSV(transactionHeader, rows)
}

// PropertiesCSV renders the property table, or nil when the collection is
// empty so callers can skip the file entirely.
func (e *Exporter) PropertiesCSV(ctx context.Context) ([]byte, error) {
	props, err := e.store.ListProperties(ctx)
	if err != nil {
		return nil, fmt.Errorf("properties export: %w", err)
	}
	if len(props) == 0 {
		return nil, nil
	}

	rows := make([][]string, 0, len(props))
	for _, prop := range props {
		rows = append(rows, []string{prop.Address})
	}
	return writeCSV(propertyHeader, rows)
}

// AccountsCSV renders bank accounts and credit cards interleaved into one
// table, or nil when both collections are empty.
func (e *Exporter) AccountsCSV(ctx context.Context) ([]byte, error) {
	accounts, err := e.store.ListBankAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("accounts export: %w", err)
	}
	cards, err := e.store.ListCreditCards(ctx)
	if err != nil {
		return nil, fmt.Errorf("accounts export: %w", err)
	}
	if len(accounts) == 0 && len(cards) == 0 {
		return nil, nil
	}

	rows := make([][]string, 0, len(accounts)+len(cards))
	for _, acct := range accounts {
		rows = append(rows, []string{
			rowKindBank, acct.AccountName, acct.Bank, acct.AccountType.Label(),
			acct.LastFourDigits,
		})
	}
	for _, card := range cards {
		rows = append(rows, []string{
			rowKindCard, card.CardName, card.Issuer, card.CardType.Label(),
			card.LastFourDigits,
		})
	}
	return writeCSV(accountHeader, rows)
}

func writeCSV(header []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("failed to write csv rows: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// readRows parses every data row after the header. Rows whose field count
// differs from the header, and rows the csv parser rejects, are dropped
// and counted rather than failing the file. A file with no data rows at
// all is malformed.
func readRows(data []byte, header []string) ([][]string, int, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	if _, err := reader.Read(); err != nil {
		return nil, 0, fmt.Errorf("%w: unreadable header row", common.ErrMalformedFile)
	}

	var rows [][]string
	skipped := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}
		if len(record) != len(header) {
			skipped++
			continue
		}
		rows = append(rows, record)
	}

	if len(rows) == 0 && skipped == 0 {
		return nil, 0, fmt.Errorf("%w: no data rows", common.ErrMalformedFile)
	}

	return rows, skipped, nil
}

func (i *Importer) importTransactions(ctx context.Context, data []byte, onRow func()) (*ImportResult, error) {
	rows, skipped, err := readRows(data, transactionHeader)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{Format: FormatTransactions, Skipped: skipped}

	for _, row := range rows {
		date := strings.TrimSpace(row[0])
		property := strings.TrimSpace(row[2])
		amount, amtErr := strconv.ParseFloat(strings.TrimSpace(row[3]), 64)
		if amtErr != nil || property == "" {
			result.Skipped++
			continue
		}
		if _, dateErr := time.Parse(model.DateFormat, date); dateErr != nil {
			result.Skipped++
			continue
		}
		// Sign in the file is a rendering convention; storage is always
		// non-negative.
		amount = math.Abs(amount)

		var addErr error
		switch row[1] {
		case rowTypeIncome:
			_, addErr = i.store.AddIncome(ctx, model.Income{
				Date:        date,
				Property:    property,
				Amount:      amount,
				Type:        model.ParseIncomeType(row[6]),
				Description: row[4],
				PaidBy:      row[7],
				BankAccount: row[12],
			})
			if addErr == nil {
				result.Income++
			}
		case rowTypeExpense:
			_, addErr = i.store.AddExpense(ctx, model.Expense{
				Date:          date,
				Property:      property,
				Amount:        amount,
				Category:      model.ParseExpenseCategory(row[5]),
				TaxDeductible: row[8] == "Yes",
				Description:   row[4],
				CreditCard:    row[9],
			})
			if addErr == nil {
				result.Expenses++
			}
		case rowTypeDeposit:
			_, addErr = i.store.AddDeposit(ctx, model.Deposit{
				Date:        date,
				Property:    property,
				Amount:      amount,
				Tenant:      row[10],
				Status:      model.ParseDepositStatus(row[11]),
				BankAccount: row[12],
				Description: row[4],
			})
			if addErr == nil {
				result.Deposits++
			}
		default:
			result.Skipped++
			continue
		}

		if addErr != nil {
			if abortErr := rowError(result, addErr); abortErr != nil {
				return result, fmt.Errorf("transactions import: %w", abortErr)
			}
			continue
		}

		// Same auto-registration as interactive entry.
		if _, regErr := i.store.RegisterPropertyIfNew(ctx, property); regErr != nil {
			return result, fmt.Errorf("transactions import: %w", regErr)
		}
		notify(onRow)
	}

	return result, nil
}

func (i *Importer) importAccounts(ctx context.Context, data []byte, onRow func()) (*ImportResult, error) {
	rows, skipped, err := readRows(data, accountHeader)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{Format: FormatAccounts, Skipped: skipped}

	for _, row := range rows {
		name := strings.TrimSpace(row[1])
		institution := strings.TrimSpace(row[2])
		if name == "" || institution == "" {
			result.Skipped++
			continue
		}

		var addErr error
		switch row[0] {
		case rowKindBank:
			_, addErr = i.store.AddBankAccount(ctx, model.BankAccount{
				AccountName:    name,
				Bank:           institution,
				AccountType:    model.ParseAccountType(row[3]),
				LastFourDigits: strings.TrimSpace(row[4]),
			})
			if addErr == nil {
				result.BankAccounts++
			}
		case rowKindCard:
			_, addErr = i.store.AddCreditCard(ctx, model.CreditCard{
				CardName:       name,
				Issuer:         institution,
				CardType:       model.ParseCardType(row[3]),
				LastFourDigits: strings.TrimSpace(row[4]),
			})
			if addErr == nil {
				result.CreditCards++
			}
		default:
			result.Skipped++
			continue
		}

		if addErr != nil {
			if abortErr := rowError(result, addErr); abortErr != nil {
				return result, fmt.Errorf("accounts import: %w", abortErr)
			}
			continue
		}
		notify(onRow)
	}

	return result, nil
}

func (i *Importer) importProperties(ctx context.Context, data []byte, onRow func()) (*ImportResult, error) {
	rows, skipped, err := readRows(data, propertyHeader)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{Format: FormatProperties, Skipped: skipped}

	for _, row := range rows {
		address := strings.TrimSpace(row[0])
		if address == "" {
			result.Skipped++
			continue
		}

		// Case-insensitive duplicate suppression; importing the same file
		// twice does not double the collection.
		if _, err := i.store.RegisterPropertyIfNew(ctx, address); err != nil {
			if abortErr := rowError(result, err); abortErr != nil {
				return result, fmt.Errorf("properties import: %w", abortErr)
			}
			continue
		}
		result.Properties++
		notify(onRow)
	}

	return result, nil
}
