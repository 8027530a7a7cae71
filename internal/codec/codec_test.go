package codec

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentfolio/rentfolio/internal/common"
	"github.com/rentfolio/rentfolio/internal/model"
	"github.com/rentfolio/rentfolio/internal/storage"
)

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()

	store, err := storage.NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.Migrate(context.Background()))

	return store
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		data string
		want Format
	}{
		{
			name: "snapshot",
			data: `{"income":[],"expenses":[],"deposits":[]}`,
			want: FormatSnapshot,
		},
		{
			name: "transactions header",
			data: "Date,Type,Property,Amount,Description,Category,Income Type,Paid By,Tax Deductible,Credit Card,Tenant,Status,Bank Account\n",
			want: FormatTransactions,
		},
		{
			name: "accounts header",
			data: "Type,Name,Bank/Issuer,Account/Card Type,Last 4 Digits\n",
			want: FormatAccounts,
		},
		{
			name: "properties header",
			data: "Address\n",
			want: FormatProperties,
		},
		{
			name: "unrelated csv",
			data: "Foo,Bar,Baz\n1,2,3\n",
			want: FormatUnknown,
		},
		{
			name: "empty",
			data: "",
			want: FormatUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect([]byte(tt.data)))
		})
	}
}

func TestFormatDestructive(t *testing.T) {
	assert.True(t, FormatSnapshot.Destructive())
	assert.False(t, FormatTransactions.Destructive())
	assert.False(t, FormatAccounts.Destructive())
	assert.False(t, FormatProperties.Destructive())
}

func TestSnapshotRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.AddIncome(ctx, model.Income{
		Date: "2025-01-15", Property: "123 Main St", Amount: 1200,
		Type: model.IncomeRent, Description: "January rent", PaidBy: "J. Tenant",
	})
	require.NoError(t, err)
	_, err = store.AddExpense(ctx, model.Expense{
		Date: "2025-01-20", Property: "123 Main St", Amount: 300.75,
		Category: model.CategoryMaintenance, TaxDeductible: true, Description: "Furnace repair",
	})
	require.NoError(t, err)
	_, err = store.AddDeposit(ctx, model.Deposit{
		Date: "2025-01-01", Property: "123 Main St", Amount: 1800,
		Tenant: "J. Tenant", Status: model.StatusHeld,
	})
	require.NoError(t, err)
	_, err = store.AddBankAccount(ctx, model.BankAccount{
		AccountName: "Rental Checking", Bank: "First National",
		AccountType: model.AccountChecking, LastFourDigits: "0042",
	})
	require.NoError(t, err)
	_, err = store.AddProperty(ctx, model.Property{Address: "123 Main St"})
	require.NoError(t, err)

	data, err := NewExporter(store).Snapshot(ctx)
	require.NoError(t, err)

	result, err := NewImporter(store).Import(ctx, data, nil)
	require.NoError(t, err)
	assert.True(t, result.Replaced)
	assert.Equal(t, FormatSnapshot, result.Format)
	assert.Equal(t, 1, result.Income)
	assert.Equal(t, 1, result.Expenses)
	assert.Equal(t, 1, result.Deposits)
	assert.Zero(t, result.Skipped)

	// Transaction field values survive byte for byte; only identifiers
	// change.
	income, err := store.ListIncome(ctx)
	require.NoError(t, err)
	require.Len(t, income, 1)
	assert.Equal(t, "2025-01-15", income[0].Date)
	assert.Equal(t, "123 Main St", income[0].Property)
	assert.InDelta(t, 1200.0, income[0].Amount, 0.0001)
	assert.Equal(t, model.IncomeRent, income[0].Type)
	assert.Equal(t, "J. Tenant", income[0].PaidBy)

	expenses, err := store.ListExpenses(ctx)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.InDelta(t, 300.75, expenses[0].Amount, 0.0001)
	assert.True(t, expenses[0].TaxDeductible)

	deposits, err := store.ListDeposits(ctx)
	require.NoError(t, err)
	require.Len(t, deposits, 1)
	assert.Equal(t, model.StatusHeld, deposits[0].Status)

	// Reference collections are appended, never replaced.
	accounts, err := store.ListBankAccounts(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 2)
	assert.Equal(t, "0042", accounts[1].LastFourDigits)

	props, err := store.ListProperties(ctx)
	require.NoError(t, err)
	assert.Len(t, props, 2)
}

func TestSnapshotImportMissingCollection(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.AddIncome(ctx, model.Income{
		Date: "2025-01-15", Property: "123 Main St", Amount: 1200, Type: model.IncomeRent,
	})
	require.NoError(t, err)

	// No "expenses" key: fatal, and nothing in the store may change.
	payload := []byte(`{"income":[],"deposits":[],"version":"2.0"}`)

	_, err = NewImporter(store).Import(ctx, payload, nil)
	assert.True(t, errors.Is(err, common.ErrMalformedFile), "want ErrMalformedFile, got %v", err)

	income, err := store.ListIncome(ctx)
	require.NoError(t, err)
	assert.Len(t, income, 1, "rejected import must leave the store untouched")
}

func TestTransactionsCSVExampleRow(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.AddIncome(ctx, model.Income{
		Date: "2025-01-15", Property: "123 Main St", Amount: 1200, Type: model.IncomeRent,
	})
	require.NoError(t, err)

	data, err := NewExporter(store).TransactionsCSV(ctx)
	require.NoError(t, err)

	assert.Contains(t, string(data), "2025-01-15,Income,123 Main St,1200,,,Monthly Rent,,,,,,")
}

func TestTabularRoundTrip(t *testing.T) {
	source := newTestStore(t)
	ctx := context.Background()

	_, err := source.AddIncome(ctx, model.Income{
		Date: "2025-01-15", Property: "123 Main St", Amount: 1200, Type: model.IncomeRent,
	})
	require.NoError(t, err)
	_, err = source.AddExpense(ctx, model.Expense{
		Date: "2025-02-10", Property: "456 Oak Ave", Amount: 52.5,
		Category: model.CategoryUtilities, TaxDeductible: true, Description: "Water bill",
	})
	require.NoError(t, err)
	_, err = source.AddDeposit(ctx, model.Deposit{
		Date: "2025-03-01", Property: "123 Main St", Amount: 1800,
		Tenant: "J. Tenant", Status: model.StatusApplied,
	})
	require.NoError(t, err)

	data, err := NewExporter(source).TransactionsCSV(ctx)
	require.NoError(t, err)

	// Expense amounts are negative in the file.
	assert.Contains(t, string(data), "-52.5")

	target := newTestStore(t)
	result, err := NewImporter(target).Import(ctx, data, nil)
	require.NoError(t, err)
	assert.False(t, result.Replaced)
	assert.Equal(t, 1, result.Income)
	assert.Equal(t, 1, result.Expenses)
	assert.Equal(t, 1, result.Deposits)
	assert.Zero(t, result.Skipped)

	expenses, err := target.ListExpenses(ctx)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.InDelta(t, 52.5, expenses[0].Amount, 0.0001, "sign restored to non-negative")
	assert.Equal(t, model.CategoryUtilities, expenses[0].Category)
	assert.True(t, expenses[0].TaxDeductible)

	deposits, err := target.ListDeposits(ctx)
	require.NoError(t, err)
	require.Len(t, deposits, 1)
	assert.Equal(t, model.StatusApplied, deposits[0].Status)
	assert.Equal(t, "J. Tenant", deposits[0].Tenant)

	// Every applied row registers its property.
	props, err := target.ListProperties(ctx)
	require.NoError(t, err)
	assert.Len(t, props, 2)
}

func TestTabularImportRegistersProperty(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	row := strings.Join(transactionHeader, ",") + "\n" +
		"2025-01-15,Income,123 Main St,1200,,,Monthly Rent,,,,,,\n"

	result, err := NewImporter(store).Import(ctx, []byte(row), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Income)

	income, err := store.ListIncome(ctx)
	require.NoError(t, err)
	require.Len(t, income, 1)
	assert.Equal(t, model.IncomeRent, income[0].Type)
	assert.InDelta(t, 1200.0, income[0].Amount, 0.0001)

	props, err := store.ListProperties(ctx)
	require.NoError(t, err)
	require.Len(t, props, 1)
	assert.Equal(t, "123 Main St", props[0].Address)
}

func TestCSVQuotingSurvivesRoundTrip(t *testing.T) {
	source := newTestStore(t)
	ctx := context.Background()

	nasty := "paint, \"eggshell\"\nsecond coat"
	_, err := source.AddExpense(ctx, model.Expense{
		Date: "2025-04-01", Property: "123 Main St", Amount: 80,
		Category: model.CategorySupplies, Description: nasty,
	})
	require.NoError(t, err)

	data, err := NewExporter(source).TransactionsCSV(ctx)
	require.NoError(t, err)

	target := newTestStore(t)
	result, err := NewImporter(target).Import(ctx, data, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Expenses)
	assert.Zero(t, result.Skipped)

	expenses, err := target.ListExpenses(ctx)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, nasty, expenses[0].Description)
}

func TestUnknownCategoryFallsBack(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	row := strings.Join(transactionHeader, ",") + "\n" +
		"2025-05-01,Expense,123 Main St,-40,,Made Up Category,,,No,,,,\n"

	result, err := NewImporter(store).Import(ctx, []byte(row), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Expenses)
	assert.Zero(t, result.Skipped)

	expenses, err := store.ListExpenses(ctx)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, model.CategoryOther, expenses[0].Category)
}

func TestTabularImportSkipsBadRows(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	payload := strings.Join(transactionHeader, ",") + "\n" +
		"2025-01-15,Income,123 Main St,1200,,,Monthly Rent,,,,,,\n" +
		"short,row\n" +
		"not-a-date,Income,123 Main St,1200,,,Monthly Rent,,,,,,\n" +
		"2025-01-16,Income,123 Main St,not-a-number,,,Monthly Rent,,,,,,\n" +
		"2025-01-17,Dividend,123 Main St,10,,,,,,,,,\n"

	result, err := NewImporter(store).Import(ctx, []byte(payload), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Income)
	assert.Equal(t, 4, result.Skipped)
}

func TestTabularImportEmptyFile(t *testing.T) {
	store := newTestStore(t)

	payload := strings.Join(transactionHeader, ",") + "\n"
	_, err := NewImporter(store).Import(context.Background(), []byte(payload), nil)
	assert.True(t, errors.Is(err, common.ErrMalformedFile), "want ErrMalformedFile, got %v", err)
}

func TestImportUnrecognizedFormat(t *testing.T) {
	store := newTestStore(t)

	_, err := NewImporter(store).Import(context.Background(), []byte("Foo,Bar\n1,2\n"), nil)
	assert.True(t, errors.Is(err, common.ErrUnrecognizedFormat), "want ErrUnrecognizedFormat, got %v", err)
}

func TestAccountsCSVRoundTrip(t *testing.T) {
	source := newTestStore(t)
	ctx := context.Background()

	_, err := source.AddBankAccount(ctx, model.BankAccount{
		AccountName: "Rental Checking", Bank: "First National",
		AccountType: model.AccountChecking, LastFourDigits: "0042",
	})
	require.NoError(t, err)
	_, err = source.AddCreditCard(ctx, model.CreditCard{
		CardName: "Repairs Card", Issuer: "Amex",
		CardType: model.CardAmex, LastFourDigits: "9001",
	})
	require.NoError(t, err)

	data, err := NewExporter(source).AccountsCSV(ctx)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Bank Account,Rental Checking,First National,Checking,0042")
	assert.Contains(t, string(data), "Credit Card,Repairs Card,Amex,American Express,9001")

	target := newTestStore(t)
	result, err := NewImporter(target).Import(ctx, data, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.BankAccounts)
	assert.Equal(t, 1, result.CreditCards)

	accounts, err := target.ListBankAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, model.AccountChecking, accounts[0].AccountType)
	assert.Equal(t, "0042", accounts[0].LastFourDigits, "leading zeros survive")

	cards, err := target.ListCreditCards(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, model.CardAmex, cards[0].CardType)
}

func TestPropertiesCSVRoundTrip(t *testing.T) {
	source := newTestStore(t)
	ctx := context.Background()

	_, err := source.AddProperty(ctx, model.Property{Address: "123 Main St"})
	require.NoError(t, err)

	data, err := NewExporter(source).PropertiesCSV(ctx)
	require.NoError(t, err)

	target := newTestStore(t)
	result, err := NewImporter(target).Import(ctx, data, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Properties)

	// Re-importing the same file is duplicate-suppressed.
	_, err = NewImporter(target).Import(ctx, data, nil)
	require.NoError(t, err)

	props, err := target.ListProperties(ctx)
	require.NoError(t, err)
	assert.Len(t, props, 1)
}

func TestPropertiesCSVEmptyCollection(t *testing.T) {
	store := newTestStore(t)

	data, err := NewExporter(store).PropertiesCSV(context.Background())
	require.NoError(t, err)
	assert.Nil(t, data, "empty collection produces no file")
}

func TestTransactionsXLSX(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.AddIncome(ctx, model.Income{
		Date: "2025-01-15", Property: "123 Main St", Amount: 1200, Type: model.IncomeRent,
	})
	require.NoError(t, err)

	data, err := NewExporter(store).TransactionsXLSX(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	// XLSX files are zip archives.
	assert.Equal(t, []byte{'P', 'K'}, data[:2])
}
