package codec

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionsTemplate(t *testing.T) {
	data, err := TransactionsTemplate()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(data), strings.Join(transactionHeader, ",")))
	assert.Equal(t, FormatTransactions, Detect(data))

	// The template's own example rows import cleanly.
	store := newTestStore(t)
	result, err := NewImporter(store).Import(context.Background(), data, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Income)
	assert.Equal(t, 1, result.Expenses)
	assert.Equal(t, 1, result.Deposits)
	assert.Zero(t, result.Skipped)
}

func TestAccountsTemplate(t *testing.T) {
	data, err := AccountsTemplate()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(data), strings.Join(accountHeader, ",")))
	assert.Equal(t, FormatAccounts, Detect(data))

	store := newTestStore(t)
	result, err := NewImporter(store).Import(context.Background(), data, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.BankAccounts)
	assert.Equal(t, 1, result.CreditCards)
	assert.Zero(t, result.Skipped)
}
