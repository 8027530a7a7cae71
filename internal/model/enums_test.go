package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelCodeRoundTrip(t *testing.T) {
	for code, label := range incomeTypeLabels {
		assert.Equal(t, code, ParseIncomeType(label), "income type %q", code)
		assert.Equal(t, label, code.Label())
	}
	for code, label := range expenseCategoryLabels {
		assert.Equal(t, code, ParseExpenseCategory(label), "category %q", code)
		assert.Equal(t, label, code.Label())
	}
	for code, label := range depositStatusLabels {
		assert.Equal(t, code, ParseDepositStatus(label), "status %q", code)
		assert.Equal(t, label, code.Label())
	}
	for code, label := range accountTypeLabels {
		assert.Equal(t, code, ParseAccountType(label), "account type %q", code)
		assert.Equal(t, label, code.Label())
	}
	for code, label := range cardTypeLabels {
		assert.Equal(t, code, ParseCardType(label), "card type %q", code)
		assert.Equal(t, label, code.Label())
	}
}

func TestParseFallbacks(t *testing.T) {
	assert.Equal(t, IncomeOther, ParseIncomeType("Made Up Type"))
	assert.Equal(t, CategoryOther, ParseExpenseCategory("Made Up Category"))
	assert.Equal(t, StatusHeld, ParseDepositStatus("Made Up Status"))
	assert.Equal(t, AccountOther, ParseAccountType("Cryptocurrency"))
	assert.Equal(t, CardOther, ParseCardType("Diners Club"))

	// Empty labels fall back too; a blank CSV cell never fails a row.
	assert.Equal(t, IncomeOther, ParseIncomeType(""))
	assert.Equal(t, StatusHeld, ParseDepositStatus(""))
}

func TestNormalizeCoercesUnknownCodes(t *testing.T) {
	assert.Equal(t, IncomeOther, NormalizeIncomeType("bitcoin"))
	assert.Equal(t, IncomeRent, NormalizeIncomeType(IncomeRent))
	assert.Equal(t, CategoryOther, NormalizeExpenseCategory("bribes"))
	assert.Equal(t, StatusHeld, NormalizeDepositStatus("pending"))
	assert.Equal(t, AccountOther, NormalizeAccountType("offshore"))
	assert.Equal(t, CardOther, NormalizeCardType("unionpay"))
}

func TestUnknownCodeLabelPassesThrough(t *testing.T) {
	assert.Equal(t, "bitcoin", IncomeType("bitcoin").Label())
	assert.False(t, IncomeType("bitcoin").Valid())
}
