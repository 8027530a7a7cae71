// Package model defines the record types held by the store and moved by the
// transfer codec.
package model

// DateFormat is the canonical date layout for all records and wire formats.
const DateFormat = "2006-01-02"

// Income is a single rental income record. BankAccount holds the identifier
// of a BankAccount record as a string; it is a soft reference and may name a
// record that no longer exists. Empty string means "not specified".
type Income struct {
	ID          int64      `json:"id"`
	Date        string     `json:"date"`
	Property    string     `json:"property"`
	Amount      float64    `json:"amount"`
	Type        IncomeType `json:"type"`
	Description string     `json:"description"`
	PaidBy      string     `json:"paidBy"`
	BankAccount string     `json:"bankAccount"`
}

// Expense is a single expense record. Amount is stored non-negative; it is
// negated only in the combined CSV export. CreditCard is a soft reference
// like Income.BankAccount.
type Expense struct {
	ID            int64           `json:"id"`
	Date          string          `json:"date"`
	Property      string          `json:"property"`
	Amount        float64         `json:"amount"`
	Category      ExpenseCategory `json:"category"`
	TaxDeductible bool            `json:"taxDeductible"`
	Description   string          `json:"description"`
	CreditCard    string          `json:"creditCard"`
}

// Deposit is a security deposit record.
type Deposit struct {
	ID          int64         `json:"id"`
	Date        string        `json:"date"`
	Property    string        `json:"property"`
	Amount      float64       `json:"amount"`
	Tenant      string        `json:"tenant"`
	Status      DepositStatus `json:"status"`
	BankAccount string        `json:"bankAccount"`
	Description string        `json:"description"`
}
