package codec

// TransactionsTemplate returns a starter transactions CSV: the documented
// header plus one example row per transaction kind.
func TransactionsTemplate() ([]byte, error) {
	rows := [][]string{
		{"2025-01-15", rowTypeIncome, "123 Main St", "1200", "January rent", "",
			"Monthly Rent", "John Tenant", "", "", "", "", ""},
		{"2025-01-20", rowTypeExpense, "123 Main St", "-85.50", "Furnace filter",
			"Maintenance & Repairs", "", "", "Yes", "", "", "", ""},
		{"2025-01-01", rowTypeDeposit, "123 Main St", "1800", "", "", "", "", "",
			"", "John Tenant", "Held", ""},
	}
	return writeCSV(transactionHeader, rows)
}

// AccountsTemplate returns a starter accounts CSV with one bank account and
// one credit card example row.
func AccountsTemplate() ([]byte, error) {
	rows := [][]string{
		{rowKindBank, "Rental Checking", "First National Bank", "Checking", "1234"},
		{rowKindCard, "Repairs Card", "Chase", "Visa", "5678"},
	}
	return writeCSV(accountHeader, rows)
}
