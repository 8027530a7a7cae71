package model

// BankAccount is a funding instrument referenced by income and deposit
// records. LastFourDigits is a string so leading zeros survive.
type BankAccount struct {
	ID             int64       `json:"id"`
	AccountName    string      `json:"accountName"`
	Bank           string      `json:"bank"`
	AccountType    AccountType `json:"accountType"`
	LastFourDigits string      `json:"lastFourDigits"`
}

// CreditCard is a funding instrument referenced by expense records.
type CreditCard struct {
	ID             int64    `json:"id"`
	CardName       string   `json:"cardName"`
	Issuer         string   `json:"issuer"`
	CardType       CardType `json:"cardType"`
	LastFourDigits string   `json:"lastFourDigits"`
}

// Property is a rental property. Transactions reference it by address text,
// matched case-insensitively, never by identifier.
type Property struct {
	ID      int64  `json:"id"`
	Address string `json:"address"`
}
