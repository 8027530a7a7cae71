package model

// IncomeType classifies an income record.
type IncomeType string

// Income type codes.
const (
	IncomeRent    IncomeType = "rent"
	IncomeLateFee IncomeType = "late_fee"
	IncomePetFee  IncomeType = "pet_fee"
	IncomeOther   IncomeType = "other"
)

// ExpenseCategory classifies an expense record.
type ExpenseCategory string

// Expense category codes.
const (
	CategoryMaintenance ExpenseCategory = "maintenance"
	CategoryUtilities   ExpenseCategory = "utilities"
	CategoryInsurance   ExpenseCategory = "insurance"
	CategoryPropertyTax ExpenseCategory = "property_tax"
	CategoryManagement  ExpenseCategory = "management"
	CategoryLegal       ExpenseCategory = "legal"
	CategoryAdvertising ExpenseCategory = "advertising"
	CategorySupplies    ExpenseCategory = "supplies"
	CategoryTravel      ExpenseCategory = "travel"
	CategoryOther       ExpenseCategory = "other"
)

// DepositStatus tracks the lifecycle of a security deposit.
type DepositStatus string

// Deposit status codes.
const (
	StatusHeld     DepositStatus = "held"
	StatusReturned DepositStatus = "returned"
	StatusApplied  DepositStatus = "applied"
)

// AccountType classifies a bank account.
type AccountType string

// Bank account type codes.
const (
	AccountChecking    AccountType = "checking"
	AccountSavings     AccountType = "savings"
	AccountMoneyMarket AccountType = "money_market"
	AccountOther       AccountType = "other"
)

// CardType classifies a credit card.
type CardType string

// Credit card type codes.
const (
	CardVisa       CardType = "visa"
	CardMastercard CardType = "mastercard"
	CardAmex       CardType = "amex"
	CardDiscover   CardType = "discover"
	CardOther      CardType = "other"
)

var incomeTypeLabels = map[IncomeType]string{
	IncomeRent:    "Monthly Rent",
	IncomeLateFee: "Late Fee",
	IncomePetFee:  "Pet Fee",
	IncomeOther:   "Other",
}

var expenseCategoryLabels = map[ExpenseCategory]string{
	CategoryMaintenance: "Maintenance & Repairs",
	CategoryUtilities:   "Utilities",
	CategoryInsurance:   "Insurance",
	CategoryPropertyTax: "Property Tax",
	CategoryManagement:  "Property Management",
	CategoryLegal:       "Legal & Professional",
	CategoryAdvertising: "Advertising",
	CategorySupplies:    "Supplies",
	CategoryTravel:      "Travel",
	CategoryOther:       "Other",
}

var depositStatusLabels = map[DepositStatus]string{
	StatusHeld:     "Held",
	StatusReturned: "Returned",
	StatusApplied:  "Applied to Damages",
}

var accountTypeLabels = map[AccountType]string{
	AccountChecking:    "Checking",
	AccountSavings:     "Savings",
	AccountMoneyMarket: "Money Market",
	AccountOther:       "Other",
}

var cardTypeLabels = map[CardType]string{
	CardVisa:       "Visa",
	CardMastercard: "Mastercard",
	CardAmex:       "American Express",
	CardDiscover:   "Discover",
	CardOther:      "Other",
}

var (
	incomeTypeCodes      = invert(incomeTypeLabels)
	expenseCategoryCodes = invert(expenseCategoryLabels)
	depositStatusCodes   = invert(depositStatusLabels)
	accountTypeCodes     = invert(accountTypeLabels)
	cardTypeCodes        = invert(cardTypeLabels)
)

func invert[C comparable](labels map[C]string) map[string]C {
	codes := make(map[string]C, len(labels))
	for code, label := range labels {
		codes[label] = code
	}
	return codes
}

// Label returns the human-readable form used in exports and list output.
// Unknown codes pass through unchanged.
func (t IncomeType) Label() string {
	if label, ok := incomeTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

// Valid reports whether the code is in the declared set.
func (t IncomeType) Valid() bool {
	_, ok := incomeTypeLabels[t]
	return ok
}

// Label returns the human-readable form used in exports and list output.
func (c ExpenseCategory) Label() string {
	if label, ok := expenseCategoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// Valid reports whether the code is in the declared set.
func (c ExpenseCategory) Valid() bool {
	_, ok := expenseCategoryLabels[c]
	return ok
}

// Label returns the human-readable form used in exports and list output.
func (s DepositStatus) Label() string {
	if label, ok := depositStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// Valid reports whether the code is in the declared set.
func (s DepositStatus) Valid() bool {
	_, ok := depositStatusLabels[s]
	return ok
}

// Label returns the human-readable form used in exports and list output.
func (t AccountType) Label() string {
	if label, ok := accountTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

// Valid reports whether the code is in the declared set.
func (t AccountType) Valid() bool {
	_, ok := accountTypeLabels[t]
	return ok
}

// Label returns the human-readable form used in exports and list output.
func (t CardType) Label() string {
	if label, ok := cardTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

// Valid reports whether the code is in the declared set.
func (t CardType) Valid() bool {
	_, ok := cardTypeLabels[t]
	return ok
}

// ParseIncomeType maps an export label back to its code. Unrecognized
// labels fall back to IncomeOther; imports never fail on a bad label.
func ParseIncomeType(label string) IncomeType {
	if code, ok := incomeTypeCodes[label]; ok {
		return code
	}
	return IncomeOther
}

// ParseExpenseCategory maps an export label back to its code, falling back
// to CategoryOther.
func ParseExpenseCategory(label string) ExpenseCategory {
	if code, ok := expenseCategoryCodes[label]; ok {
		return code
	}
	return CategoryOther
}

// ParseDepositStatus maps an export label back to its code, falling back to
// StatusHeld.
func ParseDepositStatus(label string) DepositStatus {
	if code, ok := depositStatusCodes[label]; ok {
		return code
	}
	return StatusHeld
}

// ParseAccountType maps an export label back to its code, falling back to
// AccountOther.
func ParseAccountType(label string) AccountType {
	if code, ok := accountTypeCodes[label]; ok {
		return code
	}
	return AccountOther
}

// ParseCardType maps an export label back to its code, falling back to
// CardOther.
func ParseCardType(label string) CardType {
	if code, ok := cardTypeCodes[label]; ok {
		return code
	}
	return CardOther
}

// NormalizeIncomeType coerces an imported code to the declared set.
func NormalizeIncomeType(code IncomeType) IncomeType {
	if code.Valid() {
		return code
	}
	return IncomeOther
}

// NormalizeExpenseCategory coerces an imported code to the declared set.
func NormalizeExpenseCategory(code ExpenseCategory) ExpenseCategory {
	if code.Valid() {
		return code
	}
	return CategoryOther
}

// NormalizeDepositStatus coerces an imported code to the declared set.
func NormalizeDepositStatus(code DepositStatus) DepositStatus {
	if code.Valid() {
		return code
	}
	return StatusHeld
}

// NormalizeAccountType coerces an imported code to the declared set.
func NormalizeAccountType(code AccountType) AccountType {
	if code.Valid() {
		return code
	}
	return AccountOther
}

// NormalizeCardType coerces an imported code to the declared set.
func NormalizeCardType(code CardType) CardType {
	if code.Valid() {
		return code
	}
	return CardOther
}
