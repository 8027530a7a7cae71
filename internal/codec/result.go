// Package codec converts store contents to and from the two external
// representations: a full-fidelity JSON snapshot and flat CSV tables. It
// never assigns identifiers itself; imported records always go through the
// store's add path.
package codec

// Format identifies what kind of file an import payload is.
type Format int

// Detected file formats.
const (
	FormatUnknown Format = iota
	FormatSnapshot
	FormatTransactions
	FormatAccounts
	FormatProperties
)

// String returns a short name for the format, used in log fields and the
// import summary.
func (f Format) String() string {
	switch f {
	case FormatSnapshot:
		return "snapshot"
	case FormatTransactions:
		return "transactions"
	case FormatAccounts:
		return "accounts"
	case FormatProperties:
		return "properties"
	default:
		return "unknown"
	}
}

// Destructive reports whether importing this format replaces existing data.
// Only the snapshot path clears collections; every tabular import is
// additive. The caller owns the confirmation prompt.
func (f Format) Destructive() bool {
	return f == FormatSnapshot
}

// ImportResult summarizes what an import applied. Skipped counts tabular
// rows dropped for a column-count mismatch or a field that failed
// validation; it is reported, never raised as an error.
type ImportResult struct {
	Format       Format
	Income       int
	Expenses     int
	Deposits     int
	BankAccounts int
	CreditCards  int
	Properties   int
	Skipped      int
	Replaced     bool
}

// Transactions returns the number of applied transaction rows across the
// three transaction collections.
func (r *ImportResult) Transactions() int {
	return r.Income + r.Expenses + r.Deposits
}
