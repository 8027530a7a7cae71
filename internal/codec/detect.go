package codec

import (
	"bytes"
	"encoding/csv"
	"slices"
)

// Detect classifies an import payload by shape. A JSON object is a
// snapshot; otherwise the CSV header row decides: Type with Property means
// transactions, Type with Name and Bank/Issuer means accounts, Address
// means properties. Anything else is FormatUnknown.
func Detect(data []byte) Format {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return FormatUnknown
	}
	if trimmed[0] == '{' {
		return FormatSnapshot
	}

	reader := csv.NewReader(bytes.NewReader(trimmed))
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if err != nil {
		return FormatUnknown
	}

	has := func(name string) bool {
		return slices.Contains(header, name)
	}

	switch {
	case has("Type") && has("Property"):
		return FormatTransactions
	case has("Type") && has("Name") && has("Bank/Issuer"):
		return FormatAccounts
	case has("Address"):
		return FormatProperties
	default:
		return FormatUnknown
	}
}
