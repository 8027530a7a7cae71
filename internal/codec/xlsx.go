package codec

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const xlsxSheet = "Transactions"

// TransactionsXLSX renders the combined transactions table as a single
// spreadsheet sheet with the same columns, labels, and ordering as the CSV
// form. Export-only; the importer never accepts XLSX.
func (e *Exporter) TransactionsXLSX(ctx context.Context) ([]byte, error) {
	rows, err := e.transactionRows(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return nil, fmt.Errorf("xlsx export: %w", err)
	}

	if err := f.SetSheetRow(xlsxSheet, "A1", &transactionHeader); err != nil {
		return nil, fmt.Errorf("xlsx export: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx export: %w", err)
	}
	if err := f.SetCellStyle(xlsxSheet, "A1", "M1", headerStyle); err != nil {
		return nil, fmt.Errorf("xlsx export: %w", err)
	}

	for idx, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, idx+2)
		if err != nil {
			return nil, fmt.Errorf("xlsx export: %w", err)
		}
		if err := f.SetSheetRow(xlsxSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("xlsx export: %w", err)
		}
	}

	if err := f.SetColWidth(xlsxSheet, "A", "M", 16); err != nil {
		return nil, fmt.Errorf("xlsx export: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx export: %w", err)
	}

	return buf.Bytes(), nil
}
