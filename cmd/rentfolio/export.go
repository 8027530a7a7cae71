package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/rentfolio/rentfolio/internal/cli"
	"github.com/rentfolio/rentfolio/internal/codec"
	"github.com/rentfolio/rentfolio/internal/model"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export data as a JSON backup, CSV tables, or an XLSX sheet",
		Long: `Export store contents.

Formats:
  json  full backup of all collections including identifiers; the only
        format that restores wholesale on import
  csv   transactions table plus properties and accounts tables (the
        latter two only when non-empty)
  xlsx  the transactions table as a spreadsheet (export only)`,
		RunE: runExport,
	}

	cmd.Flags().String("format", "json", "export format (json, csv, xlsx)")
	cmd.Flags().String("out", ".", "output directory")
	cmd.Flags().String("template", "", "write a starter CSV instead (transactions, accounts)")

	return cmd
}

func runExport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	outDir, _ := cmd.Flags().GetString("out")
	if err := os.MkdirAll(outDir, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if template, _ := cmd.Flags().GetString("template"); template != "" {
		return writeTemplate(cmd, outDir, template)
	}

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	exporter := codec.NewExporter(store)
	stamp := time.Now().Format(model.DateFormat)
	format, _ := cmd.Flags().GetString("format")

	switch format {
	case "json":
		data, err := exporter.Snapshot(ctx)
		if err != nil {
			return err
		}
		return writeExportFile(cmd, outDir, fmt.Sprintf("rentfolio-backup-%s.json", stamp), data)

	case "csv":
		data, err := exporter.TransactionsCSV(ctx)
		if err != nil {
			return err
		}
		if err := writeExportFile(cmd, outDir, fmt.Sprintf("rental-transactions-%s.csv", stamp), data); err != nil {
			return err
		}

		props, err := exporter.PropertiesCSV(ctx)
		if err != nil {
			return err
		}
		if props != nil {
			if err := writeExportFile(cmd, outDir, fmt.Sprintf("properties-%s.csv", stamp), props); err != nil {
				return err
			}
		}

		accounts, err := exporter.AccountsCSV(ctx)
		if err != nil {
			return err
		}
		if accounts != nil {
			if err := writeExportFile(cmd, outDir, fmt.Sprintf("accounts-%s.csv", stamp), accounts); err != nil {
				return err
			}
		}
		return nil

	case "xlsx":
		data, err := exporter.TransactionsXLSX(ctx)
		if err != nil {
			return err
		}
		return writeExportFile(cmd, outDir, fmt.Sprintf("rental-transactions-%s.xlsx", stamp), data)

	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}

func writeTemplate(cmd *cobra.Command, outDir, kind string) error {
	var data []byte
	var name string
	var err error

	switch kind {
	case "transactions":
		data, err = codec.TransactionsTemplate()
		name = "transactions-template.csv"
	case "accounts":
		data, err = codec.AccountsTemplate()
		name = "accounts-template.csv"
	default:
		return fmt.Errorf("unknown template %q", kind)
	}
	if err != nil {
		return err
	}

	return writeExportFile(cmd, outDir, name, data)
}

func writeExportFile(cmd *cobra.Command, dir, name string, data []byte) error {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	cmd.Println(cli.FormatSuccess("Wrote " + path))
	return nil
}
