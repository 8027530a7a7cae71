package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/rentfolio/rentfolio/internal/cli"
	"github.com/rentfolio/rentfolio/internal/model"
	"github.com/rentfolio/rentfolio/internal/report"
)

func dashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show headline totals for a year",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			year, _ := cmd.Flags().GetInt("year")

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			d, err := report.BuildDashboard(ctx, store, year)
			if err != nil {
				return err
			}

			cmd.Println(cli.FormatTitle(fmt.Sprintf("Dashboard %d", d.Year)))
			cmd.Printf("  Income:        %s\n", formatCurrency(d.IncomeTotal))
			cmd.Printf("  Expenses:      %s\n", formatCurrency(d.ExpenseTotal))
			cmd.Printf("  Net income:    %s\n", formatCurrency(d.NetIncome))
			cmd.Printf("  Deposits held: %s\n", formatCurrency(d.HeldDeposits))
			return nil
		},
	}

	cmd.Flags().Int("year", time.Now().Year(), "year to summarize")

	return cmd
}

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the categorized yearly report",
		RunE:  runReport,
	}

	cmd.Flags().Int("year", time.Now().Year(), "year to report on")

	return cmd
}

func runReport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	year, _ := cmd.Flags().GetInt("year")

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	r, err := report.BuildYearReport(ctx, store, year)
	if err != nil {
		return err
	}

	cmd.Println(cli.FormatTitle(fmt.Sprintf("%s Report %d", cli.ChartIcon, r.Year)))

	cmd.Println(cli.BoldStyle.Render("Income by type"))
	printTypeBreakdown(cmd, r.IncomeByType)
	cmd.Println(cli.BoldStyle.Render("Income by property"))
	printTextBreakdown(cmd, r.IncomeByProperty)

	cmd.Println(cli.BoldStyle.Render("Expenses by category"))
	printCategoryBreakdown(cmd, r.ExpensesByCategory)
	cmd.Println(cli.BoldStyle.Render("Expenses by property"))
	printTextBreakdown(cmd, r.ExpensesByProperty)

	cmd.Println(cli.BoldStyle.Render("Tax-deductible expenses"))
	printCategoryBreakdown(cmd, r.DeductibleByCategory)

	cmd.Println(cli.BoldStyle.Render("Totals"))
	cmd.Printf("  %-28s %12s\n", "Income", formatCurrency(r.IncomeTotal))
	cmd.Printf("  %-28s %12s\n", "Expenses", formatCurrency(r.ExpenseTotal))
	cmd.Printf("  %-28s %12s\n", "Tax deductible", formatCurrency(r.DeductibleTotal))
	cmd.Printf("  %-28s %12s\n", "Net income", formatCurrency(r.NetIncome))

	return nil
}

func printTypeBreakdown(cmd *cobra.Command, totals map[model.IncomeType]float64) {
	if len(totals) == 0 {
		cmd.Println(cli.SubtleStyle.Render("  none"))
		return
	}

	keys := make([]string, 0, len(totals))
	for k := range totals {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	for _, k := range keys {
		cmd.Printf("  %-28s %12s\n", model.IncomeType(k).Label(), formatCurrency(totals[model.IncomeType(k)]))
	}
}

func printCategoryBreakdown(cmd *cobra.Command, totals map[model.ExpenseCategory]float64) {
	if len(totals) == 0 {
		cmd.Println(cli.SubtleStyle.Render("  none"))
		return
	}

	keys := make([]string, 0, len(totals))
	for k := range totals {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	for _, k := range keys {
		cmd.Printf("  %-28s %12s\n", model.ExpenseCategory(k).Label(), formatCurrency(totals[model.ExpenseCategory(k)]))
	}
}

func printTextBreakdown(cmd *cobra.Command, totals map[string]float64) {
	if len(totals) == 0 {
		cmd.Println(cli.SubtleStyle.Render("  none"))
		return
	}

	keys := make([]string, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		cmd.Printf("  %-28s %12s\n", k, formatCurrency(totals[k]))
	}
}
