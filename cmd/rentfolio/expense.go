package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/rentfolio/rentfolio/internal/cli"
	"github.com/rentfolio/rentfolio/internal/model"
)

func expenseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Record and list expenses",
	}

	cmd.AddCommand(expenseAddCmd())
	cmd.AddCommand(expenseListCmd())
	cmd.AddCommand(expenseDeleteCmd())

	return cmd
}

func expenseAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an expense record",
		RunE:  runExpenseAdd,
	}

	cmd.Flags().String("date", "", "date (2006-01-02)")
	cmd.Flags().String("property", "", "property address")
	cmd.Flags().Float64("amount", 0, "amount spent, as a positive number")
	cmd.Flags().String("category", "other", "category (maintenance, utilities, insurance, property_tax, management, legal, advertising, supplies, travel, other)")
	cmd.Flags().Bool("tax-deductible", false, "mark as tax deductible")
	cmd.Flags().String("description", "", "description")
	cmd.Flags().String("credit-card", "", "credit card id the expense was charged to")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("property")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func runExpenseAdd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	date, _ := cmd.Flags().GetString("date")
	property, _ := cmd.Flags().GetString("property")
	amount, _ := cmd.Flags().GetFloat64("amount")
	category, _ := cmd.Flags().GetString("category")
	deductible, _ := cmd.Flags().GetBool("tax-deductible")
	description, _ := cmd.Flags().GetString("description")
	creditCard, _ := cmd.Flags().GetString("credit-card")

	id, err := store.AddExpense(ctx, model.Expense{
		Date:          date,
		Property:      property,
		Amount:        amount,
		Category:      model.ExpenseCategory(category),
		TaxDeductible: deductible,
		Description:   description,
		CreditCard:    creditCard,
	})
	if err != nil {
		return fmt.Errorf("failed to add expense: %w", err)
	}

	if _, err := store.RegisterPropertyIfNew(ctx, property); err != nil {
		return fmt.Errorf("failed to register property: %w", err)
	}

	cmd.Println(cli.FormatSuccess(fmt.Sprintf("Recorded expense %d: %s %s for %s",
		id, date, formatCurrency(amount), property)))
	return nil
}

func expenseListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List expense records, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			records, err := store.ListExpenses(ctx)
			if err != nil {
				return fmt.Errorf("failed to list expenses: %w", err)
			}
			if len(records) == 0 {
				cmd.Println(cli.SubtleStyle.Render("No expense records."))
				return nil
			}

			sort.SliceStable(records, func(a, b int) bool {
				return records[a].Date > records[b].Date
			})

			cmd.Println(cli.BoldStyle.Render(fmt.Sprintf("%-5s %-12s %-24s %12s  %-22s %-4s %s",
				"ID", "Date", "Property", "Amount", "Category", "Ded", "Description")))
			for _, exp := range records {
				deductible := ""
				if exp.TaxDeductible {
					deductible = cli.SuccessIcon
				}
				cmd.Printf("%-5d %-12s %-24s %12s  %-22s %-4s %s\n",
					exp.ID, exp.Date, exp.Property, formatCurrency(exp.Amount),
					exp.Category.Label(), deductible, exp.Description)
			}
			return nil
		},
	}
}

func expenseDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an expense record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteExpense(ctx, id); err != nil {
				return fmt.Errorf("failed to delete expense: %w", err)
			}

			cmd.Println(cli.FormatSuccess(fmt.Sprintf("Deleted expense %d", id)))
			return nil
		},
	}
}
