package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/rentfolio/rentfolio/internal/cli"
	"github.com/rentfolio/rentfolio/internal/model"
)

func incomeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "income",
		Short: "Record and list rental income",
	}

	cmd.AddCommand(incomeAddCmd())
	cmd.AddCommand(incomeListCmd())
	cmd.AddCommand(incomeDeleteCmd())

	return cmd
}

func incomeAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an income record",
		RunE:  runIncomeAdd,
	}

	cmd.Flags().String("date", "", "date (2006-01-02)")
	cmd.Flags().String("property", "", "property address")
	cmd.Flags().Float64("amount", 0, "amount received")
	cmd.Flags().String("type", "rent", "income type (rent, late_fee, pet_fee, other)")
	cmd.Flags().String("description", "", "description")
	cmd.Flags().String("paid-by", "", "who paid")
	cmd.Flags().String("bank-account", "", "bank account id the payment landed in")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("property")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func runIncomeAdd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	date, _ := cmd.Flags().GetString("date")
	property, _ := cmd.Flags().GetString("property")
	amount, _ := cmd.Flags().GetFloat64("amount")
	incomeType, _ := cmd.Flags().GetString("type")
	description, _ := cmd.Flags().GetString("description")
	paidBy, _ := cmd.Flags().GetString("paid-by")
	bankAccount, _ := cmd.Flags().GetString("bank-account")

	id, err := store.AddIncome(ctx, model.Income{
		Date:        date,
		Property:    property,
		Amount:      amount,
		Type:        model.IncomeType(incomeType),
		Description: description,
		PaidBy:      paidBy,
		BankAccount: bankAccount,
	})
	if err != nil {
		return fmt.Errorf("failed to add income: %w", err)
	}

	// Saving a transaction registers its property, same as import.
	if _, err := store.RegisterPropertyIfNew(ctx, property); err != nil {
		return fmt.Errorf("failed to register property: %w", err)
	}

	cmd.Println(cli.FormatSuccess(fmt.Sprintf("Recorded income %d: %s %s for %s",
		id, date, formatCurrency(amount), property)))
	return nil
}

func incomeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List income records, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			records, err := store.ListIncome(ctx)
			if err != nil {
				return fmt.Errorf("failed to list income: %w", err)
			}
			if len(records) == 0 {
				cmd.Println(cli.SubtleStyle.Render("No income records."))
				return nil
			}

			sort.SliceStable(records, func(a, b int) bool {
				return records[a].Date > records[b].Date
			})

			cmd.Println(cli.BoldStyle.Render(fmt.Sprintf("%-5s %-12s %-24s %12s  %-14s %s",
				"ID", "Date", "Property", "Amount", "Type", "Description")))
			for _, inc := range records {
				cmd.Printf("%-5d %-12s %-24s %12s  %-14s %s\n",
					inc.ID, inc.Date, inc.Property, formatCurrency(inc.Amount),
					inc.Type.Label(), inc.Description)
			}
			return nil
		},
	}
}

func incomeDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an income record",
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

			if err := store.DeleteIncome(ctx, id); err != nil {
				return fmt.Errorf("failed to delete income: %w", err)
			}

			cmd.Println(cli.FormatSuccess(fmt.Sprintf("Deleted income %d", id)))
			return nil
		},
	}
}
