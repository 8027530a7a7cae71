package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/rentfolio/rentfolio/internal/cli"
	"github.com/rentfolio/rentfolio/internal/model"
)

func depositCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "Track security deposits",
	}

	cmd.AddCommand(depositAddCmd())
	cmd.AddCommand(depositListCmd())
	cmd.AddCommand(depositDeleteCmd())

	return cmd
}

func depositAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a security deposit record",
		RunE:  runDepositAdd,
	}

	cmd.Flags().String("date", "", "date received (2006-01-02)")
	cmd.Flags().String("property", "", "property address")
	cmd.Flags().Float64("amount", 0, "deposit amount")
	cmd.Flags().String("tenant", "", "tenant name")
	cmd.Flags().String("status", "held", "status (held, returned, applied)")
	cmd.Flags().String("bank-account", "", "bank account id holding the deposit")
	cmd.Flags().String("description", "", "description")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("property")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func runDepositAdd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	date, _ := cmd.Flags().GetString("date")
	property, _ := cmd.Flags().GetString("property")
	amount, _ := cmd.Flags().GetFloat64("amount")
	tenant, _ := cmd.Flags().GetString("tenant")
	status, _ := cmd.Flags().GetString("status")
	bankAccount, _ := cmd.Flags().GetString("bank-account")
	description, _ := cmd.Flags().GetString("description")

	id, err := store.AddDeposit(ctx, model.Deposit{
		Date:        date,
		Property:    property,
		Amount:      amount,
		Tenant:      tenant,
		Status:      model.DepositStatus(status),
		BankAccount: bankAccount,
		Description: description,
	})
	if err != nil {
		return fmt.Errorf("failed to add deposit: %w", err)
	}

	if _, err := store.RegisterPropertyIfNew(ctx, property); err != nil {
		return fmt.Errorf("failed to register property: %w", err)
	}

	cmd.Println(cli.FormatSuccess(fmt.Sprintf("Recorded deposit %d: %s %s for %s",
		id, date, formatCurrency(amount), property)))
	return nil
}

func depositListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List security deposits, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			records, err := store.ListDeposits(ctx)
			if err != nil {
				return fmt.Errorf("failed to list deposits: %w", err)
			}
			if len(records) == 0 {
				cmd.Println(cli.SubtleStyle.Render("No deposit records."))
				return nil
			}

			sort.SliceStable(records, func(a, b int) bool {
				return records[a].Date > records[b].Date
			})

			cmd.Println(cli.BoldStyle.Render(fmt.Sprintf("%-5s %-12s %-24s %12s  %-18s %-18s %s",
				"ID", "Date", "Property", "Amount", "Tenant", "Status", "Description")))
			for _, dep := range records {
				cmd.Printf("%-5d %-12s %-24s %12s  %-18s %-18s %s\n",
					dep.ID, dep.Date, dep.Property, formatCurrency(dep.Amount),
					dep.Tenant, dep.Status.Label(), dep.Description)
			}
			return nil
		},
	}
}

func depositDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a deposit record",
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

			if err := store.DeleteDeposit(ctx, id); err != nil {
				return fmt.Errorf("failed to delete deposit: %w", err)
			}

			cmd.Println(cli.FormatSuccess(fmt.Sprintf("Deleted deposit %d", id)))
			return nil
		},
	}
}
