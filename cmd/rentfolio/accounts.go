package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rentfolio/rentfolio/internal/cli"
	"github.com/rentfolio/rentfolio/internal/model"
)

func accountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage bank accounts and credit cards",
	}

	cmd.AddCommand(accountsAddBankCmd())
	cmd.AddCommand(accountsAddCardCmd())
	cmd.AddCommand(accountsListCmd())
	cmd.AddCommand(accountsDeleteCmd())

	return cmd
}

func accountsAddBankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-bank",
		Short: "Add a bank account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			name, _ := cmd.Flags().GetString("name")
			bank, _ := cmd.Flags().GetString("bank")
			accountType, _ := cmd.Flags().GetString("type")
			lastFour, _ := cmd.Flags().GetString("last4")

			id, err := store.AddBankAccount(ctx, model.BankAccount{
				AccountName:    name,
				Bank:           bank,
				AccountType:    model.AccountType(accountType),
				LastFourDigits: lastFour,
			})
			if err != nil {
				return fmt.Errorf("failed to add bank account: %w", err)
			}

			cmd.Println(cli.FormatSuccess(fmt.Sprintf("Added bank account %d: %s (%s)", id, name, bank)))
			return nil
		},
	}

	cmd.Flags().String("name", "", "account name")
	cmd.Flags().String("bank", "", "bank name")
	cmd.Flags().String("type", "checking", "account type (checking, savings, money_market, other)")
	cmd.Flags().String("last4", "", "last four digits")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("bank")

	return cmd
}

func accountsAddCardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-card",
		Short: "Add a credit card",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			name, _ := cmd.Flags().GetString("name")
			issuer, _ := cmd.Flags().GetString("issuer")
			cardType, _ := cmd.Flags().GetString("type")
			lastFour, _ := cmd.Flags().GetString("last4")

			id, err := store.AddCreditCard(ctx, model.CreditCard{
				CardName:       name,
				Issuer:         issuer,
				CardType:       model.CardType(cardType),
				LastFourDigits: lastFour,
			})
			if err != nil {
				return fmt.Errorf("failed to add credit card: %w", err)
			}

			cmd.Println(cli.FormatSuccess(fmt.Sprintf("Added credit card %d: %s (%s)", id, name, issuer)))
			return nil
		},
	}

	cmd.Flags().String("name", "", "card name")
	cmd.Flags().String("issuer", "", "card issuer")
	cmd.Flags().String("type", "visa", "card type (visa, mastercard, amex, discover, other)")
	cmd.Flags().String("last4", "", "last four digits")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("issuer")

	return cmd
}

func accountsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List bank accounts and credit cards",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			accounts, err := store.ListBankAccounts(ctx)
			if err != nil {
				return fmt.Errorf("failed to list bank accounts: %w", err)
			}
			cards, err := store.ListCreditCards(ctx)
			if err != nil {
				return fmt.Errorf("failed to list credit cards: %w", err)
			}

			if len(accounts) == 0 && len(cards) == 0 {
				cmd.Println(cli.SubtleStyle.Render("No accounts."))
				return nil
			}

			if len(accounts) > 0 {
				cmd.Println(cli.FormatTitle("Bank Accounts"))
				for _, acct := range accounts {
					last := ""
					if acct.LastFourDigits != "" {
						last = " ****" + acct.LastFourDigits
					}
					cmd.Printf("%-5d %-24s %-20s %s%s\n",
						acct.ID, acct.AccountName, acct.Bank, acct.AccountType.Label(), last)
				}
			}
			if len(cards) > 0 {
				cmd.Println(cli.FormatTitle("Credit Cards"))
				for _, card := range cards {
					last := ""
					if card.LastFourDigits != "" {
						last = " ****" + card.LastFourDigits
					}
					cmd.Printf("%-5d %-24s %-20s %s%s\n",
						card.ID, card.CardName, card.Issuer, card.CardType.Label(), last)
				}
			}
			return nil
		},
	}
}

func accountsDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a bank account, or a credit card with --card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			card, _ := cmd.Flags().GetBool("card")

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if card {
				if err := store.DeleteCreditCard(ctx, id); err != nil {
					return fmt.Errorf("failed to delete credit card: %w", err)
				}
				cmd.Println(cli.FormatSuccess(fmt.Sprintf("Deleted credit card %d", id)))
				return nil
			}

			if err := store.DeleteBankAccount(ctx, id); err != nil {
				return fmt.Errorf("failed to delete bank account: %w", err)
			}
			cmd.Println(cli.FormatSuccess(fmt.Sprintf("Deleted bank account %d", id)))
			return nil
		},
	}

	cmd.Flags().Bool("card", false, "delete a credit card instead of a bank account")

	return cmd
}
