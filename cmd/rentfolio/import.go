package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/rentfolio/rentfolio/internal/cli"
	"github.com/rentfolio/rentfolio/internal/codec"
	"github.com/rentfolio/rentfolio/internal/common"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a JSON backup or a CSV table",
		Long: `Import a file. The format is detected from its contents:

  JSON backup          replaces all transactions (asks for confirmation)
                       and appends accounts and properties
  transactions CSV     adds rows to the matching collections
  accounts CSV         adds bank accounts and credit cards
  properties CSV       adds addresses, skipping duplicates`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt for destructive imports")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	format := codec.Detect(data)

	// The codec flags the destructive path; the confirmation gate lives
	// here, outside the core.
	if format.Destructive() {
		assumeYes, _ := cmd.Flags().GetBool("yes")
		if !assumeYes {
			cmd.Println(cli.FormatWarning("This backup will replace ALL income, expense, and deposit records."))
			ok, err := cli.NewReader(cmd.InOrStdin()).Confirm(ctx, cmd.OutOrStdout(), "Continue?")
			if err != nil {
				return err
			}
			cmd.Println()
			if !ok {
				cmd.Println(cli.SubtleStyle.Render("Import canceled."))
				return nil
			}
		}
	}

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription("Applying records"),
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)

	result, err := codec.NewImporter(store).Import(ctx, data, func() { _ = bar.Add(1) })
	_ = bar.Finish()
	if err != nil {
		switch {
		case errors.Is(err, common.ErrUnrecognizedFormat):
			return common.NewUserError(fmt.Sprintf("%s does not match any supported file shape", args[0]), err)
		case errors.Is(err, common.ErrMalformedFile):
			return common.NewUserError(fmt.Sprintf("%s is not a valid import file", args[0]), err)
		}
		return err
	}

	printImportSummary(cmd, result)
	return nil
}

func printImportSummary(cmd *cobra.Command, result *codec.ImportResult) {
	cmd.Println(cli.FormatTitle(fmt.Sprintf("Imported %s file", result.Format)))

	if result.Replaced {
		cmd.Println(cli.FormatWarning("Existing transactions were replaced."))
	}
	if result.Income > 0 {
		cmd.Printf("  Income records:  %d\n", result.Income)
	}
	if result.Expenses > 0 {
		cmd.Printf("  Expense records: %d\n", result.Expenses)
	}
	if result.Deposits > 0 {
		cmd.Printf("  Deposit records: %d\n", result.Deposits)
	}
	if result.BankAccounts > 0 {
		cmd.Printf("  Bank accounts:   %d\n", result.BankAccounts)
	}
	if result.CreditCards > 0 {
		cmd.Printf("  Credit cards:    %d\n", result.CreditCards)
	}
	if result.Properties > 0 {
		cmd.Printf("  Properties:      %d\n", result.Properties)
	}
	if result.Skipped > 0 {
		cmd.Println(cli.FormatWarning(fmt.Sprintf("Skipped %d row(s) that could not be parsed", result.Skipped)))
	} else {
		cmd.Println(cli.FormatSuccess("All rows applied"))
	}
}
