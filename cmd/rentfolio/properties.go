package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rentfolio/rentfolio/internal/cli"
)

func propertiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "properties",
		Short: "Manage the property list",
	}

	cmd.AddCommand(propertiesAddCmd())
	cmd.AddCommand(propertiesListCmd())
	cmd.AddCommand(propertiesDeleteCmd())

	return cmd
}

func propertiesAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <address>",
		Short: "Add a property (no-op if the address already exists)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			address := strings.Join(args, " ")

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			id, err := store.RegisterPropertyIfNew(ctx, address)
			if err != nil {
				return fmt.Errorf("failed to add property: %w", err)
			}

			cmd.Println(cli.FormatSuccess(fmt.Sprintf("Property %d: %s", id, address)))
			return nil
		},
	}
}

func propertiesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List properties",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			props, err := store.ListProperties(ctx)
			if err != nil {
				return fmt.Errorf("failed to list properties: %w", err)
			}
			if len(props) == 0 {
				cmd.Println(cli.SubtleStyle.Render("No properties."))
				return nil
			}

			for _, prop := range props {
				cmd.Printf("%-5d %s\n", prop.ID, prop.Address)
			}
			return nil
		},
	}
}

func propertiesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a property (transactions naming its address are kept)",
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

			if err := store.DeleteProperty(ctx, id); err != nil {
				return fmt.Errorf("failed to delete property: %w", err)
			}

			cmd.Println(cli.FormatSuccess(fmt.Sprintf("Deleted property %d", id)))
			return nil
		},
	}
}
