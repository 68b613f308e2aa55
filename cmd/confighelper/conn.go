// FILE: lixenwraith/confighelper/cmd/confighelper/conn.go
package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"
)

// newConnCmd creates the conn command with subcommands.
func newConnCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conn",
		Short: "Manage connectionStrings entries in the settings file",
		Long: `Manage connectionStrings entries in <base-dir>/config/app.config.

Subcommands:
  get   Print a connection string
  set   Add or replace a connection string
  list  List all connection strings`,
	}

	cmd.AddCommand(newConnGetCmd(app))
	cmd.AddCommand(newConnSetCmd(app))
	cmd.AddCommand(newConnListCmd(app))

	return cmd
}

func newConnGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Print a connection string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := app.Store.ReadConnectionString(args[0])
			if err != nil {
				return err
			}
			if app.JSON {
				return app.OutputJSON(map[string]string{"name": args[0], "connectionString": value})
			}
			fmt.Fprintln(app.Out, value)
			return nil
		},
	}
}

func newConnSetCmd(app *App) *cobra.Command {
	var provider string

	cmd := &cobra.Command{
		Use:   "set <name> <connection-string>",
		Short: "Add or replace a connection string",
		Long: `Add or replace a connection string. The entry is rewritten as a whole,
so omitting --provider clears any previous provider name.

Examples:
  confighelper conn set Main "Server=.;Database=app" --provider System.Data.SqlClient`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Store.WriteConnectionString(args[0], args[1], provider); err != nil {
				return err
			}
			if app.JSON {
				return app.OutputJSON(map[string]string{
					"name":             args[0],
					"connectionString": args[1],
					"providerName":     provider,
				})
			}
			fmt.Fprintf(app.Out, "Set connection string %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&provider, "provider", "", "provider name stored with the connection string")

	return cmd
}

func newConnListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all connection strings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conns, err := app.Store.ConnectionStrings()
			if err != nil {
				return err
			}
			if app.JSON {
				return app.OutputJSON(conns)
			}
			for _, name := range slices.Sorted(maps.Keys(conns)) {
				cs := conns[name]
				if cs.ProviderName != "" {
					fmt.Fprintf(app.Out, "%s = %s (%s)\n", name, cs.ConnectionString, cs.ProviderName)
				} else {
					fmt.Fprintf(app.Out, "%s = %s\n", name, cs.ConnectionString)
				}
			}
			return nil
		},
	}
}
