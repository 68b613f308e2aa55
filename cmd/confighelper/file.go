// FILE: lixenwraith/confighelper/cmd/confighelper/file.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newFileCmd creates the file command for editing settings files at an explicit path.
func newFileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "file",
		Short: "Edit a settings file at an explicit path",
		Long: `Edit a settings file at an explicit path. The file must already exist.

Pairs are applied one at a time in key order and the first failure stops
the batch; pairs applied before it stay written.

Subcommands:
  setting  Add or replace appSettings entries
  conn     Replace existing connection strings`,
	}

	cmd.AddCommand(newFileSettingCmd(app))
	cmd.AddCommand(newFileConnCmd(app))

	return cmd
}

func newFileSettingCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "setting <file> <key>=<value>...",
		Short: "Add or replace appSettings entries",
		Long: `Add or replace appSettings entries in a settings file.

Examples:
  confighelper file setting ./app.config Theme=dark Lang=en`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs, err := parsePairs(args[1:])
			if err != nil {
				return err
			}
			if err := app.Store.SetAppSettings(args[0], pairs); err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Updated %d setting(s) in %s\n", len(pairs), args[0])
			return nil
		},
	}
}

func newFileConnCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "conn <file> <name>=<connection-string>...",
		Short: "Replace existing connection strings",
		Long: `Replace the value of existing connection strings in a settings file.

Each name must already have an entry; its provider name is kept. Only the
first '=' separates name and value, so connection strings may contain '='.

Examples:
  confighelper file conn ./app.config "Main=Server=.;Database=app"`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs, err := parsePairs(args[1:])
			if err != nil {
				return err
			}
			if err := app.Store.SetConnectionStrings(args[0], pairs); err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Updated %d connection string(s) in %s\n", len(pairs), args[0])
			return nil
		},
	}
}
