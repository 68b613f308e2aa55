// FILE: lixenwraith/confighelper/cmd/confighelper/init.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newInitCmd creates the init command.
func newInitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the settings file if it does not exist",
		Long: `Create <base-dir>/config/app.config with empty appSettings and
connectionStrings sections. An existing file is left untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Store.EnsureExists(); err != nil {
				return err
			}
			if app.JSON {
				return app.OutputJSON(map[string]string{"path": app.Store.Path()})
			}
			fmt.Fprintf(app.Out, "Initialized %s\n", app.Store.Path())
			return nil
		},
	}
}

// newPathCmd creates the path command.
func newPathCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the settings file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.JSON {
				return app.OutputJSON(map[string]string{"path": app.Store.Path()})
			}
			fmt.Fprintln(app.Out, app.Store.Path())
			return nil
		},
	}
}
