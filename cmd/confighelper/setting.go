// FILE: lixenwraith/confighelper/cmd/confighelper/setting.go
package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"
)

// newSettingCmd creates the setting command with subcommands.
func newSettingCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setting",
		Short: "Manage appSettings entries in the settings file",
		Long: `Manage appSettings entries in <base-dir>/config/app.config.

The file is created on first use.

Subcommands:
  get   Print a setting value
  set   Add or replace a setting
  list  List all settings`,
	}

	cmd.AddCommand(newSettingGetCmd(app))
	cmd.AddCommand(newSettingSetCmd(app))
	cmd.AddCommand(newSettingListCmd(app))

	return cmd
}

func newSettingGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print a setting value",
		Long: `Print the value of an appSettings key.

A missing key prints an empty line.

Examples:
  confighelper setting get Theme`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := app.Store.ReadSetting(args[0])
			if err != nil {
				return err
			}
			if app.JSON {
				return app.OutputJSON(map[string]string{"key": args[0], "value": value})
			}
			fmt.Fprintln(app.Out, value)
			return nil
		},
	}
}

func newSettingSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Add or replace a setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Store.WriteSetting(args[0], args[1]); err != nil {
				return err
			}
			if app.JSON {
				return app.OutputJSON(map[string]string{"key": args[0], "value": args[1]})
			}
			fmt.Fprintf(app.Out, "Set %s = %s\n", args[0], args[1])
			return nil
		},
	}
}

func newSettingListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := app.Store.AppSettings()
			if err != nil {
				return err
			}
			if app.JSON {
				return app.OutputJSON(settings)
			}
			for _, key := range slices.Sorted(maps.Keys(settings)) {
				fmt.Fprintf(app.Out, "%s = %s\n", key, settings[key])
			}
			return nil
		},
	}
}
