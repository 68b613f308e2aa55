// FILE: lixenwraith/confighelper/cmd/confighelper/json.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/confighelper"
)

// Value interpretations for "json set".
const (
	valueTypeAuto   = "auto"
	valueTypeString = "string"
	valueTypeRaw    = "raw"
)

// newJSONCmd creates the json command with subcommands.
func newJSONCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "json",
		Short: "Read and write JSON configuration files",
		Long: `Read and write values in a JSON configuration file such as appsettings.json.

Key paths are colon separated with at most five segments. Numeric segments
index into arrays. Missing objects along the path are created on write.

Subcommands:
  set   Write a value at a key path
  get   Print the value at a key path
  conn  Write a ConnectionStrings entry`,
	}

	cmd.AddCommand(newJSONSetCmd(app))
	cmd.AddCommand(newJSONGetCmd(app))
	cmd.AddCommand(newJSONConnCmd(app))

	return cmd
}

func newJSONSetCmd(app *App) *cobra.Command {
	var valueType string

	cmd := &cobra.Command{
		Use:   "set <file> <keypath> <value>",
		Short: "Write a value at a key path",
		Long: `Write a value at a key path.

--type controls how <value> is interpreted:
  auto    integers and true/false are written as JSON numbers and booleans,
          anything else as a string (default)
  string  always a string
  raw     parsed as a JSON document, so objects and arrays can be written

Examples:
  confighelper json set appsettings.json Logging:LogLevel:Default Warning
  confighelper json set appsettings.json Kestrel:Limits:MaxConnections 100
  confighelper json set appsettings.json AllowedHosts '["a","b"]' --type raw`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := interpretValue(args[2], valueType)
			if err != nil {
				return err
			}
			if err := app.Store.SetJSONValue(args[0], args[1], value); err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Set %s in %s\n", args[1], args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&valueType, "type", valueTypeAuto, "value interpretation: auto, string or raw")

	return cmd
}

// interpretValue converts a command-line value according to valueType.
func interpretValue(raw, valueType string) (any, error) {
	switch valueType {
	case valueTypeAuto:
		return confighelper.ParseScalar(raw), nil
	case valueTypeString:
		return raw, nil
	case valueTypeRaw:
		value, err := confighelper.ParseJSON([]byte(raw))
		if err != nil {
			return nil, err
		}
		return value, nil
	default:
		return nil, fmt.Errorf("%w: unknown value type %q", confighelper.ErrInvalidArgument, valueType)
	}
}

func newJSONGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <file> <keypath>",
		Short: "Print the value at a key path",
		Long: `Print the value at a key path. Strings print bare; numbers, booleans
and null print as JSON literals; objects and arrays print as indented JSON.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := app.Store.GetJSONValue(args[0], args[1])
			if err != nil {
				return err
			}
			if app.JSON || value.IsContainer() {
				out, err := value.MarshalIndent()
				if err != nil {
					return err
				}
				_, err = app.Out.Write(out)
				return err
			}
			fmt.Fprintln(app.Out, value.Text())
			return nil
		},
	}
}

func newJSONConnCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "conn <file> <name> <connection-string>",
		Short: "Write a ConnectionStrings entry",
		Long: `Write ConnectionStrings:<name> in a JSON configuration file. The name is
used literally, so it may contain ':'.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Store.SetJSONConnectionString(args[0], args[1], args[2]); err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Set connection string %s in %s\n", args[1], args[0])
			return nil
		},
	}
}
