// FILE: lixenwraith/confighelper/cmd/confighelper/root.go
package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/confighelper"
)

// NewRootCmd creates the command tree writing to out and errOut.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	app := &App{Out: out, Err: errOut}

	var (
		baseDir  string
		format   string
		logLevel string
	)

	// An invalid environment is reported when a command runs; the defaults only seed the flags.
	envCfg, envErr := loadEnvConfig()
	if envErr != nil {
		envCfg = envConfig{Format: confighelper.FormatAuto, LogLevel: "warn"}
	}

	rootCmd := &cobra.Command{
		Use:   "confighelper",
		Short: "Read and write application settings and JSON configuration files",
		Long: `confighelper edits application configuration from the shell.

Settings live in <base-dir>/config/app.config with an appSettings section and a
connectionStrings section. JSON files are addressed by colon separated key paths
of up to five segments, e.g. Logging:LogLevel:Default.

Environment:
  CONFIGHELPER_BASE_DIR   default for --base-dir (falls back to the install root)
  CONFIGHELPER_FORMAT     default for --format
  CONFIGHELPER_LOG_LEVEL  default for --log-level`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envErr != nil {
				return envErr
			}

			logger, err := newLogger(app.Err, logLevel)
			if err != nil {
				return err
			}
			app.Log = logger

			f, err := confighelper.ParseFormat(format)
			if err != nil {
				return err
			}

			dir, err := confighelper.ResolveBaseDir(baseDir, confighelper.DefaultBaseDirEnv)
			if err != nil {
				return err
			}

			store, err := confighelper.NewBuilder().
				WithBaseDir(dir).
				WithFormat(f).
				WithLogger(logger).
				Build()
			if err != nil {
				return err
			}
			app.Store = store

			app.Log.Debug().Str("base_dir", dir).Str("format", string(f)).Msg("store ready")
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&baseDir, "base-dir", envCfg.BaseDir, "application root holding config/app.config")
	flags.StringVar(&format, "format", string(envCfg.Format), "settings file format: auto, toml, yaml or json")
	flags.StringVar(&logLevel, "log-level", envCfg.LogLevel, "log level: debug, info, warn or error")
	flags.BoolVar(&app.JSON, "json", false, "output in JSON format")

	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.AddCommand(
		newInitCmd(app),
		newPathCmd(app),
		newSettingCmd(app),
		newConnCmd(app),
		newFileCmd(app),
		newJSONCmd(app),
	)

	return rootCmd
}
