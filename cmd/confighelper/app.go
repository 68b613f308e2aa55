// FILE: lixenwraith/confighelper/cmd/confighelper/app.go
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/confighelper"
)

// App holds state shared across commands.
type App struct {
	Store *confighelper.Store
	Out   io.Writer
	Err   io.Writer
	Log   zerolog.Logger
	JSON  bool // output in JSON format
}

// envConfig holds defaults taken from the environment. Flags override them.
type envConfig struct {
	BaseDir  string              `env:"CONFIGHELPER_BASE_DIR"`
	Format   confighelper.Format `env:"CONFIGHELPER_FORMAT" envDefault:"auto"`
	LogLevel string              `env:"CONFIGHELPER_LOG_LEVEL" envDefault:"warn"`
}

func loadEnvConfig() (envConfig, error) {
	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		return envConfig{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// newLogger builds a human readable logger on w.
func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(lvl).
		With().
		Timestamp().
		Str("role", "cli").
		Logger(), nil
}

// OutputJSON writes v as indented JSON.
func (app *App) OutputJSON(v any) error {
	encoder := json.NewEncoder(app.Out)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// parsePairs turns key=value arguments into a map. The first '=' splits.
func parsePairs(args []string) (map[string]string, error) {
	pairs := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("expected key=value, got %q", arg)
		}
		pairs[key] = value
	}
	return pairs, nil
}
