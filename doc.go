// File: lixenwraith/confighelper/doc.go

// Package confighelper reads and writes application configuration files:
// settings files with an appSettings key/value section and a connectionStrings
// section, and JSON documents addressed by colon-delimited key paths.
//
// Features:
//   - Conventional settings file at <base>/config/app.config, created on first use
//   - Settings files in TOML (default), YAML or JSON, detected from extension or content
//   - Unrelated entries of a settings file survive every write
//   - JSON key paths up to five segments deep ("Logging:LogLevel:Default")
//   - Order-preserving JSON rewrites with two-space indentation
//   - Atomic whole-document writes through a temporary file and rename
//
// Quick Start:
//
//	store, err := confighelper.New("/opt/myapp")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := store.WriteSetting("Theme", "dark"); err != nil {
//	    log.Fatal(err)
//	}
//	theme, _ := store.ReadSetting("Theme") // "dark"
//
//	err = store.SetJSONValue("appsettings.json", "Logging:LogLevel:Default", "Warning")
//
// Conventional file (TOML):
//
//	[appSettings]
//	Theme = "dark"
//
//	[connectionStrings.Main]
//	connectionString = "Server=.;Database=app"
//	providerName = "System.Data.SqlClient"
//
// JSON value conversion:
// Built-in integers and booleans are written as JSON numbers and booleans.
// Every other value, floats included, is written as a JSON string.
//
// Concurrency:
// Operations are synchronous and self-contained. There is no locking; concurrent
// writers to the same file race and the last save wins.
package confighelper
