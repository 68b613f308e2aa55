// FILE: lixenwraith/confighelper/example/main.go
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/confighelper"
)

func main() {
	baseDir, err := os.MkdirTemp("", "confighelper-example-")
	if err != nil {
		log.Fatalf("failed to create example directory: %v", err)
	}
	defer func() {
		log.Println("---")
		log.Println("🧹 Cleaning up...")
		os.RemoveAll(baseDir)
	}()

	// =========================================================================
	// PART 1: CONVENTIONAL SETTINGS FILE
	// Build a Store rooted at a temporary application directory.
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 1: Writing the conventional settings file...")

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.DebugLevel)
	store := confighelper.NewBuilder().
		WithBaseDir(baseDir).
		WithLogger(logger).
		MustBuild()

	if err := store.WriteSetting("Theme", "dark"); err != nil {
		log.Fatalf("write setting: %v", err)
	}
	if err := store.WriteConnectionString("Main", "Server=.;Database=app", "System.Data.SqlClient"); err != nil {
		log.Fatalf("write connection string: %v", err)
	}

	theme, _ := store.ReadSetting("Theme")
	missing, _ := store.ReadSetting("NotThere")
	conn, _ := store.ReadConnectionString("Main")
	log.Printf("✅ Theme=%q NotThere=%q Main=%q", theme, missing, conn)
	printFile(store.Path())

	// =========================================================================
	// PART 2: EXPLICIT SETTINGS FILE
	// Connection strings must already exist; their provider is kept.
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 2: Updating a settings file by path...")

	if err := store.SetAppSettings(store.Path(), map[string]string{"Lang": "en", "Theme": "light"}); err != nil {
		log.Fatalf("set app settings: %v", err)
	}
	if err := store.SetConnectionString(store.Path(), "Main", "Server=db;Database=app"); err != nil {
		log.Fatalf("set connection string: %v", err)
	}
	if err := store.SetConnectionString(store.Path(), "Reporting", "Server=r"); err != nil {
		log.Printf("✅ expected failure: %v", err)
	}
	printFile(store.Path())

	// =========================================================================
	// PART 3: JSON CONFIGURATION
	// Key paths are colon separated; missing objects are created.
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 3: Editing appsettings.json...")

	jsonPath := filepath.Join(baseDir, "appsettings.json")
	if err := os.WriteFile(jsonPath, []byte(`{"Logging":{"LogLevel":{"Default":"Information"}}}`), 0644); err != nil {
		log.Fatalf("write json: %v", err)
	}

	must(store.SetJSONValue(jsonPath, "Logging:LogLevel:Default", "Warning"))
	must(store.SetJSONValue(jsonPath, "Kestrel:Limits:MaxConnections", 100))
	must(store.SetJSONValue(jsonPath, "Feature:Ratio", 0.25))
	must(store.SetJSONConnectionString(jsonPath, "Main", "Server=.;Database=app"))

	if err := store.SetJSONValue(jsonPath, "a:b:c:d:e:f", 1); err != nil {
		log.Printf("✅ expected failure: %v", err)
	}

	level, err := store.GetJSONValue(jsonPath, "Logging:LogLevel:Default")
	must(err)
	log.Printf("✅ Logging:LogLevel:Default=%s", level.Text())
	printFile(jsonPath)
}

func must(err error) {
	if err != nil {
		log.Fatalf("unexpected error: %v", err)
	}
}

func printFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("read %s: %v", path, err)
	}
	fmt.Printf("----- %s -----\n%s\n", filepath.Base(path), data)
}
