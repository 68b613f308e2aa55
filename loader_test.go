// FILE: lixenwraith/confighelper/loader_test.go
package confighelper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFormatDetection tests extension and content based format detection
func TestFormatDetection(t *testing.T) {
	t.Run("Extension", func(t *testing.T) {
		assert.Equal(t, FormatTOML, detectFileFormat("a.toml"))
		assert.Equal(t, FormatTOML, detectFileFormat("a.TML"))
		assert.Equal(t, FormatJSON, detectFileFormat("/x/a.json"))
		assert.Equal(t, FormatYAML, detectFileFormat("a.yml"))
		assert.Equal(t, FormatYAML, detectFileFormat("a.yaml"))
		assert.Equal(t, Format(""), detectFileFormat("app.config"))
		assert.Equal(t, Format(""), detectFileFormat("noext"))
	})

	t.Run("Content", func(t *testing.T) {
		assert.Equal(t, FormatJSON, detectFormatFromContent([]byte(`{"appSettings":{}}`)))
		assert.Equal(t, FormatTOML, detectFormatFromContent([]byte("[appSettings]\nA = \"1\"\n")))
		assert.Equal(t, FormatTOML, detectFormatFromContent([]byte(`title = "x"`)))
		assert.Equal(t, FormatYAML, detectFormatFromContent([]byte("appSettings:\n  A: \"1\"\n")))
		assert.Equal(t, Format(""), detectFormatFromContent([]byte("   ")))
	})

	t.Run("Precedence", func(t *testing.T) {
		yamlContent := []byte("appSettings:\n  A: b\n")
		assert.Equal(t, FormatJSON, resolveFormat(FormatJSON, "a.yaml", yamlContent))
		assert.Equal(t, FormatTOML, resolveFormat(FormatAuto, "a.toml", yamlContent))
		assert.Equal(t, FormatYAML, resolveFormat(FormatAuto, "app.config", yamlContent))
		assert.Equal(t, FormatTOML, resolveFormat(FormatAuto, "app.config", nil))
		assert.Equal(t, FormatTOML, resolveFormat("", "app.config", nil))
	})

	t.Run("ParseFormat", func(t *testing.T) {
		for input, want := range map[string]Format{
			"": FormatAuto, "auto": FormatAuto, "TOML": FormatTOML,
			"yml": FormatYAML, " json ": FormatJSON,
		} {
			got, err := ParseFormat(input)
			require.NoError(t, err, input)
			assert.Equal(t, want, got, input)
		}

		_, err := ParseFormat("ini")
		assert.ErrorIs(t, err, ErrUnknownFormat)
	})
}

// TestSettingsFormats tests a full write cycle in each settings format
func TestSettingsFormats(t *testing.T) {
	files := map[string]string{
		"settings.toml": `
[appSettings]
Existing = "yes"

[connectionStrings.Main]
connectionString = "Server=main"
providerName = "sql"

[extra]
keep = "me"
`,
		"settings.yaml": `
appSettings:
  Existing: "yes"
connectionStrings:
  Main:
    connectionString: Server=main
    providerName: sql
extra:
  keep: me
`,
		"settings.json": `{
  "appSettings": {"Existing": "yes"},
  "connectionStrings": {"Main": {"connectionString": "Server=main", "providerName": "sql"}},
  "extra": {"keep": "me"}
}`,
	}

	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			path := writeSample(t, name, content)
			store := newTestStore(t)

			require.NoError(t, store.SetAppSetting(path, "Added", "1"))
			require.NoError(t, store.SetConnectionString(path, "Main", "Server=new"))

			doc, err := loadSettingsFile(path, FormatAuto)
			require.NoError(t, err)
			assert.Equal(t, detectFileFormat(name), doc.Format())
			assert.Equal(t, map[string]string{"Existing": "yes", "Added": "1"}, doc.AppSettings)
			assert.Equal(t, ConnectionString{ConnectionString: "Server=new", ProviderName: "sql"}, doc.ConnectionStrings["Main"])

			extra, ok := asStringMap(doc.raw["extra"])
			require.True(t, ok)
			assert.Equal(t, "me", extra["keep"])
		})
	}
}

// TestForcedFormat tests a Store configured with an explicit format
func TestForcedFormat(t *testing.T) {
	base := t.TempDir()
	store, err := NewBuilder().WithBaseDir(base).WithFormat(FormatJSON).Build()
	require.NoError(t, err)

	require.NoError(t, store.WriteSetting("Theme", "dark"))

	data, err := os.ReadFile(filepath.Join(base, "config", "app.config"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"appSettings":{"Theme":"dark"},"connectionStrings":{}}`, string(data))

	theme, err := store.ReadSetting("Theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", theme)
}

// TestInvalidSettingsFiles tests parse and shape errors
func TestInvalidSettingsFiles(t *testing.T) {
	store := newTestStore(t)

	t.Run("BrokenTOML", func(t *testing.T) {
		path := writeSample(t, "bad.toml", "[appSettings\nA = 1")
		err := store.SetAppSetting(path, "A", "1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse TOML")
	})

	t.Run("SectionNotATable", func(t *testing.T) {
		path := writeSample(t, "flat.toml", `appSettings = "oops"`)
		err := store.SetAppSetting(path, "A", "1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `section "appSettings" is not a table`)
	})
}

// TestWhitespaceRoundTrip tests that whitespace-only and multi-line values survive every format
func TestWhitespaceRoundTrip(t *testing.T) {
	values := map[string]string{
		"Newline":      "\n",
		"TwoNewlines":  "\n\n",
		"Space":        " ",
		"MultiLine":    "a\nb",
		"TrailingLine": "a\n",
		"Indented":     "  a\n    b\n",
	}

	for _, format := range []Format{FormatTOML, FormatYAML, FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			store, err := NewBuilder().WithBaseDir(t.TempDir()).WithFormat(format).Build()
			require.NoError(t, err)

			for key, value := range values {
				require.NoError(t, store.WriteSetting(key, value), key)
				require.NoError(t, store.WriteConnectionString(key, value, value), key)
			}

			for key, want := range values {
				got, err := store.ReadSetting(key)
				require.NoError(t, err, key)
				assert.Equal(t, want, got, key)

				conns, err := store.ConnectionStrings()
				require.NoError(t, err)
				assert.Equal(t, ConnectionString{ConnectionString: want, ProviderName: want}, conns[key], key)
			}
		})
	}
}

// TestFormatUnmarshalText tests Format decoding from text
func TestFormatUnmarshalText(t *testing.T) {
	var f Format
	require.NoError(t, f.UnmarshalText([]byte("YML")))
	assert.Equal(t, FormatYAML, f)

	err := f.UnmarshalText([]byte("ini"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.Equal(t, FormatYAML, f)
}
