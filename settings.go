// FILE: lixenwraith/confighelper/settings.go
package confighelper

import (
	"fmt"
	"maps"
)

// Section names inside a settings file.
const (
	SectionAppSettings       = "appSettings"
	SectionConnectionStrings = "connectionStrings"
)

// ConnectionString is one named entry of the connectionStrings section.
type ConnectionString struct {
	ConnectionString string `mapstructure:"connectionString" json:"connectionString"`
	ProviderName     string `mapstructure:"providerName" json:"providerName,omitempty"`
}

// SettingsDocument is the in-memory form of a settings file.
// Both sections are non-nil after loading. Top-level entries other than the two
// sections are carried through untouched and written back on save.
type SettingsDocument struct {
	AppSettings       map[string]string
	ConnectionStrings map[string]ConnectionString

	path   string
	format Format
	raw    map[string]any
}

// newSettingsDocument returns an empty document bound to path.
func newSettingsDocument(path string, format Format) *SettingsDocument {
	if format == "" || format == FormatAuto {
		format = resolveFormat(format, path, nil)
	}
	return &SettingsDocument{
		AppSettings:       make(map[string]string),
		ConnectionStrings: make(map[string]ConnectionString),
		path:              path,
		format:            format,
		raw:               make(map[string]any),
	}
}

// loadSettingsFile reads and decodes an existing settings file.
func loadSettingsFile(path string, configured Format) (*SettingsDocument, error) {
	data, err := readExisting(path)
	if err != nil {
		return nil, err
	}

	format := resolveFormat(configured, path, data)
	raw, err := decodeRaw(format, path, data)
	if err != nil {
		return nil, err
	}

	doc := newSettingsDocument(path, format)
	doc.raw = raw

	if err := decodeSection(raw, SectionAppSettings, &doc.AppSettings); err != nil {
		return nil, fmt.Errorf("settings file '%s': %w", path, err)
	}
	if err := decodeSection(raw, SectionConnectionStrings, &doc.ConnectionStrings); err != nil {
		return nil, fmt.Errorf("settings file '%s': %w", path, err)
	}

	return doc, nil
}

// Path returns the file the document was loaded from.
func (d *SettingsDocument) Path() string {
	return d.path
}

// Format returns the codec used for the document.
func (d *SettingsDocument) Format() Format {
	return d.format
}

// SetAppSetting replaces any entry for key with value.
func (d *SettingsDocument) SetAppSetting(key, value string) {
	delete(d.AppSettings, key)
	d.AppSettings[key] = value
}

// SetConnectionString replaces any entry for key.
func (d *SettingsDocument) SetConnectionString(key string, cs ConnectionString) {
	delete(d.ConnectionStrings, key)
	d.ConnectionStrings[key] = cs
}

// Marshal encodes the whole document, sections included, in its format.
func (d *SettingsDocument) Marshal() ([]byte, error) {
	out := maps.Clone(d.raw)
	if out == nil {
		out = make(map[string]any)
	}

	appSettings := make(map[string]any, len(d.AppSettings))
	for k, v := range d.AppSettings {
		appSettings[k] = v
	}
	out[SectionAppSettings] = appSettings

	connectionStrings := make(map[string]any, len(d.ConnectionStrings))
	for k, cs := range d.ConnectionStrings {
		connectionStrings[k] = map[string]any{
			"connectionString": cs.ConnectionString,
			"providerName":     cs.ProviderName,
		}
	}
	out[SectionConnectionStrings] = connectionStrings

	return encodeRaw(d.format, out)
}

// save writes the whole document back to its path in one atomic replace.
func (d *SettingsDocument) save() error {
	data, err := d.Marshal()
	if err != nil {
		return fmt.Errorf("failed to encode settings file '%s': %w", d.path, err)
	}
	return atomicWriteFile(d.path, data)
}
