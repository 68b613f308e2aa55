// FILE: lixenwraith/confighelper/file.go
package confighelper

import "fmt"

// SetAppSetting stores key=value in the appSettings section of an existing settings file.
// Unlike WriteSetting the file is never created: a missing file is ErrFileNotFound.
func (s *Store) SetAppSetting(filePath, key, value string) error {
	if err := requireKey(key); err != nil {
		return err
	}
	if err := requireFile(filePath); err != nil {
		return err
	}

	doc, err := loadSettingsFile(filePath, s.format)
	if err != nil {
		return err
	}

	doc.SetAppSetting(key, value)
	if err := doc.save(); err != nil {
		return err
	}

	s.logger.Debug().Str("path", filePath).Str("section", SectionAppSettings).Str("key", key).Msg("set app setting")
	return nil
}

// SetConnectionString replaces the value of an existing connection string in filePath,
// keeping its provider name. The entry must already exist: there is no provider to
// give a new one, so a missing entry is ErrNotFound. Use WriteConnectionString to create entries.
func (s *Store) SetConnectionString(filePath, key, value string) error {
	if err := requireKey(key); err != nil {
		return err
	}
	if err := requireFile(filePath); err != nil {
		return err
	}

	doc, err := loadSettingsFile(filePath, s.format)
	if err != nil {
		return err
	}

	existing, ok := doc.ConnectionStrings[key]
	if !ok {
		return fmt.Errorf("%w: connection string %q in '%s'", ErrNotFound, key, filePath)
	}

	doc.SetConnectionString(key, ConnectionString{
		ConnectionString: value,
		ProviderName:     existing.ProviderName,
	})
	if err := doc.save(); err != nil {
		return err
	}

	s.logger.Debug().Str("path", filePath).Str("section", SectionConnectionStrings).Str("key", key).Msg("set connection string")
	return nil
}
