// FILE: lixenwraith/confighelper/config.go
package confighelper

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Store reads and writes settings and JSON configuration files.
//
// A Store holds only its options. Every operation loads the file from disk,
// applies one read or mutation and, for writes, saves the whole document
// before returning. There is no cache and no locking: two writers racing on
// the same file lose one of the updates. Callers needing coordination must
// serialize access themselves.
type Store struct {
	baseDir  string
	dirName  string
	fileName string
	format   Format
	logger   zerolog.Logger
}

// BaseDir returns the directory the conventional path is derived from.
func (s *Store) BaseDir() string {
	return s.baseDir
}

// Path returns the conventional settings file path, <base>/config/app.config by default.
func (s *Store) Path() string {
	return filepath.Join(s.baseDir, s.dirName, s.fileName)
}

// EnsureExists creates the settings directory and an empty settings file
// with both sections when the file is missing. An existing file is left untouched.
func (s *Store) EnsureExists() error {
	path := s.Path()
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, defaultDirPerm); err != nil {
		return fmt.Errorf("failed to create config directory '%s': %w", dir, err)
	}

	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to check settings file '%s': %w", path, err)
	}

	doc := newSettingsDocument(path, s.format)
	if err := doc.save(); err != nil {
		return err
	}

	s.logger.Debug().Str("path", path).Str("format", string(doc.Format())).Msg("created settings file")
	return nil
}

// load ensures the conventional file exists and decodes it.
func (s *Store) load() (*SettingsDocument, error) {
	if err := s.EnsureExists(); err != nil {
		return nil, err
	}
	return loadSettingsFile(s.Path(), s.format)
}

// ReadSetting returns the appSettings value for key.
// A blank or unknown key yields "" and no error, so "" is also the not-found result.
func (s *Store) ReadSetting(key string) (string, error) {
	if isBlank(key) {
		return "", nil
	}

	doc, err := s.load()
	if err != nil {
		return "", err
	}
	return doc.AppSettings[key], nil
}

// WriteSetting stores key=value in appSettings, replacing any previous entry.
func (s *Store) WriteSetting(key, value string) error {
	if err := requireKey(key); err != nil {
		return err
	}

	doc, err := s.load()
	if err != nil {
		return err
	}

	doc.SetAppSetting(key, value)
	if err := doc.save(); err != nil {
		return err
	}

	s.logger.Debug().Str("path", doc.Path()).Str("section", SectionAppSettings).Str("key", key).Msg("wrote setting")
	return nil
}

// ReadConnectionString returns the connection string named key, or "" when absent.
func (s *Store) ReadConnectionString(key string) (string, error) {
	if isBlank(key) {
		return "", nil
	}

	doc, err := s.load()
	if err != nil {
		return "", err
	}
	return doc.ConnectionStrings[key].ConnectionString, nil
}

// WriteConnectionString adds or replaces the connection string named key.
// Replacing does not preserve the entry's position in the file.
func (s *Store) WriteConnectionString(key, value, providerName string) error {
	if err := requireKey(key); err != nil {
		return err
	}

	doc, err := s.load()
	if err != nil {
		return err
	}

	doc.SetConnectionString(key, ConnectionString{
		ConnectionString: value,
		ProviderName:     providerName,
	})
	if err := doc.save(); err != nil {
		return err
	}

	s.logger.Debug().
		Str("path", doc.Path()).
		Str("section", SectionConnectionStrings).
		Str("key", key).
		Str("provider", providerName).
		Msg("wrote connection string")
	return nil
}

// AppSettings returns a copy of the appSettings section of the conventional file.
func (s *Store) AppSettings() (map[string]string, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return maps.Clone(doc.AppSettings), nil
}

// ConnectionStrings returns a copy of the connectionStrings section of the conventional file.
func (s *Store) ConnectionStrings() (map[string]ConnectionString, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return maps.Clone(doc.ConnectionStrings), nil
}
