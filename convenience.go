// File: lixenwraith/confighelper/convenience.go
package confighelper

import "fmt"

// New creates a Store rooted at baseDir with default options.
// This is the recommended way to get a Store for most applications.
func New(baseDir string) (*Store, error) {
	return NewBuilder().WithBaseDir(baseDir).Build()
}

// MustNew is like New but panics on error
func MustNew(baseDir string) *Store {
	store, err := New(baseDir)
	if err != nil {
		panic(fmt.Sprintf("confighelper initialization failed: %v", err))
	}
	return store
}

// SetAppSettings applies each entry of settings to the file at filePath.
// Every entry is a separate load, mutate and save cycle, run in sorted key order.
// The batch is not atomic: on error, entries applied before it stay persisted.
func (s *Store) SetAppSettings(filePath string, settings map[string]string) error {
	for _, key := range sortedKeys(settings) {
		if err := s.SetAppSetting(filePath, key, settings[key]); err != nil {
			return fmt.Errorf("failed to set app setting %q: %w", key, err)
		}
	}
	return nil
}

// SetConnectionStrings applies each entry of connectionStrings to the file at filePath.
// Same sequencing and failure semantics as SetAppSettings.
func (s *Store) SetConnectionStrings(filePath string, connectionStrings map[string]string) error {
	for _, key := range sortedKeys(connectionStrings) {
		if err := s.SetConnectionString(filePath, key, connectionStrings[key]); err != nil {
			return fmt.Errorf("failed to set connection string %q: %w", key, err)
		}
	}
	return nil
}
