// File: lixenwraith/confighelper/builder.go
package confighelper

import (
	"fmt"

	"github.com/rs/zerolog"
)

const (
	// DefaultDirName is the directory under the base directory holding the settings file
	DefaultDirName = "config"
	// DefaultFileName is the conventional settings file name
	DefaultFileName = "app.config"
)

// Builder provides a fluent interface for building a Store
type Builder struct {
	baseDir  string
	dirName  string
	fileName string
	format   Format
	logger   zerolog.Logger
	err      error
}

// NewBuilder creates a new store builder with the conventional layout
// <base>/config/app.config, automatic format detection and a silent logger.
func NewBuilder() *Builder {
	return &Builder{
		dirName:  DefaultDirName,
		fileName: DefaultFileName,
		format:   FormatAuto,
		logger:   zerolog.Nop(),
	}
}

// WithBaseDir sets the application root the conventional path is derived from
func (b *Builder) WithBaseDir(dir string) *Builder {
	b.baseDir = dir
	return b
}

// WithInstallRoot uses the parent of the running executable's directory as base directory
func (b *Builder) WithInstallRoot() *Builder {
	root, err := InstallRoot()
	if err != nil {
		b.err = err
		return b
	}
	b.baseDir = root
	return b
}

// WithDirName overrides the "config" directory name
func (b *Builder) WithDirName(name string) *Builder {
	b.dirName = name
	return b
}

// WithFileName overrides the "app.config" file name
func (b *Builder) WithFileName(name string) *Builder {
	b.fileName = name
	return b
}

// WithFormat forces the settings file codec instead of detecting it
func (b *Builder) WithFormat(format Format) *Builder {
	b.format = format
	return b
}

// WithLogger sets the logger used for debug events on file creation and writes
func (b *Builder) WithLogger(logger zerolog.Logger) *Builder {
	b.logger = logger
	return b
}

// Build creates the Store
func (b *Builder) Build() (*Store, error) {
	if b.err != nil {
		return nil, b.err
	}
	if isBlank(b.baseDir) {
		return nil, fmt.Errorf("%w: base directory cannot be empty", ErrInvalidArgument)
	}
	if isBlank(b.fileName) {
		return nil, fmt.Errorf("%w: file name cannot be empty", ErrInvalidArgument)
	}

	format := b.format
	if format == "" {
		format = FormatAuto
	}
	if _, err := ParseFormat(string(format)); err != nil {
		return nil, err
	}

	return &Store{
		baseDir:  b.baseDir,
		dirName:  b.dirName,
		fileName: b.fileName,
		format:   format,
		logger:   b.logger,
	}, nil
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Store {
	store, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("confighelper build failed: %v", err))
	}
	return store
}
