// FILE: lixenwraith/confighelper/error.go
package confighelper

import (
	"errors"
	"fmt"
	"os"
)

// Sentinel errors returned by Store operations. Match them with errors.Is.
var (
	// ErrInvalidArgument reports a blank key, an empty key path or a key path deeper than MaxKeyDepth.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrFileNotFound reports a missing target file for an explicit-path operation.
	// It also matches os.ErrNotExist.
	ErrFileNotFound = fmt.Errorf("configuration file not found: %w", os.ErrNotExist)

	// ErrNotFound reports a missing entry or JSON node.
	ErrNotFound = errors.New("not found")

	// ErrNotContainer reports a JSON key path that descends through a scalar value.
	ErrNotContainer = errors.New("value is not an object or array")

	// ErrUnknownFormat reports a settings file whose format cannot be determined.
	ErrUnknownFormat = errors.New("unknown settings file format")
)
