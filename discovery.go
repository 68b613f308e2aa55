// FILE: lixenwraith/confighelper/discovery.go
package confighelper

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultBaseDirEnv is the environment variable consulted by ResolveBaseDir.
const DefaultBaseDirEnv = "CONFIGHELPER_BASE_DIR"

// InstallRoot returns the application install root: the parent of the
// directory holding the running executable, with symlinks resolved.
// For /opt/app/bin/tool it returns /opt/app.
func InstallRoot() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(filepath.Dir(exe)), nil
}

// ResolveBaseDir picks the base directory for a Store.
// Precedence: explicit, then the envVar environment variable, then InstallRoot.
func ResolveBaseDir(explicit, envVar string) (string, error) {
	if explicit != "" {
		return filepath.Abs(explicit)
	}

	if envVar != "" {
		if dir := os.Getenv(envVar); dir != "" {
			return filepath.Abs(dir)
		}
	}

	return InstallRoot()
}
