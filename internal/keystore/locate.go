package keystore

import (
	"fmt"
	"os"
	"path/filepath"
)

// InstallDir returns the directory containing the running binary. The
// executable path is resolved through symlinks so that a symlinked
// installation still points at the real install directory; if resolution
// fails the unresolved path is used.
func InstallDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	return installDirFrom(exe), nil
}

// Locate returns the path to the bundled keystore, which ships beside the
// installed binary rather than depending on the caller's working directory.
func Locate() (string, error) {
	dir, err := InstallDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

func installDirFrom(exe string) string {
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}
