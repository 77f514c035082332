package tool

import (
	"os"
	"os/exec"
	"path/filepath"
)

// FindZip locates the archive tool binary. An explicit override (from the
// config file) wins; otherwise PATH is searched.
func FindZip(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	path, err := exec.LookPath("zip")
	if err != nil {
		return "", &NotFoundError{Tool: "zip", Hint: "install the Info-ZIP 'zip' utility"}
	}
	return path, nil
}

// FindJarsigner locates the JDK signing tool. An explicit override wins,
// then PATH, then $JAVA_HOME/bin.
func FindJarsigner(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	if path, err := exec.LookPath("jarsigner"); err == nil {
		return path, nil
	}
	if javaHome := os.Getenv("JAVA_HOME"); javaHome != "" {
		path := filepath.Join(javaHome, "bin", "jarsigner")
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", &NotFoundError{Tool: "jarsigner", Hint: "install a JDK or set JAVA_HOME"}
}
