package config

import (
	"os"
	"path/filepath"
)

// Paths holds per-user paths used by apksign.
type Paths struct {
	Home    string
	Logs    string
	LogFile string
}

// GetPaths returns the paths for the current user.
func GetPaths() (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	apksignHome := filepath.Join(home, ".apksign")
	logsDir := filepath.Join(apksignHome, "logs")
	return &Paths{
		Home:    apksignHome,
		Logs:    logsDir,
		LogFile: filepath.Join(logsDir, "apksign.log"),
	}, nil
}

// EnsureDirectories creates the required directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.Home, p.Logs} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}
