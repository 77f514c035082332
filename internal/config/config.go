// Package config handles apksign paths and the optional override file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apkforge/apksign/internal/keystore"
	"github.com/apkforge/apksign/internal/pathutil"
	"gopkg.in/yaml.v3"
)

// FileName is the optional override file expected beside the installed
// binary. A missing file means defaults.
const FileName = "apksign.yaml"

// Config holds keystore and tool settings. The alias set itself is fixed
// in the keystore package and cannot be extended here.
type Config struct {
	Keystore  string `yaml:"keystore,omitempty"`  // keystore file path
	Storepass string `yaml:"storepass,omitempty"` // keystore passphrase
	Zip       string `yaml:"zip,omitempty"`       // archive tool binary
	Jarsigner string `yaml:"jarsigner,omitempty"` // signing tool binary
}

// Default returns the configuration for an installation at installDir: the
// bundled keystore beside the binary, unlocked with the well-known
// passphrase, tools found via lookup.
func Default(installDir string) *Config {
	return &Config{
		Keystore:  filepath.Join(installDir, keystore.FileName),
		Storepass: keystore.Passphrase,
	}
}

// Load reads the override file beside the installed binary, falling back to
// defaults when the file is absent. Relative paths in the file resolve
// against installDir, so a config shipped with the tool stays relocatable.
func Load(installDir string) (*Config, error) {
	cfg := Default(installDir)

	data, err := os.ReadFile(filepath.Join(installDir, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read %s: %w", FileName, err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", FileName, err)
	}

	if file.Keystore != "" {
		path, err := pathutil.ResolvePath(file.Keystore, installDir)
		if err != nil {
			return nil, fmt.Errorf("resolve keystore path: %w", err)
		}
		cfg.Keystore = path
	}
	if file.Storepass != "" {
		cfg.Storepass = file.Storepass
	}
	if cfg.Zip, err = resolveTool(file.Zip, installDir); err != nil {
		return nil, fmt.Errorf("resolve zip path: %w", err)
	}
	if cfg.Jarsigner, err = resolveTool(file.Jarsigner, installDir); err != nil {
		return nil, fmt.Errorf("resolve jarsigner path: %w", err)
	}

	return cfg, nil
}

// resolveTool resolves a configured tool binary. Bare command names are
// left alone so PATH lookup still applies; anything path-like resolves
// against installDir.
func resolveTool(bin, installDir string) (string, error) {
	if bin == "" {
		return "", nil
	}
	if !strings.ContainsRune(bin, os.PathSeparator) && !strings.HasPrefix(bin, "~/") {
		return bin, nil
	}
	return pathutil.ResolvePath(bin, installDir)
}
