package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default("/opt/apksign")

	if cfg.Keystore != "/opt/apksign/apk.keystore" {
		t.Errorf("Keystore = %q, want %q", cfg.Keystore, "/opt/apksign/apk.keystore")
	}
	if cfg.Storepass != "android" {
		t.Errorf("Storepass = %q, want %q", cfg.Storepass, "android")
	}
	if cfg.Zip != "" || cfg.Jarsigner != "" {
		t.Errorf("tool overrides should default empty, got zip=%q jarsigner=%q", cfg.Zip, cfg.Jarsigner)
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Keystore != filepath.Join(dir, "apk.keystore") {
		t.Errorf("Keystore = %q, want default beside install dir", cfg.Keystore)
	}
	if cfg.Storepass != "android" {
		t.Errorf("Storepass = %q, want %q", cfg.Storepass, "android")
	}
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	content := `keystore: ./keys/release.keystore
storepass: sekrit
zip: /usr/local/bin/zip
jarsigner: jarsigner
`
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Keystore != filepath.Join(dir, "keys/release.keystore") {
		t.Errorf("Keystore = %q, relative path should resolve against install dir", cfg.Keystore)
	}
	if cfg.Storepass != "sekrit" {
		t.Errorf("Storepass = %q, want %q", cfg.Storepass, "sekrit")
	}
	if cfg.Zip != "/usr/local/bin/zip" {
		t.Errorf("Zip = %q, want absolute path unchanged", cfg.Zip)
	}
	if cfg.Jarsigner != "jarsigner" {
		t.Errorf("Jarsigner = %q, bare command names should stay bare for PATH lookup", cfg.Jarsigner)
	}
}

func TestLoadPartialOverrideKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("zip: /opt/zip/bin/zip\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Keystore != filepath.Join(dir, "apk.keystore") {
		t.Errorf("Keystore = %q, want default", cfg.Keystore)
	}
	if cfg.Storepass != "android" {
		t.Errorf("Storepass = %q, want default", cfg.Storepass)
	}
	if cfg.Zip != "/opt/zip/bin/zip" {
		t.Errorf("Zip = %q, want override", cfg.Zip)
	}
}

func TestLoadBadYAML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("keystore: [unterminated"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(dir); err == nil {
		t.Error("Load(bad yaml) should return error")
	}
}

func TestResolveToolRelativePath(t *testing.T) {
	got, err := resolveTool("./bin/zip", "/opt/apksign")
	if err != nil {
		t.Fatalf("resolveTool() error = %v", err)
	}
	if got != "/opt/apksign/bin/zip" {
		t.Errorf("resolveTool() = %q, want %q", got, "/opt/apksign/bin/zip")
	}
}

func TestGetPaths(t *testing.T) {
	paths, err := GetPaths()
	if err != nil {
		t.Fatalf("GetPaths() error = %v", err)
	}

	home, _ := os.UserHomeDir()
	apksignHome := filepath.Join(home, ".apksign")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"Home", paths.Home, apksignHome},
		{"Logs", paths.Logs, filepath.Join(apksignHome, "logs")},
		{"LogFile", paths.LogFile, filepath.Join(apksignHome, "logs", "apksign.log")},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestEnsureDirectories(t *testing.T) {
	base := t.TempDir()
	p := &Paths{
		Home: filepath.Join(base, ".apksign"),
		Logs: filepath.Join(base, ".apksign", "logs"),
	}

	if err := p.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories() error = %v", err)
	}
	for _, dir := range []string{p.Home, p.Logs} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Errorf("directory %s was not created", dir)
		}
	}
}
