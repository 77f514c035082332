// Package signer orchestrates stripping and re-signing APK archives.
package signer

import (
	"context"
	"log/slog"
	"os"

	"github.com/apkforge/apksign/internal/archive"
	"github.com/apkforge/apksign/internal/keystore"
	"github.com/apkforge/apksign/internal/tool"
)

// Tools holds the resolved external tool binaries.
type Tools struct {
	Zip       string
	Jarsigner string
}

// Signer re-signs APK archives in place with a keystore identity.
type Signer struct {
	runner tool.Runner
	tools  Tools
	log    *slog.Logger
}

// New creates a signer using the given runner and tool binaries.
func New(runner tool.Runner, tools Tools, log *slog.Logger) *Signer {
	return &Signer{runner: runner, tools: tools, log: log}
}

// Sign strips stale signature entries from the archive, then signs it with
// the identity's key. The archive is mutated in place; no backup is taken.
// Stripping always precedes signing, and neither runs when the target is
// missing or unreadable. A signing tool failure surfaces as an
// ExitStatusError carrying the tool's own status.
func (s *Signer) Sign(ctx context.Context, apkPath string, id *keystore.Identity) error {
	if _, err := os.Stat(apkPath); err != nil {
		return &TargetError{Path: apkPath, Err: err}
	}

	s.log.Info("stripping signature entries", "apk", apkPath)
	if err := archive.StripSignature(ctx, s.runner, s.tools.Zip, apkPath); err != nil {
		s.log.Error("strip failed", "apk", apkPath, "error", err)
		return err
	}

	s.log.Info("signing", "apk", apkPath, "alias", id.KeyAlias, "keystore", id.KeystorePath)
	code, err := s.runner.Run(ctx, s.tools.Jarsigner,
		"-keystore", id.KeystorePath,
		"-storepass", id.Passphrase,
		apkPath, id.KeyAlias)
	if err != nil {
		return err
	}
	if code != 0 {
		s.log.Error("jarsigner failed", "apk", apkPath, "status", code)
		return &tool.ExitStatusError{Tool: "jarsigner", Code: code}
	}

	s.log.Info("signed", "apk", apkPath, "alias", id.KeyAlias)
	return nil
}

// Verify runs the signing tool's verification mode against the archive.
// The tool's exit status passes through on failure.
func (s *Signer) Verify(ctx context.Context, apkPath string) error {
	if _, err := os.Stat(apkPath); err != nil {
		return &TargetError{Path: apkPath, Err: err}
	}

	s.log.Info("verifying", "apk", apkPath)
	code, err := s.runner.Run(ctx, s.tools.Jarsigner, "-verify", apkPath)
	if err != nil {
		return err
	}
	if code != 0 {
		s.log.Error("verification failed", "apk", apkPath, "status", code)
		return &tool.ExitStatusError{Tool: "jarsigner", Code: code}
	}

	s.log.Info("verified", "apk", apkPath)
	return nil
}
