package main

import (
	"errors"
	"io"
	"log/slog"

	"github.com/apkforge/apksign/internal/config"
	"github.com/apkforge/apksign/internal/keystore"
	"github.com/apkforge/apksign/internal/logging"
	"github.com/apkforge/apksign/internal/signer"
	"github.com/apkforge/apksign/internal/tool"
)

// environment bundles the wiring every command needs: install location,
// configuration, and the operation log.
type environment struct {
	InstallDir string
	Config     *config.Config
	Log        *slog.Logger

	logWriter io.WriteCloser
}

// loadEnvironment resolves the install directory, reads the optional
// override file beside the binary, and opens the rotating operation log.
// A log directory that cannot be created downgrades to a discard logger
// rather than blocking the signing run.
func loadEnvironment() (*environment, error) {
	installDir, err := keystore.InstallDir()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(installDir)
	if err != nil {
		return nil, err
	}

	env := &environment{
		InstallDir: installDir,
		Config:     cfg,
		Log:        logging.Discard(),
	}

	if paths, err := config.GetPaths(); err == nil {
		if err := paths.EnsureDirectories(); err == nil {
			env.logWriter = logging.NewRotatingWriter(logging.DefaultConfig(paths.LogFile))
			env.Log = logging.NewLogger(env.logWriter)
		}
	}
	return env, nil
}

// Close flushes the operation log.
func (e *environment) Close() {
	if e.logWriter != nil {
		e.logWriter.Close()
	}
}

// newSigner resolves both external tools and builds a signer for the full
// strip-and-sign flow.
func (e *environment) newSigner() (*signer.Signer, error) {
	zipBin, err := tool.FindZip(e.Config.Zip)
	if err != nil {
		return nil, err
	}
	jarsignerBin, err := tool.FindJarsigner(e.Config.Jarsigner)
	if err != nil {
		return nil, err
	}
	tools := signer.Tools{Zip: zipBin, Jarsigner: jarsignerBin}
	return signer.New(&tool.ExecRunner{}, tools, e.Log), nil
}

// newVerifier builds a signer that only needs the signing tool; verification
// never touches the archive tool.
func (e *environment) newVerifier() (*signer.Signer, error) {
	jarsignerBin, err := tool.FindJarsigner(e.Config.Jarsigner)
	if err != nil {
		return nil, err
	}
	tools := signer.Tools{Jarsigner: jarsignerBin}
	return signer.New(&tool.ExecRunner{}, tools, e.Log), nil
}

// mapToolError converts tool and signer errors into CLI exit errors.
func mapToolError(err error) error {
	var nf *tool.NotFoundError
	if errors.As(err, &nf) {
		return errToolNotFound(nf)
	}
	var es *tool.ExitStatusError
	if errors.As(err, &es) {
		return errToolFailed(es)
	}
	var te *signer.TargetError
	if errors.As(err, &te) {
		return &ExitError{Code: exitError, Message: te.Error()}
	}
	return err
}
