package main

import (
	"context"
	"fmt"

	"github.com/apkforge/apksign/internal/archive"
	"github.com/apkforge/apksign/internal/ui"
)

type VerifyCmd struct {
	Apk string `arg:"" predictor:"apk" help:"APK archive to verify"`
}

func (c *VerifyCmd) Run() error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	defer env.Close()

	// Cheap native check before spinning up the JDK: an archive without
	// signature entries can't verify.
	info, err := archive.Inspect(c.Apk)
	if err != nil {
		return &ExitError{Code: exitError, Message: err.Error()}
	}
	if !info.IsSigned() {
		return &ExitError{
			Code:    exitError,
			Message: fmt.Sprintf("%s has no signature entries", c.Apk),
		}
	}

	s, err := env.newVerifier()
	if err != nil {
		return mapToolError(err)
	}
	if err := s.Verify(context.Background(), c.Apk); err != nil {
		return mapToolError(err)
	}

	ui.PrintSuccess(fmt.Sprintf("%s: signature verified", c.Apk))
	return nil
}
