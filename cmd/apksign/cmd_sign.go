package main

import (
	"context"
	"fmt"
	"os"

	"github.com/apkforge/apksign/internal/keystore"
	"github.com/apkforge/apksign/internal/ui"
)

type SignCmd struct {
	Apk   string `arg:"" predictor:"apk" help:"APK archive to re-sign (modified in place)"`
	Alias string `arg:"" optional:"" predictor:"alias" help:"Key alias: test or platform (default test)"`
}

func (c *SignCmd) Run() error {
	// Alias validation comes first: a bad token must not touch the
	// filesystem or reach either external tool.
	keyAlias, err := keystore.KeyAlias(c.Alias)
	if err != nil {
		return errInvalidAlias(c.Alias)
	}

	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	defer env.Close()

	id := &keystore.Identity{
		KeystorePath: env.Config.Keystore,
		Passphrase:   env.Config.Storepass,
		KeyAlias:     keyAlias,
	}
	if _, err := os.Stat(id.KeystorePath); err != nil {
		return errKeystoreMissing(id.KeystorePath)
	}

	s, err := env.newSigner()
	if err != nil {
		return mapToolError(err)
	}

	ui.PrintInfo(fmt.Sprintf("Signing %s with %s...", c.Apk, keyAlias))
	if err := s.Sign(context.Background(), c.Apk, id); err != nil {
		return mapToolError(err)
	}
	ui.PrintSuccess(fmt.Sprintf("Signed %s", c.Apk))
	return nil
}
