package main

import (
	"fmt"
	"os"

	"github.com/apkforge/apksign/internal/keystore"
	"github.com/apkforge/apksign/internal/ui"
)

type KeysCmd struct{}

func (c *KeysCmd) Run() error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	defer env.Close()

	rows := make([][2]string, 0, len(keystore.Aliases()))
	for _, token := range keystore.Aliases() {
		alias, err := keystore.KeyAlias(token)
		if err != nil {
			return err
		}
		rows = append(rows, [2]string{token, alias})
	}
	ui.PrintAliasTable(rows)

	fmt.Fprintf(ui.Output, "%s %s\n", ui.Bold("Keystore:"), env.Config.Keystore)
	if _, err := os.Stat(env.Config.Keystore); err != nil {
		ui.PrintWarning("Keystore not found; ship apk.keystore beside the apksign binary")
	}
	return nil
}
