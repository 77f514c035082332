package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/apkforge/apksign/internal/keystore"
	"github.com/apkforge/apksign/internal/ui"
	"github.com/willabides/kongplete"
)

var (
	version = "dev"
	commit  = "unknown"
)

type CLI struct {
	Sign   SignCmd   `cmd:"" default:"withargs" help:"Re-sign an APK with the bundled keystore (default command)"`
	Verify VerifyCmd `cmd:"" help:"Verify an APK's signature"`
	Info   InfoCmd   `cmd:"" help:"Show APK package details"`
	Keys   KeysCmd   `cmd:"" help:"List key aliases and the keystore location"`

	Version            VersionCmd                   `cmd:"" help:"Show version"`
	InstallCompletions kongplete.InstallCompletions `cmd:"" help:"Install shell completions"`
}

func main() {
	// Historical surface: a bare invocation prints usage and exits clean.
	// Callers have scripted against the zero status.
	if len(os.Args) == 1 {
		printUsage()
		os.Exit(exitSuccess)
	}

	cli := CLI{}
	parser := kong.Must(&cli,
		kong.Name("apksign"),
		kong.Description("Sign an APK with the well-known Android test keystore"),
		kong.UsageOnError(),
	)

	kongplete.Complete(parser,
		kongplete.WithPredictor("alias", aliasPredictor()),
		kongplete.WithPredictor("apk", apkPredictor()),
	)

	ctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitError)
	}

	if err := ctx.Run(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintf(os.Stderr, "Error: %s\n", exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitError)
	}
}

// printUsage prints the historical one-screen usage for the bare
// invocation. Subcommand help stays with kong.
func printUsage() {
	fmt.Fprintf(ui.Output, "Usage: apksign <archive.apk> [<alias>]\n")
	fmt.Fprintf(ui.Output, "  <alias> selects the signing key: %s (default %q)\n",
		strings.Join(keystore.Aliases(), " or "), keystore.DefaultAlias)
	fmt.Fprintf(ui.Output, "Run 'apksign --help' for the full command list.\n")
}
