package main

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/apkforge/apksign/internal/archive"
	"github.com/apkforge/apksign/internal/ui"
	"github.com/avast/apkparser"
)

type InfoCmd struct {
	Apk string `arg:"" predictor:"apk" help:"APK archive to inspect"`
}

// apkManifest captures the attributes we display from the binary
// AndroidManifest.xml.
type apkManifest struct {
	XMLName     xml.Name `xml:"manifest"`
	Package     string   `xml:"package,attr"`
	VersionName string   `xml:"versionName,attr"`
}

func (c *InfoCmd) Run() error {
	info, err := archive.Inspect(c.Apk)
	if err != nil {
		return &ExitError{Code: exitError, Message: err.Error()}
	}

	var manifestXML bytes.Buffer
	enc := xml.NewEncoder(&manifestXML)
	zipErr, resErr, manErr := apkparser.ParseApk(c.Apk, enc)
	if zipErr != nil {
		return &ExitError{Code: exitError, Message: fmt.Sprintf("unzip %s: %v", c.Apk, zipErr)}
	}
	if manErr != nil {
		return &ExitError{Code: exitError, Message: fmt.Sprintf("parse AndroidManifest.xml: %v", manErr)}
	}
	if resErr != nil {
		// Resource table problems leave attribute references unresolved
		// but the package name still comes through.
		ui.PrintWarning(fmt.Sprintf("resource table: %v", resErr))
	}
	enc.Flush()

	var m apkManifest
	if err := xml.Unmarshal(manifestXML.Bytes(), &m); err != nil {
		return &ExitError{Code: exitError, Message: fmt.Sprintf("decode AndroidManifest.xml: %v", err)}
	}

	fmt.Fprintf(ui.Output, "%s %s\n", ui.Bold("Package:"), m.Package)
	if m.VersionName != "" {
		fmt.Fprintf(ui.Output, "%s %s\n", ui.Bold("Version:"), m.VersionName)
	}
	fmt.Fprintf(ui.Output, "%s %d\n", ui.Bold("Entries:"), info.Entries)
	fmt.Fprintf(ui.Output, "%s %s\n", ui.Bold("Signature:"), ui.SignedBadge(info.IsSigned()))
	for _, name := range info.SignatureFiles {
		fmt.Fprintf(ui.Output, "  %s\n", ui.Dim(name))
	}
	return nil
}
