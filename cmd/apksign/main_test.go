package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/apkforge/apksign/internal/ui"
	"github.com/fatih/color"
)

func captureUI(t *testing.T) *bytes.Buffer {
	t.Helper()
	color.NoColor = true
	var buf bytes.Buffer
	old := ui.Output
	ui.Output = &buf
	t.Cleanup(func() {
		ui.Output = old
		color.NoColor = false
	})
	return &buf
}

func TestPrintUsage(t *testing.T) {
	buf := captureUI(t)

	printUsage()

	out := buf.String()
	for _, want := range []string{"Usage:", "test", "platform"} {
		if !strings.Contains(out, want) {
			t.Errorf("usage output %q should contain %q", out, want)
		}
	}
}
