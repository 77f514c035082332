package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	color.NoColor = true
	var buf bytes.Buffer
	old := Output
	Output = &buf
	t.Cleanup(func() {
		Output = old
		color.NoColor = false
	})
	return &buf
}

func TestSignedBadge(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	if got := SignedBadge(true); !strings.Contains(got, "signed") {
		t.Errorf("SignedBadge(true) = %q, want to contain 'signed'", got)
	}
	if got := SignedBadge(false); !strings.Contains(got, "unsigned") {
		t.Errorf("SignedBadge(false) = %q, want to contain 'unsigned'", got)
	}
}

func TestPrintAliasTable(t *testing.T) {
	buf := captureOutput(t)

	PrintAliasTable([][2]string{
		{"test", "android.testkey"},
		{"platform", "android.platformkey"},
	})

	out := buf.String()
	for _, want := range []string{"test", "android.testkey", "platform", "android.platformkey"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q should contain %q", out, want)
		}
	}
}

func TestPrintMessages(t *testing.T) {
	tests := []struct {
		name   string
		print  func(string)
		marker string
	}{
		{"success", PrintSuccess, "✓"},
		{"error", PrintError, "✗"},
		{"warning", PrintWarning, "⚠"},
		{"info", PrintInfo, "•"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureOutput(t)

			tt.print("the message")

			out := buf.String()
			if !strings.Contains(out, tt.marker) {
				t.Errorf("output %q should contain marker %q", out, tt.marker)
			}
			if !strings.Contains(out, "the message") {
				t.Errorf("output %q should contain the message", out)
			}
		})
	}
}
