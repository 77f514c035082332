// Package archive strips and inspects APK archives.
package archive

import (
	"context"

	"github.com/apkforge/apksign/internal/tool"
)

const (
	// SignaturePattern matches every entry under the signature metadata
	// directory. Stale entries must be deleted before re-signing or the
	// old manifests sit alongside the new signature.
	SignaturePattern = "META-INF*"

	// zipNothingToDo is the zip exit status when no entries matched the
	// deletion pattern. A never-signed APK has nothing to strip, so this
	// is not a failure.
	zipNothingToDo = 12
)

// StripSignature deletes existing signature entries from the archive in
// place, quietly. Absence of signature entries is not an error.
func StripSignature(ctx context.Context, r tool.Runner, zipBin, apkPath string) error {
	code, err := r.Run(ctx, zipBin, "-d", "-q", apkPath, SignaturePattern)
	if err != nil {
		return err
	}
	if code != 0 && code != zipNothingToDo {
		return &tool.ExitStatusError{Tool: "zip", Code: code}
	}
	return nil
}
