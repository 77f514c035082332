package archive

import (
	"archive/zip"
	"fmt"
	"path"
	"sort"
	"strings"
)

// Info summarizes an archive's contents for display and verification.
type Info struct {
	Entries        int
	SignatureFiles []string
}

// IsSigned reports whether the archive carries signature metadata.
func (i *Info) IsSigned() bool {
	return len(i.SignatureFiles) > 0
}

// Inspect reads the archive's central directory and collects signature
// entries. The archive is not modified.
func Inspect(apkPath string) (*Info, error) {
	r, err := zip.OpenReader(apkPath)
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", apkPath, err)
	}
	defer r.Close()

	info := &Info{Entries: len(r.File)}
	for _, f := range r.File {
		if isSignatureEntry(f.Name) {
			info.SignatureFiles = append(info.SignatureFiles, f.Name)
		}
	}
	sort.Strings(info.SignatureFiles)
	return info, nil
}

// isSignatureEntry reports whether an entry name is a v1 signature file:
// a manifest signature or signature block under META-INF/.
func isSignatureEntry(name string) bool {
	if !strings.HasPrefix(name, "META-INF/") {
		return false
	}
	switch strings.ToUpper(path.Ext(name)) {
	case ".SF", ".RSA", ".DSA", ".EC":
		return true
	}
	return false
}
