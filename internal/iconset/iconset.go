// Package iconset defines the macOS iconset layout: the fixed set of
// icon sizes and the path conventions for the source directory and
// the compiled bundle.
package iconset

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// SourceSuffix is the directory extension iconutil expects.
	SourceSuffix = ".iconset"
	// BundleSuffix is the extension of the compiled icon bundle.
	BundleSuffix = ".icns"

	DirPerm = 0755
)

// Entry pairs an iconset filename with its pixel dimension.
type Entry struct {
	Name string
	Px   int
}

// Sizes is the set of images a macOS iconset must contain, in
// generation order. The @2x entries double the nominal size.
var Sizes = []Entry{
	{"icon_16x16.png", 16},
	{"icon_16x16@2x.png", 32},
	{"icon_32x32.png", 32},
	{"icon_32x32@2x.png", 64},
	{"icon_128x128.png", 128},
	{"icon_128x128@2x.png", 256},
	{"icon_256x256.png", 256},
	{"icon_256x256@2x.png", 512},
	{"icon_512x512.png", 512},
	{"icon_512x512@2x.png", 1024},
}

// SourceDir returns the iconset directory for a bundle name under dir.
func SourceDir(dir, name string) string {
	return filepath.Join(dir, name+SourceSuffix)
}

// BundlePath returns the .icns path for an iconset directory: same
// parent, source suffix replaced by the bundle suffix.
func BundlePath(sourceDir string) string {
	return strings.TrimSuffix(sourceDir, SourceSuffix) + BundleSuffix
}

// EnsureDir creates the iconset directory and any missing parents.
// Calling it again for an existing directory is a no-op.
func EnsureDir(sourceDir string) error {
	return os.MkdirAll(sourceDir, DirPerm)
}
