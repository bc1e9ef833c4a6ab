package iconset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSizesTable(t *testing.T) {
	if len(Sizes) != 10 {
		t.Fatalf("len(Sizes) = %d, want 10", len(Sizes))
	}

	want := map[string]int{
		"icon_16x16.png":      16,
		"icon_16x16@2x.png":   32,
		"icon_32x32.png":      32,
		"icon_32x32@2x.png":   64,
		"icon_128x128.png":    128,
		"icon_128x128@2x.png": 256,
		"icon_256x256.png":    256,
		"icon_256x256@2x.png": 512,
		"icon_512x512.png":    512,
		"icon_512x512@2x.png": 1024,
	}
	for _, e := range Sizes {
		px, ok := want[e.Name]
		if !ok {
			t.Errorf("unexpected entry %q", e.Name)
			continue
		}
		if e.Px != px {
			t.Errorf("%s = %d px, want %d", e.Name, e.Px, px)
		}
		if !strings.HasSuffix(e.Name, ".png") {
			t.Errorf("%s is not a .png name", e.Name)
		}
	}
}

func TestSourceDir(t *testing.T) {
	got := SourceDir(filepath.Join("assets", "icons"), "app")
	want := filepath.Join("assets", "icons", "app.iconset")
	if got != want {
		t.Errorf("SourceDir = %q, want %q", got, want)
	}
}

func TestBundlePath(t *testing.T) {
	src := filepath.Join("assets", "icons", "app.iconset")
	got := BundlePath(src)
	want := filepath.Join("assets", "icons", "app.icns")
	if got != want {
		t.Errorf("BundlePath = %q, want %q", got, want)
	}
}

func TestEnsureDirIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "app.iconset")

	if err := EnsureDir(dir); err != nil {
		t.Fatalf("first EnsureDir: %v", err)
	}
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("second EnsureDir on existing directory: %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if !info.IsDir() {
		t.Error("EnsureDir did not create a directory")
	}
}
