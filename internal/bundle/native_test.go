package bundle

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/Mavwarf/mkicns/internal/iconset"
	"github.com/Mavwarf/mkicns/internal/imagegen"
)

func TestNativeCompile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "app.iconset")
	if err := os.Mkdir(src, 0755); err != nil {
		t.Fatal(err)
	}

	solid := imagegen.Solid{Color: color.NRGBA{R: 6, G: 182, B: 212, A: 255}}
	for _, e := range iconset.Sizes {
		if err := solid.Create(filepath.Join(src, e.Name), e.Px); err != nil {
			t.Fatalf("rendering %s: %v", e.Name, err)
		}
	}

	icnsPath := filepath.Join(dir, "app.icns")
	if err := (Native{}).Compile(src, icnsPath); err != nil {
		t.Fatalf("Compile: %v", err)
	}

	data, err := os.ReadFile(icnsPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(data) < 8 || string(data[:4]) != "icns" {
		t.Errorf("output does not start with icns magic (%d bytes)", len(data))
	}
}

func TestNativeCompilePartialIconset(t *testing.T) {
	// Only the smallest size exists; the encoder should still get fed.
	dir := t.TempDir()
	src := filepath.Join(dir, "app.iconset")
	if err := os.Mkdir(src, 0755); err != nil {
		t.Fatal(err)
	}
	solid := imagegen.Solid{Color: color.NRGBA{R: 255, A: 255}}
	if err := solid.Create(filepath.Join(src, "icon_16x16.png"), 16); err != nil {
		t.Fatal(err)
	}

	icnsPath := filepath.Join(dir, "app.icns")
	if err := (Native{}).Compile(src, icnsPath); err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if _, err := os.Stat(icnsPath); err != nil {
		t.Errorf("bundle not written: %v", err)
	}
}

func TestNativeCompileEmptyDir(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "app.iconset")
	if err := os.Mkdir(src, 0755); err != nil {
		t.Fatal(err)
	}

	err := (Native{}).Compile(src, filepath.Join(dir, "app.icns"))
	if err == nil {
		t.Fatal("expected error for empty iconset directory")
	}
}
