package imagegen

import (
	"image/color"
	"os/exec"
	"strings"
	"testing"
)

func TestScriptContents(t *testing.T) {
	accent := color.NRGBA{R: 6, G: 182, B: 212, A: 255}
	script := Script("/tmp/icons/app.iconset/icon_32x32.png", 32, accent)

	for _, want := range []string{
		`tell application "Image Events"`,
		"dimensions:{32, 32}",
		"fill with color {6, 182, 212}",
		`save newImage as PNG in POSIX file "/tmp/icons/app.iconset/icon_32x32.png"`,
		"close newImage",
	} {
		if !strings.Contains(script, want) {
			t.Errorf("script missing %q:\n%s", want, script)
		}
	}
}

func TestScriptEscapesPath(t *testing.T) {
	script := Script(`/tmp/we"ird/icon.png`, 16, color.NRGBA{})
	if !strings.Contains(script, `POSIX file "/tmp/we\"ird/icon.png"`) {
		t.Errorf("quote not escaped:\n%s", script)
	}
}

func TestImageEventsMissingOsascript(t *testing.T) {
	if _, err := exec.LookPath("osascript"); err == nil {
		t.Skip("osascript is installed, skipping missing-tool test")
	}

	err := (ImageEvents{}).Create(t.TempDir()+"/icon.png", 16)
	if err == nil {
		t.Fatal("expected error when osascript is not installed")
	}
	if !strings.Contains(err.Error(), "osascript not found") {
		t.Errorf("error should mention osascript, got: %v", err)
	}
}
