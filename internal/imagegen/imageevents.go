package imagegen

import (
	"fmt"
	"image/color"
	"os/exec"
	"strings"
)

// ImageEvents renders placeholders by scripting the macOS
// "Image Events" application through osascript.
type ImageEvents struct {
	Color color.NRGBA
}

// Create runs osascript to produce a px×px PNG at path. Returns an
// error if osascript is missing or the script fails; the caller
// decides whether that stops the run.
func (g ImageEvents) Create(path string, px int) error {
	if _, err := exec.LookPath("osascript"); err != nil {
		return fmt.Errorf("osascript not found on PATH: %w", err)
	}
	cmd := exec.Command("osascript", "-e", Script(path, px, g.Color))
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("image events: %w\n%s", err, out)
	}
	return nil
}

// Script returns the AppleScript that creates a px×px canvas filled
// with c and saves it as PNG at path.
func Script(path string, px int, c color.NRGBA) string {
	return fmt.Sprintf(`tell application "Image Events"
	launch
	set newImage to make new image with properties {dimensions:{%d, %d}, color depth:color}
	tell newImage
		fill with color {%d, %d, %d}
	end tell
	save newImage as PNG in POSIX file "%s"
	close newImage
end tell`, px, px, c.R, c.G, c.B, escapeAppleScript(path))
}

// escapeAppleScript escapes backslashes and double quotes for safe
// embedding inside AppleScript string literals.
func escapeAppleScript(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
