// Package bundle compiles an iconset directory into a single .icns
// file, either through the macOS iconutil tool or a pure-Go encoder.
package bundle

import (
	"fmt"
	"os/exec"
)

// Iconutil compiles iconsets with the system iconutil tool.
type Iconutil struct{}

// Compile runs iconutil -c icns on sourceDir, writing icnsPath.
// Returns an error if iconutil is not found on PATH.
func (Iconutil) Compile(sourceDir, icnsPath string) error {
	if _, err := exec.LookPath("iconutil"); err != nil {
		return fmt.Errorf("iconutil not found on PATH: %w", err)
	}
	cmd := exec.Command("iconutil", "-c", "icns", sourceDir, "-o", icnsPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("iconutil: %w\n%s", err, out)
	}
	return nil
}
