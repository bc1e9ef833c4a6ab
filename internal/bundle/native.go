package bundle

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/jackmordaunt/icns/v3"

	"github.com/Mavwarf/mkicns/internal/iconset"
)

// Native compiles iconsets in-process with the icns encoder. It feeds
// the largest PNG present in the iconset directory to the encoder,
// which derives the smaller representations itself. Lets the tool
// produce a bundle on hosts without iconutil.
type Native struct{}

// Compile encodes the iconset at sourceDir into icnsPath.
func (Native) Compile(sourceDir, icnsPath string) error {
	src, err := largestImage(sourceDir)
	if err != nil {
		return err
	}
	out, err := os.Create(icnsPath)
	if err != nil {
		return err
	}
	if err := icns.Encode(out, src); err != nil {
		out.Close()
		os.Remove(icnsPath)
		return fmt.Errorf("icns encode: %w", err)
	}
	return out.Close()
}

// largestImage decodes the biggest size entry that exists on disk.
func largestImage(sourceDir string) (image.Image, error) {
	for i := len(iconset.Sizes) - 1; i >= 0; i-- {
		p := filepath.Join(sourceDir, iconset.Sizes[i].Name)
		f, err := os.Open(p)
		if err != nil {
			continue
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", p, err)
		}
		return img, nil
	}
	return nil, fmt.Errorf("no images found in %s", sourceDir)
}
