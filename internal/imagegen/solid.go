// Package imagegen renders the placeholder images that fill an
// iconset: solid-color squares, either in-process or by scripting the
// macOS Image Events application.
package imagegen

import (
	"image/color"

	"github.com/disintegration/imaging"
)

// Solid renders placeholders in-process: a square canvas filled with
// a single color, saved as PNG. Works on any host.
type Solid struct {
	Color color.NRGBA
}

// Create writes a px×px PNG at path.
func (s Solid) Create(path string, px int) error {
	img := imaging.New(px, px, s.Color)
	return imaging.Save(img, path)
}
