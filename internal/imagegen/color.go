package imagegen

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseHexColor parses "#rgb" or "#rrggbb" into an opaque NRGBA.
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	var r, g, b uint64
	var err error
	switch len(hex) {
	case 3:
		r, g, b, err = parseHexChannels(hex, 1)
		r, g, b = r*17, g*17, b*17
	case 6:
		r, g, b, err = parseHexChannels(hex, 2)
	default:
		return color.NRGBA{}, fmt.Errorf("invalid color %q (want #rgb or #rrggbb)", s)
	}
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}, nil
}

func parseHexChannels(hex string, width int) (r, g, b uint64, err error) {
	if r, err = strconv.ParseUint(hex[:width], 16, 8); err != nil {
		return
	}
	if g, err = strconv.ParseUint(hex[width:2*width], 16, 8); err != nil {
		return
	}
	b, err = strconv.ParseUint(hex[2*width:], 16, 8)
	return
}
