package turtle

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrUnknownColor is returned by ParseColor for names and hex strings it
// cannot interpret.
var ErrUnknownColor = errors.New("unknown color")

// ColorFromRGBA converts a straight-alpha 8-bit color.
func ColorFromRGBA(c color.RGBA) Color {
	return Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}

// ParseColor interprets s as an SVG/X11 color name ("teal", "gray", "gold")
// or a hex string in #rgb, #rrggbb or #rrggbbaa form. Names are matched
// case-insensitively and may contain spaces ("light gray").
func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(name, "#") {
		return parseHex(s, name[1:])
	}
	name = strings.ReplaceAll(name, " ", "")
	if c, ok := colornames.Map[name]; ok {
		return ColorFromRGBA(c), nil
	}
	return Color{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

// MustParseColor is like ParseColor but panics on error. It is meant for
// color literals.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHex(orig, hex string) (Color, error) {
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]}) + "ff"
	case 6:
		hex += "ff"
	case 8:
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrUnknownColor, orig)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrUnknownColor, orig)
	}
	return ColorFromRGBA(color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}), nil
}

// logoPalette is the classic numbered Logo color table.
var logoPalette = [...]string{
	"black", "blue", "lime", "cyan", "red", "magenta", "yellow", "white",
	"brown", "tan", "forestgreen", "aqua", "salmon", "violet", "orange", "gray",
	"navy", "skyblue", "limegreen", "steelblue", "chocolate", "purple", "gold", "lightgray",
	"peru", "wheat", "palegreen", "lightblue", "khaki", "pink", "lawngreen", "olive",
}

// LogoColorCount is the number of entries in the numbered Logo palette.
const LogoColorCount = len(logoPalette)

// LogoColor returns entry n of the numbered Logo palette (0 black, 1 blue,
// 4 red, 7 white, ...). n wraps modulo LogoColorCount.
func LogoColor(n int) Color {
	n %= LogoColorCount
	if n < 0 {
		n += LogoColorCount
	}
	return ColorFromRGBA(colornames.Map[logoPalette[n]])
}
