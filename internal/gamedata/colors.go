package gamedata

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// fogBackdrop is the dark slate the map fades into outside the current
// field of view. Dimmed variants are blended toward it in Lab space so
// hues stay recognizable instead of just losing brightness.
const fogBackdrop = "#0F172A"

// fogBlend is how far a dimmed color sits between its bright form and
// the backdrop (0 = unchanged, 1 = backdrop).
const fogBlend = 0.6

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return tcellColor(c), nil
}

// MustParseHexColor converts a hex color string to tcell.Color, panicking on error.
func MustParseHexColor(hex string) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return color
}

// DimHexColor returns the fog-of-war variant of a hex color: the same hue
// pulled toward the map backdrop, for tiles remembered but not in view.
func DimHexColor(hex string) (tcell.Color, error) {
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	backdrop, err := colorful.Hex(fogBackdrop)
	if err != nil {
		return tcell.ColorDefault, err
	}
	return tcellColor(c.BlendLab(backdrop, fogBlend).Clamped()), nil
}

// MustDimHexColor returns the fog-of-war variant, panicking on error.
func MustDimHexColor(hex string) tcell.Color {
	color, err := DimHexColor(hex)
	if err != nil {
		panic(err)
	}
	return color
}

// tcellColor converts a colorful.Color to tcell's RGB representation.
func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
