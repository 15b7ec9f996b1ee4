package kolam

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Theme selects the background color.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

const (
	fallbackColor   = "#1f77b4"
	lightBackground = "#ffffff"
	darkBackground  = "#1a1a1a"
)

// ParseTheme maps any value other than "dark" to the light theme.
func ParseTheme(s string) Theme {
	if strings.EqualFold(strings.TrimSpace(s), string(ThemeDark)) {
		return ThemeDark
	}
	return ThemeLight
}

// Background returns the background hex color for the theme.
func (t Theme) Background() string {
	if t == ThemeDark {
		return darkBackground
	}
	return lightBackground
}

// ParseColor parses "#rgb" or "#rrggbb", with or without the leading '#'.
func ParseColor(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if s != "" && !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	s = strings.ToLower(s)
	if !isHexColor(s) {
		return colorful.Color{}, fmt.Errorf("%w %q", ErrInvalidColor, s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w %q", ErrInvalidColor, s)
	}
	return c, nil
}

// isHexColor reports whether s is '#' followed by exactly 3 or 6 hex digits.
// colorful.Hex alone accepts short and trailing input.
func isHexColor(s string) bool {
	if len(s) != 4 && len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return false
		}
	}
	return true
}

// withAlpha converts c to a non-premultiplied color with the given opacity.
func withAlpha(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(alpha*255 + 0.5)}
}
