// internal/defs/visuals.go
package defs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Visuals содержит параметры отрисовки сущности. На симуляцию не влияет.
type Visuals struct {
	Color           HexColor `yaml:"color"`
	ProjectileColor HexColor `yaml:"projectile_color,omitempty"`
	Glyph           string   `yaml:"glyph,omitempty"`
}

// HexColor: цвет RGBA, в файлах каталога записывается как "#rrggbb".
type HexColor color.RGBA

// Color returns the colour as color.RGBA.
func (c HexColor) Color() color.RGBA {
	return color.RGBA(c)
}

// UnmarshalText parses "#rrggbb" or "#rrggbbaa".
func (c *HexColor) UnmarshalText(text []byte) error {
	parsed, err := ParseHexColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText writes the colour back as "#rrggbbaa".
func (c HexColor) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)), nil
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa".
func ParseHexColor(s string) (HexColor, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return HexColor{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return HexColor{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	if len(s) == 6 {
		return HexColor{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
	}
	return HexColor{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
