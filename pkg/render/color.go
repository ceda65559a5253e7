// pkg/render/color.go
package render

import (
	"image/color"

	"virus-hunter/internal/config"
)

// Palette holds the colours of everything drawn on the field that does not
// come from the catalog.
type Palette struct {
	Background   color.RGBA
	Path         color.RGBA
	PathLine     color.RGBA
	HoverOK      color.RGBA
	HoverBad     color.RGBA
	UnitStroke   color.RGBA
	SlowRing     color.RGBA
	ToxinRing    color.RGBA
	BuffAura     color.RGBA
	MutatedRing  color.RGBA
	HealthBack   color.RGBA
	HealthFront  color.RGBA
	PathWidth    float32
	UnitRadius   float32
	StrokeWidth  float32
	HealthBarLen float32
}

// DefaultPalette берёт цвета поля из config.
func DefaultPalette() Palette {
	return Palette{
		Background:   config.BackgroundColor,
		Path:         config.PathColor,
		PathLine:     config.PathLineColor,
		HoverOK:      config.GridHoverOK,
		HoverBad:     config.GridHoverBad,
		UnitStroke:   config.TowerStrokeColor,
		SlowRing:     config.SlowRingColor,
		ToxinRing:    config.ToxinRingColor,
		BuffAura:     config.BuffAuraColor,
		MutatedRing:  config.MutatedRingColor,
		HealthBack:   config.HealthBarBack,
		HealthFront:  config.HealthBarFront,
		PathWidth:    float32(config.PathClearance * 2),
		UnitRadius:   15,
		StrokeWidth:  2,
		HealthBarLen: 24,
	}
}

// DarkenColor уменьшает яркость цвета.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha returns c with its alpha replaced.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}

// HealthColor идёт от зелёного к красному по мере падения fraction.
func HealthColor(fraction float64) color.RGBA {
	switch {
	case fraction > 0.6:
		return config.HealthBarFront
	case fraction > 0.3:
		return color.RGBA{234, 179, 8, 255}
	default:
		return color.RGBA{220, 38, 38, 255}
	}
}
