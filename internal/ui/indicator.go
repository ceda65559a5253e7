// internal/ui/indicator.go
package ui

import (
	"image/color"
	"time"

	"virus-hunter/internal/component"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StateIndicator is a coloured dot showing the session mode.
type StateIndicator struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// ModeColor maps a session mode to the indicator colour.
func ModeColor(mode component.Mode) color.RGBA {
	switch mode {
	case component.ModePlaying:
		return color.RGBA{34, 197, 94, 255}
	case component.ModePaused:
		return color.RGBA{234, 179, 8, 255}
	case component.ModeVictory:
		return color.RGBA{59, 130, 246, 255}
	case component.ModeGameOver, component.ModeFailed:
		return color.RGBA{220, 38, 38, 255}
	}
	return color.RGBA{148, 163, 184, 255}
}

// Draw отрисовывает индикатор
func (i *StateIndicator) Draw(screen *ebiten.Image, mode component.Mode) {
	r := i.Radius * clickScale(time.Since(i.LastClickTime).Seconds())
	vector.DrawFilledCircle(screen, i.X, i.Y, r, ModeColor(mode), true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, color.White, true)
}
