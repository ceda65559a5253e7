// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton показывает две полосы во время игры и треугольник на паузе.
type PauseButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	PauseColor    color.RGBA
	PlayColor     color.RGBA
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.RGBA) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

func (b *PauseButton) Draw(screen *ebiten.Image, paused bool) {
	scale := clickScale(time.Since(b.LastClickTime).Seconds())
	size := b.Size * scale

	if paused {
		fillPolygon(screen, b.PlayColor,
			b.X-size, b.Y-size*1.2,
			b.X-size, b.Y+size*1.2,
			b.X+size, b.Y,
		)
		return
	}
	width := size * 0.6
	height := size * 2.0
	spacing := size * 0.4
	vector.DrawFilledRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, b.PauseColor, false)
	vector.DrawFilledRect(screen, b.X+spacing/2, b.Y-height/2, width, height, b.PauseColor, false)
}

func (b *PauseButton) IsClicked(x, y int) bool {
	dx := float64(float32(x) - b.X)
	dy := float64(float32(y) - b.Y)
	return math.Hypot(dx, dy) <= float64(b.Size*1.5)
}

func (b *PauseButton) Clicked() {
	b.LastClickTime = time.Now()
}
