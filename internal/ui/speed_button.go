// internal/ui/speed_button.go
package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// SpeedButton shows the game speed as a double arrow coloured per speed.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	StateColors   []color.RGBA
	Speeds        []float64
}

func NewSpeedButton(x, y, size float32, speeds []float64, stateColors []color.RGBA) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
		Speeds:      speeds,
	}
}

func (b *SpeedButton) Draw(screen *ebiten.Image, face font.Face, speed float64) {
	scale := clickScale(time.Since(b.LastClickTime).Seconds())
	size := b.Size * scale
	clr := b.colorFor(speed)

	height := size * 1.2
	width := size
	offset := width * 0.8

	// левый и правый треугольники
	for _, dx := range []float32{0, offset} {
		fillPolygon(screen, clr,
			b.X-width+dx, b.Y-height/2,
			b.X+dx, b.Y,
			b.X-width+dx, b.Y+height/2,
		)
	}
	drawCentered(screen, fmt.Sprintf("x%g", speed), face, int(b.X), int(b.Y+height/2+10), color.White)
}

func (b *SpeedButton) colorFor(speed float64) color.RGBA {
	for i, s := range b.Speeds {
		if s == speed && i < len(b.StateColors) {
			return b.StateColors[i]
		}
	}
	return color.RGBA{148, 163, 184, 255}
}

// IsClicked uses a circle for the hit test since the shape is irregular.
func (b *SpeedButton) IsClicked(x, y int) bool {
	dx := float64(float32(x) - b.X)
	dy := float64(float32(y) - b.Y)
	return math.Hypot(dx, dy) <= float64(b.Size*1.5)
}

func (b *SpeedButton) Clicked() {
	b.LastClickTime = time.Now()
}
