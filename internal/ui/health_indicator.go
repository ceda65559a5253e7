// internal/ui/health_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// HealthIndicator отображает здоровье кожи полосой с подписью.
type HealthIndicator struct {
	X, Y          float32
	Width, Height float32
}

func NewHealthIndicator(x, y, width, height float32) *HealthIndicator {
	return &HealthIndicator{X: x, Y: y, Width: width, Height: height}
}

// Draw рисует полосу: зелёная выше половины, красная ниже.
func (i *HealthIndicator) Draw(screen *ebiten.Image, face font.Face, health, maxHealth int) {
	frac := float32(0)
	if maxHealth > 0 {
		frac = float32(health) / float32(maxHealth)
	}
	fill := color.RGBA{34, 197, 94, 255}
	if frac <= 0.5 {
		fill = color.RGBA{220, 38, 38, 255}
	}
	vector.DrawFilledRect(screen, i.X, i.Y, i.Width, i.Height, color.RGBA{0, 0, 0, 120}, false)
	vector.DrawFilledRect(screen, i.X, i.Y, i.Width*frac, i.Height, fill, false)
	vector.StrokeRect(screen, i.X, i.Y, i.Width, i.Height, 1, color.White, false)

	label := fmt.Sprintf("Skin %d/%d", health, maxHealth)
	text.Draw(screen, label, face, int(i.X)+4, int(i.Y+i.Height)-3, color.White)
}
