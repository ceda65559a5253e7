// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect       image.Rectangle
	Text       string
	TextColor  color.RGBA
	BgColor    color.RGBA
	HoverColor color.RGBA
	Disabled   bool
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, text string) *Button {
	return &Button{
		Rect:       rect,
		Text:       text,
		TextColor:  color.RGBA{15, 23, 42, 255},
		BgColor:    color.RGBA{203, 213, 225, 255},
		HoverColor: color.RGBA{148, 163, 184, 255},
	}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image, face font.Face, cursorX, cursorY int) {
	bg := b.BgColor
	if b.Disabled {
		bg.A = 90
	} else if b.Contains(cursorX, cursorY) {
		bg = b.HoverColor
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 2, color.RGBA{71, 85, 105, 255}, false)

	c := b.Rect.Min.Add(b.Rect.Max).Div(2)
	drawCentered(screen, b.Text, face, c.X, c.Y, b.TextColor)
}
