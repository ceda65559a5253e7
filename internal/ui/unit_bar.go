// internal/ui/unit_bar.go
package ui

import (
	"fmt"
	"image"
	"image/color"

	"virus-hunter/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	slotWidth   = 112
	slotHeight  = 44
	slotSpacing = 8
)

// UnitBar is the row of buttons for choosing which unit to place.
type UnitBar struct {
	Units []defs.UnitType
	Slots []*Button
}

func NewUnitBar(x, y int, units []defs.UnitType) *UnitBar {
	bar := &UnitBar{Units: units}
	for i, u := range units {
		minX := x + i*(slotWidth+slotSpacing)
		b := NewButton(image.Rect(minX, y, minX+slotWidth, y+slotHeight), fmt.Sprintf("%s %d", u.ID, u.Cost))
		bar.Slots = append(bar.Slots, b)
	}
	return bar
}

// SlotAt returns the unit whose slot contains (x, y).
func (b *UnitBar) SlotAt(x, y int) (defs.UnitType, bool) {
	for i, s := range b.Slots {
		if s.Contains(x, y) {
			return b.Units[i], true
		}
	}
	return defs.UnitType{}, false
}

// SetEnergy greys out what the player cannot afford.
func (b *UnitBar) SetEnergy(energy int) {
	for i, s := range b.Slots {
		s.Disabled = b.Units[i].Cost > energy
	}
}

func (b *UnitBar) Draw(screen *ebiten.Image, face font.Face, selected string, cursorX, cursorY int) {
	for i, s := range b.Slots {
		s.Draw(screen, face, cursorX, cursorY)
		u := b.Units[i]
		// цветная метка типа
		vector.DrawFilledRect(screen, float32(s.Rect.Min.X), float32(s.Rect.Min.Y), 6, float32(s.Rect.Dy()), u.Visuals.Color.Color(), false)
		if u.ID == selected {
			r := s.Rect
			vector.StrokeRect(screen, float32(r.Min.X)-2, float32(r.Min.Y)-2, float32(r.Dx())+4, float32(r.Dy())+4, 3, color.RGBA{250, 204, 21, 255}, false)
		}
	}
}
