// internal/ui/wave_indicator.go
package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             int
	Color            color.RGBA
	LastColor        color.RGBA
	OutlineColor     color.RGBA
	OutlineThickness int
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y int) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            color.RGBA{59, 130, 246, 255},
		LastColor:        color.RGBA{220, 38, 38, 255},
		OutlineColor:     color.RGBA{255, 255, 255, 255},
		OutlineThickness: 1,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Label returns the indicator text, e.g. "Wave III / 5".
func (i *WaveIndicator) Label(wave, total int) string {
	return fmt.Sprintf("Wave %s / %d", toRoman(wave), total)
}

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(screen *ebiten.Image, face font.Face, wave, total int) {
	if wave <= 0 {
		return
	}
	label := i.Label(wave, total)

	// последняя волна выделяется цветом
	textColor := i.Color
	if wave >= total {
		textColor = i.LastColor
	}

	t := i.OutlineThickness
	for y := -t; y <= t; y++ {
		for x := -t; x <= t; x++ {
			if x == 0 && y == 0 {
				continue
			}
			drawCentered(screen, label, face, i.X+x, i.Y+y, i.OutlineColor)
		}
	}
	drawCentered(screen, label, face, i.X, i.Y, textColor)
}
