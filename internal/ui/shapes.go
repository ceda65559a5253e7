// internal/ui/shapes.go
package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var fillImg *ebiten.Image

func whitePixel() *ebiten.Image {
	if fillImg == nil {
		fillImg = ebiten.NewImage(1, 1)
		fillImg.Fill(color.White)
	}
	return fillImg
}

// fillPolygon fills the closed polygon given as x,y pairs.
func fillPolygon(target *ebiten.Image, clr color.RGBA, points ...float32) {
	path := vector.Path{}
	for i := 0; i+1 < len(points); i += 2 {
		if i == 0 {
			path.MoveTo(points[i], points[i+1])
		} else {
			path.LineTo(points[i], points[i+1])
		}
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].ColorR = float32(clr.R) / 255
		vs[i].ColorG = float32(clr.G) / 255
		vs[i].ColorB = float32(clr.B) / 255
		vs[i].ColorA = float32(clr.A) / 255
	}
	target.DrawTriangles(vs, is, whitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// drawCentered draws s centred on (x, y).
func drawCentered(target *ebiten.Image, s string, face font.Face, x, y int, clr color.Color) {
	b := text.BoundString(face, s)
	text.Draw(target, s, face, x-b.Dx()/2, y+b.Dy()/2, clr)
}

// clickScale: короткий отскок после клика.
func clickScale(elapsed float64) float32 {
	return float32(1.0 + 0.3*math.Exp(-elapsed*8))
}
