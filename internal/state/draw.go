// internal/state/draw.go
package state

import (
	"virus-hunter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// drawTitle centres a line of text horizontally at baseline y.
func drawTitle(screen *ebiten.Image, ctx *Context, s string, y int) {
	b := text.BoundString(ctx.Face, s)
	text.Draw(screen, s, ctx.Face, (config.ScreenWidth-b.Dx())/2, y, config.TextLightColor)
}
