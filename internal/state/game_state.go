// internal/state/game_state.go
package state

import (
	"fmt"
	"log"
	"time"

	"virus-hunter/internal/app"
	"virus-hunter/internal/config"
	"virus-hunter/internal/types"
	"virus-hunter/internal/ui"
	"virus-hunter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

var unitKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}

// GameState: состояние игры
type GameState struct {
	sm   *StateMachine
	ctx  *Context
	snap app.Snapshot

	selectedType string         // тип юнита для установки
	selectedUnit types.EntityID // выбранный установленный юнит
	message      string
	messageUntil time.Time
}

func NewGameState(sm *StateMachine, ctx *Context) *GameState {
	return &GameState{sm: sm, ctx: ctx}
}

func (g *GameState) Enter() {
	g.snap = g.ctx.Game.Snapshot()
}

func (g *GameState) Update(deltaTime float64) {
	game := g.ctx.Game

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.togglePause()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		game.CycleSpeed()
		g.ctx.HUD.Speed.Clicked()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.selectedType = ""
		g.selectedUnit = 0
	}
	units := game.Catalog().UnitTypes()
	for i, key := range unitKeys {
		if i < len(units) && inpututil.IsKeyJustPressed(key) {
			g.selectedType = units[i].ID
			g.selectedUnit = 0
		}
	}

	if err := game.Update(deltaTime); err != nil {
		log.Printf("Engine stopped: %v", err)
	}
	g.snap = game.Snapshot()
	g.ctx.HUD.Sync(g.snap, g.selectedView())

	if g.snap.Mode.Terminal() {
		g.sm.SetState(NewResultState(g.sm, g.ctx))
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.ctx.HUD.Contains(x, y) {
			g.handleUIClick(g.ctx.HUD.HitTest(x, y))
		} else {
			g.handleFieldClick(x, y)
		}
	}
}

func (g *GameState) handleUIClick(action ui.Action) {
	game := g.ctx.Game
	switch action.Kind {
	case ui.ActionSelectUnit:
		g.selectedType = action.UnitID
		g.selectedUnit = 0
	case ui.ActionAbility:
		if game.ActivateAbility(g.selectedUnit) {
			g.ctx.HUD.State.LastClickTime = time.Now()
		}
	case ui.ActionSpeed:
		game.CycleSpeed()
		g.ctx.HUD.Speed.Clicked()
	case ui.ActionPause:
		g.togglePause()
	}
}

func (g *GameState) handleFieldClick(x, y int) {
	game := g.ctx.Game
	cell := game.Grid().CellAt(float64(x), float64(y))
	if id, ok := game.UnitAt(cell); ok {
		g.selectedUnit = id
		g.selectedType = ""
		return
	}
	g.selectedUnit = 0
	if g.selectedType == "" {
		return
	}
	if _, r := game.PlaceUnit(cell, g.selectedType); !r.OK() {
		g.flash(fmt.Sprintf("Cannot place here: %s", r))
	}
}

func (g *GameState) togglePause() {
	if g.ctx.Game.TogglePause() {
		g.ctx.HUD.Pause.Clicked()
		g.sm.SetState(NewPauseState(g.sm, g))
	}
}

func (g *GameState) flash(msg string) {
	g.message = msg
	g.messageUntil = time.Now().Add(2 * time.Second)
}

func (g *GameState) selectedView() *app.UnitView {
	if g.selectedUnit == 0 {
		return nil
	}
	for i := range g.snap.Units {
		if g.snap.Units[i].ID == g.selectedUnit {
			return &g.snap.Units[i]
		}
	}
	return nil
}

// hover строит превью установки для клетки под курсором.
func (g *GameState) hover() render.Hover {
	game := g.ctx.Game
	x, y := ebiten.CursorPosition()
	if y >= config.CanvasHeight {
		return render.Hover{}
	}
	cell := game.Grid().CellAt(float64(x), float64(y))
	if u := g.selectedView(); u != nil {
		return render.Hover{Show: true, Cell: u.Cell, Valid: true, Range: u.Range}
	}
	if g.selectedType == "" {
		return render.Hover{}
	}
	def := game.Catalog().MustUnitType(g.selectedType)
	return render.Hover{
		Show:  true,
		Cell:  cell,
		Valid: game.CheckPlacement(cell, g.selectedType).OK(),
		Range: def.Range,
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.ctx.Renderer.Draw(screen, g.snap, g.hover())
	x, y := ebiten.CursorPosition()
	g.ctx.HUD.Draw(screen, g.snap, g.selectedType, x, y)

	if g.message != "" && time.Now().Before(g.messageUntil) {
		text.Draw(screen, g.message, g.ctx.Face, 10, config.CanvasHeight-12, config.MutatedRingColor)
	}
}

func (g *GameState) Exit() {}

