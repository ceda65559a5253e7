// internal/state/menu_state.go
package state

import (
	"image"
	"log"

	"virus-hunter/internal/config"
	"virus-hunter/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var levelKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}

// MenuState: выбор сложности
type MenuState struct {
	sm      *StateMachine
	ctx     *Context
	levels  []config.Level
	buttons []*ui.Button
}

func NewMenuState(sm *StateMachine, ctx *Context) *MenuState {
	m := &MenuState{sm: sm, ctx: ctx, levels: []config.Level{config.Easy, config.Medium, config.Hard}}
	for i, level := range m.levels {
		x := config.ScreenWidth/2 - 100
		y := 300 + i*70
		b := ui.NewButton(image.Rect(x, y, x+200, y+50), string(level))
		m.buttons = append(m.buttons, b)
	}
	return m
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	for i, key := range levelKeys {
		if inpututil.IsKeyJustPressed(key) {
			m.start(m.levels[i])
			return
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		for i, b := range m.buttons {
			if b.Contains(x, y) {
				m.start(m.levels[i])
				return
			}
		}
	}
}

func (m *MenuState) start(level config.Level) {
	if err := m.ctx.Game.Start(level); err != nil {
		log.Printf("Failed to start session: %v", err)
		return
	}
	m.sm.SetState(NewGameState(m.sm, m.ctx))
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.HUDColor)
	drawTitle(screen, m.ctx, "VIRUS HUNTER", 180)
	drawTitle(screen, m.ctx, "Phase 1: Skin Defense", 210)
	drawTitle(screen, m.ctx, "Choose a difficulty (1/2/3)", 260)

	x, y := ebiten.CursorPosition()
	for _, b := range m.buttons {
		b.Draw(screen, m.ctx.Face, x, y)
	}
}

func (m *MenuState) Exit() {}
