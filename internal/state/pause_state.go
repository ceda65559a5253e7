// internal/state/pause_state.go
package state

import (
	"image/color"

	"virus-hunter/internal/config"
	"virus-hunter/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState рисует замершую игру под затемнением. Движок уже на паузе,
// выход из состояния снимает паузу.
type PauseState struct {
	sm       *StateMachine
	previous *GameState
}

func NewPauseState(sm *StateMachine, previous *GameState) *PauseState {
	return &PauseState{sm: sm, previous: previous}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	resume := inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		resume = resume || s.previous.ctx.HUD.HitTest(x, y).Kind == ui.ActionPause
	}
	if !resume {
		return
	}
	if s.previous.ctx.Game.TogglePause() {
		s.previous.ctx.HUD.Pause.Clicked()
	}
	s.sm.SetState(s.previous)
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previous.snap = s.previous.ctx.Game.Snapshot()
	s.previous.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.CanvasWidth, config.CanvasHeight, color.RGBA{0, 0, 0, 128}, false)
	drawTitle(screen, s.previous.ctx, "PAUSED", config.CanvasHeight/2)
}

func (s *PauseState) Exit() {}
