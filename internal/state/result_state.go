// internal/state/result_state.go
package state

import (
	"fmt"
	"log"
	"strings"

	"virus-hunter/internal/component"
	"virus-hunter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ResultState показывает итог сессии и статус сохранения.
type ResultState struct {
	sm         *StateMachine
	ctx        *Context
	saveStatus string
}

func NewResultState(sm *StateMachine, ctx *Context) *ResultState {
	return &ResultState{sm: sm, ctx: ctx, saveStatus: "Saving result..."}
}

func (s *ResultState) Enter() {}

func (s *ResultState) Update(deltaTime float64) {
	select {
	case n := <-s.ctx.Game.Notifications():
		s.saveStatus = n.Message
	default:
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		if err := s.ctx.Game.Start(s.ctx.Game.Level()); err != nil {
			log.Printf("Failed to restart: %v", err)
			return
		}
		s.sm.SetState(NewGameState(s.sm, s.ctx))
	case inpututil.IsKeyJustPressed(ebiten.KeyM), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.ctx.Game.Reset()
		s.sm.SetState(NewMenuState(s.sm, s.ctx))
	}
}

func (s *ResultState) Draw(screen *ebiten.Image) {
	snap := s.ctx.Game.Snapshot()
	screen.Fill(config.HUDColor)

	title := "SEVERE INFECTION"
	switch snap.Mode {
	case component.ModeVictory:
		title = "PHASE COMPLETE"
	case component.ModeFailed:
		title = "SIMULATION ERROR"
	}
	drawTitle(screen, s.ctx, title, 200)

	y := 250
	if r := snap.Result; r != nil {
		stars := strings.Repeat("*", r.Stars) + strings.Repeat(".", config.MaxStars-r.Stars)
		lines := []string{
			fmt.Sprintf("Stars  %s", stars),
			fmt.Sprintf("Final score  %d", r.FinalScore),
			fmt.Sprintf("Waves completed  %d / %d", r.WavesCompleted, snap.TotalWaves),
			fmt.Sprintf("Enemies killed  %d", r.EnemiesKilled),
			fmt.Sprintf("Antigens  %d", r.AntigensCollected),
			fmt.Sprintf("Skin remaining  %d", r.HealthRemaining),
			s.saveStatus,
		}
		for _, line := range lines {
			drawTitle(screen, s.ctx, line, y)
			y += 24
		}
	}
	if snap.Error != "" {
		drawTitle(screen, s.ctx, snap.Error, y)
		y += 24
	}
	drawTitle(screen, s.ctx, "R: play again   M: menu", y+30)
}

func (s *ResultState) Exit() {}
