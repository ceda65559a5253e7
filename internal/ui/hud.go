// internal/ui/hud.go
package ui

import (
	"fmt"
	"image"
	"image/color"

	"virus-hunter/internal/app"
	"virus-hunter/internal/component"
	"virus-hunter/internal/config"
	"virus-hunter/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// ActionKind: что просит клик по HUD.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionSelectUnit
	ActionSpeed
	ActionPause
	ActionAbility
)

type Action struct {
	Kind   ActionKind
	UnitID string
}

// HUD объединяет экранные элементы управления: панель юнитов, кнопку
// способности, кнопки скорости и паузы, индикаторы состояния.
type HUD struct {
	face    font.Face
	Units   *UnitBar
	Ability *Button
	Speed   *SpeedButton
	Pause   *PauseButton
	Wave    *WaveIndicator
	State   *StateIndicator
	Health  *HealthIndicator

	showAbility bool
}

func NewHUD(catalog *defs.Catalog, face font.Face) *HUD {
	barY := config.CanvasHeight + 8
	ability := NewButton(image.Rect(620, barY, 750, barY+slotHeight), "ACTIVATE")
	ability.BgColor = color.RGBA{16, 185, 129, 255}
	ability.HoverColor = color.RGBA{5, 150, 105, 255}

	midY := float32(config.CanvasHeight + config.HUDHeight/2)
	return &HUD{
		face:    face,
		Units:   NewUnitBar(10, barY, catalog.UnitTypes()),
		Ability: ability,
		Speed:   NewSpeedButton(config.ScreenWidth-110, midY-6, 12, config.AllowedSpeeds, config.SpeedButtonColors),
		Pause:   NewPauseButton(config.ScreenWidth-40, midY, 12, color.RGBA{226, 232, 240, 255}, color.RGBA{34, 197, 94, 255}),
		Wave:    NewWaveIndicator(config.CanvasWidth/2, 20),
		State:   NewStateIndicator(config.CanvasWidth-20, 20, 8),
		Health:  NewHealthIndicator(10, 10, 180, 18),
	}
}

// Sync refreshes button state from the snapshot. selected is the placed
// unit the player clicked, if any.
func (h *HUD) Sync(snap app.Snapshot, selected *app.UnitView) {
	h.Units.SetEnergy(snap.Energy)
	h.showAbility = selected != nil && selected.HasAbility
	if h.showAbility {
		h.Ability.Disabled = selected.AbilityActive || selected.CooldownLeft > 0
	}
}

// Contains reports whether (x, y) is on the HUD rather than the field.
func (h *HUD) Contains(x, y int) bool {
	return y >= config.CanvasHeight || h.HitTest(x, y).Kind != ActionNone
}

// HitTest превращает клик в действие.
func (h *HUD) HitTest(x, y int) Action {
	if u, ok := h.Units.SlotAt(x, y); ok {
		return Action{Kind: ActionSelectUnit, UnitID: u.ID}
	}
	if h.showAbility && h.Ability.Contains(x, y) && !h.Ability.Disabled {
		return Action{Kind: ActionAbility}
	}
	if h.Speed.IsClicked(x, y) {
		return Action{Kind: ActionSpeed}
	}
	if h.Pause.IsClicked(x, y) {
		return Action{Kind: ActionPause}
	}
	return Action{}
}

func (h *HUD) Draw(screen *ebiten.Image, snap app.Snapshot, selectedType string, cursorX, cursorY int) {
	vector.DrawFilledRect(screen, 0, config.CanvasHeight, config.ScreenWidth, config.HUDHeight, config.HUDColor, false)

	h.Units.Draw(screen, h.face, selectedType, cursorX, cursorY)
	if h.showAbility {
		h.Ability.Draw(screen, h.face, cursorX, cursorY)
	}

	stats := fmt.Sprintf("ATP %d   Score %d", snap.Energy, snap.Score)
	text.Draw(screen, stats, h.face, 770, config.CanvasHeight+26, config.TextLightColor)
	extra := fmt.Sprintf("Antigens %d   Kills %d", snap.Antigens, snap.Kills)
	text.Draw(screen, extra, h.face, 770, config.CanvasHeight+46, config.TextLightColor)

	h.Speed.Draw(screen, h.face, snap.SpeedMultiplier)
	h.Pause.Draw(screen, snap.Mode == component.ModePaused)

	h.Health.Draw(screen, h.face, snap.Health, snap.StartingHealth)
	h.Wave.Draw(screen, h.face, snap.Wave, snap.TotalWaves)
	h.State.Draw(screen, snap.Mode)

	for i, n := range snap.Notices {
		text.Draw(screen, n, h.face, 10, 50+i*16, color.RGBA{30, 41, 59, 255})
	}
}
