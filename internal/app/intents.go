// internal/app/intents.go
package app

import (
	"slices"

	"virus-hunter/internal/component"
	"virus-hunter/internal/config"
	"virus-hunter/internal/system"
	"virus-hunter/internal/types"
	"virus-hunter/pkg/pathmap"
)

// PlaceUnit пытается поставить unitID в клетку. Списание и вставка происходят
// вместе или не происходят вовсе.
func (g *Game) PlaceUnit(cell pathmap.Cell, unitID string) (types.EntityID, system.PlaceResult) {
	return g.placementSystem.Place(cell, unitID)
}

// CheckPlacement сообщает, что сделал бы PlaceUnit, не меняя состояния.
func (g *Game) CheckPlacement(cell pathmap.Cell, unitID string) system.PlaceResult {
	return g.placementSystem.Check(cell, unitID)
}

// ActivateAbility triggers the unit's active ability.
func (g *Game) ActivateAbility(id types.EntityID) bool {
	mode := g.ecs.Session.Mode
	if mode != component.ModePlaying && mode != component.ModePaused {
		return false
	}
	return g.abilitySystem.Activate(id)
}

// TogglePause переключает playing и paused. Точка отсчёта времени сбрасывается,
// чтобы после паузы сессия не догоняла пропущенное.
func (g *Game) TogglePause() bool {
	s := g.ecs.Session
	switch s.Mode {
	case component.ModePlaying:
		s.Mode = component.ModePaused
	case component.ModePaused:
		s.Mode = component.ModePlaying
	default:
		return false
	}
	g.hasBasis = false
	return true
}

// SetGameSpeed selects one of config.AllowedSpeeds.
func (g *Game) SetGameSpeed(multiplier float64) bool {
	if !slices.Contains(config.AllowedSpeeds, multiplier) {
		return false
	}
	g.ecs.Session.SpeedMultiplier = multiplier
	return true
}

// CycleSpeed moves to the next allowed speed (1 → 1.5 → 2 → 4 → 1).
func (g *Game) CycleSpeed() float64 {
	current := g.ecs.Session.SpeedMultiplier
	i := slices.Index(config.AllowedSpeeds, current)
	next := config.AllowedSpeeds[(i+1)%len(config.AllowedSpeeds)]
	g.ecs.Session.SpeedMultiplier = next
	return next
}

// UnitAt возвращает юнит, стоящий в клетке.
func (g *Game) UnitAt(cell pathmap.Cell) (types.EntityID, bool) {
	id, ok := g.ecs.Occupancy[cell]
	return id, ok
}
