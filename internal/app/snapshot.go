// internal/app/snapshot.go
package app

import (
	"virus-hunter/internal/component"
	"virus-hunter/internal/outcome"
	"virus-hunter/internal/types"
	"virus-hunter/pkg/pathmap"
)

// UnitView is a read-only copy of a placed unit.
type UnitView struct {
	ID            types.EntityID `json:"id"`
	DefID         string         `json:"def_id"`
	Cell          pathmap.Cell   `json:"cell"`
	Position      pathmap.Point  `json:"position"`
	Range         float64        `json:"range"`
	HasAbility    bool           `json:"has_ability"`
	AbilityActive bool           `json:"ability_active"`
	CooldownLeft  float64        `json:"cooldown_left"`
}

// EnemyView is a read-only copy of an enemy.
type EnemyView struct {
	ID        types.EntityID `json:"id"`
	DefID     string         `json:"def_id"`
	Position  pathmap.Point  `json:"position"`
	Health    float64        `json:"health"`
	MaxHealth float64        `json:"max_health"`
	Size      float64        `json:"size"`
	Slowed    bool           `json:"slowed"`
	Mutated   bool           `json:"mutated"`
}

// ProjectileView is a read-only copy of a projectile.
type ProjectileView struct {
	ID          types.EntityID     `json:"id"`
	SourceDefID string             `json:"source_def_id"`
	Position    pathmap.Point      `json:"position"`
	Delivery    component.Delivery `json:"delivery"`
}

// Snapshot: глубокая копия сессии между тиками. Рендереры и удалённые клиенты
// видят только снимки.
type Snapshot struct {
	Mode            component.Mode `json:"mode"`
	Difficulty      string         `json:"difficulty"`
	Wave            int            `json:"wave"`
	TotalWaves      int            `json:"total_waves"`
	WaveQuota       int            `json:"wave_quota"`
	WaveSpawned     int            `json:"wave_spawned"`
	WaveCleared     bool           `json:"wave_cleared"`
	Health          int            `json:"health"`
	StartingHealth  int            `json:"starting_health"`
	Energy          int            `json:"energy"`
	Score           int            `json:"score"`
	Antigens        int            `json:"antigens"`
	Kills           int            `json:"kills"`
	GameTime        float64        `json:"game_time"`
	PlayTime        float64        `json:"play_time"`
	SpeedMultiplier float64        `json:"speed"`

	Units       []UnitView       `json:"units"`
	Enemies     []EnemyView      `json:"enemies"`
	Projectiles []ProjectileView `json:"projectiles"`
	Notices     []string         `json:"notices"`

	Result *outcome.Result `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// Snapshot копирует текущее состояние. Сущности идут в порядке id.
func (g *Game) Snapshot() Snapshot {
	s := g.ecs.Session
	w := g.ecs.Wave
	now := s.GameTime

	snap := Snapshot{
		Mode:            s.Mode,
		Difficulty:      string(g.level),
		Wave:            w.Number,
		TotalWaves:      g.difficulty.Waves,
		WaveQuota:       w.Quota,
		WaveSpawned:     w.Spawned,
		WaveCleared:     w.Completed,
		Health:          s.Health,
		StartingHealth:  s.StartingHealth,
		Energy:          s.Energy,
		Score:           s.Score,
		Antigens:        s.Antigens,
		Kills:           s.Kills,
		GameTime:        s.GameTime,
		PlayTime:        s.PlayTime,
		SpeedMultiplier: s.SpeedMultiplier,
		Units:           make([]UnitView, 0, len(g.ecs.Towers)),
		Enemies:         make([]EnemyView, 0, len(g.ecs.Enemies)),
		Projectiles:     make([]ProjectileView, 0, len(g.ecs.Projectiles)),
		Notices:         g.notices.Notices(),
		Result:          g.Result(),
	}
	if g.err != nil {
		snap.Error = g.err.Error()
	}

	for _, id := range g.ecs.TowerIDs() {
		t := g.ecs.Towers[id]
		def := g.catalog.MustUnitType(t.DefID)
		snap.Units = append(snap.Units, UnitView{
			ID:            id,
			DefID:         t.DefID,
			Cell:          t.Cell,
			Position:      t.Position,
			Range:         def.Range,
			HasAbility:    def.HasActiveAbility(),
			AbilityActive: t.AbilityActive(now),
			CooldownLeft:  max(0, t.AbilityCooldownUntil-now),
		})
	}
	for _, id := range g.ecs.EnemyIDs() {
		e := g.ecs.Enemies[id]
		if !e.Alive() {
			continue
		}
		snap.Enemies = append(snap.Enemies, EnemyView{
			ID:        id,
			DefID:     e.DefID,
			Position:  e.Position,
			Health:    e.Health,
			MaxHealth: e.MaxHealth,
			Size:      e.Size,
			Slowed:    e.Slow != nil && !e.Slow.Expired(now),
			Mutated:   e.Mutated,
		})
	}
	for _, id := range g.ecs.ProjectileIDs() {
		p := g.ecs.Projectiles[id]
		snap.Projectiles = append(snap.Projectiles, ProjectileView{
			ID:          id,
			SourceDefID: p.SourceDefID,
			Position:    p.Position,
			Delivery:    p.Delivery,
		})
	}
	return snap
}
