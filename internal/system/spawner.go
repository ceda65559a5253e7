// internal/system/spawner.go
package system

import (
	"math"

	"virus-hunter/internal/component"
	"virus-hunter/internal/config"
	"virus-hunter/internal/defs"
	"virus-hunter/internal/entity"
	"virus-hunter/internal/event"
	"virus-hunter/internal/utils"
	"virus-hunter/pkg/pathmap"
)

// EnemyStats: характеристики врага с учётом сложности.
// Reward идёт только в очки, энергия за убийство всегда берётся из каталога.
type EnemyStats struct {
	Health  float64
	Speed   float64
	Reward  int
	Mutated bool
}

// DeriveStats применяет строку сложности к базовым статам и бросает мутацию.
// У мутанта двойное здоровье, скорость не меняется.
func DeriveStats(def defs.EnemyType, d config.Difficulty, rng utils.Random) EnemyStats {
	stats := EnemyStats{
		Health: math.Floor(def.Health*d.HealthMultiplier + d.HealthBonus),
		Speed:  def.Speed*d.SpeedMultiplier + d.SpeedBonus,
		Reward: int(math.Floor(float64(def.Reward) * d.RewardMultiplier)),
	}
	if stats.Health < 1 {
		stats.Health = 1
	}
	if stats.Speed < 0 {
		stats.Speed = 0
	}
	if d.MutationChance > 0 && rng.Float64() < d.MutationChance {
		stats.Health *= 2
		stats.Mutated = true
	}
	return stats
}

// SpawnerSystem выпускает врагов текущей волны.
type SpawnerSystem struct {
	ecs             *entity.ECS
	catalog         *defs.Catalog
	path            *pathmap.Path
	difficulty      config.Difficulty
	rng             utils.Random
	eventDispatcher *event.Dispatcher
}

func NewSpawnerSystem(ecs *entity.ECS, catalog *defs.Catalog, path *pathmap.Path, difficulty config.Difficulty, rng utils.Random, eventDispatcher *event.Dispatcher) *SpawnerSystem {
	return &SpawnerSystem{
		ecs:             ecs,
		catalog:         catalog,
		path:            path,
		difficulty:      difficulty,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

// Update копит масштабированное время и выпускает врага каждый раз, когда
// накопитель превышает задержку волны, пока квота не выбрана.
func (s *SpawnerSystem) Update(deltaTime float64) {
	wave := s.ecs.Wave
	if wave == nil || wave.Completed || wave.QuotaMet() {
		return
	}
	wave.SpawnTimer += deltaTime
	if wave.SpawnTimer > config.SpawnDelay(wave.Number) {
		wave.SpawnTimer = 0
		s.Spawn()
	}
}

// Spawn создаёт следующего врага волны в начале пути.
func (s *SpawnerSystem) Spawn() *component.Enemy {
	wave := s.ecs.Wave
	session := s.ecs.Session
	typeID := s.DecideNextEnemyType(wave.Number, s.difficulty, session.HealthPct(), session.Energy)
	def := s.catalog.MustEnemyType(typeID)
	stats := DeriveStats(def, s.difficulty, s.rng)

	breach := def.BreachDamage
	if breach == 0 {
		breach = config.DefaultBreachDamage
	}

	id := s.ecs.NewEntity()
	enemy := &component.Enemy{
		ID:            id,
		DefID:         def.ID,
		Health:        stats.Health,
		MaxHealth:     stats.Health,
		Speed:         stats.Speed,
		OriginalSpeed: stats.Speed,
		Position:      s.path.WaypointAt(0),
		Mutated:       stats.Mutated,
		EnergyReward:  def.Reward,
		ScoreReward:   stats.Reward,
		BreachDamage:  breach,
		Size:          def.Size,
	}
	s.ecs.Enemies[id] = enemy
	wave.Spawned++

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemySpawned,
		Time: s.ecs.Now(),
		Data: event.EnemySpawnedData{EnemyID: id, DefID: def.ID, Mutated: stats.Mutated},
	})
	return enemy
}

// DecideNextEnemyType выбирает тип следующего врага. Типы открываются
// постепенно: волна n берёт из первых n записей каталога.
func (s *SpawnerSystem) DecideNextEnemyType(wave int, d config.Difficulty, healthPct float64, energy int) string {
	all := s.catalog.EnemyTypes()
	unlocked := all[:max(1, min(wave, len(all)))]

	if !d.Adaptive {
		return unlocked[s.rng.Intn(len(unlocked))].ID
	}

	// Игрок почти проиграл: добиваем быстрыми.
	if healthPct < config.FinisherHealthPct {
		return fastest(unlocked).ID
	}

	abundant := d.AbundantEnergy
	if abundant <= 0 {
		abundant = config.AbundantEnergy
	}
	if energy > abundant {
		return toughest(unlocked).ID
	}

	entries := make([]utils.WeightedEntry, len(unlocked))
	for i, def := range unlocked {
		entries[i] = utils.WeightedEntry{ID: def.ID, Weight: 2 + i*wave}
	}
	return utils.ChooseWeighted(s.rng, entries)
}

func fastest(types []defs.EnemyType) defs.EnemyType {
	best := types[0]
	for _, t := range types[1:] {
		if t.Speed > best.Speed {
			best = t
		}
	}
	return best
}

func toughest(types []defs.EnemyType) defs.EnemyType {
	best := types[0]
	for _, t := range types[1:] {
		if t.Health > best.Health {
			best = t
		}
	}
	return best
}
