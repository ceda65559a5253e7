// internal/system/combat.go
package system

import (
	"virus-hunter/internal/component"
	"virus-hunter/internal/config"
	"virus-hunter/internal/defs"
	"virus-hunter/internal/entity"
	"virus-hunter/internal/event"
	"virus-hunter/internal/types"
	"virus-hunter/pkg/pathmap"
	"virus-hunter/pkg/utils"
)

// CombatSystem управляет стрельбой юнитов, уроном и наградой за убийство.
type CombatSystem struct {
	ecs             *entity.ECS
	catalog         *defs.Catalog
	abilities       *AbilitySystem
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, catalog *defs.Catalog, abilities *AbilitySystem, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		catalog:         catalog,
		abilities:       abilities,
		eventDispatcher: eventDispatcher,
	}
}

// Update: фаза стрельбы. Юниты обходятся в порядке установки.
func (s *CombatSystem) Update(deltaTime float64) {
	now := s.ecs.Now()
	for _, id := range s.ecs.TowerIDs() {
		tower := s.ecs.Towers[id]
		def := s.catalog.MustUnitType(tower.DefID)
		if !def.Fires() {
			continue
		}
		if now-tower.LastShot < s.FireInterval(tower, def) {
			continue
		}

		targets := EnemiesInRange(s.ecs, tower.Position, def.Range)
		if len(targets) == 0 {
			continue
		}

		damage := def.Damage * s.abilities.DamageMultiplier(tower)
		switch def.Special {
		case defs.SpecialSplash:
			for _, enemy := range targets {
				s.launch(tower, enemy, damage*def.SplashFraction, component.DeliverySplash)
			}
		case defs.SpecialSlow:
			for _, enemy := range targets {
				ApplySlow(enemy, def.SlowFactor, now+def.SlowDuration, now)
				s.launch(tower, enemy, 0, component.DeliveryStatus)
			}
		default:
			targets = targets[:1]
			s.launch(tower, targets[0], damage, component.DeliveryDirect)
		}

		tower.LastShot = now
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.UnitFired,
			Time: now,
			Data: event.UnitFiredData{UnitID: id, Targets: len(targets)},
		})
	}
}

// FireInterval возвращает текущий интервал между выстрелами юнита. Живой токсин
// в пределах config.ToxinRadius растягивает его на свой дебафф.
func (s *CombatSystem) FireInterval(tower *component.Tower, def defs.UnitType) float64 {
	factor := 1.0
	for _, enemy := range s.ecs.Enemies {
		if !enemy.Alive() {
			continue
		}
		enemyDef := s.catalog.MustEnemyType(enemy.DefID)
		if enemyDef.Special != defs.EnemyToxin {
			continue
		}
		if !utils.WithinRange(tower.Position.X, tower.Position.Y, enemy.Position.X, enemy.Position.Y, config.ToxinRadius) {
			continue
		}
		if enemyDef.ToxinDebuff < factor {
			factor = enemyDef.ToxinDebuff
		}
	}
	return def.FireInterval / factor
}

func (s *CombatSystem) launch(tower *component.Tower, target *component.Enemy, damage float64, delivery component.Delivery) {
	id := s.ecs.NewEntity()
	s.ecs.Projectiles[id] = &component.Projectile{
		ID:          id,
		SourceID:    tower.ID,
		SourceDefID: tower.DefID,
		Origin:      tower.Position,
		Position:    tower.Position,
		TargetID:    target.ID,
		Damage:      damage,
		Speed:       config.ProjectileSpeed,
		Delivery:    delivery,
	}
}

// ApplyDamage deducts damage from a live enemy. It reports true only on the
// transition to zero health, which removes the enemy and grants the reward.
func (s *CombatSystem) ApplyDamage(enemyID types.EntityID, damage float64) bool {
	enemy := s.ecs.LiveEnemy(enemyID)
	if enemy == nil || damage <= 0 {
		return false
	}
	enemy.Health -= damage
	if enemy.Health > 0 {
		return false
	}
	enemy.Health = 0
	return s.Kill(enemy)
}

// Kill удаляет врага и начисляет энергию и очки. Возвращает false, если враг
// уже был убран раньше (убийство или прорыв).
// Энергия не зависит от сложности, очки: ScoreReward * номер волны.
func (s *CombatSystem) Kill(enemy *component.Enemy) bool {
	if !s.ecs.RemoveEnemy(enemy.ID) {
		return false
	}
	enemy.Health = 0

	session := s.ecs.Session
	score := enemy.ScoreReward * s.ecs.Wave.Number
	session.Energy += enemy.EnergyReward
	session.Score += score
	session.Kills++

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemyKilled,
		Time: s.ecs.Now(),
		Data: event.EnemyKilledData{
			EnemyID:  enemy.ID,
			DefID:    enemy.DefID,
			Reward:   enemy.EnergyReward,
			Score:    score,
			Position: enemy.Position,
		},
	})
	return true
}

// ApplySlow накладывает замедление, если оно ещё не действует. Повторное
// применение во время действия ничего не продлевает и не усиливает.
func ApplySlow(enemy *component.Enemy, factor, expiresAt, now float64) bool {
	if enemy.Slow != nil && !enemy.Slow.Expired(now) {
		return false
	}
	enemy.Slow = &component.SlowEffect{Factor: factor, ExpiresAt: expiresAt}
	enemy.Speed = enemy.OriginalSpeed * factor
	return true
}

// EnemiesInRange возвращает живых врагов в радиусе, старшие первыми.
func EnemiesInRange(ecs *entity.ECS, center pathmap.Point, radius float64) []*component.Enemy {
	var out []*component.Enemy
	for _, id := range ecs.EnemyIDs() {
		enemy := ecs.Enemies[id]
		if !enemy.Alive() {
			continue
		}
		if utils.WithinRange(center.X, center.Y, enemy.Position.X, enemy.Position.Y, radius) {
			out = append(out, enemy)
		}
	}
	return out
}
