// internal/system/ability.go
package system

import (
	"math"

	"virus-hunter/internal/component"
	"virus-hunter/internal/defs"
	"virus-hunter/internal/entity"
	"virus-hunter/internal/event"
	"virus-hunter/internal/types"
	"virus-hunter/pkg/utils"
)

// AbilitySystem управляет активным баффом по площади и пассивкой сборщика.
// Сборщик слушает EnemyKilled, поэтому срабатывает ровно один раз на убийство,
// независимо от того, какой юнит добил врага.
type AbilitySystem struct {
	ecs             *entity.ECS
	catalog         *defs.Catalog
	eventDispatcher *event.Dispatcher
}

func NewAbilitySystem(ecs *entity.ECS, catalog *defs.Catalog, eventDispatcher *event.Dispatcher) *AbilitySystem {
	s := &AbilitySystem{
		ecs:             ecs,
		catalog:         catalog,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.EnemyKilled, s)
	return s
}

// Activate включает бафф юнита. Возвращает false и ничего не меняет, если юнита
// нет, у него нет активной способности или не прошла перезарядка.
func (s *AbilitySystem) Activate(unitID types.EntityID) bool {
	tower, ok := s.ecs.Towers[unitID]
	if !ok {
		return false
	}
	def := s.catalog.MustUnitType(tower.DefID)
	if !def.HasActiveAbility() {
		return false
	}
	now := s.ecs.Now()
	if !tower.AbilityReady(now) {
		return false
	}
	tower.AbilityActiveUntil = now + def.BuffDuration
	tower.AbilityCooldownUntil = now + def.BuffCooldown

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.AbilityActivated,
		Time: now,
		Data: event.AbilityActivatedData{UnitID: unitID, ActiveUntil: tower.AbilityActiveUntil},
	})
	return true
}

// DamageMultiplier считается в момент выстрела: берётся самый сильный активный
// бафф, в радиус которого попадает юнит. Источники не складываются.
func (s *AbilitySystem) DamageMultiplier(tower *component.Tower) float64 {
	now := s.ecs.Now()
	multiplier := 1.0
	for _, id := range s.ecs.TowerIDs() {
		source := s.ecs.Towers[id]
		if !source.AbilityActive(now) {
			continue
		}
		def := s.catalog.MustUnitType(source.DefID)
		if !utils.WithinRange(source.Position.X, source.Position.Y, tower.Position.X, tower.Position.Y, def.Range) {
			continue
		}
		if def.BuffMultiplier > multiplier {
			multiplier = def.BuffMultiplier
		}
	}
	return multiplier
}

// OnEvent начисляет бонус сборщика за каждый сборщик в радиусе убийства.
func (s *AbilitySystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyKilled {
		return
	}
	kill := e.Data.(event.EnemyKilledData)
	for _, id := range s.ecs.TowerIDs() {
		tower := s.ecs.Towers[id]
		def := s.catalog.MustUnitType(tower.DefID)
		if def.Special != defs.SpecialCollector {
			continue
		}
		if !utils.WithinRange(tower.Position.X, tower.Position.Y, kill.Position.X, kill.Position.Y, def.Range) {
			continue
		}
		bonus := int(math.Floor(float64(kill.Reward) * def.CollectMultiplier))
		s.ecs.Session.Energy += bonus
		s.ecs.Session.Antigens++
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.AntigenCollected,
			Time: e.Time,
			Data: event.AntigenCollectedData{CollectorID: id, EnemyID: kill.EnemyID, Bonus: bonus},
		})
	}
}
