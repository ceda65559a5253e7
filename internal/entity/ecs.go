// internal/entity/ecs.go
package entity

import (
	"slices"

	"virus-hunter/internal/component"
	"virus-hunter/internal/types"
	"virus-hunter/pkg/pathmap"
)

// ECS: единственное авторитетное хранилище игровой сессии. Меняет его только
// движок, остальные читают снимки.
type ECS struct {
	NextID      types.EntityID
	Towers      map[types.EntityID]*component.Tower
	Enemies     map[types.EntityID]*component.Enemy
	Projectiles map[types.EntityID]*component.Projectile
	Occupancy   map[pathmap.Cell]types.EntityID // клетка -> юнит
	Wave        *component.Wave
	Session     *component.Session
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Towers:      make(map[types.EntityID]*component.Tower),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Occupancy:   make(map[pathmap.Cell]types.EntityID),
		Wave:        &component.Wave{},
		Session:     &component.Session{Mode: component.ModeMenu, SpeedMultiplier: 1},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Now возвращает время симуляции.
func (ecs *ECS) Now() float64 {
	return ecs.Session.GameTime
}

// TowerIDs возвращает id башен по возрастанию (порядок создания).
func (ecs *ECS) TowerIDs() []types.EntityID {
	return sortedKeys(ecs.Towers)
}

// EnemyIDs returns enemy ids in ascending (spawn) order.
func (ecs *ECS) EnemyIDs() []types.EntityID {
	return sortedKeys(ecs.Enemies)
}

// ProjectileIDs returns projectile ids in ascending (creation) order.
func (ecs *ECS) ProjectileIDs() []types.EntityID {
	return sortedKeys(ecs.Projectiles)
}

// LiveEnemy разрешает слабую ссылку на врага. nil, если враг удалён или
// здоровья не осталось.
func (ecs *ECS) LiveEnemy(id types.EntityID) *component.Enemy {
	e, ok := ecs.Enemies[id]
	if !ok || !e.Alive() {
		return nil
	}
	return e
}

// LiveEnemyCount counts enemies still on the field.
func (ecs *ECS) LiveEnemyCount() int {
	n := 0
	for _, e := range ecs.Enemies {
		if e.Alive() {
			n++
		}
	}
	return n
}

// RemoveEnemy помечает врага удалённым и убирает его. Возвращает false, если
// врага уже нет: награда или урон от прорыва начисляются ровно один раз.
func (ecs *ECS) RemoveEnemy(id types.EntityID) bool {
	e, ok := ecs.Enemies[id]
	if !ok || e.Removed {
		return false
	}
	e.Removed = true
	delete(ecs.Enemies, id)
	return true
}

func (ecs *ECS) RemoveProjectile(id types.EntityID) {
	delete(ecs.Projectiles, id)
}

// AddTower добавляет башню и помечает клетку занятой.
func (ecs *ECS) AddTower(t *component.Tower) {
	ecs.Towers[t.ID] = t
	ecs.Occupancy[t.Cell] = t.ID
}

// Occupied reports whether a unit stands on cell.
func (ecs *ECS) Occupied(cell pathmap.Cell) bool {
	_, ok := ecs.Occupancy[cell]
	return ok
}

func sortedKeys[V any](m map[types.EntityID]V) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
