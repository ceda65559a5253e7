// internal/system/projectile.go
package system

import (
	"virus-hunter/internal/config"
	"virus-hunter/internal/entity"
	"virus-hunter/pkg/pathmap"
	"virus-hunter/pkg/utils"
)

// ProjectileSystem управляет движением снарядов и нанесением урона.
type ProjectileSystem struct {
	ecs          *entity.ECS
	combatSystem *CombatSystem
}

func NewProjectileSystem(ecs *entity.ECS, combatSystem *CombatSystem) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, combatSystem: combatSystem}
}

// Update ведёт каждый снаряд к текущей позиции цели.
// Снаряд без цели удаляется без эффекта. Долетевший наносит урон один раз
// и удаляется в том же тике.
func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.ProjectileIDs() {
		proj := s.ecs.Projectiles[id]

		target := s.ecs.LiveEnemy(proj.TargetID)
		if target == nil {
			s.ecs.RemoveProjectile(id)
			continue
		}

		proj.Position = moveToward(proj.Position, target.Position, proj.Speed*deltaTime)
		if utils.Distance(proj.Position.X, proj.Position.Y, target.Position.X, target.Position.Y) >= config.CollisionDistance {
			continue
		}

		s.ecs.RemoveProjectile(id)
		if proj.DealsDamage() {
			s.combatSystem.ApplyDamage(target.ID, proj.Damage)
		}
	}
}

func moveToward(from, to pathmap.Point, step float64) pathmap.Point {
	dist := utils.Distance(from.X, from.Y, to.X, to.Y)
	if dist <= step {
		return to
	}
	return pathmap.Point{
		X: from.X + (to.X-from.X)/dist*step,
		Y: from.Y + (to.Y-from.Y)/dist*step,
	}
}
