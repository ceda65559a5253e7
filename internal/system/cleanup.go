// internal/system/cleanup.go
package system

import "virus-hunter/internal/entity"

// CleanupSystem убирает мёртвые сущности. Обычно враг удаляется в момент смерти,
// здесь подбираются оставшиеся с нулевым здоровьем. Повторный вызов безопасен.
type CleanupSystem struct {
	ecs          *entity.ECS
	combatSystem *CombatSystem
}

func NewCleanupSystem(ecs *entity.ECS, combatSystem *CombatSystem) *CleanupSystem {
	return &CleanupSystem{ecs: ecs, combatSystem: combatSystem}
}

func (s *CleanupSystem) Update() {
	for _, id := range s.ecs.EnemyIDs() {
		enemy := s.ecs.Enemies[id]
		switch {
		case enemy.Removed:
			delete(s.ecs.Enemies, id)
		case enemy.Health <= 0:
			s.combatSystem.Kill(enemy)
		}
	}
	for _, id := range s.ecs.ProjectileIDs() {
		if s.ecs.LiveEnemy(s.ecs.Projectiles[id].TargetID) == nil {
			s.ecs.RemoveProjectile(id)
		}
	}
}
