// internal/system/movement.go
package system

import (
	"virus-hunter/internal/component"
	"virus-hunter/internal/config"
	"virus-hunter/internal/entity"
	"virus-hunter/internal/event"
	"virus-hunter/pkg/pathmap"
)

// MovementSystem двигает врагов по пути и обрабатывает прорывы.
type MovementSystem struct {
	ecs             *entity.ECS
	path            *pathmap.Path
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, path *pathmap.Path, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, path: path, eventDispatcher: eventDispatcher}
}

// Update двигает каждого живого врага на speed*deltaTime. Враг, сошедший с
// последней точки пути, прорывается. После смерти игрока обработка прекращается.
func (s *MovementSystem) Update(deltaTime float64) {
	now := s.ecs.Now()
	for _, id := range s.ecs.EnemyIDs() {
		enemy := s.ecs.Enemies[id]
		if !enemy.Alive() {
			continue
		}

		if enemy.Slow != nil && enemy.Slow.Expired(now) {
			enemy.Speed = enemy.OriginalSpeed
			enemy.Slow = nil
		}

		if s.advance(enemy, enemy.Speed*config.SpeedUnit*deltaTime) {
			s.breach(enemy)
			if s.ecs.Session.Mode == component.ModeGameOver {
				return
			}
			continue
		}
		enemy.Position = s.path.PositionAlong(enemy.PathIndex, enemy.Progress)
	}
}

// advance сдвигает врага на distance пикселей по пути и сообщает, дошёл ли он
// до конца. Остаток переносится на следующий сегмент.
func (s *MovementSystem) advance(enemy *component.Enemy, distance float64) bool {
	for distance > 0 {
		if s.path.IsComplete(enemy.PathIndex) {
			return true
		}
		segment := s.path.SegmentLength(enemy.PathIndex)
		remaining := (1 - enemy.Progress) * segment
		if distance < remaining {
			enemy.Progress += distance / segment
			return false
		}
		distance -= remaining
		enemy.PathIndex++
		enemy.Progress = 0
	}
	return s.path.IsComplete(enemy.PathIndex)
}

func (s *MovementSystem) breach(enemy *component.Enemy) {
	// Убитый в этом же тике враг уже удалён и прорваться не может.
	if !s.ecs.RemoveEnemy(enemy.ID) {
		return
	}
	enemy.PathIndex = s.path.SegmentCount()
	enemy.Progress = 0
	enemy.Position = s.path.WaypointAt(s.path.WaypointCount() - 1)

	session := s.ecs.Session
	session.Health = max(0, session.Health-enemy.BreachDamage)
	session.Breaches++

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemyBreached,
		Time: s.ecs.Now(),
		Data: event.EnemyBreachedData{EnemyID: enemy.ID, DefID: enemy.DefID, Damage: enemy.BreachDamage, Health: session.Health},
	})

	if session.Health == 0 {
		session.Mode = component.ModeGameOver
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.GameOver,
			Time: s.ecs.Now(),
			Data: event.SessionEndedData{Wave: s.ecs.Wave.Number, Score: session.Score},
		})
	}
}
