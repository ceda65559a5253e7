// internal/system/wave.go
package system

import (
	"log"

	"virus-hunter/internal/component"
	"virus-hunter/internal/config"
	"virus-hunter/internal/entity"
	"virus-hunter/internal/event"
)

// WaveSystem отслеживает завершение волны и двигает сессию дальше.
type WaveSystem struct {
	ecs             *entity.ECS
	difficulty      config.Difficulty
	eventDispatcher *event.Dispatcher
	logger          *log.Logger
}

func NewWaveSystem(ecs *entity.ECS, difficulty config.Difficulty, eventDispatcher *event.Dispatcher, logger *log.Logger) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		difficulty:      difficulty,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

// StartWave resets the per-wave state for wave number n.
func (s *WaveSystem) StartWave(n int) *component.Wave {
	s.ecs.Wave = &component.Wave{
		Number: n,
		Quota:  config.WaveQuota(n),
	}
	return s.ecs.Wave
}

// Update отмечает волну завершённой ровно один раз, когда квота выпущена и
// поле пусто. Через config.SettleDelay либо победа, либо следующая волна
// с бонусом энергии.
func (s *WaveSystem) Update(deltaTime float64) {
	wave := s.ecs.Wave
	if s.ecs.Session.Mode != component.ModePlaying {
		return
	}
	if !wave.Completed {
		if !wave.QuotaMet() || s.ecs.LiveEnemyCount() > 0 {
			return
		}
		wave.Completed = true
		wave.SettleTimer = 0
		s.logger.Printf("Wave %d cleared", wave.Number)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.WaveCleared,
			Time: s.ecs.Now(),
			Data: event.WaveData{Wave: wave.Number},
		})
		return
	}

	wave.SettleTimer += deltaTime
	if wave.SettleTimer < config.SettleDelay {
		return
	}

	session := s.ecs.Session
	if wave.Number >= s.difficulty.Waves {
		session.Mode = component.ModeVictory
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.Victory,
			Time: s.ecs.Now(),
			Data: event.SessionEndedData{Wave: wave.Number, Score: session.Score},
		})
		return
	}

	bonus := config.WaveBonus(wave.Number)
	session.Energy += bonus
	next := s.StartWave(wave.Number + 1)
	s.logger.Printf("Wave %d started, +%d energy", next.Number, bonus)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveStarted,
		Time: s.ecs.Now(),
		Data: event.WaveData{Wave: next.Number, Bonus: bonus},
	})
}
