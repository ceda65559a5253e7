// internal/app/listener.go
package app

import (
	"fmt"

	"virus-hunter/internal/defs"
	"virus-hunter/internal/event"
)

const maxNotices = 6

// GameEventListener превращает события симуляции в короткие сообщения для HUD.
type GameEventListener struct {
	catalog *defs.Catalog
	notices []string
}

func NewGameEventListener(catalog *defs.Catalog) *GameEventListener {
	return &GameEventListener{catalog: catalog}
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemySpawned:
		if data := e.Data.(event.EnemySpawnedData); data.Mutated {
			l.push(fmt.Sprintf("Mutated %s!", l.enemyName(data.DefID)))
		}
	case event.EnemyBreached:
		data := e.Data.(event.EnemyBreachedData)
		l.push(fmt.Sprintf("%s breached the skin: -%d health", l.enemyName(data.DefID), data.Damage))
	case event.WaveCleared:
		l.push(fmt.Sprintf("Wave %d cleared", e.Data.(event.WaveData).Wave))
	case event.WaveStarted:
		data := e.Data.(event.WaveData)
		l.push(fmt.Sprintf("Wave %d incoming, +%d ATP", data.Wave, data.Bonus))
	case event.AbilityActivated:
		l.push("Chemokine signal: nearby cells deal more damage")
	case event.GameOver:
		l.push("Severe infection! The skin was compromised")
	case event.Victory:
		l.push("Phase complete!")
	}
}

func (l *GameEventListener) push(msg string) {
	l.notices = append(l.notices, msg)
	if len(l.notices) > maxNotices {
		l.notices = l.notices[len(l.notices)-maxNotices:]
	}
}

// Notices returns the latest messages, oldest first.
func (l *GameEventListener) Notices() []string {
	return append([]string(nil), l.notices...)
}

func (l *GameEventListener) enemyName(id string) string {
	if def, err := l.catalog.EnemyType(id); err == nil && def.Name != "" {
		return def.Name
	}
	return id
}
