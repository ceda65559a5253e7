// internal/event/types.go
package event

import (
	"virus-hunter/internal/types"
	"virus-hunter/pkg/pathmap"
)

const (
	EnemySpawned     EventType = "EnemySpawned"
	EnemyKilled      EventType = "EnemyKilled"   // враг убит, награда выдана
	EnemyBreached    EventType = "EnemyBreached" // враг дошёл до конца пути
	UnitPlaced       EventType = "UnitPlaced"
	UnitFired        EventType = "UnitFired"
	AbilityActivated EventType = "AbilityActivated"
	AntigenCollected EventType = "AntigenCollected"
	WaveCleared      EventType = "WaveCleared" // квота выполнена, врагов нет
	WaveStarted      EventType = "WaveStarted"
	GameOver         EventType = "GameOver"
	Victory          EventType = "Victory"
	SessionFailed    EventType = "SessionFailed"
)

type EnemySpawnedData struct {
	EnemyID types.EntityID
	DefID   string
	Mutated bool
}

type EnemyKilledData struct {
	EnemyID  types.EntityID
	DefID    string
	Reward   int // энергия за убийство
	Score    int
	Position pathmap.Point
}

type EnemyBreachedData struct {
	EnemyID types.EntityID
	DefID   string
	Damage  int
	Health  int // здоровье игрока после прорыва
}

type UnitPlacedData struct {
	UnitID types.EntityID
	DefID  string
	Cell   pathmap.Cell
	Cost   int
}

type UnitFiredData struct {
	UnitID  types.EntityID
	Targets int
}

type AbilityActivatedData struct {
	UnitID      types.EntityID
	ActiveUntil float64
}

type AntigenCollectedData struct {
	CollectorID types.EntityID
	EnemyID     types.EntityID
	Bonus       int
}

type WaveData struct {
	Wave  int
	Bonus int // бонус энергии при старте следующей волны
}

type SessionEndedData struct {
	Wave  int
	Score int
	Err   error // только для SessionFailed
}
