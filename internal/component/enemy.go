// internal/component/enemy.go
package component

import (
	"virus-hunter/internal/types"
	"virus-hunter/pkg/pathmap"
)

// Enemy представляет вражескую сущность (патоген), идущую по пути.
type Enemy struct {
	ID            types.EntityID
	DefID         string // ID из каталога врагов
	Health        float64
	MaxHealth     float64
	Speed         float64 // текущая скорость, единицы каталога
	OriginalSpeed float64
	PathIndex     int     // текущий сегмент пути
	Progress      float64 // 0..1 внутри сегмента
	Position      pathmap.Point
	Slow          *SlowEffect
	Mutated       bool
	EnergyReward  int // базовая награда каталога, в энергию
	ScoreReward   int // награда с учётом сложности, в очки
	BreachDamage  int
	Size          float64

	// Removed ставится ровно один раз: убийством или прорывом.
	Removed bool
}

// Alive reports whether the enemy still takes part in the simulation.
func (e *Enemy) Alive() bool {
	return !e.Removed && e.Health > 0
}

// HealthFraction нужна рендерерам для полосок здоровья.
func (e *Enemy) HealthFraction() float64 {
	if e.MaxHealth <= 0 {
		return 0
	}
	return e.Health / e.MaxHealth
}
