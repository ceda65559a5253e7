// internal/component/tower.go
package component

import (
	"virus-hunter/internal/types"
	"virus-hunter/pkg/pathmap"
)

// Tower: установленный защитный юнит. После установки не двигается.
type Tower struct {
	ID       types.EntityID
	DefID    string       // ID из каталога юнитов
	Cell     pathmap.Cell // клетка сетки, занятая юнитом
	Position pathmap.Point
	LastShot float64 // время последнего выстрела по часам симуляции

	AbilityActiveUntil   float64
	AbilityCooldownUntil float64
}

// AbilityActive reports whether the unit's area buff is running at now.
func (t *Tower) AbilityActive(now float64) bool {
	return now < t.AbilityActiveUntil
}

// AbilityReady сообщает, прошла ли перезарядка к моменту now.
func (t *Tower) AbilityReady(now float64) bool {
	return now >= t.AbilityCooldownUntil
}
