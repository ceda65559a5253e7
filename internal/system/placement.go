// internal/system/placement.go
package system

import (
	"virus-hunter/internal/component"
	"virus-hunter/internal/config"
	"virus-hunter/internal/defs"
	"virus-hunter/internal/entity"
	"virus-hunter/internal/event"
	"virus-hunter/internal/types"
	"virus-hunter/pkg/pathmap"
)

// PlaceResult описывает исход попытки установки.
type PlaceResult string

const (
	Placed          PlaceResult = "placed"
	PlaceOutOfGrid  PlaceResult = "out-of-grid"
	PlaceOccupied   PlaceResult = "occupied"
	PlaceNoEnergy   PlaceResult = "insufficient-energy"
	PlaceOnPath     PlaceResult = "on-path"
	PlaceUnknownDef PlaceResult = "unknown-unit"
	PlaceNotPlaying PlaceResult = "not-playing"
)

// OK reports whether the unit was placed.
func (r PlaceResult) OK() bool {
	return r == Placed
}

// Occupancy отвечает, занята ли клетка.
type Occupancy interface {
	Occupied(cell pathmap.Cell) bool
}

// CanPlace: чистое правило установки. Клетка в пределах сетки, свободна,
// и игроку хватает энергии.
func CanPlace(grid pathmap.Grid, occupancy Occupancy, cell pathmap.Cell, unit defs.UnitType, energy int) bool {
	return checkPlacement(grid, occupancy, cell, unit, energy) == Placed
}

func checkPlacement(grid pathmap.Grid, occupancy Occupancy, cell pathmap.Cell, unit defs.UnitType, energy int) PlaceResult {
	switch {
	case !grid.InBounds(cell):
		return PlaceOutOfGrid
	case occupancy.Occupied(cell):
		return PlaceOccupied
	case energy < unit.Cost:
		return PlaceNoEnergy
	}
	return Placed
}

// PlacementSystem validates and applies placement intents.
type PlacementSystem struct {
	ecs             *entity.ECS
	catalog         *defs.Catalog
	grid            pathmap.Grid
	path            *pathmap.Path
	eventDispatcher *event.Dispatcher
}

func NewPlacementSystem(ecs *entity.ECS, catalog *defs.Catalog, grid pathmap.Grid, path *pathmap.Path, eventDispatcher *event.Dispatcher) *PlacementSystem {
	return &PlacementSystem{
		ecs:             ecs,
		catalog:         catalog,
		grid:            grid,
		path:            path,
		eventDispatcher: eventDispatcher,
	}
}

// Check проверяет все правила, не меняя состояния. Помимо CanPlace отклоняет
// клетки, центр которых лежит на полосе пути.
func (s *PlacementSystem) Check(cell pathmap.Cell, unitID string) PlaceResult {
	mode := s.ecs.Session.Mode
	if mode != component.ModePlaying && mode != component.ModePaused {
		return PlaceNotPlaying
	}
	def, err := s.catalog.UnitType(unitID)
	if err != nil {
		return PlaceUnknownDef
	}
	if r := checkPlacement(s.grid, s.ecs, cell, def, s.ecs.Session.Energy); r != Placed {
		return r
	}
	if s.path.DistanceTo(s.grid.CellCenter(cell)) < config.PathClearance {
		return PlaceOnPath
	}
	return Placed
}

// Place списывает стоимость и добавляет юнит одним шагом, либо не делает ничего.
func (s *PlacementSystem) Place(cell pathmap.Cell, unitID string) (types.EntityID, PlaceResult) {
	if r := s.Check(cell, unitID); r != Placed {
		return 0, r
	}
	def := s.catalog.MustUnitType(unitID)
	now := s.ecs.Now()

	id := s.ecs.NewEntity()
	s.ecs.Session.Energy -= def.Cost
	s.ecs.AddTower(&component.Tower{
		ID:       id,
		DefID:    def.ID,
		Cell:     cell,
		Position: s.grid.CellCenter(cell),
		// готов стрелять сразу после установки
		LastShot: now - def.FireInterval,
	})

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.UnitPlaced,
		Time: now,
		Data: event.UnitPlacedData{UnitID: id, DefID: def.ID, Cell: cell, Cost: def.Cost},
	})
	return id, Placed
}
