// pkg/pathmap/grid.go
package pathmap

import "math"

// Cell адресует квадрат сетки установки.
type Cell struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Grid describes the placement grid laid over the canvas.
type Grid struct {
	CellSize float64
	Cols     int
	Rows     int
}

// NewGrid строит сетку из квадратных клеток на width x height.
func NewGrid(width, height int, cellSize float64) Grid {
	return Grid{
		CellSize: cellSize,
		Cols:     int(math.Floor(float64(width) / cellSize)),
		Rows:     int(math.Floor(float64(height) / cellSize)),
	}
}

// InBounds reports whether c lies on the grid.
func (g Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < g.Cols && c.Y < g.Rows
}

// CellCenter возвращает мировые координаты центра c.
func (g Grid) CellCenter(c Cell) Point {
	return Point{
		X: float64(c.X)*g.CellSize + g.CellSize/2,
		Y: float64(c.Y)*g.CellSize + g.CellSize/2,
	}
}

// CellAt возвращает клетку, содержащую точку (x, y).
func (g Grid) CellAt(x, y float64) Cell {
	return Cell{X: int(math.Floor(x / g.CellSize)), Y: int(math.Floor(y / g.CellSize))}
}
