// pkg/pathmap/path.go
package pathmap

import (
	"errors"
	"fmt"
	"math"

	"virus-hunter/pkg/utils"
)

// ErrMalformedPath is returned when a waypoint list cannot describe a walkable path.
var ErrMalformedPath = errors.New("malformed path")

// Point: точка в мировых координатах (пиксели холста)
type Point struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// Path: фиксированная ломаная, по которой враги идут от спавна к цели.
// Сегмент i соединяет точки i и i+1. Индекс, равный SegmentCount(),
// означает, что враг дошёл до конца.
type Path struct {
	waypoints []Point
	lengths   []float64
}

// NewPath проверяет точки и заранее считает длины сегментов.
func NewPath(points []Point) (*Path, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 waypoints, got %d", ErrMalformedPath, len(points))
	}
	wp := make([]Point, len(points))
	copy(wp, points)
	lengths := make([]float64, len(wp)-1)
	for i := 0; i < len(wp)-1; i++ {
		l := utils.Distance(wp[i].X, wp[i].Y, wp[i+1].X, wp[i+1].Y)
		if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
			return nil, fmt.Errorf("%w: segment %d has invalid length %v", ErrMalformedPath, i, l)
		}
		lengths[i] = l
	}
	return &Path{waypoints: wp, lengths: lengths}, nil
}

// MustPath is NewPath for compile-time known waypoints.
func MustPath(points []Point) *Path {
	p, err := NewPath(points)
	if err != nil {
		panic(err)
	}
	return p
}

// SegmentCount returns the number of segments (waypoints - 1).
func (p *Path) SegmentCount() int {
	return len(p.lengths)
}

// WaypointCount возвращает количество точек.
func (p *Path) WaypointCount() int {
	return len(p.waypoints)
}

// WaypointAt returns waypoint i. i must be in [0, WaypointCount()).
func (p *Path) WaypointAt(i int) Point {
	return p.waypoints[i]
}

// Waypoints возвращает копию всех точек.
func (p *Path) Waypoints() []Point {
	out := make([]Point, len(p.waypoints))
	copy(out, p.waypoints)
	return out
}

// SegmentLength returns the length of segment i.
func (p *Path) SegmentLength(i int) float64 {
	return p.lengths[i]
}

// PositionAlong linearly interpolates between waypoint[index] and waypoint[index+1].
// progress is clamped to [0, 1]; index >= SegmentCount() yields the goal.
func (p *Path) PositionAlong(index int, progress float64) Point {
	if index >= p.SegmentCount() {
		return p.waypoints[len(p.waypoints)-1]
	}
	if index < 0 {
		return p.waypoints[0]
	}
	t := utils.Clamp(progress, 0, 1)
	a, b := p.waypoints[index], p.waypoints[index+1]
	return Point{X: utils.Lerp(a.X, b.X, t), Y: utils.Lerp(a.Y, b.Y, t)}
}

// IsComplete reports whether index denotes the end of the path.
func (p *Path) IsComplete(index int) bool {
	return index >= p.SegmentCount()
}

// DistanceTo возвращает кратчайшее расстояние от pt до ломаной.
func (p *Path) DistanceTo(pt Point) float64 {
	best := math.MaxFloat64
	for i := 0; i < p.SegmentCount(); i++ {
		a, b := p.waypoints[i], p.waypoints[i+1]
		dx, dy := b.X-a.X, b.Y-a.Y
		t := ((pt.X-a.X)*dx + (pt.Y-a.Y)*dy) / (dx*dx + dy*dy)
		t = utils.Clamp(t, 0, 1)
		d := utils.Distance(pt.X, pt.Y, a.X+dx*t, a.Y+dy*t)
		if d < best {
			best = d
		}
	}
	return best
}

// SkinDefenseWaypoints: путь через центр холста 1200x700
func SkinDefenseWaypoints() []Point {
	return []Point{
		{X: 0, Y: 350},
		{X: 200, Y: 350},
		{X: 200, Y: 200},
		{X: 400, Y: 200},
		{X: 400, Y: 500},
		{X: 600, Y: 500},
		{X: 600, Y: 300},
		{X: 800, Y: 300},
		{X: 800, Y: 400},
		{X: 1000, Y: 400},
		{X: 1000, Y: 350},
		{X: 1200, Y: 350},
	}
}
