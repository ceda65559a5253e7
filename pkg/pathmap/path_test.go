package pathmap

import (
	"errors"
	"testing"
)

func TestNewPathRejectsMalformedInput(t *testing.T) {
	cases := map[string][]Point{
		"empty":       nil,
		"single":      {{X: 1, Y: 1}},
		"zero length": {{X: 1, Y: 1}, {X: 1, Y: 1}},
	}
	for name, pts := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := NewPath(pts); !errors.Is(err, ErrMalformedPath) {
				t.Fatalf("expected ErrMalformedPath, got %v", err)
			}
		})
	}
}

func TestPositionAlongInterpolates(t *testing.T) {
	p := MustPath([]Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 50}})

	if p.SegmentCount() != 2 {
		t.Fatalf("expected 2 segments, got %d", p.SegmentCount())
	}
	if got := p.PositionAlong(0, 0.25); got != (Point{X: 25, Y: 0}) {
		t.Fatalf("unexpected position %+v", got)
	}
	if got := p.PositionAlong(1, 0.5); got != (Point{X: 100, Y: 25}) {
		t.Fatalf("unexpected position %+v", got)
	}
	if got := p.PositionAlong(2, 0); got != (Point{X: 100, Y: 50}) {
		t.Fatalf("complete index must map to the goal, got %+v", got)
	}
	if !p.IsComplete(2) || p.IsComplete(1) {
		t.Fatalf("IsComplete mismatch")
	}
	if p.SegmentLength(1) != 50 {
		t.Fatalf("expected segment length 50, got %v", p.SegmentLength(1))
	}
}

func TestWaypointsReturnsCopy(t *testing.T) {
	p := MustPath(SkinDefenseWaypoints())
	wp := p.Waypoints()
	wp[0].X = 999
	if p.WaypointAt(0).X == 999 {
		t.Fatalf("path must not expose its internal slice")
	}
	if p.WaypointCount() != 12 {
		t.Fatalf("expected 12 waypoints, got %d", p.WaypointCount())
	}
}

func TestDistanceTo(t *testing.T) {
	p := MustPath([]Point{{X: 0, Y: 0}, {X: 100, Y: 0}})
	if d := p.DistanceTo(Point{X: 50, Y: 30}); d != 30 {
		t.Fatalf("expected 30, got %v", d)
	}
	if d := p.DistanceTo(Point{X: 130, Y: 40}); d != 50 {
		t.Fatalf("expected 50 past the end, got %v", d)
	}
}

func TestGridCellMath(t *testing.T) {
	g := NewGrid(1200, 700, 40)
	if g.Cols != 30 || g.Rows != 17 {
		t.Fatalf("unexpected grid size %dx%d", g.Cols, g.Rows)
	}
	c := g.CellAt(85, 41)
	if c != (Cell{X: 2, Y: 1}) {
		t.Fatalf("unexpected cell %+v", c)
	}
	if center := g.CellCenter(c); center != (Point{X: 100, Y: 60}) {
		t.Fatalf("unexpected centre %+v", center)
	}
	if g.InBounds(Cell{X: 30, Y: 0}) || g.InBounds(Cell{X: -1, Y: 0}) {
		t.Fatalf("out of bounds cell reported in bounds")
	}
}
