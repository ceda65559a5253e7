// pkg/utils/math.go
package utils

import "math"

// Abs returns the absolute value of x.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Distance возвращает евклидово расстояние между (x1, y1) и (x2, y2).
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// WithinRange reports whether two points are no further apart than r.
// Compares squared distances, so it is safe to call in hot loops.
func WithinRange(x1, y1, x2, y2, r float64) bool {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx+dy*dy <= r*r
}

// Clamp ограничивает v отрезком [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt limits v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}
