// internal/component/status_effect.go
package component

// SlowEffect означает, что враг замедлен до ExpiresAt (время симуляции).
type SlowEffect struct {
	Factor    float64
	ExpiresAt float64
}

// Expired reports whether the effect no longer applies at now.
func (s *SlowEffect) Expired(now float64) bool {
	return now >= s.ExpiresAt
}
