// internal/component/session.go
package component

// Mode: грубое состояние сессии.
type Mode string

const (
	ModeMenu     Mode = "menu"
	ModePlaying  Mode = "playing"
	ModePaused   Mode = "paused"
	ModeGameOver Mode = "gameOver"
	ModeVictory  Mode = "victory"
	ModeFailed   Mode = "failed"
)

// Terminal reports whether the mode ends the session.
func (m Mode) Terminal() bool {
	return m == ModeGameOver || m == ModeVictory || m == ModeFailed
}

// Session хранит скалярное состояние одной игровой сессии.
type Session struct {
	Health          int
	StartingHealth  int
	Energy          int
	Score           int
	Antigens        int
	Kills           int
	Breaches        int
	GameTime        float64 // часы симуляции, масштабированные секунды
	PlayTime        float64 // реальные секунды в режиме playing
	SpeedMultiplier float64
	Mode            Mode
}

// HealthPct returns the remaining share of the starting health.
func (s *Session) HealthPct() float64 {
	if s.StartingHealth <= 0 {
		return 0
	}
	return float64(s.Health) / float64(s.StartingHealth)
}
