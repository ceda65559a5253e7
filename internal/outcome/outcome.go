// internal/outcome/outcome.go
package outcome

import (
	"math"

	"virus-hunter/internal/config"
)

// CalculateStars даёт по звезде за каждое условие: осталось не меньше
// config.HealthStarFraction стартового здоровья; достигнута последняя волна;
// собрано не меньше threshold антигенов.
func CalculateStars(finalHealth, startingHealth, waveReached, totalWaves, antigens, threshold int) int {
	stars := 0
	if float64(finalHealth)+1e-9 >= float64(startingHealth)*config.HealthStarFraction {
		stars++
	}
	if waveReached >= totalWaves {
		stars++
	}
	if antigens >= threshold {
		stars++
	}
	return min(stars, config.MaxStars)
}

// Summary: состояние конца сессии, из которого строится результат.
type Summary struct {
	Score          int
	Health         int
	StartingHealth int
	WaveReached    int
	TotalWaves     int
	Kills          int
	Antigens       int
	PlayTime       float64 // секунды реального времени в игре
	Victory        bool
}

// Result is what the persistence collaborator stores for one attempt.
type Result struct {
	Score             int  `json:"score" yaml:"score"`
	FinalScore        int  `json:"final_score" yaml:"final_score"`
	Stars             int  `json:"stars" yaml:"stars"`
	WavesCompleted    int  `json:"waves_completed" yaml:"waves_completed"`
	EnemiesKilled     int  `json:"enemies_killed" yaml:"enemies_killed"`
	HealthRemaining   int  `json:"health_remaining" yaml:"health_remaining"`
	AntigensCollected int  `json:"antigens_collected" yaml:"antigens_collected"`
	TimeSpent         int  `json:"time_spent" yaml:"time_spent"` // целые секунды
	Completed         bool `json:"completed" yaml:"completed"`
}

// BuildResultPayload превращает Summary в Result. Только победа даёт бонус
// за антигены и засчитывает последнюю волну как пройденную.
func BuildResultPayload(s Summary) Result {
	r := Result{
		Score:             s.Score,
		FinalScore:        s.Score,
		Stars:             CalculateStars(s.Health, s.StartingHealth, s.WaveReached, s.TotalWaves, s.Antigens, config.AntigenStarThreshold),
		WavesCompleted:    max(0, s.WaveReached-1),
		EnemiesKilled:     s.Kills,
		HealthRemaining:   max(0, s.Health),
		AntigensCollected: s.Antigens,
		TimeSpent:         int(math.Floor(s.PlayTime)),
		Completed:         s.Victory,
	}
	if s.Victory {
		r.FinalScore += s.Antigens * config.AntigenScoreBonus
		r.WavesCompleted = s.WaveReached
	}
	return r
}
