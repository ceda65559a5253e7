// internal/config/difficulty.go
package config

import (
	"errors"
	"fmt"
)

// Level: уровень сложности.
type Level string

const (
	Easy   Level = "easy"
	Medium Level = "medium"
	Hard   Level = "hard"
)

// ErrUnknownDifficulty is returned for a level outside the difficulty table.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulty: строка настраиваемой таблицы сложности. Здоровье и скорость
// считаются как base*Multiplier + Bonus.
type Difficulty struct {
	HealthMultiplier float64 `yaml:"health_multiplier"`
	HealthBonus      float64 `yaml:"health_bonus"`
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`
	SpeedBonus       float64 `yaml:"speed_bonus"`
	RewardMultiplier float64 `yaml:"reward_multiplier"`
	StartingEnergy   int     `yaml:"starting_energy"`
	StartingHealth   int     `yaml:"starting_health"`
	Waves            int     `yaml:"waves"`
	MutationChance   float64 `yaml:"mutation_chance"`
	Adaptive         bool    `yaml:"adaptive"`
	AbundantEnergy   int     `yaml:"abundant_energy"`
}

// DefaultDifficulties возвращает стандартную таблицу фазы Skin Defense.
func DefaultDifficulties() map[Level]Difficulty {
	return map[Level]Difficulty{
		Easy: {
			HealthMultiplier: 1.0,
			SpeedMultiplier:  0.8,
			RewardMultiplier: 1.0,
			StartingEnergy:   400,
			StartingHealth:   150,
			Waves:            4,
		},
		Medium: {
			HealthMultiplier: 1.3,
			SpeedMultiplier:  1.0,
			RewardMultiplier: 1.0,
			StartingEnergy:   300,
			StartingHealth:   100,
			Waves:            5,
		},
		Hard: {
			HealthMultiplier: 1.7,
			SpeedMultiplier:  1.2,
			RewardMultiplier: 0.8,
			StartingEnergy:   250,
			StartingHealth:   80,
			Waves:            6,
			MutationChance:   0.3,
			Adaptive:         true,
			AbundantEnergy:   AbundantEnergy,
		},
	}
}

// ParseLevel превращает ввод пользователя в Level.
func ParseLevel(s string) (Level, error) {
	switch Level(s) {
	case Easy, Medium, Hard:
		return Level(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}

// Validate checks that a table row can drive a session.
func (d Difficulty) Validate() error {
	switch {
	case d.HealthMultiplier <= 0:
		return fmt.Errorf("health_multiplier must be positive, got %v", d.HealthMultiplier)
	case d.SpeedMultiplier <= 0:
		return fmt.Errorf("speed_multiplier must be positive, got %v", d.SpeedMultiplier)
	case d.RewardMultiplier < 0:
		return fmt.Errorf("reward_multiplier must not be negative, got %v", d.RewardMultiplier)
	case d.StartingHealth <= 0:
		return fmt.Errorf("starting_health must be positive, got %d", d.StartingHealth)
	case d.StartingEnergy < 0:
		return fmt.Errorf("starting_energy must not be negative, got %d", d.StartingEnergy)
	case d.Waves <= 0:
		return fmt.Errorf("waves must be positive, got %d", d.Waves)
	case d.MutationChance < 0 || d.MutationChance > 1:
		return fmt.Errorf("mutation_chance must be within [0, 1], got %v", d.MutationChance)
	}
	return nil
}

// WaveQuota возвращает, сколько врагов выпускает волна.
func WaveQuota(wave int) int {
	return QuotaBase + wave*QuotaPerWave
}

// SpawnDelay: секунды между появлениями врагов в волне. С каждой волной короче.
func SpawnDelay(wave int) float64 {
	d := SpawnDelayBase - float64(wave)*SpawnDelayStep
	if d < SpawnDelayMin {
		return SpawnDelayMin
	}
	return d
}

// WaveBonus: энергия за зачищенную волну, выдаётся при старте следующей.
func WaveBonus(wave int) int {
	return WaveBonusBase + wave*WaveBonusPerWave
}
