// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// Random is the source of randomness used by the simulation. Tests inject a
// scripted implementation to get exact outcomes.
type Random interface {
	Intn(n int) int
	Float64() float64
}

// PRNGService: обёртка над стандартным генератором случайных чисел Go,
// позволяющая использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создаёт сервис с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed actually in use, so a session can be replayed.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// WeightedEntry is one option of a weighted draw.
type WeightedEntry struct {
	ID     string
	Weight int
}

// ChooseWeighted выполняет взвешенный случайный выбор: суммирует веса,
// выбирает число в этом диапазоне и находит соответствующий элемент.
func ChooseWeighted(r Random, entries []WeightedEntry) string {
	if len(entries) == 0 {
		return ""
	}

	totalWeight := 0
	for _, entry := range entries {
		totalWeight += entry.Weight
	}
	if totalWeight <= 0 {
		return entries[0].ID
	}

	n := r.Intn(totalWeight)
	upto := 0
	for _, entry := range entries {
		if upto+entry.Weight > n {
			return entry.ID
		}
		upto += entry.Weight
	}
	return entries[len(entries)-1].ID
}
