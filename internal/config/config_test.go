package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultDifficultiesAreValid(t *testing.T) {
	for level, d := range DefaultDifficulties() {
		if err := d.Validate(); err != nil {
			t.Errorf("%s: %v", level, err)
		}
	}
	if DefaultDifficulties()[Hard].MutationChance != 0.3 {
		t.Fatalf("hard difficulty must carry the documented 30%% mutation chance")
	}
}

func TestParseLevel(t *testing.T) {
	if l, err := ParseLevel("medium"); err != nil || l != Medium {
		t.Fatalf("unexpected result %q, %v", l, err)
	}
	if _, err := ParseLevel("nightmare"); !errors.Is(err, ErrUnknownDifficulty) {
		t.Fatalf("expected ErrUnknownDifficulty, got %v", err)
	}
}

func TestWaveFormulas(t *testing.T) {
	if WaveQuota(1) != 10 || WaveQuota(4) != 16 {
		t.Fatalf("quota must be 8 + 2*wave")
	}
	cases := map[int]float64{1: 3.3, 5: 2.5, 10: 1.5, 20: 1.5}
	for wave, want := range cases {
		if got := SpawnDelay(wave); got < want-1e-9 || got > want+1e-9 {
			t.Errorf("SpawnDelay(%d) = %v, want %v", wave, got, want)
		}
	}
	if WaveBonus(2) != 140 {
		t.Fatalf("expected bonus 140, got %d", WaveBonus(2))
	}
}

func TestParseMergesOverrides(t *testing.T) {
	data := []byte(`
difficulty: hard
seed: 42
player:
  id: user-1
  display_name: Ana
persistence:
  url: https://example.supabase.co
  timeout: 3s
difficulties:
  easy:
    health_multiplier: 1
    speed_multiplier: 1
    reward_multiplier: 2
    starting_energy: 999
    starting_health: 10
    waves: 2
`)
	s, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Difficulty != Hard || s.Seed != 42 {
		t.Fatalf("unexpected top-level fields: %+v", s)
	}
	if s.Player.ID != "user-1" || s.Player.DisplayName != "Ana" {
		t.Fatalf("unexpected player: %+v", s.Player)
	}
	if s.Persistence.Timeout != 3*time.Second || s.Persistence.Table != "scores" {
		t.Fatalf("unexpected persistence: %+v", s.Persistence)
	}
	easy, _ := s.DifficultyFor(Easy)
	if easy.StartingEnergy != 999 || easy.Waves != 2 {
		t.Fatalf("easy row not overridden: %+v", easy)
	}
	medium, _ := s.DifficultyFor(Medium)
	if medium.StartingEnergy != 300 {
		t.Fatalf("medium row must keep defaults: %+v", medium)
	}
}

func TestParseRejectsInvalidRows(t *testing.T) {
	data := []byte(`
difficulties:
  easy:
    health_multiplier: 1
    speed_multiplier: 1
    starting_health: 10
    waves: 0
`)
	if _, err := Parse(data); err == nil {
		t.Fatalf("expected validation error for zero waves")
	}
	if _, err := Parse([]byte("difficulty: insane")); !errors.Is(err, ErrUnknownDifficulty) {
		t.Fatalf("expected ErrUnknownDifficulty, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	s, err := Load("")
	if err != nil || s.Difficulty != Easy {
		t.Fatalf("empty path must yield defaults, got %+v, %v", s, err)
	}

	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("difficulty: medium\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err = Load(path)
	if err != nil || s.Difficulty != Medium {
		t.Fatalf("unexpected result %+v, %v", s, err)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
