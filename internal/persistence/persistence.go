// internal/persistence/persistence.go
package persistence

import (
	"context"
	"errors"
	"log"
	"time"

	"virus-hunter/internal/config"
	"virus-hunter/internal/outcome"
)

// ErrNoIdentity is returned by savers that need a player id when none was given.
var ErrNoIdentity = errors.New("no player identity")

// Identity is supplied by the session collaborator. The engine only copies it.
type Identity struct {
	PlayerID    string `yaml:"player_id" json:"player_id"`
	DisplayName string `yaml:"display_name" json:"display_name"`
	Email       string `yaml:"email,omitempty" json:"email,omitempty"`
}

// Payload is one finished attempt as handed to a Saver.
type Payload struct {
	Identity   `yaml:",inline"`
	LevelID    int            `yaml:"level_id"`
	Difficulty string         `yaml:"difficulty"`
	Result     outcome.Result `yaml:"result"`
	SavedAt    time.Time      `yaml:"saved_at"`
}

// SaveOutcome tells the UI whether the result was stored. Fallback is set
// when the primary store failed and a local copy was kept instead.
type SaveOutcome struct {
	Success  bool
	Err      error
	Fallback bool
}

// Saver stores results. Implementations must be safe to call from a
// goroutine other than the engine loop.
type Saver interface {
	SaveResult(ctx context.Context, p Payload) SaveOutcome
}

// New builds the saver chain described by the settings: REST with a local
// fallback when a URL is set, local only otherwise. It returns nil when
// nothing is configured.
func New(s config.PersistenceSettings, logger *log.Logger) Saver {
	var local Saver
	if s.LocalPath != "" {
		local = NewLocalSaver(s.LocalPath)
	}
	if s.URL == "" {
		return local
	}
	rest := NewRESTSaver(s.URL, s.APIKey, s.Table, s.Timeout)
	if local == nil {
		return rest
	}
	return &FallbackSaver{Primary: rest, Secondary: local, Logger: logger}
}
