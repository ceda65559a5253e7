// internal/config/settings.go
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// PlayerSettings определяет игрока. Движок их не интерпретирует.
type PlayerSettings struct {
	ID          string `yaml:"id"`
	DisplayName string `yaml:"display_name"`
	Email       string `yaml:"email"`
}

// PersistenceSettings configures where finished sessions are reported.
type PersistenceSettings struct {
	URL       string        `yaml:"url"`
	APIKey    string        `yaml:"api_key"`
	Table     string        `yaml:"table"`
	LocalPath string        `yaml:"local_path"`
	Timeout   time.Duration `yaml:"timeout"`
}

// ServerSettings configures the headless websocket server.
type ServerSettings struct {
	Addr     string `yaml:"addr"`
	TickRate int    `yaml:"tick_rate"`
}

// Settings читаются один раз при старте и явно передаются в сессию.
type Settings struct {
	Difficulty   Level                `yaml:"difficulty"`
	Seed         int64                `yaml:"seed"`
	CatalogPath  string               `yaml:"catalog_path"`
	Difficulties map[Level]Difficulty `yaml:"difficulties"`
	Player       PlayerSettings       `yaml:"player"`
	Persistence  PersistenceSettings  `yaml:"persistence"`
	Server       ServerSettings       `yaml:"server"`
}

// DefaultSettings returns settings usable without a file.
func DefaultSettings() Settings {
	return Settings{
		Difficulty:   Easy,
		Difficulties: DefaultDifficulties(),
		Player:       PlayerSettings{ID: "local", DisplayName: "Jogador"},
		Persistence: PersistenceSettings{
			Table:     "scores",
			LocalPath: "virus-hunter-scores.yaml",
			Timeout:   10 * time.Second,
		},
		Server: ServerSettings{Addr: ":8081", TickRate: 60},
	}
}

// Load читает YAML-файл настроек поверх DefaultSettings. Пустой путь даёт
// значения по умолчанию. Строки сложности из файла заменяют стандартные
// с тем же именем.
func Load(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML settings on top of DefaultSettings.
func Parse(data []byte) (Settings, error) {
	s := DefaultSettings()
	var file Settings
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Settings{}, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	merge(&s, file)
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func merge(dst *Settings, src Settings) {
	if src.Difficulty != "" {
		dst.Difficulty = src.Difficulty
	}
	if src.Seed != 0 {
		dst.Seed = src.Seed
	}
	if src.CatalogPath != "" {
		dst.CatalogPath = src.CatalogPath
	}
	for level, d := range src.Difficulties {
		dst.Difficulties[level] = d
	}
	if src.Player.ID != "" {
		dst.Player = src.Player
	}
	p := src.Persistence
	if p.URL != "" {
		dst.Persistence.URL = p.URL
	}
	if p.APIKey != "" {
		dst.Persistence.APIKey = p.APIKey
	}
	if p.Table != "" {
		dst.Persistence.Table = p.Table
	}
	if p.LocalPath != "" {
		dst.Persistence.LocalPath = p.LocalPath
	}
	if p.Timeout > 0 {
		dst.Persistence.Timeout = p.Timeout
	}
	if src.Server.Addr != "" {
		dst.Server.Addr = src.Server.Addr
	}
	if src.Server.TickRate > 0 {
		dst.Server.TickRate = src.Server.TickRate
	}
}

// Validate checks the selected difficulty and every table row.
func (s Settings) Validate() error {
	if _, err := ParseLevel(string(s.Difficulty)); err != nil {
		return err
	}
	for level, d := range s.Difficulties {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("difficulty %s: %w", level, err)
		}
	}
	if _, ok := s.Difficulties[s.Difficulty]; !ok {
		return fmt.Errorf("%w: %q has no table row", ErrUnknownDifficulty, s.Difficulty)
	}
	return nil
}

// DifficultyFor возвращает строку таблицы для level.
func (s Settings) DifficultyFor(level Level) (Difficulty, error) {
	d, ok := s.Difficulties[level]
	if !ok {
		return Difficulty{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, level)
	}
	return d, nil
}
