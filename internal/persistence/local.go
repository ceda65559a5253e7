// internal/persistence/local.go
package persistence

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// LocalSaver дописывает результаты в YAML-файл на диске.
type LocalSaver struct {
	Path string
	mu   sync.Mutex
}

func NewLocalSaver(path string) *LocalSaver {
	return &LocalSaver{Path: path}
}

type localFile struct {
	Results []Payload `yaml:"results"`
}

func (s *LocalSaver) SaveResult(ctx context.Context, p Payload) SaveOutcome {
	if err := ctx.Err(); err != nil {
		return SaveOutcome{Err: err}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.read()
	if err != nil {
		return SaveOutcome{Err: err}
	}
	file.Results = append(file.Results, p)
	if err := s.write(file); err != nil {
		return SaveOutcome{Err: err}
	}
	return SaveOutcome{Success: true}
}

// Results returns every stored result, oldest first.
func (s *LocalSaver) Results() ([]Payload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	file, err := s.read()
	if err != nil {
		return nil, err
	}
	return file.Results, nil
}

func (s *LocalSaver) read() (localFile, error) {
	var file localFile
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return file, nil
	}
	if err != nil {
		return file, fmt.Errorf("failed to read local scores: %w", err)
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return file, fmt.Errorf("failed to unmarshal local scores: %w", err)
	}
	return file, nil
}

func (s *LocalSaver) write(file localFile) error {
	data, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("failed to marshal local scores: %w", err)
	}
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create score directory: %w", err)
		}
	}
	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write local scores: %w", err)
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		return fmt.Errorf("failed to replace local scores: %w", err)
	}
	return nil
}
