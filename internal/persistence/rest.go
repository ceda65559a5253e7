// internal/persistence/rest.go
package persistence

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// RESTSaver upserts results into a PostgREST table keyed by
// (user_id, level_id, difficulty).
type RESTSaver struct {
	BaseURL string
	APIKey  string
	Table   string
	Client  *http.Client
}

func NewRESTSaver(baseURL, apiKey, table string, timeout time.Duration) *RESTSaver {
	if table == "" {
		table = "scores"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &RESTSaver{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		Table:   table,
		Client:  &http.Client{Timeout: timeout},
	}
}

// scoreRow mirrors the columns of the scores table.
type scoreRow struct {
	UserID            string `json:"user_id"`
	LevelID           int    `json:"level_id"`
	Difficulty        string `json:"difficulty"`
	Score             int    `json:"score"`
	Stars             int    `json:"stars"`
	EnemiesKilled     int    `json:"enemies_killed"`
	Completed         bool   `json:"completed"`
	TimeSpent         int    `json:"time_spent"`
	HealthRemaining   int    `json:"health_remaining"`
	AntigensCollected int    `json:"antigens_collected"`
	WavesCompleted    int    `json:"waves_completed"`
}

func rowFromPayload(p Payload) scoreRow {
	return scoreRow{
		UserID:            p.PlayerID,
		LevelID:           p.LevelID,
		Difficulty:        p.Difficulty,
		Score:             p.Result.FinalScore,
		Stars:             p.Result.Stars,
		EnemiesKilled:     p.Result.EnemiesKilled,
		Completed:         p.Result.Completed,
		TimeSpent:         p.Result.TimeSpent,
		HealthRemaining:   p.Result.HealthRemaining,
		AntigensCollected: p.Result.AntigensCollected,
		WavesCompleted:    p.Result.WavesCompleted,
	}
}

func (s *RESTSaver) SaveResult(ctx context.Context, p Payload) SaveOutcome {
	if err := s.save(ctx, p); err != nil {
		return SaveOutcome{Err: err}
	}
	return SaveOutcome{Success: true}
}

func (s *RESTSaver) save(ctx context.Context, p Payload) error {
	if p.PlayerID == "" {
		return ErrNoIdentity
	}
	body, err := json.Marshal(rowFromPayload(p))
	if err != nil {
		return fmt.Errorf("failed to encode score row: %w", err)
	}

	endpoint := fmt.Sprintf("%s/rest/v1/%s?%s", s.BaseURL, url.PathEscape(s.Table),
		url.Values{"on_conflict": {"user_id,level_id,difficulty"}}.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "resolution=merge-duplicates,return=minimal")
	if s.APIKey != "" {
		req.Header.Set("apikey", s.APIKey)
		req.Header.Set("Authorization", "Bearer "+s.APIKey)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send score: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("score upsert failed: %s: %s", resp.Status, strings.TrimSpace(string(msg)))
	}
	return nil
}
