package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"virus-hunter/internal/config"
	"virus-hunter/internal/outcome"
)

func samplePayload() Payload {
	return Payload{
		Identity:   Identity{PlayerID: "4b1c", DisplayName: "Ana", Email: "ana@example.com"},
		LevelID:    1,
		Difficulty: "medium",
		Result: outcome.Result{
			Score:             900,
			FinalScore:        1400,
			Stars:             2,
			WavesCompleted:    5,
			EnemiesKilled:     70,
			HealthRemaining:   60,
			AntigensCollected: 10,
			TimeSpent:         412,
			Completed:         true,
		},
		SavedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestRESTSaverUpsertsScoreRow(t *testing.T) {
	var (
		gotPath, gotQuery, gotPrefer, gotKey, gotAuth string
		gotRow                                       map[string]any
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("on_conflict")
		gotPrefer = r.Header.Get("Prefer")
		gotKey = r.Header.Get("apikey")
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotRow); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	t.Cleanup(srv.Close)

	saver := NewRESTSaver(srv.URL+"/", "anon-key", "", time.Second)
	out := saver.SaveResult(context.Background(), samplePayload())
	if !out.Success || out.Err != nil {
		t.Fatalf("expected success, got %+v", out)
	}

	if gotPath != "/rest/v1/scores" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotQuery != "user_id,level_id,difficulty" {
		t.Fatalf("unexpected on_conflict %q", gotQuery)
	}
	if gotPrefer != "resolution=merge-duplicates,return=minimal" {
		t.Fatalf("unexpected Prefer header %q", gotPrefer)
	}
	if gotKey != "anon-key" || gotAuth != "Bearer anon-key" {
		t.Fatalf("missing auth headers: %q %q", gotKey, gotAuth)
	}
	want := map[string]any{
		"user_id":            "4b1c",
		"level_id":           float64(1),
		"difficulty":         "medium",
		"score":              float64(1400),
		"stars":              float64(2),
		"enemies_killed":     float64(70),
		"completed":          true,
		"time_spent":         float64(412),
		"health_remaining":   float64(60),
		"antigens_collected": float64(10),
		"waves_completed":    float64(5),
	}
	for k, v := range want {
		if gotRow[k] != v {
			t.Errorf("%s: got %v, want %v", k, gotRow[k], v)
		}
	}
}

func TestRESTSaverReportsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"code":"42P01"}`, http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	out := NewRESTSaver(srv.URL, "", "scores", time.Second).SaveResult(context.Background(), samplePayload())
	if out.Success || out.Err == nil {
		t.Fatalf("expected a failure, got %+v", out)
	}
}

func TestRESTSaverRequiresIdentity(t *testing.T) {
	p := samplePayload()
	p.PlayerID = ""
	out := NewRESTSaver("http://127.0.0.1:0", "", "", time.Second).SaveResult(context.Background(), p)
	if !errors.Is(out.Err, ErrNoIdentity) {
		t.Fatalf("expected ErrNoIdentity, got %v", out.Err)
	}
}

func TestLocalSaverAppends(t *testing.T) {
	saver := NewLocalSaver(filepath.Join(t.TempDir(), "nested", "scores.yaml"))
	for i := 0; i < 2; i++ {
		if out := saver.SaveResult(context.Background(), samplePayload()); !out.Success {
			t.Fatalf("save %d failed: %v", i, out.Err)
		}
	}
	results, err := saver.Results()
	if err != nil {
		t.Fatalf("Results: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	got := results[0]
	if got.PlayerID != "4b1c" || got.Result.FinalScore != 1400 || !got.SavedAt.Equal(samplePayload().SavedAt) {
		t.Fatalf("round trip lost data: %+v", got)
	}
}

type stubSaver struct {
	out   SaveOutcome
	calls int
}

func (s *stubSaver) SaveResult(context.Context, Payload) SaveOutcome {
	s.calls++
	return s.out
}

func TestFallbackSaver(t *testing.T) {
	logger := log.New(io.Discard, "", 0)
	boom := errors.New("offline")

	primary := &stubSaver{out: SaveOutcome{Err: boom}}
	local := &stubSaver{out: SaveOutcome{Success: true}}
	out := (&FallbackSaver{Primary: primary, Secondary: local, Logger: logger}).SaveResult(context.Background(), samplePayload())
	if out.Success || !out.Fallback || !errors.Is(out.Err, boom) {
		t.Fatalf("expected fallback outcome, got %+v", out)
	}

	primary = &stubSaver{out: SaveOutcome{Success: true}}
	local = &stubSaver{}
	out = (&FallbackSaver{Primary: primary, Secondary: local, Logger: logger}).SaveResult(context.Background(), samplePayload())
	if !out.Success || local.calls != 0 {
		t.Fatalf("secondary must not run when primary succeeds")
	}
}

func TestNewFromSettings(t *testing.T) {
	logger := log.New(io.Discard, "", 0)
	if New(config.PersistenceSettings{}, logger) != nil {
		t.Fatalf("nothing configured must yield no saver")
	}
	if _, ok := New(config.PersistenceSettings{LocalPath: "x.yaml"}, logger).(*LocalSaver); !ok {
		t.Fatalf("expected a local saver")
	}
	if _, ok := New(config.PersistenceSettings{URL: "http://db", LocalPath: "x.yaml"}, logger).(*FallbackSaver); !ok {
		t.Fatalf("expected a fallback chain")
	}
	if _, ok := New(config.PersistenceSettings{URL: "http://db"}, logger).(*RESTSaver); !ok {
		t.Fatalf("expected a REST saver")
	}
}
