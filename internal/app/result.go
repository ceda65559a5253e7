// internal/app/result.go
package app

import (
	"context"
	"time"

	"virus-hunter/internal/component"
	"virus-hunter/internal/config"
	"virus-hunter/internal/outcome"
	"virus-hunter/internal/persistence"
)

const saveTimeout = 15 * time.Second

// NoticeKind classifies a Notification.
type NoticeKind string

const (
	NoticeSaved      NoticeKind = "saved"
	NoticeSavedLocal NoticeKind = "saved-locally"
	NoticeSaveFailed NoticeKind = "save-failed"
	NoticeFailure    NoticeKind = "failure"
)

// Notification: информационное сообщение вне тика, например итог сохранения
// результата.
type Notification struct {
	Kind    NoticeKind `json:"kind"`
	Message string     `json:"message"`
	Err     string     `json:"error,omitempty"`
}

// Notifications отдаёт информационные сообщения. Отправка не блокирует:
// если никто не читает, сообщения теряются.
func (g *Game) Notifications() <-chan Notification {
	return g.notifications
}

func (g *Game) notify(n Notification) {
	select {
	case g.notifications <- n:
	default:
		g.logger.Printf("Notification dropped: %s", n.Message)
	}
}

// Result returns the result of a finished session, or nil while it runs.
func (g *Game) Result() *outcome.Result {
	if g.result == nil {
		return nil
	}
	r := *g.result
	return &r
}

// finish строит результат один раз на финальный переход и отдаёт его на
// сохранение, не блокируя цикл.
func (g *Game) finish() {
	if g.result != nil {
		return
	}
	s := g.ecs.Session
	r := outcome.BuildResultPayload(outcome.Summary{
		Score:          s.Score,
		Health:         s.Health,
		StartingHealth: s.StartingHealth,
		WaveReached:    g.ecs.Wave.Number,
		TotalWaves:     g.difficulty.Waves,
		Kills:          s.Kills,
		Antigens:       s.Antigens,
		PlayTime:       s.PlayTime,
		Victory:        s.Mode == component.ModeVictory,
	})
	g.result = &r
	g.logger.Printf("Session ended: mode=%s wave=%d final_score=%d stars=%d", s.Mode, g.ecs.Wave.Number, r.FinalScore, r.Stars)

	if g.saver == nil {
		return
	}
	payload := persistence.Payload{
		Identity:   g.identity,
		LevelID:    config.PhaseID,
		Difficulty: string(g.level),
		Result:     r,
		SavedAt:    g.clock.Now(),
	}
	go g.save(payload)
}

func (g *Game) save(p persistence.Payload) {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	out := g.saver.SaveResult(ctx, p)
	n := Notification{Kind: NoticeSaved, Message: "Result saved"}
	switch {
	case out.Success:
	case out.Fallback:
		n = Notification{Kind: NoticeSavedLocal, Message: "Server unavailable, result kept locally"}
	default:
		n = Notification{Kind: NoticeSaveFailed, Message: "Could not save the result"}
	}
	if out.Err != nil {
		n.Err = out.Err.Error()
		g.logger.Printf("Save result: %v", out.Err)
	}
	g.notify(n)
}
