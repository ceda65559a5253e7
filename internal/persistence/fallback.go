// internal/persistence/fallback.go
package persistence

import (
	"context"
	"log"
)

// FallbackSaver пробует Primary, при ошибке сохраняет копию в Secondary.
type FallbackSaver struct {
	Primary   Saver
	Secondary Saver
	Logger    *log.Logger
}

func (s *FallbackSaver) SaveResult(ctx context.Context, p Payload) SaveOutcome {
	out := s.Primary.SaveResult(ctx, p)
	if out.Success {
		return out
	}
	if s.Logger != nil {
		s.Logger.Printf("primary score store failed, keeping result locally: %v", out.Err)
	}
	local := s.Secondary.SaveResult(ctx, p)
	if !local.Success && s.Logger != nil {
		s.Logger.Printf("local score store failed too: %v", local.Err)
	}
	return SaveOutcome{Err: out.Err, Fallback: local.Success}
}
