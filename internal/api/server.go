// internal/api/server.go
package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"virus-hunter/internal/app"
	"virus-hunter/internal/component"
	"virus-hunter/internal/config"
)

// intentHello asks for a snapshot addressed to a freshly connected client.
const intentHello = "hello"

// Server владеет циклом движка. Обработчики websocket не трогают Game:
// они отправляют намерения, которые Run применяет между тиками.
type Server struct {
	game     *app.Game
	hub      *Hub
	intents  chan Intent
	done     chan struct{}
	tickRate int
	logger   *log.Logger

	dirty  bool
	failed bool
}

func NewServer(game *app.Game, tickRate int, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Server{
		game:     game,
		hub:      NewHub(logger),
		intents:  make(chan Intent, 64),
		done:     make(chan struct{}),
		tickRate: tickRate,
		logger:   logger,
	}
}

// Handler returns the HTTP routes of the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.ServeWs)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	return mux
}

// Run ticks the engine at the configured rate until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	defer close(s.done)
	go s.hub.Run(ctx)

	ticker := time.NewTicker(time.Second / time.Duration(s.tickRate))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case in := <-s.intents:
			s.apply(in)
		case n := <-s.game.Notifications():
			s.hub.Broadcast(Message{Type: TypeNotice, Payload: n})
		case <-ticker.C:
			s.step()
		}
	}
}

func (s *Server) submit(in Intent) {
	select {
	case s.intents <- in:
	case <-s.done:
	}
}

func (s *Server) step() {
	err := s.game.Advance()
	var te *app.TickError
	switch {
	case err == nil:
		s.failed = false
	case errors.As(err, &te) && !s.failed:
		s.failed = true
		s.dirty = true
		s.logger.Printf("Engine stopped: %v\n%s", te, te.Stack)
	}
	if s.dirty || s.game.Mode() == component.ModePlaying {
		s.dirty = false
		s.hub.Broadcast(Message{Type: TypeSnapshot, Payload: s.game.Snapshot()})
	}
}

func (s *Server) apply(in Intent) {
	if in.Kind == intentHello {
		s.hub.SendTo(in.client, Message{Type: TypeSnapshot, Payload: s.game.Snapshot()})
		return
	}

	ack := Ack{Intent: in.Kind}
	switch in.Kind {
	case IntentStart:
		level := config.Level(in.Level)
		if level == "" {
			level = s.game.Level()
		}
		if err := s.game.Start(level); err != nil {
			ack.Error = err.Error()
		} else {
			ack.OK = true
		}
	case IntentReset:
		s.game.Reset()
		ack.OK = true
	case IntentPlace:
		id, r := s.game.PlaceUnit(in.Cell, in.UnitID)
		ack.OK, ack.Result, ack.UnitID = r.OK(), string(r), id
	case IntentAbility:
		ack.OK = s.game.ActivateAbility(in.Target)
	case IntentPause:
		ack.OK = s.game.TogglePause()
	case IntentSpeed:
		if in.Speed == 0 {
			s.game.CycleSpeed()
			ack.OK = true
		} else {
			ack.OK = s.game.SetGameSpeed(in.Speed)
		}
		ack.Speed = s.game.Speed()
	default:
		ack.Error = "unknown intent"
	}
	s.dirty = true
	if in.client != nil {
		s.hub.SendTo(in.client, Message{Type: TypeAck, Payload: ack})
	}
}
