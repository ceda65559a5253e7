package terminal

import (
	"context"
	"io"
	"log"
	"testing"
	"time"

	"virus-hunter/internal/app"
	"virus-hunter/internal/component"
	"virus-hunter/internal/config"
	"virus-hunter/pkg/pathmap"

	"github.com/gdamore/tcell/v2"
)

func newTestTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(120, 30)
	t.Cleanup(screen.Fini)

	game, err := app.NewGame(app.Options{
		Settings: config.DefaultSettings(),
		Path:     pathmap.MustPath([]pathmap.Point{{X: 0, Y: 100}, {X: 1200, Y: 100}}),
		Logger:   log.New(io.Discard, "", 0),
	})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return New(screen, game), screen
}

func TestMenuStartsSession(t *testing.T) {
	term, _ := newTestTerminal(t)

	if !term.handleRune('2') {
		t.Fatal("Expected the terminal to keep running")
	}
	if term.game.Mode() != component.ModePlaying {
		t.Errorf("Expected playing mode, got %s", term.game.Mode())
	}
	if term.game.Level() != config.Medium {
		t.Errorf("Expected medium, got %s", term.game.Level())
	}
}

func TestQuit(t *testing.T) {
	term, _ := newTestTerminal(t)
	if term.handleRune('q') {
		t.Error("Expected q to quit from the menu")
	}
	term.handleRune('1')
	if term.handleRune('q') {
		t.Error("Expected q to quit during play")
	}
}

func TestPathCellsMarked(t *testing.T) {
	term, _ := newTestTerminal(t)

	if !term.onPath[pathmap.Cell{X: 0, Y: 2}] {
		t.Error("Expected cell (0,2) on the path")
	}
	if term.onPath[pathmap.Cell{X: 0, Y: 5}] {
		t.Error("Expected cell (0,5) off the path")
	}
}

func TestPlaceAndDrawUnit(t *testing.T) {
	term, screen := newTestTerminal(t)
	term.handleRune('1')

	term.cursor = pathmap.Cell{X: 5, Y: 10}
	term.handleRune('4')
	term.handleRune(' ')

	snap := term.game.Snapshot()
	if len(snap.Units) != 1 {
		t.Fatalf("Expected one unit, got %d (%s)", len(snap.Units), term.message)
	}
	want := term.units[3]
	if snap.Energy != 400-want.Cost {
		t.Errorf("Expected energy %d, got %d", 400-want.Cost, snap.Energy)
	}

	term.Draw()
	r, _, _, _ := screen.GetContent(5*cellWidth, 10)
	if r != firstRune(want.Visuals.Glyph, 'U') {
		t.Errorf("Expected glyph %q at the unit cell, got %q", want.Visuals.Glyph, r)
	}

	term.cursor = pathmap.Cell{X: 0, Y: 2}
	term.handleRune(' ')
	if len(term.game.Snapshot().Units) != 1 {
		t.Error("Expected placement on the path to be refused")
	}
}

func TestPauseAndSpeedKeys(t *testing.T) {
	term, _ := newTestTerminal(t)
	term.handleRune('1')

	term.handleRune('f')
	if got := term.game.Speed(); got != 1.5 {
		t.Errorf("Expected speed 1.5, got %v", got)
	}
	term.handleRune('p')
	if term.game.Mode() != component.ModePaused {
		t.Errorf("Expected paused, got %s", term.game.Mode())
	}
	term.handleRune('p')
	if term.game.Mode() != component.ModePlaying {
		t.Errorf("Expected playing, got %s", term.game.Mode())
	}
}

func TestCursorStaysOnGrid(t *testing.T) {
	term, _ := newTestTerminal(t)
	term.cursor = pathmap.Cell{X: 0, Y: 0}
	term.moveCursor(-1, 0)
	term.moveCursor(0, -1)
	if term.cursor != (pathmap.Cell{X: 0, Y: 0}) {
		t.Errorf("Expected cursor clamped at origin, got %v", term.cursor)
	}
}

func TestEventForwardingStopsWithContext(t *testing.T) {
	term, screen := newTestTerminal(t)
	ctx, cancel := context.WithCancel(context.Background())

	events := make(chan tcell.Event) // никто не читает, как после выхода из Run
	done := make(chan struct{})
	go func() {
		term.forwardEvents(ctx, events)
		close(done)
	}()

	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Expected the forwarding goroutine to exit after cancel")
	}
}
