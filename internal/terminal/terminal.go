// internal/terminal/terminal.go
package terminal

import (
	"context"
	"fmt"
	"time"

	"virus-hunter/internal/app"
	"virus-hunter/internal/component"
	"virus-hunter/internal/config"
	"virus-hunter/internal/defs"
	"virus-hunter/pkg/pathmap"

	"github.com/gdamore/tcell/v2"
)

const (
	frameInterval = 33 * time.Millisecond
	cellWidth     = 2 // две колонки терминала на клетку сетки
)

var (
	styleField  = tcell.StyleDefault.Background(tcell.NewRGBColor(40, 24, 20))
	stylePath   = tcell.StyleDefault.Background(tcell.NewRGBColor(120, 60, 45))
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleNotice = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleError  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Terminal: текстовый фронтенд движка. Как и остальные, только читает снимки
// и отправляет намерения.
type Terminal struct {
	screen tcell.Screen
	game   *app.Game

	cursor   pathmap.Cell
	selected int
	message  string
	onPath   map[pathmap.Cell]bool
	units    []defs.UnitType
}

func New(screen tcell.Screen, game *app.Game) *Terminal {
	t := &Terminal{
		screen: screen,
		game:   game,
		onPath: make(map[pathmap.Cell]bool),
		units:  game.Catalog().UnitTypes(),
	}
	grid := game.Grid()
	for y := 0; y < grid.Rows; y++ {
		for x := 0; x < grid.Cols; x++ {
			c := pathmap.Cell{X: x, Y: y}
			if game.Path().DistanceTo(grid.CellCenter(c)) < config.PathClearance {
				t.onPath[c] = true
			}
		}
	}
	t.cursor = pathmap.Cell{X: grid.Cols / 2, Y: grid.Rows / 2}
	return t
}

// Run polls input and advances the engine until ctx is done or the player quits.
func (t *Terminal) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 100)
	go t.forwardEvents(ctx, events)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !t.HandleEvent(ev) {
				return nil
			}
		case n := <-t.game.Notifications():
			t.message = n.Message
		case <-ticker.C:
			if err := t.game.Advance(); err != nil {
				t.message = err.Error()
			}
			t.Draw()
		}
	}
}

// HandleEvent returns false when the player asked to quit.
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			t.moveCursor(0, -1)
		case tcell.KeyDown:
			t.moveCursor(0, 1)
		case tcell.KeyLeft:
			t.moveCursor(-1, 0)
		case tcell.KeyRight:
			t.moveCursor(1, 0)
		case tcell.KeyEnter:
			t.place()
		case tcell.KeyRune:
			return t.handleRune(ev.Rune())
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

// forwardEvents перекладывает события экрана в канал, пока Run жив.
func (t *Terminal) forwardEvents(ctx context.Context, events chan<- tcell.Event) {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

func (t *Terminal) handleRune(r rune) bool {
	mode := t.game.Mode()
	if mode == component.ModeMenu || mode.Terminal() {
		return t.handleMenuRune(r)
	}
	switch r {
	case 'q':
		return false
	case 'h':
		t.moveCursor(-1, 0)
	case 'j':
		t.moveCursor(0, 1)
	case 'k':
		t.moveCursor(0, -1)
	case 'l':
		t.moveCursor(1, 0)
	case ' ':
		t.place()
	case 'p':
		t.game.TogglePause()
	case 'f':
		t.message = fmt.Sprintf("Speed x%g", t.game.CycleSpeed())
	case 'a':
		id, ok := t.game.UnitAt(t.cursor)
		if !ok || !t.game.ActivateAbility(id) {
			t.message = "No ability ready here"
		}
	default:
		if i := int(r - '1'); i >= 0 && i < len(t.units) {
			t.selected = i
		}
	}
	return true
}

func (t *Terminal) handleMenuRune(r rune) bool {
	levels := map[rune]config.Level{'1': config.Easy, '2': config.Medium, '3': config.Hard}
	switch r {
	case 'q':
		return false
	case 'r':
		if t.game.Mode().Terminal() {
			t.start(t.game.Level())
		}
	default:
		if level, ok := levels[r]; ok {
			t.start(level)
		}
	}
	return true
}

func (t *Terminal) start(level config.Level) {
	if err := t.game.Start(level); err != nil {
		t.message = err.Error()
		return
	}
	t.message = fmt.Sprintf("Difficulty %s", level)
}

func (t *Terminal) moveCursor(dx, dy int) {
	next := pathmap.Cell{X: t.cursor.X + dx, Y: t.cursor.Y + dy}
	if t.game.Grid().InBounds(next) {
		t.cursor = next
	}
}

func (t *Terminal) place() {
	unit := t.units[t.selected]
	if _, r := t.game.PlaceUnit(t.cursor, unit.ID); !r.OK() {
		t.message = fmt.Sprintf("Cannot place %s: %s", unit.ID, r)
		return
	}
	t.message = fmt.Sprintf("%s placed", unit.ID)
}
