package app

import (
	"context"
	"errors"
	"io"
	"log"
	"math"
	"sync"
	"testing"
	"time"

	"virus-hunter/internal/component"
	"virus-hunter/internal/config"
	"virus-hunter/internal/defs"
	"virus-hunter/internal/event"
	"virus-hunter/internal/persistence"
	"virus-hunter/internal/system"
	"virus-hunter/pkg/pathmap"
)

type recordingSaver struct {
	mu       sync.Mutex
	payloads []persistence.Payload
}

func (s *recordingSaver) SaveResult(_ context.Context, p persistence.Payload) persistence.SaveOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payloads = append(s.payloads, p)
	return persistence.SaveOutcome{Success: true}
}

func (s *recordingSaver) saved() []persistence.Payload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]persistence.Payload(nil), s.payloads...)
}

type panicOnSpawn struct{}

func (panicOnSpawn) OnEvent(e event.Event) {
	if e.Type == event.EnemySpawned {
		panic("listener exploded")
	}
}

// newTestGame builds an engine on a straight 100px path along y=100, so the
// first enemy breaches about two seconds after it spawns.
func newTestGame(t *testing.T, settings config.Settings, saver persistence.Saver) *Game {
	t.Helper()
	catalog, err := defs.DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog: %v", err)
	}
	opts := Options{
		Settings: settings,
		Catalog:  catalog,
		Path:     pathmap.MustPath([]pathmap.Point{{X: 0, Y: 100}, {X: 100, Y: 100}}),
		Logger:   log.New(io.Discard, "", 0),
	}
	if saver != nil {
		opts.Saver = saver
	}
	g, err := NewGame(opts)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

func runUntilTerminal(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; i < 2000; i++ {
		if err := g.Update(0.05); err != nil {
			t.Fatalf("Update: %v", err)
		}
		if g.ecs.Session.Mode.Terminal() {
			return
		}
	}
	t.Fatalf("session did not end, mode %s", g.ecs.Session.Mode)
}

func waitNotification(t *testing.T, g *Game) Notification {
	t.Helper()
	select {
	case n := <-g.Notifications():
		return n
	case <-time.After(2 * time.Second):
		t.Fatal("no notification received")
	}
	return Notification{}
}

func TestNewGameStartsInMenu(t *testing.T) {
	g := newTestGame(t, config.DefaultSettings(), nil)

	if g.ecs.Session.Mode != component.ModeMenu {
		t.Errorf("Expected menu mode, got %s", g.ecs.Session.Mode)
	}
	if err := g.Update(1); err != nil {
		t.Fatalf("Update in menu: %v", err)
	}
	if g.ecs.Session.GameTime != 0 {
		t.Errorf("Expected no simulation time in menu, got %v", g.ecs.Session.GameTime)
	}
}

func TestStartInitialisesSession(t *testing.T) {
	g := newTestGame(t, config.DefaultSettings(), nil)

	if err := g.Start(config.Hard); err != nil {
		t.Fatalf("Start: %v", err)
	}
	d := config.DefaultDifficulties()[config.Hard]
	s := g.ecs.Session
	if s.Mode != component.ModePlaying {
		t.Errorf("Expected playing mode, got %s", s.Mode)
	}
	if s.Health != d.StartingHealth || s.Energy != d.StartingEnergy {
		t.Errorf("Expected health %d energy %d, got %d %d", d.StartingHealth, d.StartingEnergy, s.Health, s.Energy)
	}
	if g.ecs.Wave.Number != 1 || g.ecs.Wave.Quota != config.WaveQuota(1) {
		t.Errorf("Expected wave 1 with quota %d, got %+v", config.WaveQuota(1), g.ecs.Wave)
	}
	if g.Level() != config.Hard {
		t.Errorf("Expected level hard, got %s", g.Level())
	}
}

func TestStartRejectsUnknownLevel(t *testing.T) {
	g := newTestGame(t, config.DefaultSettings(), nil)

	err := g.Start("nightmare")
	if !errors.Is(err, config.ErrUnknownDifficulty) {
		t.Fatalf("Expected ErrUnknownDifficulty, got %v", err)
	}
	if g.ecs.Session.Mode != component.ModeMenu {
		t.Errorf("Expected the engine to stay in menu, got %s", g.ecs.Session.Mode)
	}
}

func TestSpeedScalesSimulationTime(t *testing.T) {
	g := newTestGame(t, config.DefaultSettings(), nil)
	g.Start(config.Easy)

	if g.SetGameSpeed(3) {
		t.Error("Expected speed 3 to be rejected")
	}
	if !g.SetGameSpeed(1.5) {
		t.Error("Expected speed 1.5 to be accepted")
	}
	if !g.SetGameSpeed(2) {
		t.Fatal("Expected speed 2 to be accepted")
	}
	g.Update(0.05)

	s := g.ecs.Session
	if math.Abs(s.GameTime-0.1) > 1e-9 {
		t.Errorf("Expected game time 0.1, got %v", s.GameTime)
	}
	if math.Abs(s.PlayTime-0.05) > 1e-9 {
		t.Errorf("Expected play time 0.05, got %v", s.PlayTime)
	}
}

func TestCycleSpeed(t *testing.T) {
	g := newTestGame(t, config.DefaultSettings(), nil)
	g.Start(config.Easy)

	want := []float64{1.5, 2, 4, 1}
	for _, w := range want {
		if got := g.CycleSpeed(); got != w {
			t.Errorf("Expected speed %v, got %v", w, got)
		}
	}
}

func TestPauseDoesNotAccrueTime(t *testing.T) {
	g := newTestGame(t, config.DefaultSettings(), nil)
	g.Start(config.Easy)
	t0 := time.Unix(1000, 0)
	ms := func(n int) time.Time { return t0.Add(time.Duration(n) * time.Millisecond) }

	g.AdvanceTo(ms(0))
	g.AdvanceTo(ms(50))
	if got := g.ecs.Session.GameTime; math.Abs(got-0.05) > 1e-9 {
		t.Fatalf("Expected 0.05s after first frame, got %v", got)
	}

	if !g.TogglePause() {
		t.Fatal("Expected pause to succeed")
	}
	g.AdvanceTo(ms(10_000))
	if !g.TogglePause() {
		t.Fatal("Expected resume to succeed")
	}
	g.AdvanceTo(ms(10_050))
	g.AdvanceTo(ms(10_100))

	if got := g.ecs.Session.GameTime; math.Abs(got-0.1) > 1e-9 {
		t.Errorf("Expected the pause to be skipped (0.1s), got %v", got)
	}
}

func TestLongFrameIsClamped(t *testing.T) {
	g := newTestGame(t, config.DefaultSettings(), nil)
	g.Start(config.Easy)
	t0 := time.Unix(1000, 0)

	g.AdvanceTo(t0)
	g.AdvanceTo(t0.Add(5 * time.Second))

	if got := g.ecs.Session.GameTime; math.Abs(got-config.MaxDeltaTime) > 1e-9 {
		t.Errorf("Expected frame clamped to %v, got %v", config.MaxDeltaTime, got)
	}
}

func TestTickPanicFailsSession(t *testing.T) {
	g := newTestGame(t, config.DefaultSettings(), nil)
	g.Subscribe(panicOnSpawn{})
	g.Start(config.Easy)

	var err error
	for i := 0; i < 200 && err == nil; i++ {
		err = g.Update(0.05)
	}
	var te *TickError
	if !errors.As(err, &te) {
		t.Fatalf("Expected *TickError, got %v", err)
	}
	if te.Wave != 1 {
		t.Errorf("Expected failure in wave 1, got %d", te.Wave)
	}
	if g.ecs.Session.Mode != component.ModeFailed {
		t.Errorf("Expected failed mode, got %s", g.ecs.Session.Mode)
	}
	if again := g.Update(0.05); again != err {
		t.Errorf("Expected the same sticky error, got %v", again)
	}
	if n := waitNotification(t, g); n.Kind != NoticeFailure {
		t.Errorf("Expected failure notification, got %s", n.Kind)
	}
	if _, r := g.PlaceUnit(pathmap.Cell{X: 5, Y: 10}, "MACROFAGO"); r != system.PlaceNotPlaying {
		t.Errorf("Expected placement to be refused in a failed session, got %s", r)
	}

	if err := g.Start(config.Easy); err != nil {
		t.Fatalf("Start after failure: %v", err)
	}
	if g.Err() != nil {
		t.Errorf("Expected Start to clear the failure, got %v", g.Err())
	}
}

func TestGameOverSavesOnce(t *testing.T) {
	saver := &recordingSaver{}
	g := newTestGame(t, config.DefaultSettings(), saver)
	g.Start(config.Easy)
	g.ecs.Session.Health = 1

	runUntilTerminal(t, g)

	if g.ecs.Session.Mode != component.ModeGameOver {
		t.Fatalf("Expected gameOver, got %s", g.ecs.Session.Mode)
	}
	if g.ecs.Session.Health != 0 {
		t.Errorf("Expected health clamped to 0, got %d", g.ecs.Session.Health)
	}
	if n := waitNotification(t, g); n.Kind != NoticeSaved {
		t.Errorf("Expected saved notification, got %s", n.Kind)
	}
	for i := 0; i < 10; i++ {
		g.Update(0.05)
	}

	saved := saver.saved()
	if len(saved) != 1 {
		t.Fatalf("Expected exactly one save, got %d", len(saved))
	}
	p := saved[0]
	if p.Result.Completed || p.Result.WavesCompleted != 0 || p.Result.Stars != 0 {
		t.Errorf("Unexpected defeat result: %+v", p.Result)
	}
	if p.LevelID != config.PhaseID || p.Difficulty != string(config.Easy) || p.PlayerID != "local" {
		t.Errorf("Unexpected payload header: %+v", p)
	}
	if r := g.Result(); r == nil || r.HealthRemaining != 0 {
		t.Errorf("Expected result with no health left, got %+v", r)
	}
}

func TestVictoryAfterLastWave(t *testing.T) {
	settings := config.DefaultSettings()
	d := settings.Difficulties[config.Easy]
	d.Waves = 1
	settings.Difficulties[config.Easy] = d
	saver := &recordingSaver{}
	g := newTestGame(t, settings, saver)
	g.Start(config.Easy)
	g.ecs.Session.Score = 120
	g.ecs.Wave.Spawned = g.ecs.Wave.Quota

	runUntilTerminal(t, g)

	if g.ecs.Session.Mode != component.ModeVictory {
		t.Fatalf("Expected victory, got %s", g.ecs.Session.Mode)
	}
	if g.ecs.Session.GameTime < config.SettleDelay {
		t.Errorf("Expected victory only after the settle delay, got t=%v", g.ecs.Session.GameTime)
	}
	waitNotification(t, g)

	saved := saver.saved()
	if len(saved) != 1 {
		t.Fatalf("Expected exactly one save, got %d", len(saved))
	}
	r := saved[0].Result
	if !r.Completed || r.WavesCompleted != 1 || r.FinalScore != 120 || r.Stars != 2 {
		t.Errorf("Unexpected victory result: %+v", r)
	}
}

func TestPlaceUnitThroughEngine(t *testing.T) {
	g := newTestGame(t, config.DefaultSettings(), nil)
	cell := pathmap.Cell{X: 5, Y: 10}

	if _, r := g.PlaceUnit(cell, "MACROFAGO"); r != system.PlaceNotPlaying {
		t.Errorf("Expected %s in menu, got %s", system.PlaceNotPlaying, r)
	}

	g.Start(config.Easy)
	energy := g.ecs.Session.Energy
	id, r := g.PlaceUnit(cell, "MACROFAGO")
	if !r.OK() {
		t.Fatalf("Expected placement, got %s", r)
	}
	if g.ecs.Session.Energy != energy-100 {
		t.Errorf("Expected energy %d, got %d", energy-100, g.ecs.Session.Energy)
	}
	if got, ok := g.UnitAt(cell); !ok || got != id {
		t.Errorf("Expected unit %d at %v, got %d (%v)", id, cell, got, ok)
	}
	if _, r := g.PlaceUnit(cell, "MASTOCITO"); r != system.PlaceOccupied {
		t.Errorf("Expected %s, got %s", system.PlaceOccupied, r)
	}
	if r := g.CheckPlacement(pathmap.Cell{X: 1, Y: 2}, "MACROFAGO"); r != system.PlaceOnPath {
		t.Errorf("Expected %s for a cell on the path, got %s", system.PlaceOnPath, r)
	}
	if g.ecs.Session.Energy != energy-100 {
		t.Errorf("Expected rejected intents to leave energy alone, got %d", g.ecs.Session.Energy)
	}
}

func TestActivateAbilityAndSnapshot(t *testing.T) {
	g := newTestGame(t, config.DefaultSettings(), nil)
	g.Start(config.Easy)
	id, r := g.PlaceUnit(pathmap.Cell{X: 8, Y: 8}, "QUIMIOCINA")
	if !r.OK() {
		t.Fatalf("Expected placement, got %s", r)
	}

	if !g.ActivateAbility(id) {
		t.Fatal("Expected activation")
	}
	if g.ActivateAbility(id) {
		t.Error("Expected activation during cooldown to fail")
	}

	snap := g.Snapshot()
	if len(snap.Units) != 1 {
		t.Fatalf("Expected one unit in snapshot, got %d", len(snap.Units))
	}
	u := snap.Units[0]
	if !u.HasAbility || !u.AbilityActive || u.CooldownLeft <= 0 {
		t.Errorf("Unexpected unit view: %+v", u)
	}
	if snap.Mode != component.ModePlaying || snap.Wave != 1 || snap.TotalWaves != 4 {
		t.Errorf("Unexpected snapshot header: %+v", snap)
	}
	if len(snap.Notices) == 0 {
		t.Error("Expected a notice for the activation")
	}

	snap.Units[0].Position.X = -1
	if g.ecs.Towers[id].Position.X == -1 {
		t.Error("Expected snapshot to be a copy")
	}
}

func TestSnapshotReportsEnemies(t *testing.T) {
	g := newTestGame(t, config.DefaultSettings(), nil)
	g.Start(config.Easy)
	g.spawnerSystem.Spawn()

	snap := g.Snapshot()
	if len(snap.Enemies) != 1 || snap.WaveSpawned != 1 {
		t.Fatalf("Expected one spawned enemy, got %d (%d spawned)", len(snap.Enemies), snap.WaveSpawned)
	}
	e := snap.Enemies[0]
	if e.DefID != "BACTERIA_COMENSAL" || e.Health != e.MaxHealth {
		t.Errorf("Unexpected enemy view: %+v", e)
	}
}

func TestModeAndSpeedAccessors(t *testing.T) {
	g := newTestGame(t, config.DefaultSettings(), nil)
	if g.Mode() != component.ModeMenu {
		t.Fatalf("Expected menu mode, got %s", g.Mode())
	}
	g.Start(config.Easy)
	g.SetGameSpeed(4)
	g.TogglePause()

	snap := g.Snapshot()
	if g.Mode() != component.ModePaused || snap.Mode != g.Mode() {
		t.Errorf("Expected paused in both views, got %s and %s", g.Mode(), snap.Mode)
	}
	if g.Speed() != 4 || snap.SpeedMultiplier != g.Speed() {
		t.Errorf("Expected speed 4 in both views, got %v and %v", g.Speed(), snap.SpeedMultiplier)
	}
}
