package system

import (
	"io"
	"log"
	"testing"

	"virus-hunter/internal/component"
	"virus-hunter/internal/config"
	"virus-hunter/internal/defs"
	"virus-hunter/internal/entity"
	"virus-hunter/internal/event"
	"virus-hunter/pkg/pathmap"
)

// scriptedRandom replays fixed values; once exhausted it returns 0 and 0.99.
type scriptedRandom struct {
	ints   []int
	floats []float64
}

func (r *scriptedRandom) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *scriptedRandom) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

type fixture struct {
	t          *testing.T
	ecs        *entity.ECS
	catalog    *defs.Catalog
	path       *pathmap.Path
	grid       pathmap.Grid
	difficulty config.Difficulty
	rng        *scriptedRandom
	dispatcher *event.Dispatcher
	rec        *recorder

	spawner    *SpawnerSystem
	movement   *MovementSystem
	abilities  *AbilitySystem
	combat     *CombatSystem
	projectile *ProjectileSystem
	cleanup    *CleanupSystem
	waves      *WaveSystem
	placement  *PlacementSystem
}

// newFixture builds a playing session on a straight 1000px path along y=100.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	catalog, err := defs.DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog: %v", err)
	}
	f := &fixture{
		t:          t,
		ecs:        entity.NewECS(),
		catalog:    catalog,
		path:       pathmap.MustPath([]pathmap.Point{{X: 0, Y: 100}, {X: 1000, Y: 100}}),
		grid:       pathmap.NewGrid(config.CanvasWidth, config.CanvasHeight, config.CellSize),
		difficulty: config.DefaultDifficulties()[config.Easy],
		rng:        &scriptedRandom{},
		dispatcher: event.NewDispatcher(),
		rec:        &recorder{},
	}
	f.dispatcher.SubscribeAll(f.rec)

	f.ecs.Session = &component.Session{
		Health:          100,
		StartingHealth:  100,
		Energy:          1000,
		SpeedMultiplier: 1,
		Mode:            component.ModePlaying,
	}
	f.ecs.Wave = &component.Wave{Number: 1, Quota: config.WaveQuota(1)}

	logger := log.New(io.Discard, "", 0)
	f.spawner = NewSpawnerSystem(f.ecs, f.catalog, f.path, f.difficulty, f.rng, f.dispatcher)
	f.movement = NewMovementSystem(f.ecs, f.path, f.dispatcher)
	f.abilities = NewAbilitySystem(f.ecs, f.catalog, f.dispatcher)
	f.combat = NewCombatSystem(f.ecs, f.catalog, f.abilities, f.dispatcher)
	f.projectile = NewProjectileSystem(f.ecs, f.combat)
	f.cleanup = NewCleanupSystem(f.ecs, f.combat)
	f.waves = NewWaveSystem(f.ecs, f.difficulty, f.dispatcher, logger)
	f.placement = NewPlacementSystem(f.ecs, f.catalog, f.grid, f.path, f.dispatcher)
	return f
}

// step runs one tick without the spawner, in engine order.
func (f *fixture) step(dt float64) {
	f.ecs.Session.GameTime += dt
	f.movement.Update(dt)
	if f.ecs.Session.Mode != component.ModePlaying {
		return
	}
	f.combat.Update(dt)
	f.projectile.Update(dt)
	f.cleanup.Update()
	f.waves.Update(dt)
}

func (f *fixture) runUntil(t float64) {
	for f.ecs.Now() < t {
		f.step(0.05)
	}
}

// addEnemy puts an enemy on the straight path at x.
func (f *fixture) addEnemy(defID string, health, speed, x float64) *component.Enemy {
	def := f.catalog.MustEnemyType(defID)
	id := f.ecs.NewEntity()
	e := &component.Enemy{
		ID:            id,
		DefID:         defID,
		Health:        health,
		MaxHealth:     health,
		Speed:         speed,
		OriginalSpeed: speed,
		Progress:      x / 1000,
		Position:      pathmap.Point{X: x, Y: 100},
		EnergyReward:  def.Reward,
		ScoreReward:   def.Reward,
		BreachDamage:  def.BreachDamage,
	}
	f.ecs.Enemies[id] = e
	return e
}

// addTower places a unit directly, skipping the placement rules.
func (f *fixture) addTower(defID string, x, y float64) *component.Tower {
	def := f.catalog.MustUnitType(defID)
	tower := &component.Tower{
		ID:       f.ecs.NewEntity(),
		DefID:    defID,
		Cell:     f.grid.CellAt(x, y),
		Position: pathmap.Point{X: x, Y: y},
		LastShot: f.ecs.Now() - def.FireInterval,
	}
	f.ecs.AddTower(tower)
	return tower
}
