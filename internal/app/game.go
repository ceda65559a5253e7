// internal/app/game.go
package app

import (
	"fmt"
	"log"
	"os"
	"time"

	"virus-hunter/internal/component"
	"virus-hunter/internal/config"
	"virus-hunter/internal/defs"
	"virus-hunter/internal/entity"
	"virus-hunter/internal/event"
	"virus-hunter/internal/outcome"
	"virus-hunter/internal/persistence"
	"virus-hunter/internal/system"
	"virus-hunter/internal/utils"
	"virus-hunter/pkg/pathmap"
)

// Clock даёт Advance реальное время.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// Options настраивает Game. Пустые поля получают значения по умолчанию:
// встроенный каталог, путь Skin Defense, PRNG из Settings.Seed, лог в stderr
// и системные часы.
type Options struct {
	Settings config.Settings
	Catalog  *defs.Catalog
	Path     *pathmap.Path
	Random   utils.Random
	Saver    persistence.Saver
	Identity *persistence.Identity
	Clock    Clock
	Logger   *log.Logger
}

// Game: движок симуляции. Единолично владеет хранилищем сущностей текущей сессии.
// Не потокобезопасен: Update/Advance и методы намерений вызывает один цикл.
type Game struct {
	ecs *entity.ECS

	settings   config.Settings
	level      config.Level
	difficulty config.Difficulty
	catalog    *defs.Catalog
	path       *pathmap.Path
	grid       pathmap.Grid
	rng        utils.Random
	saver      persistence.Saver
	identity   persistence.Identity
	clock      Clock
	logger     *log.Logger

	eventDispatcher *event.Dispatcher
	listeners       []event.Listener
	notices         *GameEventListener

	spawnerSystem    *system.SpawnerSystem
	movementSystem   *system.MovementSystem
	abilitySystem    *system.AbilitySystem
	combatSystem     *system.CombatSystem
	projectileSystem *system.ProjectileSystem
	cleanupSystem    *system.CleanupSystem
	waveSystem       *system.WaveSystem
	placementSystem  *system.PlacementSystem

	basis    time.Time
	hasBasis bool

	err           *TickError
	result        *outcome.Result
	notifications chan Notification
}

// NewGame проверяет конфигурацию и возвращает движок в режиме меню.
func NewGame(opts Options) (*Game, error) {
	if err := opts.Settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	catalog := opts.Catalog
	if catalog == nil {
		c, err := defs.LoadCatalog(opts.Settings.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
		catalog = c
	}

	path := opts.Path
	if path == nil {
		p, err := pathmap.NewPath(pathmap.SkinDefenseWaypoints())
		if err != nil {
			return nil, fmt.Errorf("failed to build path: %w", err)
		}
		path = p
	}

	rng := opts.Random
	if rng == nil {
		rng = utils.NewPRNGService(opts.Settings.Seed)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stderr, "[engine] ", log.LstdFlags)
	}
	clock := opts.Clock
	if clock == nil {
		clock = ClockFunc(time.Now)
	}
	identity := persistence.Identity{
		PlayerID:    opts.Settings.Player.ID,
		DisplayName: opts.Settings.Player.DisplayName,
		Email:       opts.Settings.Player.Email,
	}
	if opts.Identity != nil {
		identity = *opts.Identity
	}

	g := &Game{
		settings:      opts.Settings,
		level:         opts.Settings.Difficulty,
		catalog:       catalog,
		path:          path,
		grid:          pathmap.NewGrid(config.CanvasWidth, config.CanvasHeight, config.CellSize),
		rng:           rng,
		saver:         opts.Saver,
		identity:      identity,
		clock:         clock,
		logger:        logger,
		notifications: make(chan Notification, 16),
	}
	g.Reset()
	return g, nil
}

// Start отбрасывает прошлую сессию и начинает волну 1 на заданной сложности.
// Кроме Reset, это единственный выход из упавшей сессии.
func (g *Game) Start(level config.Level) error {
	d, err := g.settings.DifficultyFor(level)
	if err != nil {
		return err
	}
	g.level = level
	g.difficulty = d
	g.newSession()

	s := g.ecs.Session
	s.Health = d.StartingHealth
	s.StartingHealth = d.StartingHealth
	s.Energy = d.StartingEnergy
	s.Mode = component.ModePlaying
	g.waveSystem.StartWave(1)

	g.logger.Printf("Session started: difficulty=%s waves=%d energy=%d health=%d", level, d.Waves, d.StartingEnergy, d.StartingHealth)
	return nil
}

// Reset возвращает в меню с пустым хранилищем.
func (g *Game) Reset() {
	d, err := g.settings.DifficultyFor(g.level)
	if err != nil {
		d = config.DefaultDifficulties()[config.Easy]
	}
	g.difficulty = d
	g.newSession()
}

// newSession заменяет всё состояние сессии. Новый диспетчер не даёт слушателям
// старых систем увидеть новую сессию.
func (g *Game) newSession() {
	g.ecs = entity.NewECS()
	g.eventDispatcher = event.NewDispatcher()
	g.err = nil
	g.result = nil
	g.hasBasis = false

	g.notices = NewGameEventListener(g.catalog)
	g.eventDispatcher.SubscribeAll(g.notices)
	for _, l := range g.listeners {
		g.eventDispatcher.SubscribeAll(l)
	}

	g.spawnerSystem = system.NewSpawnerSystem(g.ecs, g.catalog, g.path, g.difficulty, g.rng, g.eventDispatcher)
	g.movementSystem = system.NewMovementSystem(g.ecs, g.path, g.eventDispatcher)
	g.abilitySystem = system.NewAbilitySystem(g.ecs, g.catalog, g.eventDispatcher)
	g.combatSystem = system.NewCombatSystem(g.ecs, g.catalog, g.abilitySystem, g.eventDispatcher)
	g.projectileSystem = system.NewProjectileSystem(g.ecs, g.combatSystem)
	g.cleanupSystem = system.NewCleanupSystem(g.ecs, g.combatSystem)
	g.waveSystem = system.NewWaveSystem(g.ecs, g.difficulty, g.eventDispatcher, g.logger)
	g.placementSystem = system.NewPlacementSystem(g.ecs, g.catalog, g.grid, g.path, g.eventDispatcher)
}

// Subscribe подписывает l на все события этой и всех следующих сессий.
func (g *Game) Subscribe(l event.Listener) {
	g.listeners = append(g.listeners, l)
	g.eventDispatcher.SubscribeAll(l)
}

// Update advances the simulation by deltaTime real seconds, scaled by the
// game speed. It does nothing outside playing mode. A panic inside the tick
// is recovered here: the session becomes failed and the returned *TickError
// is sticky until Start or Reset.
func (g *Game) Update(deltaTime float64) (err error) {
	if g.err != nil {
		return g.err
	}
	s := g.ecs.Session
	if s.Mode != component.ModePlaying || deltaTime <= 0 {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			err = g.fail(r)
		}
	}()

	s.PlayTime += deltaTime
	dt := deltaTime * s.SpeedMultiplier
	s.GameTime += dt
	g.tick(dt)

	if s.Mode.Terminal() {
		g.finish()
	}
	return nil
}

// tick выполняет фазы в фиксированном порядке.
func (g *Game) tick(dt float64) {
	g.spawnerSystem.Update(dt)
	g.movementSystem.Update(dt)
	if g.ecs.Session.Mode != component.ModePlaying {
		return
	}
	g.combatSystem.Update(dt)
	g.projectileSystem.Update(dt)
	g.cleanupSystem.Update()
	g.waveSystem.Update(dt)
}

// Advance is AdvanceTo with the engine's clock.
func (g *Game) Advance() error {
	return g.AdvanceTo(g.clock.Now())
}

// AdvanceTo вычисляет дельту кадра от прошлого вызова и вызывает Update.
// Вне режима playing точка отсчёта сбрасывается, поэтому время паузы и меню
// в симуляцию не попадает.
func (g *Game) AdvanceTo(now time.Time) error {
	if g.ecs.Session.Mode != component.ModePlaying {
		g.hasBasis = false
		return g.Err()
	}
	if !g.hasBasis {
		g.basis = now
		g.hasBasis = true
		return nil
	}
	dt := now.Sub(g.basis).Seconds()
	g.basis = now
	if dt > config.MaxDeltaTime {
		dt = config.MaxDeltaTime
	}
	return g.Update(dt)
}

// Err returns the sticky tick failure, if any.
func (g *Game) Err() error {
	if g.err == nil {
		return nil
	}
	return g.err
}

func (g *Game) fail(cause any) *TickError {
	s := g.ecs.Session
	te := newTickError(g.ecs.Wave.Number, s.GameTime, cause)
	g.err = te
	s.Mode = component.ModeFailed
	g.logger.Printf("Session failed: %v", te)
	g.notify(Notification{Kind: NoticeFailure, Message: "Simulation error, restart the phase"})
	return te
}

// Catalog returns the entity catalog the engine runs with.
func (g *Game) Catalog() *defs.Catalog { return g.catalog }

// Path returns the enemy path.
func (g *Game) Path() *pathmap.Path { return g.path }

// Grid returns the placement grid.
func (g *Game) Grid() pathmap.Grid { return g.grid }

// Level возвращает сложность текущей сессии.
func (g *Game) Level() config.Level { return g.level }

// Difficulty returns the difficulty row of the current session.
func (g *Game) Difficulty() config.Difficulty { return g.difficulty }

// Mode возвращает режим текущей сессии.
func (g *Game) Mode() component.Mode { return g.ecs.Session.Mode }

// Speed возвращает текущий множитель скорости игры.
func (g *Game) Speed() float64 { return g.ecs.Session.SpeedMultiplier }
