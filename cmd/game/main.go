// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"virus-hunter/internal/app"
	"virus-hunter/internal/config"
	"virus-hunter/internal/persistence"
	"virus-hunter/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/basicfont"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "path to a YAML settings file")
	level := flag.String("difficulty", "", "start directly at this difficulty (easy, medium, hard)")
	pprofAddr := flag.String("pprof", "", "serve pprof on this address, e.g. localhost:6060")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	logger := log.New(os.Stderr, "[engine] ", log.LstdFlags)
	game, err := app.NewGame(app.Options{
		Settings: settings,
		Saver:    persistence.New(settings.Persistence, logger),
		Logger:   logger,
	})
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	ctx := state.NewContext(game, basicfont.Face7x13)
	sm := state.NewStateMachine() // Создаём машину состояний
	if *level != "" {
		l, err := config.ParseLevel(*level)
		if err != nil {
			log.Fatalf("Bad difficulty: %v", err)
		}
		if err := game.Start(l); err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		sm.SetState(state.NewGameState(sm, ctx))
	} else {
		sm.SetState(state.NewMenuState(sm, ctx))
	}

	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Virus Hunter: Skin Defense")
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
