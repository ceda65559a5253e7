// cmd/tui/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"virus-hunter/internal/app"
	"virus-hunter/internal/config"
	"virus-hunter/internal/persistence"
	"virus-hunter/internal/terminal"

	"github.com/gdamore/tcell/v2"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML settings file")
	logPath := flag.String("log", "virus-hunter.log", "log file (the terminal is busy drawing)")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer logFile.Close()
	logger := log.New(logFile, "[engine] ", log.LstdFlags)

	game, err := app.NewGame(app.Options{
		Settings: settings,
		Saver:    persistence.New(settings.Persistence, logger),
		Logger:   logger,
	})
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := terminal.New(screen, game).Run(ctx); err != nil && err != context.Canceled {
		logger.Printf("Terminal stopped: %v", err)
	}
}
