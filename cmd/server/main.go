// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"virus-hunter/internal/api"
	"virus-hunter/internal/app"
	"virus-hunter/internal/config"
	"virus-hunter/internal/persistence"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML settings file")
	addr := flag.String("addr", "", "listen address, overrides the settings file")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	if *addr != "" {
		settings.Server.Addr = *addr
	}

	logger := log.New(os.Stderr, "[server] ", log.LstdFlags)
	game, err := app.NewGame(app.Options{
		Settings: settings,
		Saver:    persistence.New(settings.Persistence, logger),
		Logger:   logger,
	})
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := api.NewServer(game, settings.Server.TickRate, logger)
	go srv.Run(ctx)

	httpServer := &http.Server{Addr: settings.Server.Addr, Handler: srv.Handler()}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	logger.Printf("Listening on %s", settings.Server.Addr)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server error: %v", err)
	}
}
