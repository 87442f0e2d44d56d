package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	winhotkey "github.com/0xJWLabs/win-hotkey"
	"github.com/0xJWLabs/win-hotkey/internal/app"
	"github.com/0xJWLabs/win-hotkey/internal/config"
	"github.com/0xJWLabs/win-hotkey/internal/logging"
	"github.com/0xJWLabs/win-hotkey/internal/permissions"
	"github.com/0xJWLabs/win-hotkey/internal/tray"
)

var (
	// Version is set via ldflags at build time
	Version = "dev"
	// Commit is set via ldflags at build time
	Commit = "unknown"
)

func main() {
	// Load config from XDG/Library/AppData
	cfg, err := config.Load()
	if err != nil {
		// Use default logger if config fails to load
		log := logging.New()
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	// Initialize logger with configured level
	log := logging.NewWithLevel(cfg.LogLevel)

	// macOS requires accessibility approval before global hotkeys work
	if err := permissions.EnsurePermissions(); err != nil {
		log.Fatal().Err(err).Msg("Required permissions not granted")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize hotkey manager; all registrations are marshalled onto its
	// owner thread so they can be made from anywhere.
	manager, err := winhotkey.New(
		winhotkey.WithLogger(log),
		winhotkey.WithNoRepeat(cfg.NoRepeat),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize hotkeys")
	}

	// Create tray UI first (we'll pass it to app)
	trayUI := tray.New(nil, cfg, log, Version, Commit) // App reference set below

	// Create app with tray as status updater
	application := app.New(app.Config{
		Hotkeys:       manager,
		Config:        cfg,
		Logger:        log,
		StatusUpdater: trayUI,
	})

	// Set app reference in tray
	trayUI.SetApp(application)

	// Register the configured hotkey bindings
	if err := application.RegisterBindings(); err != nil {
		log.Fatal().Err(err).Msg("Failed to register hotkeys")
	}

	log.Info().Int("bindings", len(cfg.Bindings)).Msg("win-hotkey starting...")

	// Setup shutdown signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case <-sigChan:
			log.Info().Msg("Shutting down...")
		case <-application.Done():
			log.Info().Msg("Quit hotkey pressed, shutting down...")
		}
		if err := application.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Shutdown error")
		}
		os.Exit(0)
	}()

	// Start tray UI - MUST run on main thread
	if err := trayUI.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("Tray error")
	}
}
