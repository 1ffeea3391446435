package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"dsaexplorer/internal/catalog"
	"dsaexplorer/internal/config"
	"dsaexplorer/internal/content"
	"dsaexplorer/internal/eventbus"
	"dsaexplorer/internal/ui"
)

func runTUI(ctx context.Context, configPath, route string) error {
	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	configSvc := config.NewConfigServiceWithBus(configPath, bus)
	cfg, cfgErr := configSvc.Load()
	if cfgErr != nil {
		cfg = config.DefaultConfig()
	}

	// Set up logging
	logFile, err := openLogFile(cfg.LogPath())
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}
	if cfgErr != nil {
		log.Printf("Failed to load config, using defaults: %v", cfgErr)
	}

	topics, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("failed to load topics: %w", err)
	}
	pages, err := content.Load()
	if err != nil {
		return fmt.Errorf("failed to load pages: %w", err)
	}
	log.Printf("Loaded %d topics, starting at %s", topics.Len(), route)

	// Handle interrupt signals
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	model := ui.NewModel(bus, cfg, ui.Options{
		Catalog:       topics,
		Pages:         pages,
		ConfigService: configSvc,
		StartPath:     route,
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(p)

	// Errors raised off the UI goroutine reach the status line
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	})
	if cfgErr != nil {
		bus.Publish(eventbus.ErrorEvent{Message: "Using default config: " + cfgErr.Error(), Err: cfgErr})
	}

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
}
