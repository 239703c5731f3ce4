package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"shopgrid/internal/catalog"
	"shopgrid/internal/config"
	"shopgrid/internal/eventbus"
	"shopgrid/internal/logging"
	"shopgrid/internal/ui"
)

func main() {
	// Parse command line arguments
	var keyword string
	var configPath string
	flag.StringVar(&keyword, "keyword", "", "Search for this keyword on startup")
	flag.StringVar(&keyword, "k", "", "Search for this keyword on startup (shorthand)")
	flag.StringVar(&configPath, "config", "", "Path to a config file")
	flag.Parse()

	// Bare arguments also form the startup keyword
	if keyword == "" && flag.NArg() > 0 {
		keyword = strings.Join(flag.Args(), " ")
	}

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	// Load configuration with event bus support
	configSvc := config.NewConfigServiceWithBus(bus)
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = configSvc.LoadFromPath(configPath)
	} else {
		cfg, err = configSvc.Load()
	}
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Set up logging
	closeLogs, err := logging.Setup(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Printf("Error setting up logging: %v\n", err)
		os.Exit(1)
	}
	defer closeLogs()

	// The search service subscribes to request events automatically
	client := catalog.NewClient(cfg.APIBaseURL, time.Duration(cfg.RequestTimeoutMS)*time.Millisecond)
	searchSvc := catalog.NewService(bus, client)
	defer searchSvc.Stop()

	// Create UI model
	log.Debug().Msg("creating UI model")
	uiModel := ui.NewModel(bus, cfg)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Forward search events into the UI loop
	forward := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	bus.Subscribe(eventbus.EventSearchStarted, forward)
	bus.Subscribe(eventbus.EventSearchCompleted, forward)
	bus.Subscribe(eventbus.EventSearchFailed, forward)
	bus.Subscribe(eventbus.EventSearchSuperseded, forward)

	// Quit cleanly on SIGTERM; Bubble Tea already handles interrupts
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Quit()
	}()

	// Kick off the initial search when a keyword was given
	if keyword != "" {
		uiModel.Search(keyword)
	}

	// Run the UI
	log.Debug().Msg("starting UI")
	if _, err := p.Run(); err != nil {
		log.Error().Err(err).Msg("error running program")
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Debug().Msg("UI exited normally")
}
