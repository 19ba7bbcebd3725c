package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"timeplay/internal/config"
	"timeplay/internal/dataset"
	"timeplay/internal/domain"
	"timeplay/internal/eventbus"
	"timeplay/internal/headless"
	"timeplay/internal/logic"
	"timeplay/internal/playback"
	"timeplay/internal/ui"
)

func main() {
	// Parse command line arguments
	var (
		configPath  string
		dataPath    string
		logPath     string
		forceNoTerm bool
	)
	flag.StringVar(&configPath, "config", "", "Path to timeplay.toml (default: next to the data file)")
	flag.StringVar(&dataPath, "data", "", "Data file (TOML or CSV) holding the category sequence")
	flag.StringVar(&dataPath, "d", "", "Data file (shorthand)")
	flag.StringVar(&logPath, "log", "timeplay.log", "Log file")
	flag.BoolVar(&forceNoTerm, "headless", false, "Print each window as a line of text instead of running the UI")
	flag.Parse()

	if dataPath == "" && flag.NArg() > 0 {
		dataPath = flag.Arg(0)
	}

	// Set up logging
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	if err := config.LoadEnvFiles(".env"); err != nil {
		log.Printf("Failed to load .env: %v", err)
	}

	bus := eventbus.New()
	defer bus.Close()

	configSvc := config.NewConfigServiceWithBus(bus)
	cfg, cfgPath := loadOrCreateConfig(configSvc, configPath, dataPath)
	cfg.ApplyEnv()
	if dataPath != "" {
		cfg.Data.Path = dataPath
	}

	interactive := !forceNoTerm && headless.IsInteractive()
	if !interactive {
		// the headless runner starts playback itself
		cfg.Transition.AutoStart = false
	}

	// Stores
	itemStore := logic.NewMemoryItemStore()
	selectionStore := logic.NewSelectionStore(bus)
	var selection playback.SelectionChannel = selectionStore
	if !cfg.Host.AllowInteractions {
		selection = playback.NopSelection{}
	}

	// Presenter for the chosen host
	var (
		presenter playback.Presenter
		frames    *ui.FramePresenter
		text      *headless.TextPresenter
	)
	if interactive {
		frames = ui.NewFramePresenter()
		presenter = frames
	} else {
		text = headless.NewTextPresenter(os.Stdout, cfg.Caption.Separator, 0)
		presenter = text
	}

	ctrl := playback.New(playback.RealClock(), presenter, selection,
		playback.WithStatusListener(func(e domain.PlaybackStatusEvent) {
			bus.Publish(e)
		}))
	defer ctrl.Close()

	applySequence := func(seq domain.Sequence) {
		itemStore.Replace(seq)
		if text != nil {
			text.SetDisplay(seq.Display)
		}
		ctrl.Refresh(itemStore.Items(), cfg.Playback())
	}

	// New data always restarts playback from rest
	bus.Subscribe(eventbus.EventDataLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.DataLoadedEvent); ok {
			applySequence(event.Sequence)
		}
	})

	// Persist runtime setting changes and restart with them
	bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigChangedEvent); ok {
			cfg.ApplyPlayback(event.Playback)
			if err := configSvc.SaveToPath(cfg, cfgPath); err != nil {
				log.Printf("Failed to save config: %v", err)
			} else {
				log.Printf("Config saved to %s", cfgPath)
			}
			ctrl.Refresh(itemStore.Items(), cfg.Playback())
		}
	})

	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ErrorEvent); ok {
			log.Printf("Error: %s: %v", event.Message, event.Err)
		}
	})

	// Initial load, then watch the file for changes
	opts := dataset.OptionsFromConfig(cfg)
	if seq, err := dataset.Load(opts); err != nil {
		if !errors.Is(err, dataset.ErrNoPath) {
			log.Printf("Failed to load data: %v", err)
			if !interactive {
				fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
				os.Exit(1)
			}
		}
	} else {
		log.Printf("Loaded %d items from %s", len(seq.Items), opts.Path)
		applySequence(seq)
	}

	if opts.Path != "" {
		watcher, err := dataset.NewWatcher(bus, opts, dataset.DefaultDebounce)
		if err != nil {
			log.Printf("Could not watch data file: %v", err)
		} else {
			watcher.Start(ctx)
			defer watcher.Close()
			bus.Subscribe(eventbus.EventDataRefreshRequested, func(eventbus.DomainEvent) {
				watcher.Reload()
			})
		}
	}

	if !interactive {
		if err := headless.Run(ctx, bus, ctrl); err != nil {
			log.Printf("Headless run failed: %v", err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Create event channel for UI
	eventChan := make(chan eventbus.DomainEvent, 100)

	// Forward events to the event channel
	forwardEvent := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventDataLoaded,
		eventbus.EventError,
		eventbus.EventConfigSaved,
	} {
		bus.Subscribe(t, forwardEvent)
	}

	log.Printf("Creating UI model...")
	uiModel := ui.NewModel(bus, cfg, ctrl, frames, itemStore, selectionStore)

	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseCellMotion())
	uiModel.SetProgram(p)

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")

	// Cleanup
	cancel()
}

// loadOrCreateConfig loads the config file or writes a default one.
// Without -config the file lives next to the data file, falling back to the
// user config directory.
func loadOrCreateConfig(configSvc config.ConfigService, explicitPath, dataPath string) (*config.Config, string) {
	configPath := explicitPath
	if configPath == "" {
		if dataPath != "" {
			configPath = filepath.Join(filepath.Dir(dataPath), config.FileName)
		} else {
			configPath = config.DefaultPath()
		}
	}

	if _, err := os.Stat(configPath); err == nil {
		cfg, err := configSvc.LoadFromPath(configPath)
		if err == nil {
			log.Printf("Loaded config from %s", configPath)
			return cfg, configPath
		}
		log.Printf("Failed to load config %s, using defaults: %v", configPath, err)
		return config.DefaultConfig(), configPath
	}

	log.Printf("Creating new config at %s", configPath)
	cfg := config.DefaultConfig()
	if dataPath != "" {
		cfg.Data.Path = dataPath
	}
	if err := configSvc.SaveToPath(cfg, configPath); err != nil {
		log.Printf("Failed to save config: %v", err)
	}
	return cfg, configPath
}
