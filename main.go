package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"swiper/internal/config"
	"swiper/internal/eventbus"
	"swiper/internal/pages"
	"swiper/internal/ui"
)

func main() {
	// Parse command line arguments
	var (
		source    string
		index     int
		threshold float64
		noPager   bool
	)
	flag.StringVar(&source, "dir", "", "Directory or file to page through")
	flag.StringVar(&source, "d", "", "Directory or file to page through (shorthand)")
	flag.IntVar(&index, "i", 0, "Initial page index")
	flag.Float64Var(&threshold, "t", 0, "Drag distance before a swipe is recognised")
	flag.BoolVar(&noPager, "no-pager", false, "Hide the page indicator")
	flag.Parse()

	if source == "" && flag.NArg() > 0 {
		source = flag.Arg(0)
	}

	// Set up logging
	logFile, err := os.OpenFile("swiper.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	bus := eventbus.New()
	defer bus.Close()

	configSvc := config.NewConfigServiceWithBus(bus)
	cfg, configPath := loadConfig(configSvc, source)

	// Flags win over the config file, but only when given
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "i":
			cfg.Pager.Index = index
		case "t":
			cfg.Pager.Threshold = threshold
		case "no-pager":
			cfg.Pager.ShowPager = !noPager
		}
	})
	if source != "" {
		cfg.Source = source
	}
	cfg.Normalize()

	loader := pages.NewLoader(bus)
	set, err := loader.Load(ctx, cfg.Source)
	if err != nil {
		fmt.Printf("Error loading pages: %v\n", err)
		os.Exit(1)
	}

	uiModel := ui.NewModel(bus, cfg, set)
	p := tea.NewProgram(uiModel,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
		tea.WithContext(ctx),
	)
	uiModel.SetProgram(p)
	uiModel.SetLoader(loader)

	// External page requests come back into the program as messages
	bus.Subscribe(eventbus.EventPageRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.PageRequestedEvent); ok {
			p.Send(ui.PageRequestMsg{Index: event.Index})
		}
	})

	bus.Subscribe(eventbus.EventPageChanged, func(e eventbus.DomainEvent) {
		event, ok := e.(eventbus.PageChangedEvent)
		if !ok {
			return
		}
		log.Printf("Page changed to %d (%s)", event.Index, event.Title)
		if !cfg.RememberIndex {
			return
		}
		saved := *cfg
		saved.Pager.Index = event.Index
		var err error
		if configPath != "" {
			err = configSvc.SaveToPath(&saved, configPath)
		} else {
			err = configSvc.Save(&saved)
		}
		if err != nil {
			log.Printf("Failed to save config: %v", err)
		}
	})

	bus.Subscribe(eventbus.EventGateVetoed, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.GateVetoedEvent); ok {
			log.Printf("Swipe to locked page %d refused", event.Candidate)
		}
	})

	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ErrorEvent); ok {
			log.Printf("%s: %v", event.Message, event.Err)
		}
	})

	if os.Getenv("SWIPER_E2E_TEST") == "1" {
		fmt.Print("__READY__")
	}

	log.Printf("Starting UI with %d pages", len(set.Pages))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}

// loadConfig prefers a config file next to the pages, then the user
// config, then defaults. The returned path is set only for a
// per-directory file.
func loadConfig(configSvc config.ConfigService, source string) (*config.Config, string) {
	if source != "" {
		dir := source
		if info, err := os.Stat(source); err == nil && !info.IsDir() {
			dir = filepath.Dir(source)
		}
		configPath := filepath.Join(dir, config.FileName)
		if _, err := os.Stat(configPath); err == nil {
			cfg, err := configSvc.LoadFromPath(configPath)
			if err == nil {
				log.Printf("Loaded config from %s", configPath)
				return cfg, configPath
			}
			log.Printf("Ignoring %s: %v", configPath, err)
		}
	}

	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.DefaultConfig()
	}
	return cfg, ""
}
