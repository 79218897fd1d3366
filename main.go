package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/playerbox/config"
	"github.com/milk9111/playerbox/logging"
	"github.com/milk9111/playerbox/party"
)

func main() {
	configDir := flag.String("config", ".", "directory containing playerbox.yaml")
	scenario := flag.String("scenario", "", "party scenario (name in party/scenarios or path); overrides config")
	feedURL := flag.String("feed", "", "websocket party feed URL; overrides config")
	debug := flag.Bool("debug", false, "enable debug logging")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if err := config.Load(*configDir); err != nil {
		log.Fatal(err)
	}
	cfg := config.Current()
	if *scenario != "" {
		cfg.Party.Scenario = *scenario
	}
	if *feedURL != "" {
		cfg.Party.FeedURL = *feedURL
	}
	if *debug {
		cfg.LogLevel = "debug"
	}

	logger, closeLog, err := logging.Setup(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatal(err)
	}
	defer closeLog()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	source, sc, closeSource, err := party.Open(ctx, cfg.Party.Scenario, cfg.Party.FeedURL, logger)
	cancel()
	if err != nil {
		logger.Error("failed to open party source", "error", err)
		return
	}
	defer closeSource()

	watcher, err := config.NewWatcher(*configDir)
	if err != nil {
		logger.Warn("config hot reload disabled", "error", err)
	} else {
		defer watcher.Close()
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	// Full-screen, borderless, click-through canvas.
	w, h := ebiten.Monitor().Size()
	if w > 0 && h > 0 {
		cfg.Window.Width, cfg.Window.Height = w, h
	}
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowPosition(0, 0)
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetWindowMousePassthrough(true)
	ebiten.SetWindowTitle("playerbox")

	game := NewGame(cfg, source, sc, watcher, logger, *debug)
	if err := ebiten.RunGameWithOptions(game, &ebiten.RunGameOptions{ScreenTransparent: true}); err != nil {
		logger.Error("overlay stopped", "error", err)
	}
}
