package main

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/playerbox/config"
	"github.com/milk9111/playerbox/logging"
	"github.com/milk9111/playerbox/overlay"
	"github.com/milk9111/playerbox/party"
)

type Game struct {
	frames int
	debug  bool

	cfg      config.Config
	source   party.Source
	scenario *party.Scenario
	renderer *overlay.MarkerRenderer
	watcher  *config.Watcher
	logger   *slog.Logger

	width, height int
	feedLost      bool
}

func NewGame(cfg config.Config, source party.Source, scenario *party.Scenario, watcher *config.Watcher, logger *slog.Logger, debug bool) *Game {
	return &Game{
		debug:    debug,
		cfg:      cfg,
		source:   source,
		scenario: scenario,
		watcher:  watcher,
		logger:   logger,
		renderer: overlay.NewMarkerRenderer(cfg.Markers, nil,
			overlay.WithRoleResolver(party.ResolveRole),
			overlay.WithLogger(logger)),
		width:  cfg.Window.Width,
		height: cfg.Window.Height,
	}
}

func (g *Game) Update() error {
	g.frames++

	if g.scenario != nil {
		g.scenario.Advance(1 / float64(ebiten.TPS()))
	}
	g.applyConfigChanges()
	g.checkFeed()

	return nil
}

func (g *Game) applyConfigChanges() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reloadConfig(name)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.logger.Warn("config watcher error", "error", err)
		default:
			return
		}
	}
}

// reloadConfig applies the settings that can change while running. Party
// source and window size need a restart.
func (g *Game) reloadConfig(name string) {
	if err := config.Reload(); err != nil {
		g.logger.Warn("config reload failed, keeping previous settings", "file", name, "error", err)
		return
	}
	next := config.Current()
	g.cfg.Markers = next.Markers
	g.cfg.Camera = next.Camera
	g.cfg.LogLevel = next.LogLevel
	if g.debug {
		g.cfg.LogLevel = "debug"
	}
	g.renderer.SetOptions(g.cfg.Markers)
	logging.SetLevel(g.cfg.LogLevel)
	g.logger.Info("config reloaded", "file", name, "logLevel", g.cfg.LogLevel)
}

func (g *Game) checkFeed() {
	feed, ok := g.source.(*party.Feed)
	if !ok || g.feedLost {
		return
	}
	if err := feed.Err(); err != nil {
		g.feedLost = true
		g.logger.Error("party feed lost, markers hidden", "error", err)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Clear()
	g.drawMarkers(EbitenCanvas{Screen: screen, AntiAlias: true})

	if g.debug {
		ebitenutil.DebugPrint(screen, g.debugText(ebiten.ActualFPS()))
	}
}

func (g *Game) debugText(fps float64) string {
	members := len(g.source.Snapshot().Members)
	return fmt.Sprintf("Frames: %d    FPS: %.2f    Members: %d", g.frames, fps, members)
}

// drawMarkers renders the current party snapshot with a camera chasing the
// viewer.
func (g *Game) drawMarkers(canvas overlay.Canvas) {
	snap := g.source.Snapshot()
	if snap.Viewer == nil {
		return
	}
	cam := overlay.ChaseCamera(snap.Viewer.Position,
		g.cfg.Camera.Distance, g.cfg.Camera.Height,
		g.cfg.Camera.FovDegrees, g.cfg.Camera.Near, g.cfg.Camera.Far)
	g.renderer.SetProjector(cam.Projector(float64(g.width), float64(g.height)))
	g.renderer.RenderFrame(snap.Members, snap.Viewer, canvas)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width, g.height = outsideWidth, outsideHeight
	}
	return g.width, g.height
}
