package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/milk9111/playerbox/config"
	"github.com/milk9111/playerbox/logging"
	"github.com/milk9111/playerbox/overlay"
	"github.com/milk9111/playerbox/party"
)

func main() {
	configDir := flag.String("config", ".", "directory containing playerbox.yaml")
	scenario := flag.String("scenario", "", "party scenario (name or path); overrides config")
	out := flag.String("o", "playerbox.png", "output PNG path")
	at := flag.Float64("t", 0, "seconds to advance the scenario before rendering")
	debug := flag.Bool("debug", false, "log every draw command")
	flag.Parse()

	if err := config.Load(*configDir); err != nil {
		log.Fatal(err)
	}
	cfg := config.Current()
	if *scenario != "" {
		cfg.Party.Scenario = *scenario
	}
	level := cfg.LogLevel
	if *debug {
		level = "debug"
	}
	logger := logging.New(os.Stderr, level)

	if err := run(cfg, *out, *at, logger); err != nil {
		logger.Error("snapshot failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, out string, at float64, logger *slog.Logger) error {
	sc, err := party.LoadScenario(cfg.Party.Scenario)
	if err != nil {
		return err
	}
	sc.Advance(at)

	snap := sc.Snapshot()
	if snap.Viewer == nil {
		return fmt.Errorf("snapshot: scenario %s has no viewer", sc.Name())
	}

	width, height := cfg.Window.Width, cfg.Window.Height
	cam := overlay.ChaseCamera(snap.Viewer.Position,
		cfg.Camera.Distance, cfg.Camera.Height,
		cfg.Camera.FovDegrees, cfg.Camera.Near, cfg.Camera.Far)
	renderer := overlay.NewMarkerRenderer(cfg.Markers,
		cam.Projector(float64(width), float64(height)),
		overlay.WithRoleResolver(party.ResolveRole),
		overlay.WithLogger(logger))

	rec := &overlay.Recorder{}
	renderer.RenderFrame(snap.Members, snap.Viewer, rec)

	canvas := overlay.NewRasterCanvas(width, height)
	for _, cmd := range rec.Commands {
		logger.Debug("line", "from", cmd.From, "to", cmd.To, "color", cmd.Color, "width", cmd.Width)
		canvas.DrawLine(cmd.From, cmd.To, cmd.Color, cmd.Width)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("snapshot: create %s: %w", out, err)
	}
	if err := png.Encode(f, canvas.Dst); err != nil {
		f.Close()
		return fmt.Errorf("snapshot: encode %s: %w", out, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("snapshot: close %s: %w", out, err)
	}

	logger.Info("snapshot written", "file", out, "scenario", sc.Name(), "lines", len(rec.Commands))
	return nil
}
