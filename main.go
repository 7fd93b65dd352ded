package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/visionlab/stimscreen/app"
	"github.com/visionlab/stimscreen/config"
	"github.com/visionlab/stimscreen/domain/stimulus"
)

func main() {
	var (
		cfgPath = flag.String("c", "stimscreen.json", "config file path")
		debug   = flag.Bool("d", false, "debug mode: overlays, verbose logs, photometric check")
		wait    = flag.Bool("w", false, "wait for the start key instead of starting immediately")
		stim    = flag.String("stim", "ring", "stimulus kind: ring, wedge or sequence")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		logger.Error("configuration invalid", "path", *cfgPath, "error", err)
		os.Exit(1)
	}
	if *debug {
		cfg.Debug = true
	}

	kind, err := stimulus.ParseKind(*stim)
	if err != nil {
		logger.Error("bad stimulus selection", "error", err)
		os.Exit(1)
	}

	container, err := app.BuildContainer(cfg, logger, kind)
	if err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}

	application := app.NewApp("stimscreen", container, *wait)
	application.Start()
}
