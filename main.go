package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"Scribble/internal/config"
	"Scribble/internal/surface"
	"Scribble/internal/ui"
)

func main() {
	cfg, err := config.Parse(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("Invalid arguments: %v", err)
	}

	if cfg.Verbose {
		surface.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	board := surface.New(cfg.Width, cfg.Height,
		surface.WithBackground(cfg.Background),
		surface.WithPenColor(cfg.PenColor),
		surface.WithPenWidth(cfg.PenWidth),
	)
	if cfg.Open != "" {
		if err := board.Load(cfg.Open); err != nil {
			log.Printf("Could not open %s: %v", cfg.Open, err)
		}
	}

	log.Printf("Starting Scribble (%dx%d)", cfg.Width, cfg.Height)
	ui.RunApp(cfg, board)
}
