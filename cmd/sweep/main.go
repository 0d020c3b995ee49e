package main

import (
	"flag"
	"os"
	"path/filepath"
	"time"

	"engine-motion-renderer/internal/batch"
	"engine-motion-renderer/internal/config"
	"engine-motion-renderer/internal/logging"
	"engine-motion-renderer/internal/texture"
)

func main() {
	configFile := flag.String("config", "", "Path to config file (JSON/TOML/YAML)")
	presetFile := flag.String("presets", "", "JSON preset list (default: built-in grid)")
	outDir := flag.String("outdir", "", "Output directory")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	testN := flag.Int("test", 0, "Render only first N presets")
	verbose := flag.Bool("v", false, "Enable debug logging")

	flag.Parse()

	log := logging.New(*verbose)

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Error().Err(err).Msg("loading config")
		os.Exit(1)
	}
	cfg.Resolve(config.Flags{
		RPM:       -1,
		SpeedKph:  -1,
		TimeScale: -1,
		Workers:   *workers,
		OutDir:    *outDir,
	})

	presets := batch.DefaultPresets()
	if *presetFile != "" {
		presets, err = batch.LoadPresets(*presetFile)
		if err != nil {
			log.Error().Err(err).Msg("loading presets")
			os.Exit(1)
		}
	}
	if *testN > 0 && *testN < len(presets) {
		presets = presets[:*testN]
	}
	if len(presets) == 0 {
		log.Warn().Msg("no presets to render")
		return
	}

	if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
		log.Error().Err(err).Msg("creating output dir")
		os.Exit(1)
	}

	log.Info().
		Int("presets", len(presets)).
		Int("workers", cfg.Render.Workers).
		Str("outdir", cfg.Output.Dir).
		Msg("starting sweep")

	start := time.Now()

	results := batch.Run(batch.Config{
		OutputDir:   cfg.Output.Dir,
		TexResolver: texture.NewCache(cfg.Render.AssetDir),
		Width:       cfg.Render.Width,
		Height:      cfg.Render.Height,
		Supersample: cfg.Render.Supersample,
		FPS:         cfg.Render.FPS,
		DurationSec: cfg.Render.DurationSec,
		Workers:     cfg.Render.Workers,
		Log:         log,
	}, presets)

	manifestPath := filepath.Join(cfg.Output.Dir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, presets, results); err != nil {
		log.Error().Err(err).Msg("writing manifest")
	}

	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
			log.Error().Str("preset", r.Name).Str("error", r.Error).Msg("preset failed")
		}
	}

	log.Info().
		Int("ok", len(results)-failed).
		Int("failed", failed).
		Dur("elapsed", time.Since(start)).
		Msg("sweep finished")

	if failed > 0 {
		os.Exit(1)
	}
}
