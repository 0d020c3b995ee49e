package main

import (
	"flag"
	"os"
	"time"

	"engine-motion-renderer/internal/batch"
	"engine-motion-renderer/internal/config"
	"engine-motion-renderer/internal/logging"
	"engine-motion-renderer/internal/sim"
	"engine-motion-renderer/internal/texture"
)

func main() {
	configFile := flag.String("config", "", "Path to config file (JSON/TOML/YAML)")
	cylinders := flag.Int("cylinders", 0, "Cylinder count 1-12 (default from config)")
	rpm := flag.Float64("rpm", -1, "Engine RPM 0-8000")
	speed := flag.Float64("speed", -1, "Vehicle speed in km/h, 0-300")
	timeScale := flag.Float64("timescale", -1, "Time scale multiplier 0-3")
	fps := flag.Float64("fps", 0, "Animation frame rate")
	duration := flag.Float64("duration", 0, "Animation length in seconds")
	width := flag.Int("width", 0, "Frame width in pixels")
	height := flag.Int("height", 0, "Frame height in pixels")
	supersample := flag.Int("supersample", 0, "Supersampling factor")
	output := flag.String("output", "", "Output WebP path")
	verbose := flag.Bool("v", false, "Enable debug logging")

	flag.Parse()

	log := logging.New(*verbose)

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Error().Err(err).Msg("loading config")
		os.Exit(1)
	}
	cfg.Resolve(config.Flags{
		Cylinders:   *cylinders,
		RPM:         *rpm,
		SpeedKph:    *speed,
		TimeScale:   *timeScale,
		FPS:         *fps,
		DurationSec: *duration,
		Width:       *width,
		Height:      *height,
		Supersample: *supersample,
		Output:      *output,
	})

	params := sim.Params{
		Cylinders: cfg.Sim.Cylinders,
		RPM:       cfg.Sim.RPM,
		SpeedKph:  cfg.Sim.SpeedKph,
		TimeScale: cfg.Sim.TimeScale,
	}.Sanitize()

	log.Info().
		Int("cylinders", params.Cylinders).
		Float64("rpm", params.RPM).
		Float64("speed_kph", params.SpeedKph).
		Float64("time_scale", params.TimeScale).
		Float64("fps", cfg.Render.FPS).
		Float64("duration_sec", cfg.Render.DurationSec).
		Str("output", cfg.Output.WebP).
		Msg("rendering engine animation")

	start := time.Now()

	result := batch.RenderPreset(batch.Config{
		OutputDir:   ".",
		TexResolver: texture.NewCache(cfg.Render.AssetDir),
		Width:       cfg.Render.Width,
		Height:      cfg.Render.Height,
		Supersample: cfg.Render.Supersample,
		FPS:         cfg.Render.FPS,
		DurationSec: cfg.Render.DurationSec,
		Log:         log,
	}, batch.Preset{Name: trimWebP(cfg.Output.WebP), Sim: params})

	if !result.Success {
		log.Error().Str("error", result.Error).Msg("render failed")
		os.Exit(1)
	}

	log.Info().
		Str("path", result.Path).
		Int("frames", result.Frames).
		Dur("elapsed", time.Since(start)).
		Msg("done")
}

// trimWebP strips a trailing .webp so the batch pipeline, which appends
// the extension, writes exactly the requested path.
func trimWebP(path string) string {
	const ext = ".webp"
	if len(path) > len(ext) && path[len(path)-len(ext):] == ext {
		return path[:len(path)-len(ext)]
	}
	return path
}
