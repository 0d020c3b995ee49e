package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"

	"engine-motion-renderer/internal/config"
	"engine-motion-renderer/internal/logging"
	"engine-motion-renderer/internal/sim"
	"engine-motion-renderer/internal/trace"
)

func main() {
	configFile := flag.String("config", "", "Path to config file (JSON/TOML/YAML)")
	cylinders := flag.Int("cylinders", 0, "Cylinder count 1-12")
	rpm := flag.Float64("rpm", -1, "Engine RPM 0-8000")
	speed := flag.Float64("speed", -1, "Vehicle speed in km/h, 0-300")
	timeScale := flag.Float64("timescale", -1, "Time scale multiplier 0-3")
	fps := flag.Float64("fps", 0, "Simulation step rate")
	duration := flag.Float64("duration", 0, "Simulated duration in seconds")
	dbPath := flag.String("db", "", "SQLite output path (default from config)")
	csvPath := flag.String("csv", "", "Optional CSV export path")
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
	})
	if *dbPath != "" {
		cfg.Output.TraceDB = *dbPath
	}
	if *csvPath != "" {
		cfg.Output.CSV = *csvPath
	}

	params := sim.Params{
		Cylinders: cfg.Sim.Cylinders,
		RPM:       cfg.Sim.RPM,
		SpeedKph:  cfg.Sim.SpeedKph,
		TimeScale: cfg.Sim.TimeScale,
	}.Sanitize()

	frames := int(cfg.Render.DurationSec*cfg.Render.FPS + 0.5)
	if frames < 1 {
		log.Error().Msg("nothing to simulate: fps × duration < 1 frame")
		os.Exit(1)
	}
	dt := 1.0 / cfg.Render.FPS

	rec, err := trace.Open(cfg.Output.TraceDB, log)
	if err != nil {
		log.Error().Err(err).Msg("opening trace database")
		os.Exit(1)
	}
	defer rec.Close()

	if err := rec.BeginRun(params, cfg.Render.FPS, frames); err != nil {
		log.Error().Err(err).Msg("starting run")
		os.Exit(1)
	}

	log.Info().
		Uint("run_id", rec.RunID()).
		Int("frames", frames).
		Float64("dt", dt).
		Msg("recording simulation")

	eng := sim.NewEngine(params)
	for f := 0; f < frames; f++ {
		eng.Step(dt)
		if err := rec.RecordFrame(eng, f, float64(f+1)*dt, dt); err != nil {
			log.Error().Err(err).Int("frame", f).Msg("recording frame")
			os.Exit(1)
		}
	}
	if err := rec.Flush(); err != nil {
		log.Error().Err(err).Msg("flushing samples")
		os.Exit(1)
	}

	if cfg.Output.CSV != "" {
		if err := exportCSV(rec, cfg.Output.CSV); err != nil {
			log.Error().Err(err).Msg("exporting CSV")
			os.Exit(1)
		}
		log.Info().Str("path", cfg.Output.CSV).Msg("CSV exported")
	}

	log.Info().Str("db", cfg.Output.TraceDB).Int("frames", frames).Msg("done")
}

func exportCSV(rec *trace.Recorder, path string) error {
	samples, err := rec.Samples(rec.RunID())
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"frame", "sim_time", "crank_angle", "visual_rpm", "flow_z", "road_offset", "offsets"}); err != nil {
		return err
	}
	for _, s := range samples {
		row := []string{
			strconv.Itoa(s.Frame),
			strconv.FormatFloat(s.SimTime, 'g', -1, 64),
			strconv.FormatFloat(s.CrankAngle, 'g', -1, 64),
			strconv.FormatFloat(s.VisualRPM, 'g', -1, 64),
			strconv.FormatFloat(s.FlowZ, 'g', -1, 64),
			strconv.FormatFloat(s.RoadOffset, 'g', -1, 64),
			s.Offsets,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
