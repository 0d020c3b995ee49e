package batch

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"engine-motion-renderer/internal/anim"
	"engine-motion-renderer/internal/mathutil"
	"engine-motion-renderer/internal/postprocess"
	"engine-motion-renderer/internal/raster"
	"engine-motion-renderer/internal/scene"
	"engine-motion-renderer/internal/sim"
	"engine-motion-renderer/internal/texture"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir   string
	TexResolver texture.Resolver
	Width       int
	Height      int
	Supersample int
	FPS         float64
	DurationSec float64
	Workers     int
	Log         zerolog.Logger
}

// Result holds the outcome of rendering one preset.
type Result struct {
	Name    string
	Path    string
	Frames  int
	Success bool
	Error   string
}

// Run renders all presets using a worker pool and reports per-preset
// results in input order.
func Run(cfg Config, presets []Preset) []Result {
	total := len(presets)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					cfg.Log.Info().
						Int64("done", p).
						Int("total", total).
						Float64("presets_per_sec", float64(p)/elapsed).
						Msg("sweep progress")
				}
			}
		}
	}()

	// Worker pool
	presetChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range presetChan {
				results[idx] = RenderPreset(cfg, presets[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range presets {
		presetChan <- i
	}
	close(presetChan)

	wg.Wait()
	close(done)

	return results
}

// RenderPreset runs the full pipeline for one preset: step the simulation
// at the configured frame rate, assemble and rasterize each frame, and
// encode the animated WebP. The body-vibration jitter is seeded per
// preset so reruns are reproducible.
func RenderPreset(cfg Config, p Preset) Result {
	frames := int(cfg.DurationSec*cfg.FPS + 0.5)
	if frames < 1 || cfg.FPS <= 0 {
		return Result{Name: p.Name, Error: "non-positive frame count"}
	}
	dt := 1.0 / cfg.FPS

	eng := sim.NewEngine(p.Sim)
	params := eng.Params()
	cam := scene.DefaultCamera(params.Cylinders)
	col := anim.NewCollector(cfg.FPS)
	seed := fnv.New64a()
	seed.Write([]byte(p.Name))
	rng := rand.New(rand.NewSource(int64(seed.Sum64())))

	trails := make([][]mathutil.Vec3, params.Cylinders)

	for f := 0; f < frames; f++ {
		eng.Step(dt)

		for i := range trails {
			tr := eng.Trail(i)
			if tr.Dirty() {
				trails[i] = tr.PointsInto(trails[i])
				tr.Sync()
			}
		}

		meshes := scene.Build(scene.Frame{
			Cylinders:  eng.Cylinders(),
			Offsets:    eng.Offsets(),
			Trails:     trails,
			CrankAngle: eng.CrankAngle(),
			RoadOffset: eng.RoadOffset(),
			Jitter:     scene.Vibration(rng, params.RPM),
		})

		img := raster.RenderScene(meshes, cam, cfg.TexResolver, cfg.Width, cfg.Height, cfg.Supersample)
		if cfg.Supersample > 1 {
			img = postprocess.Downsample(img, cfg.Width, cfg.Height)
		}
		col.Add(img)
	}

	outPath := filepath.Join(cfg.OutputDir, fmt.Sprintf("%s.webp", p.Name))
	if err := col.EncodeFile(outPath); err != nil {
		return Result{Name: p.Name, Frames: frames, Error: err.Error()}
	}

	return Result{Name: p.Name, Path: outPath, Frames: frames, Success: true}
}
