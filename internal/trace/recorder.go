// Package trace records per-frame simulation telemetry into SQLite for
// offline analysis of the kinematics and scroll coupling.
package trace

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"engine-motion-renderer/internal/sim"
)

// flushBatch is the insert batch size for frame samples.
const flushBatch = 256

// Run is one recorded simulation run.
type Run struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	Cylinders int
	RPM       float64
	SpeedKph  float64
	TimeScale float64
	FPS       float64
	Frames    int
}

// FrameSample is one frame of telemetry. Offsets holds the per-cylinder
// axial offsets as a JSON array.
type FrameSample struct {
	ID         uint `gorm:"primarykey"`
	RunID      uint `gorm:"index"`
	Frame      int
	SimTime    float64
	CrankAngle float64
	VisualRPM  float64
	FlowZ      float64
	RoadOffset float64
	Offsets    string `gorm:"type:text"`
}

// Recorder buffers frame samples and flushes them in batches.
type Recorder struct {
	db      *gorm.DB
	run     Run
	pending []FrameSample
	log     zerolog.Logger
}

// Open creates (or opens) the SQLite database at path and migrates the
// schema. Use ":memory:" for an ephemeral database.
func Open(path string, log zerolog.Logger) (*Recorder, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("trace: open %s: %w", path, err)
	}
	if err := db.AutoMigrate(&Run{}, &FrameSample{}); err != nil {
		return nil, fmt.Errorf("trace: migrate: %w", err)
	}
	return &Recorder{db: db, log: log}, nil
}

// BeginRun registers a new run for the given parameters and frame plan.
func (r *Recorder) BeginRun(p sim.Params, fps float64, frames int) error {
	r.run = Run{
		Cylinders: p.Cylinders,
		RPM:       p.RPM,
		SpeedKph:  p.SpeedKph,
		TimeScale: p.TimeScale,
		FPS:       fps,
		Frames:    frames,
	}
	if err := r.db.Create(&r.run).Error; err != nil {
		return fmt.Errorf("trace: create run: %w", err)
	}
	r.log.Debug().Uint("run_id", r.run.ID).Msg("trace run started")
	return nil
}

// RunID returns the active run's database ID.
func (r *Recorder) RunID() uint { return r.run.ID }

// RecordFrame buffers one frame of engine state. deltaTime is the frame's
// wall-clock step; simTime the accumulated scaled time.
func (r *Recorder) RecordFrame(e *sim.Engine, frame int, simTime, deltaTime float64) error {
	p := e.Params()
	offsets, err := json.Marshal(e.Offsets())
	if err != nil {
		return fmt.Errorf("trace: marshal offsets: %w", err)
	}

	r.pending = append(r.pending, FrameSample{
		RunID:      r.run.ID,
		Frame:      frame,
		SimTime:    simTime,
		CrankAngle: e.CrankAngle(),
		VisualRPM:  sim.VisualRPM(p.RPM),
		FlowZ:      sim.FlowDistanceZ(p.SpeedKph, deltaTime, p.TimeScale),
		RoadOffset: e.RoadOffset(),
		Offsets:    string(offsets),
	})

	if len(r.pending) >= flushBatch {
		return r.Flush()
	}
	return nil
}

// Flush writes all buffered samples.
func (r *Recorder) Flush() error {
	if len(r.pending) == 0 {
		return nil
	}
	if err := r.db.CreateInBatches(r.pending, flushBatch).Error; err != nil {
		return fmt.Errorf("trace: insert samples: %w", err)
	}
	r.pending = r.pending[:0]
	return nil
}

// Close flushes pending samples and closes the database.
func (r *Recorder) Close() error {
	if err := r.Flush(); err != nil {
		return err
	}
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("trace: access sql interface: %w", err)
	}
	return sqlDB.Close()
}

// Samples returns all samples of a run ordered by frame, mainly for
// tests and the CSV exporter.
func (r *Recorder) Samples(runID uint) ([]FrameSample, error) {
	var samples []FrameSample
	err := r.db.Where("run_id = ?", runID).Order("frame").Find(&samples).Error
	if err != nil {
		return nil, fmt.Errorf("trace: query samples: %w", err)
	}
	return samples, nil
}
