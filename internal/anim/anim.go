// Package anim collects rendered frames and encodes them as an animated
// WebP.
package anim

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"
)

// Collector accumulates frames at a fixed frame rate.
type Collector struct {
	frames      []image.Image
	durations   []uint
	disposals   []uint
	durationsMS uint
}

// NewCollector creates a collector for the given frame rate. fps must be
// positive; durations are rounded to whole milliseconds.
func NewCollector(fps float64) *Collector {
	ms := uint(1000.0/fps + 0.5)
	if ms < 1 {
		ms = 1
	}
	return &Collector{durationsMS: ms}
}

// Add appends one frame.
func (c *Collector) Add(img image.Image) {
	c.frames = append(c.frames, img)
	c.durations = append(c.durations, c.durationsMS)
	c.disposals = append(c.disposals, 0)
}

// Len returns the number of collected frames.
func (c *Collector) Len() int { return len(c.frames) }

// Encode writes the collected frames as an infinitely-looping animated
// WebP.
func (c *Collector) Encode(w io.Writer) error {
	if len(c.frames) == 0 {
		return fmt.Errorf("anim: no frames collected")
	}
	ani := nativewebp.Animation{
		Images:    c.frames,
		Durations: c.durations,
		Disposals: c.disposals,
		LoopCount: 0,
	}
	if err := nativewebp.EncodeAll(w, &ani, nil); err != nil {
		return fmt.Errorf("anim: encode: %w", err)
	}
	return nil
}

// EncodeFile writes the animation to path, creating parent directories.
func (c *Collector) EncodeFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("anim: mkdir for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("anim: create %s: %w", path, err)
	}
	defer f.Close()

	if err := c.Encode(f); err != nil {
		return err
	}
	return f.Close()
}
