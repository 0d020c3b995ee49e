package sim

import "engine-motion-renderer/internal/mathutil"

// TrailLength is the fixed sample capacity of every trail history.
const TrailLength = 100

// TrailHistory is a fixed-capacity ring of 3D samples for one piston.
// Logical index 0 is the newest sample; higher indices are older and carry
// accumulated rearward Z flow. The ring is re-indexed on read instead of
// physically shifted, so Advance stays allocation-free.
type TrailHistory struct {
	data  [TrailLength]mathutil.Vec3
	head  int // index of the newest sample in data
	dirty bool
}

// NewTrailHistory returns a history with every sample at rest, marked
// dirty so the first consumer sync picks up the seeded state.
func NewTrailHistory(rest mathutil.Vec3) *TrailHistory {
	t := &TrailHistory{}
	t.Reset(rest)
	return t
}

// Len always reports the full capacity; a history is never partially
// filled.
func (t *TrailHistory) Len() int { return TrailLength }

// At returns the sample at logical index k (0 = newest, Len()-1 = oldest).
func (t *TrailHistory) At(k int) mathutil.Vec3 {
	return t.data[(t.head+k)%TrailLength]
}

// Advance ages every retained sample by flowZ on the Z axis, drops the
// oldest sample and writes head as the new logical index 0. The head
// sample is stored exactly as passed, untouched by the flow increment.
func (t *TrailHistory) Advance(head mathutil.Vec3, flowZ float64) {
	for i := range t.data {
		t.data[i][2] += flowZ
	}
	t.head = (t.head - 1 + TrailLength) % TrailLength
	t.data[t.head] = head
	t.dirty = true
}

// Reset reseeds every sample with the resting position so no stale streak
// is visible before the first frame runs.
func (t *TrailHistory) Reset(rest mathutil.Vec3) {
	for i := range t.data {
		t.data[i] = rest
	}
	t.head = 0
	t.dirty = true
}

// PointsInto copies the samples newest-first into dst and returns it.
// When dst is nil or too short a fresh slice is allocated; renderers pass
// a retained scratch slice to keep the frame path allocation-free.
func (t *TrailHistory) PointsInto(dst []mathutil.Vec3) []mathutil.Vec3 {
	if cap(dst) < TrailLength {
		dst = make([]mathutil.Vec3, TrailLength)
	}
	dst = dst[:TrailLength]
	n := copy(dst, t.data[t.head:])
	copy(dst[n:], t.data[:t.head])
	return dst
}

// Dirty reports whether the history changed since the last Sync.
func (t *TrailHistory) Dirty() bool { return t.dirty }

// Sync clears the dirty flag; call after the consumer has re-read the
// points.
func (t *TrailHistory) Sync() { t.dirty = false }
