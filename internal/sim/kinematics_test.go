package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisualRPMIdentityRegion(t *testing.T) {
	for _, rpm := range []float64{0, 1, 250, 999.5, 1000} {
		assert.Equal(t, rpm, VisualRPM(rpm), "rpm=%v", rpm)
	}
}

func TestVisualRPMCompression(t *testing.T) {
	tests := []struct {
		rpm  float64
		want float64
	}{
		{1001, 1000.1},
		{2000, 1100},
		{5000, 1400},
		{8000, 1700},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, VisualRPM(tt.rpm), 1e-9, "rpm=%v", tt.rpm)
	}
}

func TestVisualRPMMonotonic(t *testing.T) {
	prev := VisualRPM(0)
	for rpm := 10.0; rpm <= 8000; rpm += 10 {
		v := VisualRPM(rpm)
		assert.GreaterOrEqual(t, v, prev, "rpm=%v", rpm)
		prev = v
	}
}

func TestAngularVelocity(t *testing.T) {
	// 1000 RPM sits at the remap threshold: 1000·2π/60.
	assert.InDelta(t, 104.7198, AngularVelocity(1000), 1e-4)
	// 8000 RPM compresses to 1700 visual RPM.
	assert.InDelta(t, 178.0236, AngularVelocity(8000), 1e-4)
}

func TestBuildCylindersPhases(t *testing.T) {
	for count := 1; count <= 12; count++ {
		specs := BuildCylinders(count)
		require.Len(t, specs, count)
		assert.Zero(t, specs[0].Phase)
		for i, s := range specs {
			assert.Equal(t, i, s.Index)
			assert.InDelta(t, 2*math.Pi*float64(i)/float64(count), s.Phase, 1e-12)
			if i > 0 {
				assert.Greater(t, s.Phase, specs[i-1].Phase)
			}
		}
	}
}

func TestOffsetBounded(t *testing.T) {
	specs := BuildCylinders(6)
	for angle := 0.0; angle < 8*math.Pi; angle += 0.01 {
		for _, off := range ComputeOffsets(angle, specs) {
			assert.LessOrEqual(t, math.Abs(off), StrokeLength/2)
		}
	}

	// The bound is reached: cylinder 0 tops out at crank angle π/2.
	offs := ComputeOffsets(math.Pi/2, specs)
	assert.InDelta(t, StrokeLength/2, offs[0], 1e-12)
}

func TestComputeOffsetsPure(t *testing.T) {
	specs := BuildCylinders(4)
	a := ComputeOffsets(1.25, specs)
	b := ComputeOffsets(1.25, specs)
	assert.Equal(t, a, b)
}
