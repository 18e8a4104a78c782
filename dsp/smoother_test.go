package dsp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSmootherOff(t *testing.T) {
	sm := NewSmoother(0)
	assert.Equal(t, 0.0, sm.Factor())

	bins := []float64{1, 2}
	sm.SmoothBins(bins)

	bins = []float64{5, 0}
	sm.SmoothBins(bins)
	assert.Equal(t, []float64{5, 0}, bins)
}

func TestSmootherBlends(t *testing.T) {
	sm := NewSmoother(80)
	f := sm.Factor()
	assert.Greater(t, f, 0.0)
	assert.Less(t, f, 1.0)

	sm.SmoothBins([]float64{10, 0})

	bins := []float64{0, 10}
	sm.SmoothBins(bins)
	assert.InDelta(t, 10*f, bins[0], 1e-9)
	assert.InDelta(t, 10*(1-f), bins[1], 1e-9)
}

func TestSmootherMonotonicFactor(t *testing.T) {
	low := NewSmoother(10).Factor()
	high := NewSmoother(90).Factor()
	assert.Less(t, low, high)

	assert.Less(t, NewSmoother(500).Factor(), 1.0)
}

func TestSmootherResetsOnResize(t *testing.T) {
	sm := NewSmoother(90)
	sm.SmoothBins([]float64{10, 10})

	bins := []float64{1, 2, 3}
	sm.SmoothBins(bins)
	assert.Equal(t, []float64{1, 2, 3}, bins)
}

func TestSmootherDropsNaN(t *testing.T) {
	sm := NewSmoother(0)
	sm.SmoothBins([]float64{1})

	bins := []float64{math.NaN()}
	sm.SmoothBins(bins)
	assert.Equal(t, []float64{0}, bins)
}
