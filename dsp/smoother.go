// Package dsp holds the signal helpers used to present snapshots.
package dsp

import "math"

// Smoother blends each new set of bins with the ones before it so bars fall
// back gradually instead of flickering between snapshots.
type Smoother struct {
	values       []float64 // previous output, one per bin
	smoothFactor float64   // weight of the previous output, [0, 1)
}

// NewSmoother returns a Smoother. factor runs from 0 (no smoothing) to 100.
func NewSmoother(factor float64) *Smoother {
	sm := &Smoother{}
	sm.SetSmoothing(factor)
	return sm
}

// SetSmoothing sets the smoothing factor in [0, 100].
func (sm *Smoother) SetSmoothing(factor float64) {
	switch {
	case factor <= 0:
		sm.smoothFactor = 0
		return
	case factor > 99.99:
		factor = 99.99
	}

	factor /= 100.0

	// same curve as the visualizer: small factors barely smooth, large ones
	// hold the bars for a long time
	sf := math.Pow(10.0, (1.0-factor)*(-25.0))
	sm.smoothFactor = math.Pow(sf, 0.0167)
}

// Factor returns the weight given to the previous output.
func (sm *Smoother) Factor() float64 {
	return sm.smoothFactor
}

// SmoothBins smooths bins in place. A change in the number of bins resets
// the history.
func (sm *Smoother) SmoothBins(bins []float64) {
	if len(sm.values) != len(bins) {
		sm.values = make([]float64, len(bins))
		copy(sm.values, bins)
		return
	}

	factor := sm.smoothFactor

	for idx, value := range bins {
		if math.IsNaN(value) {
			value = 0.0
		}

		value *= 1.0 - factor
		value += sm.values[idx] * factor

		sm.values[idx] = value
		bins[idx] = value
	}
}
