package snapshot

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes one snapshot.
type Summary struct {
	Peak    float64
	PeakBin int
	Mean    float64
	StdDev  float64
}

// Stats summarizes vec. An empty vector gives a zero Summary.
func Stats(vec []float32) Summary {
	if len(vec) == 0 {
		return Summary{}
	}

	values := make([]float64, len(vec))
	for idx, v := range vec {
		values[idx] = float64(v)
	}

	peakBin := floats.MaxIdx(values)

	var mean, std float64
	if len(values) > 1 {
		mean, std = stat.MeanStdDev(values, nil)
	} else {
		mean = values[0]
	}

	return Summary{
		Peak:    values[peakBin],
		PeakBin: peakBin,
		Mean:    mean,
		StdDev:  std,
	}
}
