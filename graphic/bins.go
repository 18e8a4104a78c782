package graphic

import (
	"math"

	"github.com/noriah/vecsink/util"

	"gonum.org/v1/gonum/floats"
)

// Scaling Constants
const (
	// ScalingWindow is the number of snapshots the scale follows
	ScalingWindow = 150
	// ScalingDumpPercent is how much we erase on rescale
	ScalingDumpPercent = 0.75
	// ScalingResetDeviation standard deviations from the mean before reset
	ScalingResetDeviation = 1.5
)

// downsample reduces vec to count bins in dst, keeping the max of each group
// of samples. With fewer samples than bins each sample gets its own bin and
// the rest of dst is unused.
func downsample(dst []float64, vec []float32, count int) []float64 {
	if count > len(vec) {
		count = len(vec)
	}

	if cap(dst) < count {
		dst = make([]float64, count)
	}
	dst = dst[:count]

	if count == 0 {
		return dst
	}

	group := make([]float64, 0, len(vec)/count+1)

	for xBin := range dst {
		lo := xBin * len(vec) / count
		hi := (xBin + 1) * len(vec) / count

		group = group[:0]
		for _, v := range vec[lo:hi] {
			group = append(group, float64(v))
		}

		dst[xBin] = floats.Max(group)
	}

	return dst
}

// scaler maps bin values to bar heights, following the recent peaks so a
// quiet spectrum still fills the screen.
type scaler struct {
	window *util.MovingWindow
}

func newScaler(size int) *scaler {
	return &scaler{window: util.NewMovingWindow(size)}
}

// scale returns the factor turning a value into rows for a screen height
// rows tall.
func (s *scaler) scale(peak float64, rows int) float64 {
	if peak > 0 {
		vMean, vSD := s.window.Update(peak)

		// a jump far outside the recent range resets the window
		if s.window.Len() > 1 && math.Abs(peak-vMean) > ScalingResetDeviation*math.Max(vSD, vMean) {
			vMean, vSD = s.window.Drop(int(float64(s.window.Len()) * ScalingDumpPercent))
		}

		return float64(rows) / math.Max(vMean+(1.5*vSD), peak)
	}

	if mean, sd := s.window.Stats(); mean+sd > 0 {
		return float64(rows) / (mean + 1.5*sd)
	}

	return 0
}
