package util

import "math"

// MovingWindow keeps the last Cap values pushed into it, with their running
// mean and standard deviation.
//
// Values live in a ring. head is the oldest value, the newest sits at
// (head+length-1) % capacity.
type MovingWindow struct {
	values []float64

	head     int
	length   int
	capacity int

	sum   float64
	sumSq float64

	average float64
	stddev  float64
}

// NewMovingWindow returns a new moving window holding at most size values.
func NewMovingWindow(size int) *MovingWindow {
	if size < 1 {
		size = 1
	}

	return &MovingWindow{
		values:   make([]float64, size),
		capacity: size,
	}
}

func (mw *MovingWindow) calcFinal() (float64, float64) {
	if mw.length == 0 {
		mw.average, mw.stddev = 0, 0
		return 0, 0
	}

	n := float64(mw.length)
	mw.average = mw.sum / n

	if mw.length > 1 {
		variance := (mw.sumSq - n*mw.average*mw.average) / (n - 1)
		// rounding can push a flat window slightly negative
		mw.stddev = math.Sqrt(math.Max(variance, 0))
	} else {
		mw.stddev = 0
	}

	return mw.average, mw.stddev
}

// Update pushes value, evicting the oldest value if the window is full, and
// returns the new mean and standard deviation.
func (mw *MovingWindow) Update(value float64) (float64, float64) {
	if mw.length < mw.capacity {
		mw.values[(mw.head+mw.length)%mw.capacity] = value
		mw.length++
	} else {
		old := mw.values[mw.head]
		mw.sum -= old
		mw.sumSq -= old * old

		mw.values[mw.head] = value
		mw.head = (mw.head + 1) % mw.capacity
	}

	mw.sum += value
	mw.sumSq += value * value

	return mw.calcFinal()
}

// Drop removes the count oldest values.
func (mw *MovingWindow) Drop(count int) (float64, float64) {
	for ; count > 0 && mw.length > 0; count-- {
		old := mw.values[mw.head]
		mw.sum -= old
		mw.sumSq -= old * old

		mw.head = (mw.head + 1) % mw.capacity
		mw.length--
	}

	// clear rounding leftovers
	if mw.length == 0 {
		mw.head = 0
		mw.sum = 0
		mw.sumSq = 0
	}

	return mw.calcFinal()
}

// Len returns how many items in the window
func (mw *MovingWindow) Len() int {
	return mw.length
}

// Cap returns max size of window
func (mw *MovingWindow) Cap() int {
	return mw.capacity
}

// Mean is the moving window average
func (mw *MovingWindow) Mean() float64 {
	return mw.average
}

// StdDev is the moving average std
func (mw *MovingWindow) StdDev() float64 {
	return mw.stddev
}

// Stats returns the statistics of this window
func (mw *MovingWindow) Stats() (float64, float64) {
	return mw.average, mw.stddev
}
