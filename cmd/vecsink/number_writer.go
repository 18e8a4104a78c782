package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/noriah/vecsink/snapshot"
)

// NumberWriter prints snapshots as lines of numbers.
type NumberWriter struct {
	out       *bufio.Writer
	statsOnly bool
}

func NewNumberWriter(w io.Writer, statsOnly bool) *NumberWriter {
	return &NumberWriter{
		out:       bufio.NewWriter(w),
		statsOnly: statsOnly,
	}
}

// Write prints one snapshot on one line.
func (nw *NumberWriter) Write(vec []float32) error {
	if nw.statsOnly {
		s := snapshot.Stats(vec)
		fmt.Fprintf(nw.out, "peak=%.4g bin=%d mean=%.4g sd=%.4g\n",
			s.Peak, s.PeakBin, s.Mean, s.StdDev)

		return nw.out.Flush()
	}

	for idx, v := range vec {
		if idx > 0 {
			nw.out.WriteByte(' ')
		}
		fmt.Fprintf(nw.out, "%6.3f", v)
	}

	nw.out.WriteByte('\n')

	return nw.out.Flush()
}
