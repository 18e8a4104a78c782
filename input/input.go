// Package input frames a raw stream of native-endian float32 samples into
// batches of fixed-length vectors.
package input

import (
	"context"
	"io"
	"math"

	"github.com/noriah/vecsink/input/utils/endian"

	"github.com/pkg/errors"
)

// SampleBytes is the encoded size of one sample.
const SampleBytes = 4

// Reader reads whole vectors from a byte stream. The vectors of a batch are
// overwritten by the next call to Next.
type Reader struct {
	src       io.Reader
	vecLen    int
	batchSize int

	raw  []byte
	bufs [][]float32

	// read error held back so complete vectors go out first
	err error
}

// NewReader returns a Reader handing out at most batchSize vectors of vecLen
// samples per batch.
func NewReader(src io.Reader, vecLen, batchSize int) *Reader {
	if vecLen < 1 {
		panic("vecLen must be positive")
	}

	if batchSize < 1 {
		batchSize = 1
	}

	r := &Reader{
		src:       src,
		vecLen:    vecLen,
		batchSize: batchSize,
		raw:       make([]byte, vecLen*SampleBytes),
		bufs:      make([][]float32, batchSize),
	}

	for idx := range r.bufs {
		r.bufs[idx] = make([]float32, vecLen)
	}

	return r
}

// Next returns the next batch. It blocks until a batch is full or the stream
// ends, and returns io.EOF once the stream ended on a vector boundary. A
// stream ending mid-vector gives io.ErrUnexpectedEOF. Vectors read before
// a failure are returned first, and the error comes with the following call.
func (r *Reader) Next(ctx context.Context) ([][]float32, error) {
	if r.err != nil {
		return nil, r.err
	}

	count := 0

	for count < r.batchSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if _, err := io.ReadFull(r.src, r.raw); err != nil {
			switch {
			case errors.Is(err, io.EOF):
				r.err = io.EOF
			case errors.Is(err, io.ErrUnexpectedEOF):
				r.err = errors.Wrap(err, "stream ended mid-vector")
			default:
				r.err = errors.Wrap(err, "failed to read vector")
			}

			if count > 0 {
				return r.bufs[:count], nil
			}

			return nil, r.err
		}

		r.decode(r.bufs[count])
		count++
	}

	return r.bufs[:count], nil
}

func (r *Reader) decode(dst []float32) {
	order := endian.Order()
	for idx := range dst {
		dst[idx] = math.Float32frombits(order.Uint32(r.raw[idx*SampleBytes:]))
	}
}
