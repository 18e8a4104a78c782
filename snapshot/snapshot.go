// Package snapshot reads the vectors a sink publishes.
//
// Reads are not coordinated with the writer. A read that overlaps a write can
// return a torn vector mixing old and new samples.
package snapshot

import (
	"io"
	"math"
	"os"

	"github.com/noriah/vecsink/input/utils/endian"

	"github.com/pkg/errors"
)

// SampleBytes is the encoded size of one sample.
const SampleBytes = 4

// ErrShort is returned when the file holds less than one vector, as it does
// while a sink is being created over it.
var ErrShort = errors.New("snapshot too short")

func checkVecLen(vecLen int) error {
	if vecLen < 1 {
		return errors.Errorf("vector length too small (%d, 1 min)", vecLen)
	}
	return nil
}

// Decode decodes raw native-endian float32 samples into dst, growing it if
// needed, and returns it. Trailing bytes that do not make a full sample are
// ignored.
func Decode(dst []float32, raw []byte) []float32 {
	n := len(raw) / SampleBytes

	if cap(dst) < n {
		dst = make([]float32, n)
	}
	dst = dst[:n]

	order := endian.Order()
	for idx := range dst {
		dst[idx] = math.Float32frombits(order.Uint32(raw[idx*SampleBytes:]))
	}

	return dst
}

// Read returns the vecLen samples at the start of the file at path.
func Read(path string, vecLen int) ([]float32, error) {
	r := NewReader(path, vecLen)
	return r.Read(nil)
}

// Reader re-reads the same snapshot file into a reused buffer.
type Reader struct {
	path   string
	vecLen int
	raw    []byte
}

// NewReader returns a Reader for vectors of vecLen samples in path. A
// vecLen below 1 makes every Read fail.
func NewReader(path string, vecLen int) *Reader {
	r := &Reader{
		path:   path,
		vecLen: vecLen,
	}

	if vecLen > 0 {
		r.raw = make([]byte, vecLen*SampleBytes)
	}

	return r
}

// Path returns the file being read.
func (r *Reader) Path() string {
	return r.path
}

// Read decodes the current snapshot into dst and returns it.
func (r *Reader) Read(dst []float32) ([]float32, error) {
	if err := checkVecLen(r.vecLen); err != nil {
		return nil, err
	}

	f, err := os.Open(r.path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open snapshot")
	}
	defer f.Close()

	if _, err := f.ReadAt(r.raw, 0); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.Wrapf(ErrShort, "%s is shorter than %d bytes", r.path, len(r.raw))
		}
		return nil, errors.Wrap(err, "failed to read snapshot")
	}

	return Decode(dst, r.raw), nil
}
