package vecsink

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/noriah/vecsink/snapshot"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sliceSource struct {
	batches [][][]float32
	err     error
}

func (s *sliceSource) Next(ctx context.Context) ([][]float32, error) {
	if len(s.batches) == 0 {
		if s.err != nil {
			return nil, s.err
		}
		return nil, io.EOF
	}

	batch := s.batches[0]
	s.batches = s.batches[1:]
	return batch, nil
}

type testBlock struct {
	works   int
	stops   int
	consume func(int) int
	err     error
}

func (b *testBlock) Work(vecs [][]float32) (int, error) {
	b.works++
	if b.err != nil {
		return 0, b.err
	}
	if b.consume != nil {
		return b.consume(len(vecs)), nil
	}
	return len(vecs), nil
}

func (b *testBlock) Stop() bool {
	b.stops++
	return true
}

func TestRunDrainsSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.bin")

	s, err := New(Config{Filename: path, VecLen: 2})
	require.NoError(t, err)

	src := &sliceSource{batches: [][][]float32{
		{{1, 2}},
		{},
		{{3, 4}, {5, 6}},
	}}

	require.NoError(t, Run(context.Background(), s, src))

	vec, err := snapshot.Read(path, 2)
	require.NoError(t, err)
	assert.Equal(t, []float32{5, 6}, vec)

	// Run stopped the sink
	_, err = s.Work([][]float32{{7, 8}})
	assert.True(t, errors.Is(err, ErrWrite))
}

func TestRunStopsOnWorkError(t *testing.T) {
	blk := &testBlock{err: errors.New("boom")}
	src := &sliceSource{batches: [][][]float32{{{1}}, {{2}}}}

	err := Run(context.Background(), blk, src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.Equal(t, 1, blk.works)
	assert.Equal(t, 1, blk.stops)
}

func TestRunChecksConsumedCount(t *testing.T) {
	blk := &testBlock{consume: func(n int) int { return n - 1 }}
	src := &sliceSource{batches: [][][]float32{{{1}, {2}}}}

	err := Run(context.Background(), blk, src)
	assert.ErrorContains(t, err, "consumed 1 of 2")
	assert.Equal(t, 1, blk.stops)
}

func TestRunSourceError(t *testing.T) {
	blk := &testBlock{}
	src := &sliceSource{err: io.ErrUnexpectedEOF}

	err := Run(context.Background(), blk, src)
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	assert.Equal(t, 0, blk.works)
	assert.Equal(t, 1, blk.stops)
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	blk := &testBlock{}
	src := &sliceSource{batches: [][][]float32{{{1}}}}

	err := Run(ctx, blk, src)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 0, blk.works)
	assert.Equal(t, 1, blk.stops)
}
