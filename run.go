package vecsink

import (
	"context"
	"io"

	"github.com/pkg/errors"
)

// Block is what a host needs from a sink once it has been constructed.
type Block interface {
	// Work consumes a batch of vectors and reports how many were consumed.
	Work(vecs [][]float32) (int, error)
	// Stop releases the block. It never fails.
	Stop() bool
}

// Source hands out batches of vectors. It returns io.EOF once exhausted.
type Source interface {
	Next(ctx context.Context) ([][]float32, error)
}

// Run feeds every batch from src into blk until src is exhausted or ctx is
// done. Any Work error is fatal for the block. blk is stopped on return.
func Run(ctx context.Context, blk Block, src Source) error {
	defer blk.Stop()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		vecs, err := src.Next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}

			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}

			return errors.Wrap(err, "failed to read batch")
		}

		n, err := blk.Work(vecs)
		if err != nil {
			return errors.Wrap(err, "block failed")
		}

		if n != len(vecs) {
			return errors.Errorf("block consumed %d of %d vectors", n, len(vecs))
		}
	}
}
