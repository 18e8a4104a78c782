package snapshot

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// Func receives each snapshot. The slice is reused between calls. Returning
// an error stops the watch.
type Func func(vec []float32) error

// Poll reads the snapshot every interval and hands it to fn. A file shorter
// than one vector is skipped until the next tick. It returns when ctx is done
// or fn or a read fails.
func Poll(ctx context.Context, path string, vecLen int, interval time.Duration, fn Func) error {
	if err := checkVecLen(vecLen); err != nil {
		return err
	}

	if interval <= 0 {
		return errors.Errorf("poll interval must be positive, got %v", interval)
	}

	r := NewReader(path, vecLen)
	vec := make([]float32, vecLen)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := deliver(r, vec, fn); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Watch hands the current snapshot to fn, then again after every write to
// the file. A file shorter than one vector is skipped until the next write.
// It returns when ctx is done or fn or a read fails.
func Watch(ctx context.Context, path string, vecLen int, fn Func) error {
	if err := checkVecLen(vecLen); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create watcher")
	}
	defer watcher.Close()

	// Watch the directory so the watch survives the writer truncating or
	// recreating the file.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return errors.Wrap(err, "failed to watch snapshot directory")
	}

	r := NewReader(path, vecLen)
	vec := make([]float32, vecLen)

	if err := deliver(r, vec, fn); err != nil {
		return err
	}

	target := filepath.Clean(path)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return errors.Wrap(err, "watcher failed")

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(ev.Name) != target {
				continue
			}

			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}

			if err := deliver(r, vec, fn); err != nil {
				return err
			}
		}
	}
}

// deliver reads the snapshot into vec and hands it to fn. A short file means
// a sink is truncating and refilling it, so it is skipped.
func deliver(r *Reader, vec []float32, fn Func) error {
	vec, err := r.Read(vec)
	if errors.Is(err, ErrShort) {
		return nil
	}

	if err != nil {
		return err
	}

	return fn(vec)
}
