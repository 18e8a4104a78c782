package vecsink

import (
	"io"
	"math"
	"os"

	"github.com/noriah/vecsink/input/utils/endian"
	"github.com/noriah/vecsink/internal/fs"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// FileSink keeps the first VecLen*4 bytes of a file equal to the last vector
// it was given. It is not safe for concurrent use.
type FileSink struct {
	filename string
	vecLen   int
	sync     bool

	file fs.File
	fsys fs.FileSystem
	log  zerolog.Logger

	// scratch space for one encoded vector
	frame []byte
}

var _ Block = &FileSink{}

// Option configures a FileSink.
type Option func(*FileSink)

// WithFileSystem sets the file system the sink opens its file on.
func WithFileSystem(fsys fs.FileSystem) Option {
	return func(s *FileSink) {
		s.fsys = fsys
	}
}

// WithLogger sets the logger. The sink logs nothing by default.
func WithLogger(log zerolog.Logger) Option {
	return func(s *FileSink) {
		s.log = log
	}
}

// New creates or truncates cfg.Filename and fills it with VecLen zero samples.
func New(cfg Config, opts ...Option) (*FileSink, error) {
	if err := cfg.Validate(); err != nil {
		return nil, &Error{Kind: KindInit, Op: "config", Path: cfg.Filename, Err: err}
	}

	s := &FileSink{
		filename: cfg.Filename,
		vecLen:   cfg.VecLen,
		sync:     cfg.Sync,
		fsys:     fs.Default,
		log:      zerolog.Nop(),
		frame:    make([]byte, cfg.FrameSize()),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.log = s.log.With().Str("file", s.filename).Int("vec_len", s.vecLen).Logger()

	file, err := s.fsys.OpenFile(s.filename, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, &Error{Kind: KindInit, Op: "open", Path: s.filename, Err: err}
	}

	s.file = file

	// frame is still all zeros
	if op, err := s.overwrite(); err != nil {
		file.Close()
		s.file = nil
		return nil, &Error{Kind: KindInit, Op: op, Path: s.filename, Err: err}
	}

	s.log.Debug().Msg("sink opened")

	return s, nil
}

// Filename returns the path of the sink file.
func (s *FileSink) Filename() string {
	return s.filename
}

// VecLen returns the number of samples per vector.
func (s *FileSink) VecLen() int {
	return s.vecLen
}

// Work writes every vector of the batch over the previous one, in order, and
// returns how many were consumed. After Work returns the file holds the last
// vector of the batch.
//
// A vector of the wrong length fails the whole batch before anything is
// written. An I/O error stops the batch where it happened and the file keeps
// whatever the failed write left behind.
func (s *FileSink) Work(vecs [][]float32) (int, error) {
	if len(vecs) == 0 {
		return 0, nil
	}

	for idx, vec := range vecs {
		if len(vec) != s.vecLen {
			return 0, errors.Wrapf(ErrVecLen,
				"vector %d has %d samples, want %d", idx, len(vec), s.vecLen)
		}
	}

	if s.file == nil {
		return 0, &Error{Kind: KindWrite, Op: "write", Path: s.filename, Err: os.ErrClosed}
	}

	for idx, vec := range vecs {
		s.encode(vec)

		if op, err := s.overwrite(); err != nil {
			return idx, &Error{Kind: KindWrite, Op: op, Path: s.filename, Err: err}
		}
	}

	return len(vecs), nil
}

// Stop closes the sink file. It always reports success: a close failure is
// only logged. Calling Stop again does nothing.
func (s *FileSink) Stop() bool {
	if s.file == nil {
		return true
	}

	if err := s.file.Close(); err != nil {
		s.log.Warn().Err(err).Msg("failed to close sink file")
	} else {
		s.log.Debug().Msg("sink closed")
	}

	s.file = nil

	return true
}

func (s *FileSink) encode(vec []float32) {
	order := endian.Order()
	for idx, v := range vec {
		order.PutUint32(s.frame[idx*SampleBytes:], math.Float32bits(v))
	}
}

// overwrite puts the frame at offset 0 and flushes it. It returns the name of
// the step that failed.
func (s *FileSink) overwrite() (string, error) {
	if _, err := s.file.Seek(0, io.SeekStart); err != nil {
		return "seek", err
	}

	n, err := s.file.Write(s.frame)
	if err != nil {
		return "write", err
	}

	if n != len(s.frame) {
		return "write", io.ErrShortWrite
	}

	// Writes go straight to the kernel, so they are already visible to other
	// readers. Sync only adds durability.
	if s.sync {
		if err := s.file.Sync(); err != nil {
			return "sync", err
		}
	}

	return "", nil
}
