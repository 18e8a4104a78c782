package vecsink

import (
	"github.com/pkg/errors"
)

// SampleBytes is the encoded size of one sample.
const SampleBytes = 4

type Config struct {
	// File that receives the latest vector
	Filename string
	// Number of samples in every vector
	VecLen int
	// Also fsync after every flush. Without it a flush only guarantees that
	// other readers on this machine see the bytes.
	Sync bool
}

func NewZeroConfig() Config {
	return Config{
		Filename: "out.bin",
		VecLen:   256,
	}
}

func (cfg *Config) Validate() error {
	if cfg.Filename == "" {
		return errors.New("filename is empty")
	}

	if cfg.VecLen < 1 {
		return errors.Errorf("vector length too small (%d, 1 min)", cfg.VecLen)
	}

	return nil
}

// FrameSize is the size in bytes of one encoded vector, which is also the
// size of the file.
func (cfg *Config) FrameSize() int {
	return cfg.VecLen * SampleBytes
}
