package main

import (
	"time"

	"github.com/noriah/vecsink"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// config holds everything the flags can set
type config struct {
	// sink is the file and vector shape shared by every mode
	sink vecsink.Config
	// batchSize is the most vectors handed to the sink at once
	batchSize int

	// logLevel is a zerolog level name
	logLevel string
	// logJSON switches the log output from console to JSON
	logJSON bool

	// statsOnly prints a summary instead of every value
	statsOnly bool
	// pollRate re-reads the file on a timer instead of watching it
	pollRate time.Duration
	// once prints the current snapshot and exits
	once bool

	// barSize is the width of bars, in columns
	barSize int
	// spaceSize is the width of spaces, in columns
	spaceSize int
	// baseSize is the number of rows of the base line
	baseSize int
	// smoothFactor is the bar smoothing, 0 to 100
	smoothFactor float64
}

// newZeroConfig returns the defaults
func newZeroConfig() config {
	return config{
		sink:      vecsink.NewZeroConfig(),
		batchSize: 1,
		logLevel:  "info",
		barSize:   2,
		spaceSize: 1,
		baseSize:  1,
	}
}

func (cfg *config) validate() error {
	if err := cfg.sink.Validate(); err != nil {
		return err
	}

	if cfg.batchSize < 1 {
		return errors.New("batch size too small (1 min)")
	}

	if cfg.pollRate < 0 {
		return errors.New("poll rate cannot be negative")
	}

	if _, err := zerolog.ParseLevel(cfg.logLevel); err != nil {
		return errors.Wrapf(err, "bad log level %q", cfg.logLevel)
	}

	switch {
	case cfg.barSize < 1:
		return errors.New("bar width too small (1 min)")

	case cfg.spaceSize < 0:
		return errors.New("space width cannot be negative")

	case cfg.baseSize < 0:
		return errors.New("base thickness cannot be negative")

	case cfg.smoothFactor < 0 || cfg.smoothFactor > 100:
		return errors.New("smoothing out of range (0-100)")
	}

	return nil
}
