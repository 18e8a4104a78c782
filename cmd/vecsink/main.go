package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/noriah/vecsink"
	"github.com/noriah/vecsink/graphic"
	"github.com/noriah/vecsink/input"
	"github.com/noriah/vecsink/snapshot"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// AppName is the app name
const AppName = "vecsink"

// AppDesc is the app description
const AppDesc = "Publish the latest sample vector through a file"

// AppSite is the app website
const AppSite = "https://github.com/noriah/vecsink"

var version = "unknown"

type mode int

const (
	modeSink mode = iota
	modeWatch
	modeView
)

func main() {
	cfg := newZeroConfig()

	m := doFlags(&cfg)

	log := newLogger(&cfg)

	chk(log, cfg.validate(), "invalid config")

	// Root Context
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	var err error

	switch m {
	case modeWatch:
		err = watch(ctx, &cfg)
	case modeView:
		err = view(ctx, &cfg)
	default:
		err = sink(ctx, &cfg, log)
	}

	if errors.Is(err, context.Canceled) {
		return
	}

	chk(log, err, "failed to run "+AppName)
}

// sink reads raw vectors from stdin and publishes them.
func sink(ctx context.Context, cfg *config, log zerolog.Logger) error {
	blk, err := vecsink.New(cfg.sink, vecsink.WithLogger(log))
	if err != nil {
		return err
	}

	log.Info().
		Str("file", cfg.sink.Filename).
		Int("vec_len", cfg.sink.VecLen).
		Int("batch", cfg.batchSize).
		Msg("sinking vectors from stdin")

	// unblock a pending read on interrupt
	go func() {
		<-ctx.Done()
		os.Stdin.Close()
	}()

	src := input.NewReader(os.Stdin, cfg.sink.VecLen, cfg.batchSize)

	return vecsink.Run(ctx, blk, src)
}

// watch prints every new snapshot.
func watch(ctx context.Context, cfg *config) error {
	nw := NewNumberWriter(os.Stdout, cfg.statsOnly)

	if cfg.once {
		vec, err := snapshot.Read(cfg.sink.Filename, cfg.sink.VecLen)
		if err != nil {
			return err
		}
		return nw.Write(vec)
	}

	if cfg.pollRate > 0 {
		return snapshot.Poll(ctx, cfg.sink.Filename, cfg.sink.VecLen, cfg.pollRate, nw.Write)
	}

	return snapshot.Watch(ctx, cfg.sink.Filename, cfg.sink.VecLen, nw.Write)
}

// view draws every new snapshot as terminal bars.
func view(ctx context.Context, cfg *config) error {
	display := graphic.NewDisplay()

	if err := display.Init(); err != nil {
		return err
	}
	defer display.Close()

	display.SetSizes(cfg.barSize, cfg.spaceSize)
	display.SetBase(cfg.baseSize)
	display.SetSmoothing(cfg.smoothFactor)

	ctx = display.Start(ctx)
	defer display.Stop()

	if cfg.pollRate > 0 {
		return snapshot.Poll(ctx, cfg.sink.Filename, cfg.sink.VecLen, cfg.pollRate, display.Draw)
	}

	return snapshot.Watch(ctx, cfg.sink.Filename, cfg.sink.VecLen, display.Draw)
}

func doFlags(cfg *config) mode {

	parser := flaggy.NewParser(AppName)
	parser.Description = AppDesc
	parser.AdditionalHelpPrepend = AppSite
	parser.Version = version

	watchCmd := flaggy.Subcommand{
		Name:                 "watch",
		ShortName:            "w",
		Description:          "print every new snapshot of the file",
		AdditionalHelpAppend: "\nreads race the writer; a torn vector is possible",
	}

	watchCmd.Bool(&cfg.statsOnly, "S", "stats", "print peak, mean and deviation instead of values")
	watchCmd.Bool(&cfg.once, "O", "once", "print the current snapshot and exit")

	parser.AttachSubcommand(&watchCmd, 1)

	viewCmd := flaggy.Subcommand{
		Name:                 "view",
		ShortName:            "v",
		Description:          "draw the snapshot as bars in the terminal",
		AdditionalHelpAppend: "\nq, esc or ctrl-c to quit; arrows resize bars",
	}

	viewCmd.Int(&cfg.barSize, "bw", "bar", "bar width [1, +Inf)")
	viewCmd.Int(&cfg.spaceSize, "sw", "space", "space width [0, +Inf)")
	viewCmd.Int(&cfg.baseSize, "bt", "base", "base thickness [0, +Inf)")
	viewCmd.Float64(&cfg.smoothFactor, "sf", "smoothing", "smooth factor (0-100)")

	parser.AttachSubcommand(&viewCmd, 1)

	parser.String(&cfg.sink.Filename, "o", "output", "snapshot file")
	parser.Int(&cfg.sink.VecLen, "n", "veclen", "samples per vector")
	parser.Int(&cfg.batchSize, "B", "batch", "vectors per batch when sinking stdin")
	parser.Bool(&cfg.sink.Sync, "s", "sync", "fsync after every vector")
	parser.Duration(&cfg.pollRate, "p", "poll", "poll the file at this interval instead of watching it")
	parser.String(&cfg.logLevel, "l", "log-level", "log level (debug, info, warn, error)")
	parser.Bool(&cfg.logJSON, "j", "json", "log as JSON")

	if err := parser.Parse(); err != nil {
		fmt.Fprintln(os.Stderr, "failed to parse arguments:", err)
		os.Exit(1)
	}

	switch {
	case watchCmd.Used:
		return modeWatch

	case viewCmd.Used:
		return modeView
	}

	return modeSink
}

func chk(log zerolog.Logger, err error, wrap string) {
	if err != nil {
		log.Fatal().Err(err).Msg(wrap)
	}
}
