package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroConfigIsValid(t *testing.T) {
	cfg := newZeroConfig()
	require.NoError(t, cfg.validate())

	assert.Equal(t, "out.bin", cfg.sink.Filename)
	assert.Equal(t, 256, cfg.sink.VecLen)
	assert.Equal(t, 1, cfg.batchSize)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*config)
	}{
		{"zero vector length", func(c *config) { c.sink.VecLen = 0 }},
		{"empty filename", func(c *config) { c.sink.Filename = "" }},
		{"zero batch", func(c *config) { c.batchSize = 0 }},
		{"negative poll", func(c *config) { c.pollRate = -time.Second }},
		{"bad log level", func(c *config) { c.logLevel = "loud" }},
		{"zero bar width", func(c *config) { c.barSize = 0 }},
		{"negative space", func(c *config) { c.spaceSize = -1 }},
		{"negative base", func(c *config) { c.baseSize = -1 }},
		{"smoothing too high", func(c *config) { c.smoothFactor = 101 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newZeroConfig()
			tt.modify(&cfg)
			assert.Error(t, cfg.validate())
		})
	}
}

func TestNumberWriter(t *testing.T) {
	var buf bytes.Buffer

	nw := NewNumberWriter(&buf, false)
	require.NoError(t, nw.Write([]float32{1, -2.5, 0.125}))
	assert.Equal(t, " 1.000 -2.500  0.125\n", buf.String())

	buf.Reset()

	nw = NewNumberWriter(&buf, true)
	require.NoError(t, nw.Write([]float32{1, 3, 2}))
	assert.Equal(t, "peak=3 bin=1 mean=2 sd=1\n", buf.String())
}

func TestNewLoggerLevel(t *testing.T) {
	cfg := newZeroConfig()
	cfg.logLevel = "warn"
	cfg.logJSON = true

	log := newLogger(&cfg)
	assert.Equal(t, "warn", log.GetLevel().String())
}
