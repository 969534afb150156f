package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/cardbank/internal/model"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadUsesDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("CARDBANK_MAX_PLAYERS", "5")
	t.Setenv("CARDBANK_INVALID_CARD_DELAY", "2s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.MaxPlayers)
	assert.Equal(t, 2*time.Second, cfg.InvalidCardDelay)
}

func TestLoadReadsDotenvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CARDBANK_START_DEFAULT=2000\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("CARDBANK_START_DEFAULT") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), cfg.StartDefault)
}

func TestLoadIgnoresMissingDotenvFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}

func TestLoadRejectsInvalidBounds(t *testing.T) {
	t.Setenv("CARDBANK_MAX_PLAYERS", "9")

	_, err := Load()
	assert.ErrorIs(t, err, model.ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Terminal)
	}{
		{"min above max players", func(c *Terminal) { c.MinPlayers, c.MaxPlayers = 5, 3 }},
		{"default players out of range", func(c *Terminal) { c.DefaultPlayers = 7 }},
		{"zero start step", func(c *Terminal) { c.StartStep = 0 }},
		{"default start out of range", func(c *Terminal) { c.StartDefault = 900 }},
		{"inverted tx bounds", func(c *Terminal) { c.TxMin = 6000 }},
		{"no display rows", func(c *Terminal) { c.DisplayRows = 0 }},
		{"inverted thresholds", func(c *Terminal) { c.AxisLow = 950 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), model.ErrInvalidConfig)
		})
	}
}

func TestWithoutDelays(t *testing.T) {
	cfg := Default().WithoutDelays()
	assert.Zero(t, cfg.InvalidCardDelay)
	assert.Zero(t, cfg.PollCadence)
	assert.Equal(t, 5*time.Millisecond, cfg.SampleInterval)
	assert.Equal(t, int64(1500), cfg.StartDefault)
}
