package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/plus3/stakblok/config"
	"github.com/plus3/stakblok/tetris"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stakblok.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "stakblok", cfg.AppName)
	assert.Equal(t, 10, cfg.Board.Width)
	assert.Equal(t, 23, cfg.Board.Height)
	assert.Equal(t, 500*time.Millisecond, cfg.Game.TickInterval)
	assert.Equal(t, uint64(0), cfg.Game.Seed)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 0, cfg.MetricPort)
	assert.False(t, cfg.Debug.Overlay)
	assert.Equal(t, 28, cfg.UI.CellSize)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
board:
  width: 11
game:
  tickInterval: 250ms
  seed: 99
log:
  level: debug
`)

	cfg, err := config.Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, 11, cfg.Board.Width)
	assert.Equal(t, 23, cfg.Board.Height)
	assert.Equal(t, 250*time.Millisecond, cfg.Game.TickInterval)
	assert.Equal(t, uint64(99), cfg.Game.Seed)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadPrecedence(t *testing.T) {
	path := writeConfig(t, `
board:
  width: 11
  height: 20
`)
	t.Setenv("STAKBLOK_BOARD_WIDTH", "12")
	t.Setenv("STAKBLOK_BOARD_HEIGHT", "30")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	config.RegisterFlags(flags)
	require.NoError(t, flags.Parse([]string{"--height=25", "--debug"}))

	cfg, err := config.Load(path, flags)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Board.Width, "env beats file")
	assert.Equal(t, 25, cfg.Board.Height, "flag beats env")
	assert.True(t, cfg.Debug.Overlay)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
		assert.Error(t, err)
	})

	t.Run("board too small", func(t *testing.T) {
		path := writeConfig(t, "board:\n  width: 3\n")
		_, err := config.Load(path, nil)
		assert.ErrorContains(t, err, "board.width")
	})

	t.Run("non-positive tick", func(t *testing.T) {
		t.Setenv("STAKBLOK_GAME_TICKINTERVAL", "0s")
		_, err := config.Load("", nil)
		assert.ErrorContains(t, err, "game.tickInterval")
	})
}

func TestEngineOptions(t *testing.T) {
	cfg, err := config.Load("", nil)
	require.NoError(t, err)
	cfg.Game.Seed = 5
	cfg.Game.TickInterval = 10 * time.Millisecond

	play := func() []tetris.Kind {
		clock := tetris.NewManualClock()
		engine := tetris.NewEngine(cfg.Board.Width, cfg.Board.Height, cfg.EngineOptions(tetris.WithClock(clock))...)
		engine.Resume()

		var kinds []tetris.Kind
		for range 10 {
			clock.Advance(cfg.Game.TickInterval)
			if p, ok := engine.ActivePiece(); ok {
				kinds = append(kinds, p.Kind)
				engine.HardDrop()
			}
		}
		return kinds
	}

	first := play()
	assert.NotEmpty(t, first)
	assert.Equal(t, first, play(), "same seed, same pieces")

	assert.Len(t, cfg.EngineOptions(), 2)
	cfg.Game.Seed = 0
	assert.Len(t, cfg.EngineOptions(), 1)
}
