package main

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/plus3/stakblok/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("", nil)
	require.NoError(t, err)
	cfg.Board.Width = 6
	cfg.Board.Height = 8
	cfg.Game.TickInterval = 10 * time.Millisecond
	return cfg
}

func TestSimulatorPlaysToGameOver(t *testing.T) {
	sim := NewSimulator(testConfig(t), 1, log.New(io.Discard))

	results := sim.Run(context.Background(), 3)
	require.Len(t, results, 3)

	for _, res := range results {
		assert.True(t, res.GameOver)
		assert.NotEmpty(t, res.Session)
		assert.Positive(t, res.Stats.Spawns)
		assert.LessOrEqual(t, res.Stats.Locks, res.Stats.Spawns)
		assert.LessOrEqual(t, res.Accepted, res.Intents)
		assert.Len(t, res.IntentTime, int(res.Intents))
	}
}

func TestSimulatorIsDeterministic(t *testing.T) {
	cfg := testConfig(t)
	a := NewSimulator(cfg, 9, log.New(io.Discard)).Play(context.Background())
	b := NewSimulator(cfg, 9, log.New(io.Discard)).Play(context.Background())

	assert.Equal(t, a.Stats.Ticks, b.Stats.Ticks)
	assert.Equal(t, a.Stats.Locks, b.Stats.Locks)
	assert.Equal(t, a.Intents, b.Intents)
	assert.NotEqual(t, a.Session, b.Session)
}

func TestSimulatorStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := NewSimulator(testConfig(t), 1, log.New(io.Discard)).Run(ctx, 5)
	assert.Empty(t, results)
}

func TestReport(t *testing.T) {
	sim := NewSimulator(testConfig(t), 3, log.New(io.Discard))
	report := &Report{Sessions: 2, Width: 6, Height: 8, Seed: 3}
	report.Results = sim.Run(context.Background(), 2)
	report.Finalize()

	assert.Equal(t, 2, report.Played)
	assert.Equal(t, 2, report.GameOvers)
	assert.Equal(t, report.Results[0].Stats.Ticks+report.Results[1].Stats.Ticks, report.Ticks)
	assert.LessOrEqual(t, report.TickTime.Min, report.TickTime.Avg)
	assert.LessOrEqual(t, report.TickTime.Avg, report.TickTime.Max)

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))
	assert.Contains(t, buf.String(), "Sessions Played:** 2 (2 reached game over)")
	assert.Contains(t, buf.String(), "Board:** 6x8")
}

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3, 1, 2}}
	s.Finalize()
	assert.Equal(t, time.Duration(1), s.Min)
	assert.Equal(t, time.Duration(3), s.Max)
	assert.Equal(t, time.Duration(2), s.Avg)
}
