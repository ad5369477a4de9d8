package main

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/plus3/stakblok/config"
	"github.com/plus3/stakblok/tetris"
)

// intentsPerTick bounds how many random intents are tried between two
// gravity ticks.
const intentsPerTick = 3

type SessionResult struct {
	Session  string
	GameOver bool
	Stats    tetris.Stats
	Intents  int64
	Accepted int64

	// IntentTime holds the wall time of every intent call.
	IntentTime []time.Duration
}

// Simulator plays games on a ManualClock, so a session runs as fast as the
// engine allows regardless of the configured tick interval.
type Simulator struct {
	cfg    *config.Config
	rng    *rand.Rand
	logger *log.Logger
}

func NewSimulator(cfg *config.Config, seed uint64, logger *log.Logger) *Simulator {
	return &Simulator{
		cfg:    cfg,
		rng:    rand.New(rand.NewPCG(seed, seed>>1|1)),
		logger: logger,
	}
}

// Run plays up to n sessions, stopping early when ctx is done.
func (s *Simulator) Run(ctx context.Context, n int) []SessionResult {
	results := make([]SessionResult, 0, n)
	for range n {
		if ctx.Err() != nil {
			break
		}
		results = append(results, s.Play(ctx))
	}
	return results
}

// Play runs one session until game over or until ctx is done.
func (s *Simulator) Play(ctx context.Context) SessionResult {
	clock := tetris.NewManualClock()
	engine := tetris.NewEngine(s.cfg.Board.Width, s.cfg.Board.Height,
		tetris.WithClock(clock),
		tetris.WithTickInterval(s.cfg.Game.TickInterval),
		tetris.WithPicker(tetris.NewRandomPicker(s.rng.Uint64())),
		tetris.WithLogger(s.logger),
	)
	result := SessionResult{Session: engine.SessionID().String()}

	engine.Resume()
	for engine.State() != tetris.StateGameOver {
		if ctx.Err() != nil {
			engine.Pause()
			break
		}
		for range s.rng.IntN(intentsPerTick + 1) {
			start := time.Now()
			ok := s.intent(engine)
			result.IntentTime = append(result.IntentTime, time.Since(start))
			result.Intents++
			if ok {
				result.Accepted++
			}
		}
		clock.Advance(s.cfg.Game.TickInterval)
	}

	result.GameOver = engine.State() == tetris.StateGameOver
	result.Stats = engine.Stats()
	s.logger.Debug("session done", "session", result.Session, "gameOver", result.GameOver,
		"ticks", result.Stats.Ticks, "rows", result.Stats.RowsCleared)
	return result
}

func (s *Simulator) intent(engine *tetris.Engine) bool {
	switch s.rng.IntN(10) {
	case 0, 1, 2:
		return engine.MoveLeft()
	case 3, 4, 5:
		return engine.MoveRight()
	case 6:
		return engine.MoveDown()
	case 7:
		return engine.Rotate(true)
	case 8:
		return engine.Rotate(false)
	default:
		return engine.HardDrop() > 0
	}
}
