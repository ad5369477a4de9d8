package tetris

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

const (
	DefaultWidth        = 10
	DefaultHeight       = 23
	DefaultTickInterval = 500 * time.Millisecond
)

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the clock that drives gravity. The default is TickerClock.
func WithClock(clock Clock) Option {
	return func(e *Engine) {
		if clock != nil {
			e.clock = clock
		}
	}
}

// WithTickInterval sets the time between gravity ticks.
func WithTickInterval(interval time.Duration) Option {
	return func(e *Engine) {
		e.interval = interval
	}
}

// WithPicker sets how the kind of each spawned piece is chosen. The default
// is a RandomPicker with a random seed.
func WithPicker(picker Picker) Option {
	return func(e *Engine) {
		if picker != nil {
			e.picker = picker
		}
	}
}

// WithLogger sets the logger. The default is log.Default().
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithSessionID sets the id attached to every log line. The default is a new
// random UUID.
func WithSessionID(id uuid.UUID) Option {
	return func(e *Engine) {
		e.session = id
	}
}

// Engine owns a board and the falling piece. Ticks from its clock and intents
// from the presentation layer are serialized by a single mutex, so the board,
// the active piece and the running flag always change together.
//
// A new Engine is paused; call Resume to start the game.
type Engine struct {
	mu sync.Mutex

	board    *Board
	active   *Piece
	running  bool
	gameOver bool

	clock     Clock
	interval  time.Duration
	stopTimer func()
	timerGen  uint64

	picker    Picker
	logger    *log.Logger
	session   uuid.UUID
	observers *observerSet
	version   uint64
	stats     statsInternal
}

// NewEngine creates a paused engine with an empty width x height board.
func NewEngine(width, height int, opts ...Option) *Engine {
	e := &Engine{
		board:     NewBoard(width, height),
		clock:     TickerClock{},
		interval:  DefaultTickInterval,
		observers: newObserverSet(),
		stats:     newStatsInternal(),
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.interval <= 0 {
		panic("tetris: tick interval must be positive")
	}
	if e.session == uuid.Nil {
		e.session = uuid.New()
	}
	if e.picker == nil {
		e.picker = NewRandomPicker(rand.Uint64())
	}
	if e.logger == nil {
		e.logger = log.Default()
	}
	e.logger = e.logger.With("component", "engine", "session", e.session.String())

	return e
}

// SessionID returns the id this engine logs under.
func (e *Engine) SessionID() uuid.UUID {
	return e.session
}

// Subscribe registers fn to receive a Snapshot after every tick, successful
// intent and pause/resume. fn runs on the goroutine that caused the change,
// after the engine lock is released, so it may call back into the engine.
// Observers are called in the order they subscribed.
func (e *Engine) Subscribe(fn Observer) (unsubscribe func()) {
	e.mu.Lock()
	id := e.observers.add(fn)
	e.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Lock()
			e.observers.remove(id)
			e.mu.Unlock()
		})
	}
}

// Resume starts the gravity timer. Any existing timer is stopped first, so
// there is never more than one. Resume does nothing after game over.
func (e *Engine) Resume() {
	e.mu.Lock()
	if e.gameOver {
		e.mu.Unlock()
		return
	}

	wasRunning := e.running
	e.stopTimerLocked()
	e.timerGen++
	gen := e.timerGen
	e.running = true
	e.stopTimer = e.clock.Every(e.interval, func() {
		e.onTick(gen)
	})

	if wasRunning {
		e.mu.Unlock()
		return
	}
	e.logger.Info("resumed", "interval", e.interval)
	snap, observers := e.changedLocked()
	e.mu.Unlock()

	notify(observers, snap)
}

// Pause stops the gravity timer. A tick already running completes; no tick
// starts after Pause returns.
func (e *Engine) Pause() {
	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		return
	}

	e.running = false
	e.timerGen++
	e.stopTimerLocked()
	e.logger.Info("paused")
	snap, observers := e.changedLocked()
	e.mu.Unlock()

	notify(observers, snap)
}

// Running reports whether the timer is live and the game is not over.
func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

// State returns the current phase.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stateLocked()
}

// Board returns a copy of the locked cells.
func (e *Engine) Board() *Board {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.board.Clone()
}

// ActivePiece returns the falling piece, if any.
func (e *Engine) ActivePiece() (Piece, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.active == nil {
		return Piece{}, false
	}
	return *e.active, true
}

// Ghost returns where the active piece would come to rest if dropped straight
// down from where it is now.
func (e *Engine) Ghost() (Piece, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	ghost := e.ghostLocked()
	if ghost == nil {
		return Piece{}, false
	}
	return *ghost, true
}

// Snapshot returns a copy of the whole engine state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// Stats returns counters and tick timings.
func (e *Engine) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stats.export()
}

// IsValid reports whether every cell of p is on the board and not occupied.
func (e *Engine) IsValid(p Piece) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.isValid(p)
}

// MoveLeft shifts the active piece one column left if it fits.
func (e *Engine) MoveLeft() bool {
	return e.apply(func(p Piece) Piece { return p.MovedBy(0, -1) })
}

// MoveRight shifts the active piece one column right if it fits.
func (e *Engine) MoveRight() bool {
	return e.apply(func(p Piece) Piece { return p.MovedBy(0, 1) })
}

// MoveDown shifts the active piece one row down if it fits. A failed move
// does not lock the piece; only a tick does that.
func (e *Engine) MoveDown() bool {
	return e.apply(func(p Piece) Piece { return p.MovedBy(-1, 0) })
}

// Rotate turns the active piece one step if the rotated piece fits where it
// is. Rotations that collide are rejected; there are no wall kicks.
func (e *Engine) Rotate(clockwise bool) bool {
	return e.apply(func(p Piece) Piece { return p.Rotated(clockwise) })
}

// HardDrop moves the active piece down until it can go no further and returns
// how many rows it fell. It does not lock the piece: the lock happens on the
// next tick, which leaves one interval to slide the piece sideways.
func (e *Engine) HardDrop() int {
	e.mu.Lock()
	if !e.running || e.active == nil {
		e.mu.Unlock()
		return 0
	}

	rows := 0
	for {
		next := e.active.MovedBy(-1, 0)
		if !e.isValid(next) {
			break
		}
		e.active = &next
		rows++
	}
	if rows == 0 {
		e.mu.Unlock()
		return 0
	}

	snap, observers := e.changedLocked()
	e.mu.Unlock()

	notify(observers, snap)
	return rows
}

func (e *Engine) apply(transform func(Piece) Piece) bool {
	e.mu.Lock()
	if !e.running || e.active == nil {
		e.mu.Unlock()
		return false
	}

	candidate := transform(*e.active)
	if !e.isValid(candidate) {
		e.mu.Unlock()
		return false
	}
	e.active = &candidate

	snap, observers := e.changedLocked()
	e.mu.Unlock()

	notify(observers, snap)
	return true
}

func (e *Engine) onTick(gen uint64) {
	e.mu.Lock()
	if !e.running || gen != e.timerGen {
		e.mu.Unlock()
		return
	}

	start := time.Now()
	e.step()
	e.stats.recordTick(time.Since(start))

	snap, observers := e.changedLocked()
	e.mu.Unlock()

	notify(observers, snap)
}

// step runs one tick: a pending line clear takes the whole tick, then a
// missing piece is spawned, then the active piece falls or locks.
func (e *Engine) step() {
	if rows := e.board.clearFullRows(); rows > 0 {
		e.stats.lineClears++
		e.stats.rowsCleared += int64(rows)
		e.logger.Debug("cleared rows", "rows", rows)
		return
	}

	if e.active == nil {
		p := Spawn(e.picker.Next(), e.board.width, e.board.height)
		if !e.isValid(p) {
			e.gameOver = true
			e.running = false
			e.stopTimerLocked()
			e.logger.Info("game over", "kind", p.Kind, "spawns", e.stats.spawns, "locks", e.stats.locks)
			return
		}
		e.active = &p
		e.stats.spawns++
		e.logger.Debug("spawned piece", "kind", p.Kind, "row", p.Origin.Row, "col", p.Origin.Col)
		return
	}

	if next := e.active.MovedBy(-1, 0); e.isValid(next) {
		e.active = &next
		return
	}

	cells := e.active.Cells()
	e.board.Place(e.active.Kind, cells[:]...)
	e.stats.locks++
	e.logger.Debug("locked piece", "kind", e.active.Kind, "row", e.active.Origin.Row, "col", e.active.Origin.Col)
	e.active = nil
}

func (e *Engine) isValid(p Piece) bool {
	for _, c := range p.Cells() {
		if !e.board.InBounds(c.Row, c.Col) || e.board.IsOccupied(c.Row, c.Col) {
			return false
		}
	}
	return true
}

func (e *Engine) ghostLocked() *Piece {
	if e.active == nil {
		return nil
	}
	ghost := *e.active
	for {
		next := ghost.MovedBy(-1, 0)
		if !e.isValid(next) {
			return &ghost
		}
		ghost = next
	}
}

func (e *Engine) stateLocked() State {
	switch {
	case e.gameOver:
		return StateGameOver
	case e.active == nil:
		return StateSpawning
	default:
		return StateFalling
	}
}

func (e *Engine) snapshotLocked() Snapshot {
	snap := Snapshot{
		Version: e.version,
		State:   e.stateLocked(),
		Running: e.running,
		Board:   e.board.Clone(),
		Ghost:   e.ghostLocked(),
	}
	if e.active != nil {
		active := *e.active
		snap.Active = &active
	}
	return snap
}

// changedLocked bumps the version and collects what the observers need, so
// they can be called once the lock is dropped.
func (e *Engine) changedLocked() (Snapshot, []Observer) {
	e.version++
	observers := e.observers.list()
	if len(observers) == 0 {
		return Snapshot{}, nil
	}
	return e.snapshotLocked(), observers
}

func (e *Engine) stopTimerLocked() {
	if e.stopTimer != nil {
		e.stopTimer()
		e.stopTimer = nil
	}
}

func notify(observers []Observer, snap Snapshot) {
	for _, fn := range observers {
		fn(snap)
	}
}
