package tetris

// State is the phase an engine is in between ticks. Locking has no state of
// its own: it happens inside the tick that finds the piece cannot descend.
type State int

const (
	// StateSpawning means there is no active piece; the next tick spawns one.
	StateSpawning State = iota
	// StateFalling means an active piece is under player control.
	StateFalling
	// StateGameOver is terminal.
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateSpawning:
		return "spawning"
	case StateFalling:
		return "falling"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Snapshot is a copy of engine state taken at one instant. Nothing in it is
// shared with the engine.
type Snapshot struct {
	// Version increases by one with every change to the engine.
	Version uint64
	State   State
	Running bool
	Board   *Board
	// Active and Ghost are nil when no piece is falling.
	Active *Piece
	Ghost  *Piece
}

// Overlay returns the board with the ghost and active piece drawn on top:
// ghost cells are reported as ghost=true, active cells override them.
func (s Snapshot) Overlay(row, col int) (kind Kind, ghost bool) {
	if s.Active != nil {
		for _, c := range s.Active.Cells() {
			if c.Row == row && c.Col == col {
				return s.Active.Kind, false
			}
		}
	}
	if s.Ghost != nil {
		for _, c := range s.Ghost.Cells() {
			if c.Row == row && c.Col == col {
				return s.Ghost.Kind, true
			}
		}
	}
	return s.Board.At(row, col), false
}
