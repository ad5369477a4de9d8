package tetris_test

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/plus3/stakblok/tetris"
	"github.com/stretchr/testify/require"
)

const testInterval = 100 * time.Millisecond

var kindByLetter = map[rune]tetris.Kind{
	'I': tetris.I,
	'O': tetris.O,
	'T': tetris.T,
	'J': tetris.J,
	'L': tetris.L,
	'S': tetris.S,
	'Z': tetris.Z,
}

// boardFrom builds a board from rows drawn top row first, using '.' for empty
// cells and kind letters for locked ones.
func boardFrom(t *testing.T, rows ...string) *tetris.Board {
	t.Helper()
	require.NotEmpty(t, rows)

	board := tetris.NewBoard(len(rows[0]), len(rows))
	for i, line := range rows {
		require.Len(t, line, board.Width(), "row %d", i)
		row := len(rows) - 1 - i
		for col, ch := range line {
			if ch == '.' {
				continue
			}
			kind, ok := kindByLetter[ch]
			require.True(t, ok, "unknown cell %q", ch)
			board.Place(kind, tetris.Coord{Row: row, Col: col})
		}
	}
	return board
}

// cycle returns a picker that repeats kinds in order.
func cycle(kinds ...tetris.Kind) tetris.Picker {
	i := 0
	return tetris.PickerFunc(func() tetris.Kind {
		k := kinds[i%len(kinds)]
		i++
		return k
	})
}

type testGame struct {
	engine *tetris.Engine
	clock  *tetris.ManualClock
}

// newTestGame returns a running engine driven by a manual clock.
func newTestGame(t *testing.T, width, height int, kinds ...tetris.Kind) *testGame {
	t.Helper()

	clock := tetris.NewManualClock()
	engine := tetris.NewEngine(width, height,
		tetris.WithClock(clock),
		tetris.WithTickInterval(testInterval),
		tetris.WithPicker(cycle(kinds...)),
		tetris.WithLogger(log.New(io.Discard)),
	)
	engine.Resume()
	return &testGame{engine: engine, clock: clock}
}

func (g *testGame) tick(n int) {
	g.clock.Advance(time.Duration(n) * testInterval)
}

func rowsOf(cells [4]tetris.Coord) (lowest, highest int) {
	lowest, highest = cells[0].Row, cells[0].Row
	for _, c := range cells[1:] {
		lowest = min(lowest, c.Row)
		highest = max(highest, c.Row)
	}
	return lowest, highest
}

func colsOf(cells [4]tetris.Coord) (leftmost, rightmost int) {
	leftmost, rightmost = cells[0].Col, cells[0].Col
	for _, c := range cells[1:] {
		leftmost = min(leftmost, c.Col)
		rightmost = max(rightmost, c.Col)
	}
	return leftmost, rightmost
}
