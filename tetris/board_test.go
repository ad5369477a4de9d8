package tetris_test

import (
	"strings"
	"testing"

	"github.com/plus3/stakblok/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardIsEmpty(t *testing.T) {
	board := tetris.NewBoard(10, 23)

	assert.Equal(t, 10, board.Width())
	assert.Equal(t, 23, board.Height())
	for row := 0; row < board.Height(); row++ {
		for col := 0; col < board.Width(); col++ {
			assert.False(t, board.IsOccupied(row, col))
		}
	}
}

func TestNewBoardPanicsOnBadSize(t *testing.T) {
	assert.Panics(t, func() { tetris.NewBoard(0, 10) })
	assert.Panics(t, func() { tetris.NewBoard(10, -1) })
}

func TestIsOccupiedOutOfBounds(t *testing.T) {
	board := boardFrom(t,
		"III",
		"III",
	)

	for _, c := range []tetris.Coord{{-1, 0}, {2, 0}, {0, -1}, {0, 3}} {
		assert.False(t, board.InBounds(c.Row, c.Col), "%v", c)
		assert.False(t, board.IsOccupied(c.Row, c.Col), "%v", c)
		assert.Equal(t, tetris.Empty, board.At(c.Row, c.Col), "%v", c)
	}
	assert.True(t, board.IsOccupied(0, 0))
}

func TestPlaceSkipsCellsOffTheBoard(t *testing.T) {
	board := tetris.NewBoard(3, 2)

	board.Place(tetris.T,
		tetris.Coord{Row: 0, Col: 1},
		tetris.Coord{Row: 2, Col: 1},
		tetris.Coord{Row: 0, Col: -1},
		tetris.Coord{Row: -1, Col: 0},
	)

	assert.Equal(t, strings.Join([]string{
		"...",
		".T.",
	}, "\n"), board.String())
}

func TestPlaceIgnoresEmpty(t *testing.T) {
	board := boardFrom(t, "Z")
	board.Place(tetris.Empty, tetris.Coord{Row: 0, Col: 0})
	assert.Equal(t, tetris.Z, board.At(0, 0))
}

func TestClearFullRows(t *testing.T) {
	tests := []struct {
		name    string
		before  []string
		after   []string
		cleared bool
	}{
		{
			name: "no full rows",
			before: []string{
				"....",
				"J...",
				"JJJ.",
			},
			after: []string{
				"....",
				"J...",
				"JJJ.",
			},
			cleared: false,
		},
		{
			name: "single full row shifts rows above down",
			before: []string{
				".S..",
				"SS..",
				"IIII",
				"T...",
			},
			after: []string{
				"....",
				".S..",
				"SS..",
				"T...",
			},
			cleared: true,
		},
		{
			name: "separated full rows clear together",
			before: []string{
				"L...",
				"OOII",
				".Z..",
				"TTTT",
			},
			after: []string{
				"....",
				"....",
				"L...",
				".Z..",
			},
			cleared: true,
		},
		{
			name: "whole board",
			before: []string{
				"II",
				"OO",
			},
			after: []string{
				"..",
				"..",
			},
			cleared: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := boardFrom(t, tt.before...)

			assert.Equal(t, tt.cleared, board.ClearFullRows())
			assert.Equal(t, strings.Join(tt.after, "\n"), board.String())
		})
	}
}

func TestClearFullRowsSingleRowBoard(t *testing.T) {
	board := boardFrom(t, "LLLLLLLLL.")
	require.Empty(t, board.FullRows())

	// A vertical I covering column 9; only its bottom cell is on the board.
	piece := tetris.Piece{Kind: tetris.I, Origin: tetris.Coord{Row: 0, Col: 9}, Rotation: 3}
	cells := piece.Cells()
	board.Place(piece.Kind, cells[:]...)
	assert.Equal(t, []int{0}, board.FullRows())

	assert.True(t, board.ClearFullRows())
	assert.Equal(t, "..........", board.String())
	assert.False(t, board.ClearFullRows())
}

func TestBoardClone(t *testing.T) {
	board := boardFrom(t, "O.", "O.")
	clone := board.Clone()

	clone.Place(tetris.T, tetris.Coord{Row: 0, Col: 1})

	assert.False(t, board.IsOccupied(0, 1))
	assert.True(t, clone.IsOccupied(0, 1))
}
