package tetris_test

import (
	"testing"

	"github.com/plus3/stakblok/tetris"
	"github.com/stretchr/testify/assert"
)

func TestPieceCells(t *testing.T) {
	p := tetris.Piece{Kind: tetris.T, Origin: tetris.Coord{Row: 5, Col: 3}}

	assert.ElementsMatch(t, []tetris.Coord{
		{Row: 6, Col: 3},
		{Row: 5, Col: 2},
		{Row: 5, Col: 3},
		{Row: 5, Col: 4},
	}, p.Cells())
}

func TestPieceTransformsReturnNewValues(t *testing.T) {
	p := tetris.Piece{Kind: tetris.L, Origin: tetris.Coord{Row: 10, Col: 4}}
	before := p.Cells()

	moved := p.MovedBy(-2, 3)
	rotated := p.Rotated(true)

	assert.Equal(t, tetris.Coord{Row: 8, Col: 7}, moved.Origin)
	assert.Equal(t, 0, moved.Rotation)
	assert.Equal(t, 1, rotated.Rotation)
	assert.Equal(t, p.Origin, rotated.Origin)
	assert.Equal(t, before, p.Cells(), "original piece must not change")
}

func TestPieceRotationRoundTrip(t *testing.T) {
	for _, kind := range tetris.Kinds {
		p := tetris.Piece{Kind: kind, Origin: tetris.Coord{Row: 10, Col: 4}}
		back := p.Rotated(true).Rotated(true).Rotated(false).Rotated(false)
		assert.Equal(t, p.Cells(), back.Cells(), kind.String())

		ccw := p.Rotated(false)
		assert.Equal(t, tetris.Offsets(kind, tetris.RotationStates(kind)-1), tetris.Offsets(ccw.Kind, ccw.Rotation))
	}
}

func TestSpawnPosition(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		wantCol int
	}{
		{"10x23", 10, 23, 4},
		{"11x23", 11, 23, 5},
		{"4x4", 4, 4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, kind := range tetris.Kinds {
				p := tetris.Spawn(kind, tt.width, tt.height)
				_, top := rowsOf(p.Cells())

				assert.Equal(t, tt.height-1, top, kind.String())
				assert.Equal(t, tt.wantCol, p.Origin.Col, kind.String())
				assert.Equal(t, 0, p.Rotation)
				for _, c := range p.Cells() {
					assert.True(t, c.Col >= 0 && c.Col < tt.width, "%s col %d", kind, c.Col)
				}
			}
		})
	}
}
