package tetris

import (
	"fmt"
	"strings"
)

// Board is a fixed width x height grid of locked cells. Cells are stored row
// major starting from the bottom row.
type Board struct {
	width  int
	height int
	cells  []Kind
}

// NewBoard creates an empty board. It panics if either dimension is not
// positive.
func NewBoard(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("tetris: invalid board size %dx%d", width, height))
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]Kind, width*height),
	}
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// InBounds reports whether (row, col) lies on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.height && col >= 0 && col < b.width
}

// At returns the kind locked at (row, col), or Empty when the cell is empty
// or off the board.
func (b *Board) At(row, col int) Kind {
	if !b.InBounds(row, col) {
		return Empty
	}
	return b.cells[row*b.width+col]
}

// IsOccupied reports whether (row, col) is on the board and holds a locked
// cell. Off-board positions are never occupied; callers that care must check
// InBounds separately.
func (b *Board) IsOccupied(row, col int) bool {
	return b.At(row, col) != Empty
}

// Place writes kind into every given cell that lies on the board. Cells off
// the board are skipped, as is an Empty kind.
func (b *Board) Place(kind Kind, cells ...Coord) {
	if kind == Empty {
		return
	}
	for _, c := range cells {
		if !b.InBounds(c.Row, c.Col) {
			continue
		}
		b.cells[c.Row*b.width+c.Col] = kind
	}
}

func (b *Board) rowFull(row int) bool {
	for _, k := range b.cells[row*b.width : (row+1)*b.width] {
		if k == Empty {
			return false
		}
	}
	return true
}

// FullRows returns the indexes of every full row, bottom first.
func (b *Board) FullRows() []int {
	var rows []int
	for row := 0; row < b.height; row++ {
		if b.rowFull(row) {
			rows = append(rows, row)
		}
	}
	return rows
}

// ClearFullRows removes every full row in one pass and compacts the remaining
// rows downward, keeping their order. Rows freed at the top become empty. It
// reports whether any row was removed.
func (b *Board) ClearFullRows() bool {
	return b.clearFullRows() > 0
}

func (b *Board) clearFullRows() int {
	next := make([]Kind, len(b.cells))
	dst := 0
	cleared := 0
	for row := 0; row < b.height; row++ {
		if b.rowFull(row) {
			cleared++
			continue
		}
		copy(next[dst*b.width:(dst+1)*b.width], b.cells[row*b.width:(row+1)*b.width])
		dst++
	}
	if cleared > 0 {
		b.cells = next
	}
	return cleared
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	c := &Board{
		width:  b.width,
		height: b.height,
		cells:  make([]Kind, len(b.cells)),
	}
	copy(c.cells, b.cells)
	return c
}

// String draws the board top row first, one character per cell.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for row := b.height - 1; row >= 0; row-- {
		for col := 0; col < b.width; col++ {
			sb.WriteString(b.At(row, col).String())
		}
		if row > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
