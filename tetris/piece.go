package tetris

// Piece is a falling tetromino. It is a value: every transform returns a new
// Piece and none of them check the board.
type Piece struct {
	Kind     Kind
	Origin   Coord
	Rotation int
}

// Spawn returns a piece of the given kind in its spawn orientation, with its
// highest cell on the top row and its origin on the centre column
// ((width-1)/2).
func Spawn(kind Kind, width, height int) Piece {
	return Piece{
		Kind: kind,
		Origin: Coord{
			Row: height - 1 - maxRowOffset(kind, 0),
			Col: (width - 1) / 2,
		},
	}
}

// Cells returns the board positions the piece covers.
func (p Piece) Cells() [4]Coord {
	offsets := Offsets(p.Kind, p.Rotation)
	var cells [4]Coord
	for i, o := range offsets {
		cells[i] = p.Origin.Add(o)
	}
	return cells
}

// MovedBy returns p with its origin shifted by dRow rows and dCol columns.
func (p Piece) MovedBy(dRow, dCol int) Piece {
	p.Origin = p.Origin.Add(Coord{Row: dRow, Col: dCol})
	return p
}

// Rotated returns p turned one step clockwise or counter-clockwise about its
// origin. There is no kick: the origin never changes.
func (p Piece) Rotated(clockwise bool) Piece {
	if clockwise {
		p.Rotation++
	} else {
		p.Rotation--
	}
	return p
}
