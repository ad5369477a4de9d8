package tetris

// Coord is a (row, column) position. Row 0 is the bottom of the board and
// rows grow upward; column 0 is the left edge.
type Coord struct {
	Row, Col int
}

// Add returns the component-wise sum of c and o.
func (c Coord) Add(o Coord) Coord {
	return Coord{Row: c.Row + o.Row, Col: c.Col + o.Col}
}

// shapeTable holds the SRS orientation states for every kind, listed in
// clockwise order starting from the spawn state. Offsets are relative to the
// pivot of the bounding box with rows pointing up, so a cell drawn on the top
// line of the box has a row offset of +1.
var shapeTable = [...][][4]Coord{
	I: {
		{{0, -1}, {0, 0}, {0, 1}, {0, 2}},
		{{1, 1}, {0, 1}, {-1, 1}, {-2, 1}},
		{{-1, -1}, {-1, 0}, {-1, 1}, {-1, 2}},
		{{1, 0}, {0, 0}, {-1, 0}, {-2, 0}},
	},
	O: {
		{{1, 0}, {1, 1}, {0, 0}, {0, 1}},
	},
	T: {
		{{1, 0}, {0, -1}, {0, 0}, {0, 1}},
		{{1, 0}, {0, 0}, {0, 1}, {-1, 0}},
		{{0, -1}, {0, 0}, {0, 1}, {-1, 0}},
		{{1, 0}, {0, -1}, {0, 0}, {-1, 0}},
	},
	J: {
		{{1, -1}, {0, -1}, {0, 0}, {0, 1}},
		{{1, 0}, {1, 1}, {0, 0}, {-1, 0}},
		{{0, -1}, {0, 0}, {0, 1}, {-1, 1}},
		{{1, 0}, {0, 0}, {-1, -1}, {-1, 0}},
	},
	L: {
		{{1, 1}, {0, -1}, {0, 0}, {0, 1}},
		{{1, 0}, {0, 0}, {-1, 0}, {-1, 1}},
		{{0, -1}, {0, 0}, {0, 1}, {-1, -1}},
		{{1, -1}, {1, 0}, {0, 0}, {-1, 0}},
	},
	S: {
		{{1, 0}, {1, 1}, {0, -1}, {0, 0}},
		{{1, 0}, {0, 0}, {0, 1}, {-1, 1}},
		{{0, 0}, {0, 1}, {-1, -1}, {-1, 0}},
		{{1, -1}, {0, -1}, {0, 0}, {-1, 0}},
	},
	Z: {
		{{1, -1}, {1, 0}, {0, 0}, {0, 1}},
		{{1, 1}, {0, 0}, {0, 1}, {-1, 0}},
		{{0, -1}, {0, 0}, {-1, 0}, {-1, 1}},
		{{1, 0}, {0, -1}, {0, 0}, {-1, -1}},
	},
}

func statesOf(kind Kind) [][4]Coord {
	if !kind.Valid() {
		panic("tetris: no shape for kind " + kind.String())
	}
	return shapeTable[kind]
}

// RotationStates returns how many distinct orientations kind has.
func RotationStates(kind Kind) int {
	return len(statesOf(kind))
}

// NormalizeRotation maps any rotation index, negative or large, into
// [0, RotationStates(kind)).
func NormalizeRotation(kind Kind, rotation int) int {
	n := len(statesOf(kind))
	return ((rotation % n) + n) % n
}

// Offsets returns the four cell offsets of kind in the given rotation.
// It panics if kind is not playable.
func Offsets(kind Kind, rotation int) [4]Coord {
	return statesOf(kind)[NormalizeRotation(kind, rotation)]
}

// maxRowOffset returns the highest relative row among the offsets of kind in
// the given rotation.
func maxRowOffset(kind Kind, rotation int) int {
	offsets := Offsets(kind, rotation)
	top := offsets[0].Row
	for _, o := range offsets[1:] {
		if o.Row > top {
			top = o.Row
		}
	}
	return top
}
