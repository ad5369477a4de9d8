// Package tetris implements a falling-block puzzle engine: a fixed playfield,
// one falling piece at a time, gravity driven by a Clock, player intents and
// line clearing. Presentation layers read a Snapshot after every change and
// forward input back as intents.
package tetris

// Kind identifies the shape of a piece, or the content of a board cell.
// The zero value Empty marks an unoccupied cell and is never a piece kind.
type Kind uint8

const (
	Empty Kind = iota
	I
	O
	T
	J
	L
	S
	Z
)

// Kinds lists the seven playable kinds in a fixed order.
var Kinds = [...]Kind{I, O, T, J, L, S, Z}

var kindNames = [...]string{
	Empty: ".",
	I:     "I",
	O:     "O",
	T:     "T",
	J:     "J",
	L:     "L",
	S:     "S",
	Z:     "Z",
}

// Valid reports whether k is one of the seven playable kinds.
func (k Kind) Valid() bool {
	return k >= I && k <= Z
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "?"
}
