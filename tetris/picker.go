package tetris

import (
	"math/rand/v2"
)

// Picker chooses the kind of the next spawned piece.
type Picker interface {
	Next() Kind
}

// PickerFunc adapts a function to the Picker interface.
type PickerFunc func() Kind

func (f PickerFunc) Next() Kind { return f() }

// RandomPicker picks uniformly among Kinds.
type RandomPicker struct {
	rng *rand.Rand
}

// NewRandomPicker returns a RandomPicker seeded with seed. Equal seeds give
// equal sequences.
func NewRandomPicker(seed uint64) *RandomPicker {
	return &RandomPicker{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Next implements Picker.
func (p *RandomPicker) Next() Kind {
	return Kinds[p.rng.IntN(len(Kinds))]
}
