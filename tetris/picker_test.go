package tetris_test

import (
	"testing"

	"github.com/plus3/stakblok/tetris"
	"github.com/stretchr/testify/assert"
)

func TestRandomPickerIsDeterministic(t *testing.T) {
	a := tetris.NewRandomPicker(42)
	b := tetris.NewRandomPicker(42)

	for range 100 {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestRandomPickerCoversAllKinds(t *testing.T) {
	picker := tetris.NewRandomPicker(7)
	counts := make(map[tetris.Kind]int)

	const draws = 7000
	for range draws {
		kind := picker.Next()
		assert.True(t, kind.Valid())
		counts[kind]++
	}

	assert.Len(t, counts, len(tetris.Kinds))
	for _, kind := range tetris.Kinds {
		// Expected 1000 each; the bounds are many standard deviations wide.
		assert.InDelta(t, draws/len(tetris.Kinds), counts[kind], 200, kind.String())
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, ".", tetris.Empty.String())
	assert.Equal(t, "T", tetris.T.String())
	assert.Equal(t, "?", tetris.Kind(99).String())
	assert.False(t, tetris.Empty.Valid())
}
