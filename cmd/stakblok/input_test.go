package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepeats(t *testing.T) {
	var fired []int
	for frames := 0; frames <= 20; frames++ {
		if repeats(frames) {
			fired = append(fired, frames)
		}
	}
	assert.Equal(t, []int{1, 13, 16, 19}, fired)
}

func TestCellRectFlipsRows(t *testing.T) {
	x, y := cellRect(0, 0, 23, 10)
	assert.Equal(t, float32(margin), x)
	assert.Equal(t, float32(margin+22*10), y)

	x, y = cellRect(22, 3, 23, 10)
	assert.Equal(t, float32(margin+30), x)
	assert.Equal(t, float32(margin), y)
}
