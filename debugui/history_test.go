package debugui_test

import (
	"testing"
	"time"

	"github.com/plus3/stakblok/debugui"
	"github.com/stretchr/testify/assert"
)

func TestHistory(t *testing.T) {
	h := debugui.NewHistory(3)
	assert.Equal(t, float32(0), h.Avg())
	assert.Empty(t, h.Values())

	h.Push(1)
	h.Push(2)
	assert.Equal(t, []float32{1, 2}, h.Values())
	assert.Equal(t, float32(1.5), h.Avg())

	h.Push(3)
	h.Push(4)
	assert.Equal(t, 3, h.Len())
	assert.Equal(t, []float32{2, 3, 4}, h.Values())
	assert.Equal(t, float32(3), h.Avg())
}

func TestHistoryRejectsEmpty(t *testing.T) {
	assert.Panics(t, func() { debugui.NewHistory(0) })
}

func TestFrameTimer(t *testing.T) {
	ft := debugui.NewFrameTimer(100 * time.Millisecond)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Zero(t, ft.Tick(start), "first frame")
	assert.Equal(t, 16*time.Millisecond, ft.Tick(start.Add(16*time.Millisecond)))
	assert.Equal(t, 100*time.Millisecond, ft.Tick(start.Add(5*time.Second)), "capped")
	assert.Zero(t, ft.Tick(start), "clock went backwards")
}
