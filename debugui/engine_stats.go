package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/stakblok/tetris"
)

func NewEngineStatsComponent(historyTicks int) *EngineStatsComponent {
	return &EngineStatsComponent{
		tickHistory: NewHistory(historyTicks),
	}
}

func (es *EngineStatsComponent) Render(engine *tetris.Engine) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 260), imgui.CondOnce)

	if !imgui.BeginV("Engine Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := engine.Stats()
	if stats.Ticks != es.lastTicks {
		es.lastTicks = stats.Ticks
		es.tickHistory.Push(float32(stats.LastTick) / float32(time.Microsecond))
	}

	imgui.Text(fmt.Sprintf("Session: %s", engine.SessionID()))
	imgui.Text(fmt.Sprintf("State: %s (running: %t)", engine.State(), engine.Running()))
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Ticks: %d", stats.Ticks))
	imgui.Text(fmt.Sprintf("Spawns: %d  Locks: %d", stats.Spawns, stats.Locks))
	imgui.Text(fmt.Sprintf("Line Clears: %d  Rows: %d", stats.LineClears, stats.RowsCleared))
	imgui.Text(fmt.Sprintf("Tick Min/Avg/Max: %s / %s / %s", stats.MinTick, stats.AvgTick, stats.MaxTick))

	imgui.Separator()
	imgui.Text(fmt.Sprintf("Tick Time Graph (us), avg %.1f", es.tickHistory.Avg()))
	if values := es.tickHistory.Values(); len(values) > 0 {
		imgui.PlotLinesFloatPtr("##ticktime", &values[0], int32(len(values)))
	}

	imgui.End()
}

// FrameTimer measures wall time between frames. A single delta is capped at
// maxDelta so a stalled window does not replay a burst of ticks when it
// wakes up.
type FrameTimer struct {
	last     time.Time
	maxDelta time.Duration
}

func NewFrameTimer(maxDelta time.Duration) *FrameTimer {
	return &FrameTimer{maxDelta: maxDelta}
}

// Delta returns the time since the previous call, or zero on the first call.
func (ft *FrameTimer) Delta() time.Duration {
	return ft.Tick(time.Now())
}

// Tick is Delta with an explicit current time.
func (ft *FrameTimer) Tick(now time.Time) time.Duration {
	if ft.last.IsZero() {
		ft.last = now
		return 0
	}
	delta := now.Sub(ft.last)
	ft.last = now
	switch {
	case delta < 0:
		return 0
	case ft.maxDelta > 0 && delta > ft.maxDelta:
		return ft.maxDelta
	}
	return delta
}
