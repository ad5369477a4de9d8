package debugui

import (
	"github.com/plus3/stakblok/tetris"
)

type EngineStatsComponent struct {
	tickHistory *History
	lastTicks   int64
}

type BoardInspectorComponent struct {
	showGhost bool
}

type ControlsComponent struct {
	lastResult string
}

// Install adds the stats, board inspector and controls windows for engine
// to the overlay. get is called every frame so callers can swap the engine,
// for example on restart.
func Install(o *Overlay, get func() *tetris.Engine) {
	stats := NewEngineStatsComponent(120)
	inspector := NewBoardInspectorComponent()
	controls := &ControlsComponent{}

	o.Add(func() { stats.Render(get()) })
	o.Add(func() { inspector.Render(get()) })
	o.Add(func() { controls.Render(get()) })
}
