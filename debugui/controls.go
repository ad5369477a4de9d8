package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/stakblok/tetris"
)

func (c *ControlsComponent) Render(engine *tetris.Engine) {
	imgui.SetNextWindowPosV(imgui.NewVec2(320, 10), imgui.CondOnce, imgui.NewVec2(0, 0))

	if !imgui.BeginV("Controls", nil, imgui.WindowFlagsAlwaysAutoResize) {
		imgui.End()
		return
	}

	if engine.Running() {
		if imgui.Button("Pause") {
			engine.Pause()
		}
	} else if engine.State() != tetris.StateGameOver {
		if imgui.Button("Resume") {
			engine.Resume()
		}
	} else {
		imgui.Text("Game over")
	}

	imgui.Separator()
	c.intent("Left", engine.MoveLeft)
	imgui.SameLine()
	c.intent("Down", engine.MoveDown)
	imgui.SameLine()
	c.intent("Right", engine.MoveRight)

	c.intent("Rotate CCW", func() bool { return engine.Rotate(false) })
	imgui.SameLine()
	c.intent("Rotate CW", func() bool { return engine.Rotate(true) })

	if imgui.Button("Hard Drop") {
		c.lastResult = fmt.Sprintf("Hard Drop: %d rows", engine.HardDrop())
	}

	if c.lastResult != "" {
		imgui.Separator()
		imgui.Text(c.lastResult)
	}

	imgui.End()
}

func (c *ControlsComponent) intent(label string, fn func() bool) {
	if imgui.Button(label) {
		if fn() {
			c.lastResult = label + ": ok"
		} else {
			c.lastResult = label + ": rejected"
		}
	}
}
