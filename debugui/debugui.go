// Package debugui provides a Dear ImGui overlay for inspecting and driving a
// running tetris engine.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
)

// Item holds a Dear ImGui render function that runs once per frame.
type Item struct {
	Render func()
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
// Games should skip their own key handling while WantCaptureKeyboard is set.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay collects render items and refreshes the input state each frame.
type Overlay struct {
	items []Item
	Input InputState
}

func NewOverlay() *Overlay {
	return &Overlay{}
}

// Add registers a render function. Items render in the order they were added.
func (o *Overlay) Add(render func()) {
	o.items = append(o.items, Item{Render: render})
}

// Render must be called between the backend's BeginFrame and EndFrame.
func (o *Overlay) Render() {
	io := imgui.CurrentIO()
	o.Input.WantCaptureMouse = io.WantCaptureMouse()
	o.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range o.items {
		item.Render()
	}
}
