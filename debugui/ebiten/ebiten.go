// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/stakblok/debugui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation
// and drives an Overlay from an ebiten.Game.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
	overlay *debugui.Overlay
}

// NewImguiBackend creates the Ebiten window and the ImGui context.
func NewImguiBackend(title string, width, height int, overlay *debugui.Overlay) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return &ImguiBackend{
		EbitenBackend: backend,
		overlay:       overlay,
	}
}

// Update renders one overlay frame. Call it from ebiten.Game.Update.
func (b *ImguiBackend) Update() {
	b.BeginFrame()
	b.overlay.Render()
	b.EndFrame()
}

// DrawOverlay draws the overlay on top of screen.
func (b *ImguiBackend) DrawOverlay(screen *ebiten.Image) {
	b.Draw(screen)
}

func (b *ImguiBackend) WantsKeyboard() bool {
	return b.overlay.Input.WantCaptureKeyboard
}
