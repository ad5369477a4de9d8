package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/stakblok/tetris"
)

var kindColors = map[tetris.Kind]imgui.Vec4{
	tetris.I: imgui.NewVec4(0.0, 0.9, 0.9, 1),
	tetris.O: imgui.NewVec4(0.9, 0.9, 0.0, 1),
	tetris.T: imgui.NewVec4(0.7, 0.2, 0.9, 1),
	tetris.J: imgui.NewVec4(0.2, 0.4, 1.0, 1),
	tetris.L: imgui.NewVec4(1.0, 0.6, 0.1, 1),
	tetris.S: imgui.NewVec4(0.2, 0.9, 0.3, 1),
	tetris.Z: imgui.NewVec4(0.9, 0.2, 0.2, 1),
}

var dimColor = imgui.NewVec4(0.4, 0.4, 0.4, 1)

func NewBoardInspectorComponent() *BoardInspectorComponent {
	return &BoardInspectorComponent{showGhost: true}
}

func (bi *BoardInspectorComponent) Render(engine *tetris.Engine) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 280), imgui.CondOnce, imgui.NewVec2(0, 0))

	if !imgui.BeginV("Board Inspector", nil, imgui.WindowFlagsAlwaysAutoResize) {
		imgui.End()
		return
	}

	snap := engine.Snapshot()
	board := snap.Board

	imgui.Text(fmt.Sprintf("Version: %d", snap.Version))
	if snap.Active != nil {
		imgui.Text(fmt.Sprintf("Active: %s at (%d, %d) rot %d",
			snap.Active.Kind, snap.Active.Origin.Row, snap.Active.Origin.Col, snap.Active.Rotation))
	} else {
		imgui.Text("Active: none")
	}
	if full := board.FullRows(); len(full) > 0 {
		imgui.Text(fmt.Sprintf("Full rows: %v", full))
	}
	imgui.Checkbox("Show ghost", &bi.showGhost)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsSizingFixedFit
	if imgui.BeginTableV("BoardTable", int32(board.Width()+1), tableFlags, imgui.NewVec2(0, 0), 0) {
		for row := board.Height() - 1; row >= 0; row-- {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.TextColored(dimColor, fmt.Sprintf("%2d", row))

			for col := range board.Width() {
				imgui.TableNextColumn()
				kind, ghost := snap.Overlay(row, col)
				switch {
				case kind == tetris.Empty:
					imgui.TextColored(dimColor, ".")
				case ghost && !bi.showGhost:
					imgui.TextColored(dimColor, ".")
				case ghost:
					imgui.TextColored(dimColor, kind.String())
				default:
					imgui.TextColored(kindColors[kind], kind.String())
				}
			}
		}
		imgui.EndTable()
	}

	imgui.End()
}
