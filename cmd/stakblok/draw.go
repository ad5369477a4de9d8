package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/stakblok/tetris"
)

var (
	background = color.RGBA{0x12, 0x12, 0x18, 0xff}
	wellColor  = color.RGBA{0x22, 0x22, 0x2c, 0xff}
	gridColor  = color.RGBA{0x30, 0x30, 0x3c, 0xff}
)

var palette = map[tetris.Kind]color.RGBA{
	tetris.I: {0x00, 0xe5, 0xe5, 0xff},
	tetris.O: {0xe5, 0xe5, 0x00, 0xff},
	tetris.T: {0xb0, 0x30, 0xe5, 0xff},
	tetris.J: {0x30, 0x60, 0xff, 0xff},
	tetris.L: {0xff, 0x99, 0x1a, 0xff},
	tetris.S: {0x30, 0xe5, 0x4c, 0xff},
	tetris.Z: {0xe5, 0x30, 0x30, 0xff},
}

// ghostOf returns a translucent version of c.
func ghostOf(c color.RGBA) color.RGBA {
	return color.RGBA{c.R / 4, c.G / 4, c.B / 4, 0x40}
}

// cellRect maps a board cell to screen pixels. Row 0 is drawn at the bottom.
func cellRect(row, col, height, cell int) (x, y float32) {
	x = float32(margin + col*cell)
	y = float32(margin + (height-1-row)*cell)
	return x, y
}

func drawBoard(screen *ebiten.Image, snap tetris.Snapshot, cell int) {
	board := snap.Board
	w, h := board.Width(), board.Height()
	size := float32(cell)

	vector.DrawFilledRect(screen, margin, margin, float32(w*cell), float32(h*cell), wellColor, false)

	for row := range h {
		for col := range w {
			x, y := cellRect(row, col, h, cell)
			kind, ghost := snap.Overlay(row, col)
			if kind == tetris.Empty {
				vector.StrokeRect(screen, x, y, size, size, 1, gridColor, false)
				continue
			}
			c := palette[kind]
			if ghost {
				vector.DrawFilledRect(screen, x+1, y+1, size-2, size-2, ghostOf(c), false)
				vector.StrokeRect(screen, x+1, y+1, size-2, size-2, 1, c, false)
				continue
			}
			vector.DrawFilledRect(screen, x+1, y+1, size-2, size-2, c, false)
		}
	}
}

func drawSidebar(screen *ebiten.Image, engine *tetris.Engine, cell int) {
	x := margin*2 + engine.Board().Width()*cell
	stats := engine.Stats()

	lines := []string{
		fmt.Sprintf("state: %s", engine.State()),
		fmt.Sprintf("locks: %d", stats.Locks),
		fmt.Sprintf("rows:  %d", stats.RowsCleared),
		"",
		"arrows  move",
		"up/x    rotate cw",
		"z       rotate ccw",
		"space   hard drop",
		"p       pause",
		"esc     quit",
	}
	switch {
	case engine.State() == tetris.StateGameOver:
		lines = append(lines, "", "GAME OVER", "r       restart")
	case !engine.Running():
		lines = append(lines, "", "PAUSED")
	}

	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, x, margin+i*16)
	}
}
