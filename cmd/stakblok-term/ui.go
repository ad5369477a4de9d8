package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/stakblok/tetris"
)

var kindColors = map[tetris.Kind]tcell.Color{
	tetris.I: tcell.ColorAqua,
	tetris.O: tcell.ColorYellow,
	tetris.T: tcell.ColorPurple,
	tetris.J: tcell.ColorBlue,
	tetris.L: tcell.ColorOrange,
	tetris.S: tcell.ColorLime,
	tetris.Z: tcell.ColorRed,
}

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle   = tcell.StyleDefault
)

type action int

const (
	actionNone action = iota
	actionLeft
	actionRight
	actionDown
	actionRotateCW
	actionRotateCCW
	actionHardDrop
	actionPause
	actionRestart
	actionQuit
)

func keyAction(ev *tcell.EventKey) action {
	switch ev.Key() {
	case tcell.KeyLeft:
		return actionLeft
	case tcell.KeyRight:
		return actionRight
	case tcell.KeyDown:
		return actionDown
	case tcell.KeyUp:
		return actionRotateCW
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'x', 'X':
			return actionRotateCW
		case 'z', 'Z':
			return actionRotateCCW
		case ' ':
			return actionHardDrop
		case 'p', 'P':
			return actionPause
		case 'r', 'R':
			return actionRestart
		case 'q', 'Q':
			return actionQuit
		}
	}
	return actionNone
}

// cellStyle picks the two glyphs and style for one board cell. Cells are two
// columns wide so they look square in most terminals.
func cellStyle(kind tetris.Kind, ghost bool) (left, right rune, style tcell.Style) {
	switch {
	case kind == tetris.Empty:
		return ' ', '.', borderStyle
	case ghost:
		return '[', ']', tcell.StyleDefault.Foreground(kindColors[kind]).Dim(true)
	default:
		return ' ', ' ', tcell.StyleDefault.Background(kindColors[kind])
	}
}

// update is the payload of the interrupts posted by engine observers.
type update struct {
	engine *tetris.Engine
	snap   tetris.Snapshot
}

type termUI struct {
	screen    tcell.Screen
	newEngine func() *tetris.Engine
	engine    *tetris.Engine
	unsub     func()
}

func newTermUI(screen tcell.Screen, newEngine func() *tetris.Engine) *termUI {
	ui := &termUI{screen: screen, newEngine: newEngine}
	ui.start()
	return ui
}

// start swaps in a fresh engine. Every change is posted to the event loop
// as an interrupt carrying the snapshot, so drawing stays on one goroutine.
func (ui *termUI) start() {
	if ui.unsub != nil {
		ui.unsub()
		ui.engine.Pause()
	}
	ui.engine = ui.newEngine()
	engine := ui.engine
	ui.unsub = engine.Subscribe(func(snap tetris.Snapshot) {
		_ = ui.screen.PostEvent(tcell.NewEventInterrupt(update{engine: engine, snap: snap}))
	})
	ui.engine.Resume()
}

func (ui *termUI) run() {
	defer func() {
		ui.unsub()
		ui.engine.Pause()
	}()

	ui.draw(ui.engine.Snapshot())
	for {
		switch ev := ui.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			ui.screen.Sync()
			ui.draw(ui.engine.Snapshot())
		case *tcell.EventInterrupt:
			// Updates queued by an engine replaced on restart are stale.
			if u, ok := ev.Data().(update); ok && u.engine == ui.engine {
				ui.draw(u.snap)
			}
		case *tcell.EventKey:
			if !ui.handle(keyAction(ev)) {
				return
			}
		}
	}
}

// handle applies a to the engine and returns false when the UI should exit.
func (ui *termUI) handle(a action) bool {
	e := ui.engine
	switch a {
	case actionLeft:
		e.MoveLeft()
	case actionRight:
		e.MoveRight()
	case actionDown:
		e.MoveDown()
	case actionRotateCW:
		e.Rotate(true)
	case actionRotateCCW:
		e.Rotate(false)
	case actionHardDrop:
		e.HardDrop()
	case actionPause:
		if e.Running() {
			e.Pause()
		} else {
			e.Resume()
		}
	case actionRestart:
		if e.State() == tetris.StateGameOver {
			ui.start()
			ui.draw(ui.engine.Snapshot())
		}
	case actionQuit:
		return false
	}
	return true
}

func (ui *termUI) draw(snap tetris.Snapshot) {
	s := ui.screen
	s.Clear()

	board := snap.Board
	w, h := board.Width(), board.Height()
	const left, top = 1, 0

	for y := range h + 1 {
		s.SetContent(left-1, top+y, '|', nil, borderStyle)
		s.SetContent(left+w*2, top+y, '|', nil, borderStyle)
	}
	for x := range w*2 + 2 {
		s.SetContent(left-1+x, top+h, '-', nil, borderStyle)
	}

	for row := range h {
		y := top + h - 1 - row
		for col := range w {
			kind, ghost := snap.Overlay(row, col)
			l, r, style := cellStyle(kind, ghost)
			s.SetContent(left+col*2, y, l, nil, style)
			s.SetContent(left+col*2+1, y, r, nil, style)
		}
	}

	sideX := left + w*2 + 3
	state := snap.State.String()
	if !snap.Running && snap.State != tetris.StateGameOver {
		state = "paused"
	}
	lines := []string{
		fmt.Sprintf("state: %s", state),
		"",
		"arrows  move",
		"up/x    rotate cw",
		"z       rotate ccw",
		"space   hard drop",
		"p       pause",
		"q       quit",
	}
	if snap.State == tetris.StateGameOver {
		lines = append(lines, "", "GAME OVER", "r       restart")
	}
	for i, line := range lines {
		drawText(s, sideX, top+i, line)
	}

	s.Show()
}

func drawText(s tcell.Screen, x, y int, text string) {
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, textStyle)
	}
}
