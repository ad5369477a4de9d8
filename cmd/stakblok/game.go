package main

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/stakblok/config"
	"github.com/plus3/stakblok/debugui"
	debugui_ebiten "github.com/plus3/stakblok/debugui/ebiten"
	"github.com/plus3/stakblok/tetris"
)

const (
	margin       = 20
	sidebarWidth = 200

	// maxFrameDelta caps how much game time one Update may advance.
	maxFrameDelta = 250 * time.Millisecond
)

// Game implements ebiten.Game. The engine runs on a ManualClock advanced by
// the measured frame time in each Update, so ticks happen on the ebiten
// goroutine and gravity follows the wall clock.
type Game struct {
	cfg    *config.Config
	logger *log.Logger

	clock  *tetris.ManualClock
	engine *tetris.Engine
	frames *debugui.FrameTimer

	imgui *debugui_ebiten.ImguiBackend
}

func NewGame(cfg *config.Config, logger *log.Logger) *Game {
	g := &Game{
		cfg:    cfg,
		logger: logger,
		frames: debugui.NewFrameTimer(maxFrameDelta),
	}
	g.restart()

	width, height := g.screenSize()
	if cfg.Debug.Overlay {
		overlay := debugui.NewOverlay()
		debugui.Install(overlay, g.Engine)
		g.imgui = debugui_ebiten.NewImguiBackend(cfg.AppName, width+640, height+200, overlay)
	} else {
		ebiten.SetWindowTitle(cfg.AppName)
		ebiten.SetWindowSize(width, height)
	}
	return g
}

func (g *Game) Engine() *tetris.Engine {
	return g.engine
}

func (g *Game) restart() {
	g.clock = tetris.NewManualClock()
	g.engine = tetris.NewEngine(g.cfg.Board.Width, g.cfg.Board.Height, g.cfg.EngineOptions(
		tetris.WithClock(g.clock),
		tetris.WithLogger(g.logger),
	)...)
	g.engine.Resume()
	g.logger.Info("new game", "session", g.engine.SessionID())
}

func (g *Game) Update() error {
	keyboardFree := true
	if g.imgui != nil {
		g.imgui.Update()
		keyboardFree = !g.imgui.WantsKeyboard()
	}

	if keyboardFree {
		switch handleInput(g.engine) {
		case actionQuit:
			return ebiten.Termination
		case actionPause:
			if g.engine.Running() {
				g.engine.Pause()
			} else {
				g.engine.Resume()
			}
		case actionRestart:
			if g.engine.State() == tetris.StateGameOver {
				g.restart()
			}
		}
	}

	g.advance(time.Now())
	return nil
}

func (g *Game) advance(now time.Time) {
	g.clock.Advance(g.frames.Tick(now))
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	drawBoard(screen, g.engine.Snapshot(), g.cfg.UI.CellSize)
	drawSidebar(screen, g.engine, g.cfg.UI.CellSize)

	if g.imgui != nil {
		g.imgui.DrawOverlay(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imgui != nil {
		g.imgui.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return g.screenSize()
}

func (g *Game) screenSize() (int, int) {
	cell := g.cfg.UI.CellSize
	return g.cfg.Board.Width*cell + 2*margin + sidebarWidth, g.cfg.Board.Height*cell + 2*margin
}
