package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/stakblok/tetris"
)

const (
	// Frames a movement key must be held before it starts repeating.
	repeatDelay = 10
	// Frames between repeats once repeating.
	repeatEvery = 3
)

// repeats reports whether a key held for frames updates should fire this
// update. inpututil counts the press frame as 1.
func repeats(frames int) bool {
	if frames == 1 {
		return true
	}
	return frames > repeatDelay && (frames-repeatDelay)%repeatEvery == 0
}

type action int

const (
	actionNone action = iota
	actionPause
	actionRestart
	actionQuit
)

// handleInput forwards pressed keys to engine as intents and returns any
// request that the game itself must act on.
func handleInput(engine *tetris.Engine) action {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return actionQuit
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		return actionPause
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		return actionRestart
	}

	if repeats(inpututil.KeyPressDuration(ebiten.KeyLeft)) {
		engine.MoveLeft()
	}
	if repeats(inpututil.KeyPressDuration(ebiten.KeyRight)) {
		engine.MoveRight()
	}
	if repeats(inpututil.KeyPressDuration(ebiten.KeyDown)) {
		engine.MoveDown()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) || inpututil.IsKeyJustPressed(ebiten.KeyX) {
		engine.Rotate(true)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		engine.Rotate(false)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		engine.HardDrop()
	}
	return actionNone
}
