package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/samdwyer/stickquest/internal/game"
)

// keyboard reports key state for one frame.
type keyboard interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

type ebitenKeyboard struct{}

func (ebitenKeyboard) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeyboard) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

func anyPressed(kb keyboard, keys ...ebiten.Key) bool {
	for _, k := range keys {
		if kb.Pressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(kb keyboard, keys ...ebiten.Key) bool {
	for _, k := range keys {
		if kb.JustPressed(k) {
			return true
		}
	}
	return false
}

// readInput maps the keyboard onto one frame of game input. Movement is
// held WASD or arrows; everything else fires on the frame the key goes down.
func readInput(kb keyboard) game.Input {
	return game.Input{
		Left:  anyPressed(kb, ebiten.KeyA, ebiten.KeyArrowLeft),
		Right: anyPressed(kb, ebiten.KeyD, ebiten.KeyArrowRight),
		Up:    anyPressed(kb, ebiten.KeyW, ebiten.KeyArrowUp),
		Down:  anyPressed(kb, ebiten.KeyS, ebiten.KeyArrowDown),

		Confirm:    anyJustPressed(kb, ebiten.KeySpace, ebiten.KeyEnter),
		SelectPrev: anyJustPressed(kb, ebiten.KeyW, ebiten.KeyArrowUp),
		SelectNext: anyJustPressed(kb, ebiten.KeyS, ebiten.KeyArrowDown),
		Restart:    anyJustPressed(kb, ebiten.KeyR),
		Quit:       anyJustPressed(kb, ebiten.KeyEscape),
	}
}
