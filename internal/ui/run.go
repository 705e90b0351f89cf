package ui

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/stickquest/internal/assets"
	"github.com/samdwyer/stickquest/internal/game"
)

// HoldFrames is how long a movement key counts as held after its last key
// event. Terminals report presses and auto-repeats but never releases.
const HoldFrames = 6

const (
	holdLeft = iota
	holdRight
	holdUp
	holdDown
)

// keyState turns terminal key events into per-frame game input.
type keyState struct {
	frame     int
	heldUntil [4]int
	edges     game.Input
}

// handleKey records one key event for the next frame.
func (k *keyState) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		k.edges.Quit = true
	case tcell.KeyLeft:
		k.hold(holdLeft)
	case tcell.KeyRight:
		k.hold(holdRight)
	case tcell.KeyUp:
		k.hold(holdUp)
		k.edges.SelectPrev = true
	case tcell.KeyDown:
		k.hold(holdDown)
		k.edges.SelectNext = true
	case tcell.KeyEnter:
		k.edges.Confirm = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			k.edges.Confirm = true
		case 'a', 'A':
			k.hold(holdLeft)
		case 'd', 'D':
			k.hold(holdRight)
		case 'w', 'W':
			k.hold(holdUp)
			k.edges.SelectPrev = true
		case 's', 'S':
			k.hold(holdDown)
			k.edges.SelectNext = true
		case 'r', 'R':
			k.edges.Restart = true
		case 'q', 'Q':
			k.edges.Quit = true
		}
	}
}

func (k *keyState) hold(i int) {
	k.heldUntil[i] = k.frame + HoldFrames
}

// next returns the input for the coming frame and clears one-shot keys.
func (k *keyState) next() game.Input {
	in := k.edges
	in.Left = k.heldUntil[holdLeft] > k.frame
	in.Right = k.heldUntil[holdRight] > k.frame
	in.Up = k.heldUntil[holdUp] > k.frame
	in.Down = k.heldUntil[holdDown] > k.frame

	k.edges = game.Input{}
	k.frame++
	return in
}

// Run drives g from the terminal at the configured frame rate until the
// player quits, the terminal goes away or ctx is cancelled. All game
// mutation stays on the caller's goroutine.
func Run(ctx context.Context, g *game.Game, screen *Screen, lib *assets.Library) error {
	renderer := NewRenderer(screen, lib)

	done := make(chan struct{})
	defer close(done)
	events := screen.Events(done)

	fps := max(g.Settings().Game.FrameRate, 1)
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	var keys keyState
	renderer.Render(g)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				keys.handleKey(ev)
			case *tcell.EventResize:
				screen.Resized()
			}
		case <-ticker.C:
			if err := g.Update(ctx, keys.next()); err != nil {
				if errors.Is(err, game.ErrQuit) {
					return nil
				}
				return err
			}
			renderer.Render(g)
		}
	}
}
