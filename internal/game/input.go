package game

import "github.com/samdwyer/stickquest/internal/world"

// Input is one frame of player intent. Frontends translate their own key
// events into it. Movement flags are held keys; the rest are edge-triggered
// and should be set only on the frame the key went down.
type Input struct {
	Left, Right, Up, Down bool

	Confirm    bool // Space / Enter: interact, advance, execute or block
	SelectPrev bool
	SelectNext bool
	Restart    bool
	Quit       bool
}

// Axis returns the movement step on each axis. Opposite keys cancel out.
func (in Input) Axis() (dx, dy int) {
	if in.Left {
		dx--
	}
	if in.Right {
		dx++
	}
	if in.Up {
		dy--
	}
	if in.Down {
		dy++
	}
	return dx, dy
}

// Heading returns the direction used for facing and walk animation.
// Horizontal movement wins over vertical.
func (in Input) Heading() world.Direction {
	dx, dy := in.Axis()
	switch {
	case dx < 0:
		return world.DirLeft
	case dx > 0:
		return world.DirRight
	case dy < 0:
		return world.DirUp
	case dy > 0:
		return world.DirDown
	default:
		return world.DirNone
	}
}
