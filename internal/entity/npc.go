package entity

import (
	"github.com/samdwyer/stickquest/internal/dice"
	"github.com/samdwyer/stickquest/internal/world"
)

const (
	wanderMinFrames = 30
	wanderMaxFrames = 120
)

// wanderState is the NPC random-walk payload.
type wanderState struct {
	dir   world.Direction
	timer int
}

// Wanders reports whether the character random-walks during exploration.
func (c *Character) Wanders() bool {
	return c.wander != nil
}

// Wander advances the NPC's random walk by one frame. When its countdown
// runs out it picks a new countdown and a new cardinal direction; then it
// steps one pixel that way if the step stays inside bounds, and otherwise
// stands still for the frame.
func (c *Character) Wander(roller dice.Roller, bounds world.Bounds) {
	w := c.wander
	if w == nil {
		return
	}

	if w.timer <= 0 {
		w.timer = roller.Range(wanderMinFrames, wanderMaxFrames)
		w.dir = world.Cardinals[roller.Range(0, len(world.Cardinals)-1)]
	} else {
		w.timer--
	}

	x, y, moved := bounds.Step(c.X, c.Y, w.dir)
	c.X, c.Y = x, y
	c.UpdateFacing(w.dir, moved)
}

// WanderDirection returns the NPC's current heading.
func (c *Character) WanderDirection() world.Direction {
	if c.wander == nil {
		return world.DirNone
	}
	return c.wander.dir
}
