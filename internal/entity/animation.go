package entity

import (
	"github.com/samdwyer/stickquest/internal/dice"
	"github.com/samdwyer/stickquest/internal/world"
)

const (
	// FlashFrames is how long a character shakes after taking damage.
	FlashFrames = 10
	// JitterPixels bounds the shake offset on each axis.
	JitterPixels = 5
	// WalkSwitchFrames is how often the walk tilt flips sides.
	WalkSwitchFrames = 10
	// WalkTilt is the sprite tilt, in degrees, while walking.
	WalkTilt = 33
)

// animation is the per-character visual state. It is mutated only during
// the update step; drawing reads it.
type animation struct {
	flash     int
	jitter    int
	walking   bool
	walkCycle int
	walkTimer int
	tilt      int
	facing    world.Direction // DirLeft or DirRight
}

// UpdateFacing records a frame of (non-)movement in dir. While walking the
// tilt alternates between +WalkTilt and -WalkTilt every WalkSwitchFrames
// frames; standing still resets it to 0. Horizontal moves also set which
// way the sprite faces.
func (c *Character) UpdateFacing(dir world.Direction, moving bool) {
	a := &c.anim
	if dir.Horizontal() {
		a.facing = dir
	}
	a.walking = moving

	if !moving {
		a.tilt = 0
		return
	}

	a.walkTimer++
	if a.walkTimer >= WalkSwitchFrames {
		a.walkTimer = 0
		a.walkCycle = 1 - a.walkCycle
	}
	if a.walkCycle == 0 {
		a.tilt = WalkTilt
	} else {
		a.tilt = -WalkTilt
	}
}

// Animate advances the damage flash by one frame and rolls this frame's
// shake offset.
func (c *Character) Animate(roller dice.Roller) {
	a := &c.anim
	if a.flash > 0 {
		a.flash--
		a.jitter = roller.Range(-JitterPixels, JitterPixels)
		return
	}
	a.jitter = 0
}

// DrawPosition returns where to draw the sprite this frame: the explore or
// battle position plus the shake offset.
func (c *Character) DrawPosition(inBattle bool) (int, int) {
	x, y := c.X, c.Y
	if inBattle {
		x, y = c.BattleX, c.BattleY
	}
	return x + c.anim.jitter, y + c.anim.jitter
}

// Tilt returns the sprite rotation in degrees.
func (c *Character) Tilt() int { return c.anim.tilt }

// Facing returns DirLeft or DirRight.
func (c *Character) Facing() world.Direction { return c.anim.facing }

// Walking reports whether the character moved this frame.
func (c *Character) Walking() bool { return c.anim.walking }

// Flashing reports whether the damage flash is running.
func (c *Character) Flashing() bool { return c.anim.flash > 0 }
