package game

import (
	"github.com/samdwyer/stickquest/internal/config"
	"github.com/samdwyer/stickquest/internal/dice"
)

// Options holds game construction options.
type Options struct {
	// Settings is the loaded settings document. Nil means the built-in defaults.
	Settings *config.Config

	// Roller overrides the random source, mainly for tests.
	Roller dice.Roller

	// Seed for random number generation when Roller is nil. Used for
	// reproducible runs. A seed of 0 means a random seed will be generated.
	Seed int64
}
