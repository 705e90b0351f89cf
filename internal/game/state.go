// Package game provides the top-level game controller: mode switching,
// input routing and the per-frame step.
package game

// State represents the current game mode.
type State int

const (
	// StateExplore is the default mode where the player walks the field.
	StateExplore State = iota
	// StateDialog shows a character's lines one at a time.
	StateDialog
	// StateBattle runs a turn-based fight against one enemy.
	StateBattle
	// StateGameOver waits for a restart after the player was defeated.
	StateGameOver
	// StateVictory shows the quest-complete screen for a fixed time.
	StateVictory
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateDialog:
		return "dialog"
	case StateBattle:
		return "battle"
	case StateGameOver:
		return "game_over"
	case StateVictory:
		return "victory"
	default:
		return "unknown"
	}
}
