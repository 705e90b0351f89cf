// Package entity provides the cast: the player, enemies and NPCs.
package entity

import (
	"github.com/samdwyer/stickquest/internal/battle"
	"github.com/samdwyer/stickquest/internal/config"
	"github.com/samdwyer/stickquest/internal/dialog"
	"github.com/samdwyer/stickquest/internal/gamedata"
	"github.com/samdwyer/stickquest/internal/world"
)

// Kind represents which role a character plays.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindNPC
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindNPC:
		return "npc"
	default:
		return "unknown"
	}
}

// Character is one member of the cast. Health stays within [0, MaxHP] and
// a character is dead exactly when its health is 0.
type Character struct {
	Name     string
	Kind     Kind
	Boss     bool // Enemies only: defeating it completes the quest
	Image    string
	Portrait string
	Width    int
	Height   int
	Color    gamedata.RGB // Placeholder color when images are missing
	Dialogs  []dialog.Line

	HP, MaxHP        int
	X, Y             int // Position on the explore field
	HomeX, HomeY     int // Where the character starts and respawns
	BattleX, BattleY int // Position on the battle screen

	anim   animation
	wander *wanderState // NPCs only
}

// newCharacter builds a character from its settings entry.
func newCharacter(kind Kind, cfg config.Character) *Character {
	hp := cfg.HP
	if hp <= 0 {
		hp = 1
	}
	return &Character{
		Name:     cfg.Name,
		Kind:     kind,
		Boss:     kind == KindEnemy && cfg.Boss,
		Image:    cfg.Image,
		Portrait: cfg.Portrait,
		Width:    cfg.Width,
		Height:   cfg.Height,
		Color:    cfg.PlaceholderColor,
		Dialogs:  cfg.Dialogs,
		HP:       hp,
		MaxHP:    hp,
		X:        cfg.DefaultPosition[0],
		Y:        cfg.DefaultPosition[1],
		HomeX:    cfg.DefaultPosition[0],
		HomeY:    cfg.DefaultPosition[1],
		BattleX:  cfg.BattlePosition[0],
		BattleY:  cfg.BattlePosition[1],
		anim:     animation{facing: world.DirRight},
	}
}

// NewPlayer creates the player character.
func NewPlayer(cfg config.Character) *Character {
	return newCharacter(KindPlayer, cfg)
}

// NewEnemy creates an enemy.
func NewEnemy(cfg config.Character) *Character {
	return newCharacter(KindEnemy, cfg)
}

// NewNPC creates a wandering NPC.
func NewNPC(cfg config.Character) *Character {
	c := newCharacter(KindNPC, cfg)
	c.wander = &wanderState{}
	return c
}

// CanBattle reports whether finishing this character's dialog starts a battle.
func (c *Character) CanBattle() bool {
	return c.Kind == KindEnemy
}

// HasDialog reports whether the character has anything to say.
func (c *Character) HasDialog() bool {
	return len(c.Dialogs) > 0
}

// IsDead reports whether health has reached 0.
func (c *Character) IsDead() bool {
	return c.HP == 0
}

// Reset restores full health and clears the damage flash.
func (c *Character) Reset() {
	c.HP = c.MaxHP
	c.anim.flash = 0
	c.anim.jitter = 0
}

// ReturnHome moves the character back to its starting position.
func (c *Character) ReturnHome() {
	c.X, c.Y = c.HomeX, c.HomeY
}

// =============================================================================
// Combatant interface implementation
// =============================================================================

var _ battle.Combatant = (*Character)(nil)

// GetName returns the character's name.
func (c *Character) GetName() string { return c.Name }

// IsAlive returns true if the character has HP remaining.
func (c *Character) IsAlive() bool { return c.HP > 0 }

// IsBoss returns true for the quest's final enemy.
func (c *Character) IsBoss() bool { return c.Boss }

// GetHP returns current HP.
func (c *Character) GetHP() int { return c.HP }

// GetMaxHP returns maximum HP.
func (c *Character) GetMaxHP() int { return c.MaxHP }

// TakeDamage reduces HP, starts the damage flash and returns actual damage
// taken. Dead characters ignore damage.
func (c *Character) TakeDamage(amount int) int {
	if c.IsDead() || amount < 0 {
		return 0
	}
	c.anim.flash = FlashFrames
	actual := amount
	if actual > c.HP {
		actual = c.HP
	}
	c.HP -= actual
	return actual
}

// Heal restores HP and returns the amount actually healed. The dead stay dead
// until Reset.
func (c *Character) Heal(amount int) int {
	if c.IsDead() || amount <= 0 {
		return 0
	}
	actual := amount
	if c.HP+actual > c.MaxHP {
		actual = c.MaxHP - c.HP
	}
	c.HP += actual
	return actual
}
