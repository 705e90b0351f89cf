// Package battle provides the one-on-one battle system: the damage arithmetic
// and the frame-timed turn machine with its block window.
package battle

import (
	"fmt"
	"math"

	"github.com/samdwyer/stickquest/internal/dice"
	"github.com/samdwyer/stickquest/internal/gamedata"
)

// Combatant is the interface for anything that can take part in a battle.
// The player and every enemy implement it.
type Combatant interface {
	// Identity
	GetName() string
	IsAlive() bool
	IsBoss() bool

	// Stats
	GetHP() int
	GetMaxHP() int

	// Mutations
	TakeDamage(amount int) int // Returns actual damage taken
	Heal(amount int) int       // Returns actual amount healed
}

// EffectResult contains the outcome of resolving one action.
type EffectResult struct {
	Success bool
	Rolled  int  // Damage rolled before any reduction
	Damage  int  // Damage actually taken
	Healing int  // Health actually restored
	Blocked bool // Damage was reduced by a block
	Fled    bool
	Message string // Human-readable description
}

// EffectResolver rolls and applies action effects.
type EffectResolver struct {
	roller         dice.Roller
	blockReduction float64
}

// NewEffectResolver creates a new effect resolver. blockReduction is the
// factor applied to damage taken while blocking.
func NewEffectResolver(roller dice.Roller, blockReduction float64) *EffectResolver {
	return &EffectResolver{
		roller:         roller,
		blockReduction: blockReduction,
	}
}

// Roll returns a uniform integer in the inclusive range.
func (r *EffectResolver) Roll(rng gamedata.DamageRange) int {
	return r.roller.Range(rng.Min, rng.Max)
}

// Resolve applies a player action from the user to the target and returns results.
func (r *EffectResolver) Resolve(action *gamedata.ActionDef, user Combatant, target Combatant) EffectResult {
	if action == nil {
		return EffectResult{Success: false, Message: "Invalid action"}
	}

	switch action.Kind {
	case gamedata.ActionDamage:
		return r.resolveDamage(action, target)
	case gamedata.ActionHeal:
		return r.resolveHeal(action, user)
	case gamedata.ActionFlee:
		return EffectResult{Success: true, Fled: true, Message: "You ran away!"}
	default:
		return EffectResult{Success: false, Message: "Unknown action kind"}
	}
}

// resolveDamage handles damage actions.
func (r *EffectResolver) resolveDamage(action *gamedata.ActionDef, target Combatant) EffectResult {
	rolled := r.Roll(action.Damage)
	actual := target.TakeDamage(rolled)

	var msg string
	switch action.Name {
	case gamedata.ActionAttack:
		msg = fmt.Sprintf("You hit %s for %d damage!", target.GetName(), rolled)
	case gamedata.ActionSpecial:
		msg = fmt.Sprintf("Special attack! %d damage dealt to %s!", rolled, target.GetName())
	default:
		msg = fmt.Sprintf("%s! %d damage dealt to %s!", action.Name, rolled, target.GetName())
	}

	return EffectResult{
		Success: true,
		Rolled:  rolled,
		Damage:  actual,
		Message: msg,
	}
}

// resolveHeal handles heal actions. The message names the configured amount
// even when the heal is clamped at max health.
func (r *EffectResolver) resolveHeal(action *gamedata.ActionDef, user Combatant) EffectResult {
	return EffectResult{
		Success: true,
		Healing: user.Heal(action.Heal),
		Message: fmt.Sprintf("You used a health potion. +%d HP!", action.Heal),
	}
}

// EnemyAttack rolls the enemy's counter-attack against the player.
func (r *EffectResolver) EnemyAttack(enemy, player Combatant, rng gamedata.DamageRange, blocking bool) EffectResult {
	rolled := r.Roll(rng)
	damage := rolled
	if blocking {
		damage = BlockedDamage(rolled, r.blockReduction)
	}
	actual := player.TakeDamage(damage)

	msg := fmt.Sprintf("%s attacks! You take %d damage!", enemy.GetName(), damage)
	if blocking {
		msg = fmt.Sprintf("BLOCKED! %s attacks! You take only %d damage!", enemy.GetName(), damage)
	}

	return EffectResult{
		Success: true,
		Rolled:  rolled,
		Damage:  actual,
		Blocked: blocking,
		Message: msg,
	}
}

// BlockedDamage scales damage by the block factor, rounding down.
func BlockedDamage(damage int, factor float64) int {
	return int(math.Floor(float64(damage) * factor))
}
