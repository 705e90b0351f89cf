package gamedata

// =============================================================================
// BATTLE ACTION DESIGN
// =============================================================================
//
// Overview:
// ---------
// The player's battle menu is a data-driven list of actions. The settings
// document names the actions in menu order and carries the numbers behind
// them; each name maps onto one of three kinds:
//
//    - damage: roll a uniform integer in [min, max] and hurt the enemy
//    - heal:   restore a flat amount of player health (clamped at max)
//    - flee:   leave the battle at once, the enemy does not act
//
// Built-in names:
// ---------------
//    Attack  -> damage, player_move_damage.Attack
//    Special -> damage, player_move_damage.Special (strictly higher range)
//    Item    -> heal,   heal_amount
//    Run     -> flee
//
// Any other name that has an entry under player_move_damage is treated as
// an extra damage action, so new attacks can be added without code changes.
//
// Turn flow:
// ----------
// Every non-flee action hands the turn to the enemy and arms the block
// window. The enemy's counter-attack uses enemy_move_damage.
//
// Telemetry:
// ----------
// - battle.action: action name, kind, damage/heal amount

// ActionKind represents what a battle action does.
type ActionKind string

const (
	ActionDamage ActionKind = "damage"
	ActionHeal   ActionKind = "heal"
	ActionFlee   ActionKind = "flee"
)

// Built-in action names.
const (
	ActionAttack  = "Attack"
	ActionSpecial = "Special"
	ActionItem    = "Item"
	ActionRun     = "Run"
)

// DamageRange is an inclusive integer range for damage rolls.
type DamageRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Valid reports whether the range is non-negative and ordered.
func (r DamageRange) Valid() bool {
	return r.Min >= 0 && r.Min <= r.Max
}

// ActionDef defines one entry of the battle menu.
type ActionDef struct {
	Name   string
	Kind   ActionKind
	Damage DamageRange // For damage actions
	Heal   int         // For heal actions
}

// EndsTurn returns true if the action hands the turn to the enemy.
func (a *ActionDef) EndsTurn() bool {
	return a.Kind != ActionFlee
}
