package battle

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/stickquest/internal/dice"
	"github.com/samdwyer/stickquest/internal/gamedata"
	"github.com/samdwyer/stickquest/internal/telemetry"
)

// Frame counts for the enemy's counter-attack.
const (
	// ResolveFrames is the delay between a player action and the enemy's reply.
	ResolveFrames = 30
	// PromptFrames is how long the "Press SPACE to BLOCK!" prompt stays up.
	PromptFrames = 90
	// BlockWindowFrames is how long a block input is accepted.
	BlockWindowFrames = 60
	// PromptBlinkFrames is the half-period of the prompt's blink.
	PromptBlinkFrames = 10
)

// Phase represents the current phase of a battle.
type Phase int

const (
	// PhaseIdle - no battle running
	PhaseIdle Phase = iota
	// PhasePlayerChoice - waiting for the player to pick an action
	PhasePlayerChoice
	// PhaseResolving - enemy attack pending; the block window may be open
	PhaseResolving
	// PhaseEnded - the battle finished with an outcome
	PhaseEnded
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlayerChoice:
		return "player_choice"
	case PhaseResolving:
		return "resolving"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Outcome is how a battle ended. Exactly one non-None outcome ends a battle.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeFled
	OutcomeBossDefeated
	OutcomeDefeat
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeWin:
		return "win"
	case OutcomeFled:
		return "fled"
	case OutcomeBossDefeated:
		return "boss_defeated"
	case OutcomeDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// Config holds the numbers a System needs.
type Config struct {
	Actions        *gamedata.ActionRegistry
	EnemyDamage    gamedata.DamageRange
	BlockReduction float64
}

// System runs one battle at a time between the player and an enemy.
// Inputs that do not apply to the current phase are ignored.
type System struct {
	player      Combatant
	enemy       Combatant
	actions     *gamedata.ActionRegistry
	enemyDamage gamedata.DamageRange
	resolver    *EffectResolver

	sessionID  string
	active     bool
	playerTurn bool
	pending    bool // enemy attack scheduled
	selected   int
	outcome    Outcome
	message    string
	turns      int

	resolveTimer  int
	promptTimer   int
	promptVisible bool
	windowTimer   int
	blocking      bool
}

// NewSystem creates an idle battle system for the player.
func NewSystem(player Combatant, roller dice.Roller, cfg Config) *System {
	return &System{
		player:      player,
		actions:     cfg.Actions,
		enemyDamage: cfg.EnemyDamage,
		resolver:    NewEffectResolver(roller, cfg.BlockReduction),
	}
}

// Start begins a battle against enemy.
func (s *System) Start(ctx context.Context, enemy Combatant) {
	if enemy == nil {
		return
	}

	s.enemy = enemy
	s.sessionID = uuid.NewString()
	s.active = true
	s.playerTurn = true
	s.pending = false
	s.selected = 0
	s.outcome = OutcomeNone
	s.message = "Battle with " + enemy.GetName() + " started!"
	s.turns = 0
	s.resolveTimer = 0
	s.promptTimer = 0
	s.promptVisible = false
	s.windowTimer = 0
	s.blocking = false

	tracer := telemetry.Tracer("battle")
	_, span := tracer.Start(ctx, "battle.start")
	span.SetAttributes(
		attribute.String("battle.session_id", s.sessionID),
		attribute.String("enemy", enemy.GetName()),
		attribute.Int("enemy_hp", enemy.GetHP()),
		attribute.Int("player_hp", s.player.GetHP()),
		attribute.Bool("boss", enemy.IsBoss()),
	)
	span.End()
}

// Select moves the menu cursor by delta with wrap-around. It reports
// whether the cursor could move.
func (s *System) Select(delta int) bool {
	if !s.awaitingChoice() {
		return false
	}
	n := s.actions.Count()
	s.selected = ((s.selected+delta)%n + n) % n
	return true
}

// Execute performs the selected action and returns the outcome if it ended the battle.
func (s *System) Execute(ctx context.Context) Outcome {
	if !s.awaitingChoice() {
		return OutcomeNone
	}
	action := s.actions.At(s.selected)

	tracer := telemetry.Tracer("battle")
	ctx, span := tracer.Start(ctx, "battle.action")
	span.SetAttributes(
		attribute.String("battle.session_id", s.sessionID),
		attribute.String("actor", s.player.GetName()),
		attribute.String("action", action.Name),
		attribute.String("kind", string(action.Kind)),
		attribute.Int("turn", s.turns),
	)
	defer span.End()

	result := s.resolver.Resolve(action, s.player, s.enemy)
	s.message = result.Message
	s.turns++

	if result.Damage > 0 {
		span.SetAttributes(attribute.Int("damage", result.Damage))
	}
	if result.Healing > 0 {
		span.SetAttributes(attribute.Int("healing", result.Healing))
	}

	if !action.EndsTurn() {
		s.end(ctx, OutcomeFled)
		return s.outcome
	}

	// Hand the turn over and schedule the enemy's reply.
	s.playerTurn = false
	s.pending = true
	s.resolveTimer = ResolveFrames
	s.promptVisible = true
	s.promptTimer = PromptFrames
	s.windowTimer = BlockWindowFrames

	if !s.enemy.IsAlive() {
		s.message = "You defeated " + s.enemy.GetName() + "!"
		if s.enemy.IsBoss() {
			s.end(ctx, OutcomeBossDefeated)
		} else {
			s.end(ctx, OutcomeWin)
		}
	}
	return s.outcome
}

// Block arms damage reduction for the pending enemy attack. It reports
// whether the block was accepted.
func (s *System) Block() bool {
	if !s.active || s.playerTurn || !s.pending || s.windowTimer <= 0 {
		return false
	}
	s.blocking = true
	return true
}

// Update advances the battle by one frame. It returns the outcome if the
// enemy's attack ended the battle.
func (s *System) Update(ctx context.Context) Outcome {
	if !s.active || !s.pending {
		return OutcomeNone
	}

	if s.promptTimer > 0 {
		s.promptTimer--
		if s.promptTimer <= 0 {
			s.promptVisible = false
		}
	}
	if s.windowTimer > 0 {
		s.windowTimer--
	}
	if s.resolveTimer > 0 {
		s.resolveTimer--
		return OutcomeNone
	}

	s.pending = false
	return s.enemyTurn(ctx)
}

// enemyTurn resolves the enemy's counter-attack.
func (s *System) enemyTurn(ctx context.Context) Outcome {
	tracer := telemetry.Tracer("battle")
	ctx, span := tracer.Start(ctx, "battle.enemy_turn")
	defer span.End()

	result := s.resolver.EnemyAttack(s.enemy, s.player, s.enemyDamage, s.blocking)
	s.message = result.Message
	s.blocking = false
	s.promptVisible = false

	span.SetAttributes(
		attribute.String("battle.session_id", s.sessionID),
		attribute.String("actor", s.enemy.GetName()),
		attribute.Int("rolled", result.Rolled),
		attribute.Int("damage", result.Damage),
		attribute.Bool("blocked", result.Blocked),
	)

	if !s.player.IsAlive() {
		s.message = "You were defeated!"
		s.end(ctx, OutcomeDefeat)
		return s.outcome
	}
	s.playerTurn = true
	return OutcomeNone
}

// end finishes the battle with outcome.
func (s *System) end(ctx context.Context, outcome Outcome) {
	s.active = false
	s.outcome = outcome
	s.pending = false
	s.blocking = false
	s.promptVisible = false

	tracer := telemetry.Tracer("battle")
	_, span := tracer.Start(ctx, "battle.end")
	span.SetAttributes(
		attribute.String("battle.session_id", s.sessionID),
		attribute.String("outcome", outcome.String()),
		attribute.Int("turns_taken", s.turns),
		attribute.Int("player_hp_remaining", s.player.GetHP()),
	)
	span.End()
}

func (s *System) awaitingChoice() bool {
	return s.active && s.playerTurn && !s.pending
}

// =============================================================================
// Read-only view for frontends and the game controller
// =============================================================================

// Phase returns the current phase.
func (s *System) Phase() Phase {
	switch {
	case !s.active && s.outcome == OutcomeNone:
		return PhaseIdle
	case !s.active:
		return PhaseEnded
	case s.pending:
		return PhaseResolving
	default:
		return PhasePlayerChoice
	}
}

// Active reports whether a battle is running.
func (s *System) Active() bool { return s.active }

// Outcome returns how the last battle ended, or OutcomeNone while running.
func (s *System) Outcome() Outcome { return s.outcome }

// Message returns the latest battle log line.
func (s *System) Message() string { return s.message }

// Player returns the player combatant.
func (s *System) Player() Combatant { return s.player }

// Enemy returns the current opponent, or nil before the first battle.
func (s *System) Enemy() Combatant { return s.enemy }

// SessionID identifies the current battle in traces.
func (s *System) SessionID() string { return s.sessionID }

// PlayerTurn reports whether the player may act.
func (s *System) PlayerTurn() bool { return s.playerTurn }

// Pending reports whether an enemy attack is scheduled.
func (s *System) Pending() bool { return s.pending }

// Blocking reports whether a block is armed for the pending attack.
func (s *System) Blocking() bool { return s.blocking }

// Selected returns the menu cursor.
func (s *System) Selected() int { return s.selected }

// MenuVisible reports whether the action menu should be drawn.
func (s *System) MenuVisible() bool { return s.awaitingChoice() }

// ActionNames returns the menu entries in order.
func (s *System) ActionNames() []string { return s.actions.Names() }

// BlockWindowOpen reports whether Block would currently be accepted.
func (s *System) BlockWindowOpen() bool {
	return s.active && !s.playerTurn && s.pending && s.windowTimer > 0
}

// PromptShown reports whether the blinking block prompt is lit this frame.
func (s *System) PromptShown() bool {
	return s.promptVisible && (s.promptTimer/PromptBlinkFrames)%2 == 0
}
