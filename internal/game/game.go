package game

import (
	"context"
	"errors"
	"fmt"
	"log"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/stickquest/internal/battle"
	"github.com/samdwyer/stickquest/internal/config"
	"github.com/samdwyer/stickquest/internal/dialog"
	"github.com/samdwyer/stickquest/internal/dice"
	"github.com/samdwyer/stickquest/internal/entity"
	"github.com/samdwyer/stickquest/internal/telemetry"
	"github.com/samdwyer/stickquest/internal/world"
)

// VictoryFrames is how long the victory screen stays up.
const VictoryFrames = 180

// ErrQuit is returned by Update when the player asked to leave.
var ErrQuit = errors.New("quit requested")

// Game holds the entire game state. All mutation happens in Update; the
// accessors are read-only views for frontends.
type Game struct {
	settings *config.Config
	roller   dice.Roller
	field    *world.Field

	player  *entity.Character
	enemies []*entity.Character
	npcs    []*entity.Character

	dialog dialog.Session
	battle *battle.System

	state         State
	current       *entity.Character // Character being talked to or fought
	questComplete bool
	victoryTimer  int
	frame         int
}

// New creates a new game instance in explore mode.
func New(opts Options) (*Game, error) {
	settings := opts.Settings
	if settings == nil {
		settings = config.Default()
	}
	roller := opts.Roller
	if roller == nil {
		roller = dice.New(opts.Seed)
	}

	actions, err := settings.Battle.Registry()
	if err != nil {
		return nil, fmt.Errorf("failed to build battle actions: %w", err)
	}

	g := &Game{
		settings: settings,
		roller:   roller,
		field:    world.NewField(settings.Window.Width, settings.Window.Height, settings.Game.ExploreTop),
		player:   entity.NewPlayer(settings.Characters.Player),
		state:    StateExplore,
	}
	for _, c := range settings.Characters.Enemies {
		g.enemies = append(g.enemies, entity.NewEnemy(c))
	}
	for _, c := range settings.Characters.NPCs {
		g.npcs = append(g.npcs, entity.NewNPC(c))
	}

	g.battle = battle.NewSystem(g.player, roller, battle.Config{
		Actions:        actions,
		EnemyDamage:    settings.Battle.EnemyMoveDamage,
		BlockReduction: settings.Battle.BlockReduction,
	})

	return g, nil
}

// Update advances the game by one frame using the given input.
func (g *Game) Update(ctx context.Context, in Input) error {
	if in.Quit {
		return ErrQuit
	}
	g.frame++

	switch g.state {
	case StateExplore:
		g.updateExplore(ctx, in)
	case StateDialog:
		if in.Confirm {
			g.advanceDialog(ctx)
		}
	case StateBattle:
		g.updateBattle(ctx, in)
	case StateGameOver:
		if in.Restart {
			g.restart(ctx)
		}
	case StateVictory:
		g.victoryTimer--
		if g.victoryTimer <= 0 {
			g.victoryTimer = 0
			g.setState(ctx, StateExplore, "victory_elapsed")
		}
	}

	g.animate()
	return nil
}

// =============================================================================
// Explore
// =============================================================================

func (g *Game) updateExplore(ctx context.Context, in Input) {
	// Key presses are handled before movement; an engaged character freezes
	// the field for the rest of the frame.
	if in.Confirm {
		g.interact(ctx)
		if g.state != StateExplore {
			return
		}
	}

	dx, dy := in.Axis()
	moving := dx != 0 || dy != 0
	if moving {
		p := g.player
		p.X, p.Y = g.field.MovePlayer(p.X, p.Y, p.Width, p.Height, dx, dy, g.settings.Game.MovementSpeed)
	}
	g.player.UpdateFacing(in.Heading(), moving)

	for _, npc := range g.npcs {
		npc.Wander(g.roller, g.field.WanderBounds(npc.Width, npc.Height))
	}
}

// interact engages the first eligible character near the player. Enemies
// are checked before NPCs.
func (g *Game) interact(ctx context.Context) {
	target := g.NearbyHint()
	if target == nil {
		return
	}

	g.current = target
	if target.HasDialog() {
		g.dialog.Start(target.Dialogs)
		g.setState(ctx, StateDialog, "interact")
		return
	}
	g.startBattle(ctx, target)
}

// NearbyHint returns the character the player would engage by confirming
// right now, or nil.
func (g *Game) NearbyHint() *entity.Character {
	if g.state != StateExplore {
		return nil
	}
	dist := g.settings.Game.InteractionDistance

	for _, e := range g.enemies {
		if world.InRange(g.player.X, e.X, dist) && !e.IsDead() {
			return e
		}
	}
	for _, npc := range g.npcs {
		if world.InRange(g.player.X, npc.X, dist) && npc.HasDialog() {
			return npc
		}
	}
	return nil
}

// =============================================================================
// Dialog
// =============================================================================

func (g *Game) advanceDialog(ctx context.Context) {
	if g.dialog.Advance() {
		return
	}

	c := g.current
	if c != nil && c.CanBattle() && !c.IsDead() {
		g.startBattle(ctx, c)
		return
	}
	g.current = nil
	g.setState(ctx, StateExplore, "dialog_finished")
}

// =============================================================================
// Battle
// =============================================================================

func (g *Game) startBattle(ctx context.Context, enemy *entity.Character) {
	g.current = enemy
	g.setState(ctx, StateBattle, "battle_started")
	g.battle.Start(ctx, enemy)
}

func (g *Game) updateBattle(ctx context.Context, in Input) {
	b := g.battle

	if in.SelectPrev {
		b.Select(-1)
	}
	if in.SelectNext {
		b.Select(1)
	}

	if in.Confirm {
		if b.PlayerTurn() {
			if out := b.Execute(ctx); out != battle.OutcomeNone {
				g.finishBattle(ctx, out)
				return
			}
		} else {
			b.Block()
		}
	}

	if out := b.Update(ctx); out != battle.OutcomeNone {
		g.finishBattle(ctx, out)
	}
}

// finishBattle maps a battle outcome onto the next game state.
func (g *Game) finishBattle(ctx context.Context, out battle.Outcome) {
	g.current = nil

	switch out {
	case battle.OutcomeFled, battle.OutcomeWin:
		g.setState(ctx, StateExplore, out.String())
	case battle.OutcomeBossDefeated:
		g.questComplete = true
		g.victoryTimer = VictoryFrames
		g.setState(ctx, StateVictory, out.String())
	case battle.OutcomeDefeat:
		g.setState(ctx, StateGameOver, out.String())
	default:
		log.Printf("Warning: unexpected battle outcome %v", out)
	}
}

// =============================================================================
// Restart and per-frame animation
// =============================================================================

// restart revives everyone and puts the player back at the start. The
// quest-complete flag survives.
func (g *Game) restart(ctx context.Context) {
	g.player.Reset()
	g.player.ReturnHome()
	for _, e := range g.enemies {
		e.Reset()
	}
	g.current = nil
	g.setState(ctx, StateExplore, "restart")
}

func (g *Game) animate() {
	g.player.Animate(g.roller)
	for _, e := range g.enemies {
		e.Animate(g.roller)
	}
	for _, npc := range g.npcs {
		npc.Animate(g.roller)
	}
}

// setState switches mode and records the transition.
func (g *Game) setState(ctx context.Context, to State, reason string) {
	from := g.state
	g.state = to

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.transition")
	span.SetAttributes(
		attribute.String("from", from.String()),
		attribute.String("to", to.String()),
		attribute.String("reason", reason),
		attribute.Int("frame", g.frame),
		attribute.Int("player_hp", g.player.HP),
	)
	if g.current != nil {
		span.SetAttributes(attribute.String("character", g.current.Name))
	}
	span.End()
}

// =============================================================================
// Read-only view for frontends
// =============================================================================

// State returns the current mode.
func (g *Game) State() State { return g.state }

// Settings returns the settings document the game was built from.
func (g *Game) Settings() *config.Config { return g.settings }

// Field returns the explore field geometry.
func (g *Game) Field() *world.Field { return g.field }

// Player returns the player character.
func (g *Game) Player() *entity.Character { return g.player }

// Enemies returns the enemies in settings order.
func (g *Game) Enemies() []*entity.Character { return g.enemies }

// NPCs returns the NPCs in settings order.
func (g *Game) NPCs() []*entity.Character { return g.npcs }

// Current returns the character being talked to or fought, or nil.
func (g *Game) Current() *entity.Character { return g.current }

// Dialog returns the dialog session.
func (g *Game) Dialog() *dialog.Session { return &g.dialog }

// Battle returns the battle system.
func (g *Game) Battle() *battle.System { return g.battle }

// QuestComplete reports whether the boss has ever been defeated.
func (g *Game) QuestComplete() bool { return g.questComplete }

// VictoryTimer returns the frames left on the victory screen.
func (g *Game) VictoryTimer() int { return g.victoryTimer }

// Frame returns the number of frames stepped so far.
func (g *Game) Frame() int { return g.frame }
