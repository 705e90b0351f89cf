package game

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/samdwyer/stickquest/internal/battle"
	"github.com/samdwyer/stickquest/internal/config"
	"github.com/samdwyer/stickquest/internal/world"
)

// highRoller always rolls the top of the range: full damage both ways,
// long wander countdowns heading down.
type highRoller struct{}

func (highRoller) Range(lo, hi int) int {
	if hi < lo {
		return lo
	}
	return hi
}

type GameTestSuite struct {
	suite.Suite
	ctx  context.Context
	game *Game
}

func (s *GameTestSuite) SetupTest() {
	s.ctx = context.Background()
	g, err := New(Options{Roller: highRoller{}})
	s.Require().NoError(err)
	s.game = g
}

func (s *GameTestSuite) step(in Input) {
	s.Require().NoError(s.game.Update(s.ctx, in))
}

func (s *GameTestSuite) idle(frames int) {
	for i := 0; i < frames; i++ {
		s.step(Input{})
	}
}

// confirm presses Space for one frame.
func (s *GameTestSuite) confirm() {
	s.step(Input{Confirm: true})
}

// waitForEnemy steps frames until the enemy has replied or the battle ended.
func (s *GameTestSuite) waitForEnemy() {
	for i := 0; i < 2*battle.ResolveFrames; i++ {
		if s.game.State() != StateBattle || s.game.Battle().PlayerTurn() {
			return
		}
		s.step(Input{})
	}
	s.FailNow("enemy never replied")
}

// talkThrough opens the dialog of whoever is nearby and confirms until it closes.
func (s *GameTestSuite) talkThrough() {
	s.confirm()
	s.Require().Equal(StateDialog, s.game.State())
	for s.game.State() == StateDialog {
		s.confirm()
	}
}

func (s *GameTestSuite) kennyHP() int {
	return s.game.Enemies()[0].HP
}

func (s *GameTestSuite) TestNewFromDefaults() {
	g := s.game
	s.Equal(StateExplore, g.State())
	s.Len(g.Enemies(), 2)
	s.Len(g.NPCs(), 1)
	s.Equal("Warrior Stan", g.Player().Name)
	s.False(g.QuestComplete())
	s.Nil(g.Current())
	s.Equal(battle.PhaseIdle, g.Battle().Phase())
}

func (s *GameTestSuite) TestNewRejectsUnknownAction() {
	settings := config.Default()
	settings.Battle.Actions = []string{"Dance"}

	_, err := New(Options{Settings: settings, Roller: highRoller{}})
	s.Error(err)
}

func (s *GameTestSuite) TestQuit() {
	err := s.game.Update(s.ctx, Input{Quit: true})
	s.True(errors.Is(err, ErrQuit))
}

func (s *GameTestSuite) TestMovementClampsToField() {
	p := s.game.Player()

	for i := 0; i < 50; i++ {
		s.step(Input{Left: true, Up: true})
	}
	s.Equal(0, p.X)
	s.Equal(200, p.Y)
	s.Equal(world.DirLeft, p.Facing())

	for i := 0; i < 200; i++ {
		s.step(Input{Right: true, Down: true})
	}
	s.Equal(800-p.Width, p.X)
	s.Equal(600-p.Height, p.Y)

	s.step(Input{})
	s.False(p.Walking())
}

func (s *GameTestSuite) TestMovementSpeed() {
	p := s.game.Player()
	s.step(Input{Right: true})
	s.Equal(105, p.X)
	s.Equal(400, p.Y)
	s.True(p.Walking())
}

func (s *GameTestSuite) TestConfirmWithNobodyNearby() {
	s.Nil(s.game.NearbyHint())
	s.confirm()
	s.Equal(StateExplore, s.game.State())
}

func (s *GameTestSuite) TestEnemiesCheckedBeforeNPCs() {
	// Between Butters (300) and Kenny (500), in range of both.
	s.game.Player().X = 400

	hint := s.game.NearbyHint()
	s.Require().NotNil(hint)
	s.Equal("Princess Kenny", hint.Name)

	s.game.Enemies()[0].TakeDamage(1000)
	hint = s.game.NearbyHint()
	s.Require().NotNil(hint)
	s.Equal("Butters", hint.Name, "dead enemies are skipped")
}

func (s *GameTestSuite) TestDialogAdvancesThenStartsBattle() {
	s.game.Player().X = 400

	s.confirm()
	s.Equal(StateDialog, s.game.State())
	s.Equal("Princess Kenny", s.game.Current().Name)
	s.Equal(0, s.game.Dialog().Cursor())

	s.confirm()
	s.confirm()
	s.Equal(StateDialog, s.game.State())
	s.Equal(2, s.game.Dialog().Cursor())
	line, ok := s.game.Dialog().Current()
	s.True(ok)
	s.Equal("stan_portrait.png", line.Portrait)

	s.confirm()
	s.Equal(StateBattle, s.game.State())
	s.False(s.game.Dialog().Active())
	s.Equal("Battle with Princess Kenny started!", s.game.Battle().Message())
}

func (s *GameTestSuite) TestEnemyWithoutDialogStartsBattleAtOnce() {
	kenny := s.game.Enemies()[0]
	kenny.Dialogs = nil
	s.game.Player().X = 400

	s.confirm()

	s.Equal(StateBattle, s.game.State())
	s.Same(kenny, s.game.Current())
	s.False(s.game.Dialog().Active())
	s.Equal("Battle with Princess Kenny started!", s.game.Battle().Message())
}

func (s *GameTestSuite) TestConfirmUsesPositionBeforeMoving() {
	s.game.Enemies()[0].TakeDamage(1000)
	s.game.Enemies()[1].TakeDamage(1000)
	p := s.game.Player()
	p.X = 146 // Butters at 300 is out of range until after a step right.

	s.step(Input{Right: true, Confirm: true})

	s.Equal(StateExplore, s.game.State())
	s.Equal(151, p.X)
}

func (s *GameTestSuite) TestFieldFreezesOnFrameDialogOpens() {
	butters := s.game.NPCs()[0]
	p := s.game.Player()
	p.X = 346

	s.step(Input{Right: true, Confirm: true})

	s.Require().Equal(StateDialog, s.game.State())
	s.Same(butters, s.game.Current())
	s.Equal(346, p.X)
	s.Equal(350, butters.Y, "no wander step once the dialog opened")
}

func (s *GameTestSuite) TestNPCDialogReturnsToExplore() {
	s.game.Player().X = 300
	s.game.Enemies()[0].TakeDamage(1000)

	s.talkThrough()

	s.Equal(StateExplore, s.game.State())
	s.Nil(s.game.Current())
}

func (s *GameTestSuite) TestNPCsFreezeOutsideExplore() {
	butters := s.game.NPCs()[0]
	s.idle(1)
	s.Equal(351, butters.Y, "high rolls wander down")

	s.game.Player().X = 400
	s.confirm()
	s.Require().Equal(StateDialog, s.game.State())
	y := butters.Y

	s.idle(20)
	s.Equal(y, butters.Y)
}

func (s *GameTestSuite) TestWinReturnsToExplore() {
	s.game.Player().X = 400
	s.talkThrough()
	s.Require().Equal(StateBattle, s.game.State())

	for i := 0; i < 3; i++ {
		s.confirm()
		s.waitForEnemy()
	}
	s.Equal(5, s.kennyHP())

	s.confirm()
	s.Equal(StateExplore, s.game.State())
	s.True(s.game.Enemies()[0].IsDead())
	s.Equal(40, s.game.Player().HP)
	s.False(s.game.QuestComplete())
}

func (s *GameTestSuite) TestBlockHalvesEnemyDamage() {
	s.game.Player().X = 400
	s.talkThrough()

	s.confirm()
	s.confirm()
	s.True(s.game.Battle().Blocking())

	s.waitForEnemy()
	s.Equal(90, s.game.Player().HP)
	s.False(s.game.Battle().Blocking())
}

func (s *GameTestSuite) TestRunLeavesEnemyUnharmed() {
	s.game.Player().X = 400
	s.talkThrough()

	s.step(Input{SelectPrev: true})
	s.Equal(3, s.game.Battle().Selected())
	s.confirm()

	s.Equal(StateExplore, s.game.State())
	s.Equal(80, s.kennyHP())
	s.Equal(100, s.game.Player().HP)
}

func (s *GameTestSuite) TestBossVictoryLastsExactly180Frames() {
	s.game.Enemies()[0].TakeDamage(1000)
	s.game.Player().X = 600
	s.talkThrough()
	s.Require().Equal(StateBattle, s.game.State())
	s.Equal("Kyle the Elf King", s.game.Battle().Enemy().GetName())

	s.step(Input{SelectNext: true})
	for i := 0; i < 2; i++ {
		s.confirm()
		s.waitForEnemy()
	}
	s.confirm()

	s.Require().Equal(StateVictory, s.game.State())
	s.True(s.game.QuestComplete())
	s.Equal(VictoryFrames, s.game.VictoryTimer())

	s.idle(VictoryFrames - 1)
	s.Equal(StateVictory, s.game.State())
	s.Equal(1, s.game.VictoryTimer())

	s.idle(1)
	s.Equal(StateExplore, s.game.State())
}

func (s *GameTestSuite) TestDefeatAndRestart() {
	s.game.questComplete = true
	p := s.game.Player()
	p.TakeDamage(90)
	p.X = 400
	s.talkThrough()

	s.confirm()
	s.waitForEnemy()
	s.Require().Equal(StateGameOver, s.game.State())
	s.True(p.IsDead())
	s.Equal(55, s.kennyHP())

	s.confirm()
	s.Equal(StateGameOver, s.game.State(), "only restart leaves game over")

	s.step(Input{Restart: true})
	s.Equal(StateExplore, s.game.State())
	s.Equal(100, p.HP)
	s.Equal(100, p.X)
	s.Equal(400, p.Y)
	s.Equal(80, s.kennyHP())
	s.True(s.game.QuestComplete(), "quest flag survives restart")
}

func (s *GameTestSuite) TestRestartRevivesDefeatedEnemies() {
	s.game.Enemies()[0].TakeDamage(1000)
	s.game.state = StateGameOver

	s.step(Input{Restart: true})
	s.False(s.game.Enemies()[0].IsDead())
}

func TestGameTestSuite(t *testing.T) {
	suite.Run(t, new(GameTestSuite))
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateExplore, "explore"},
		{StateDialog, "dialog"},
		{StateBattle, "battle"},
		{StateGameOver, "game_over"},
		{StateVictory, "victory"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		got := tt.state.String()
		if got != tt.expected {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.expected)
		}
	}
}

func TestInputHeading(t *testing.T) {
	tests := []struct {
		name   string
		in     Input
		dx, dy int
		dir    world.Direction
	}{
		{"none", Input{}, 0, 0, world.DirNone},
		{"left", Input{Left: true}, -1, 0, world.DirLeft},
		{"opposite keys cancel", Input{Left: true, Right: true}, 0, 0, world.DirNone},
		{"diagonal faces horizontally", Input{Right: true, Up: true}, 1, -1, world.DirRight},
		{"down", Input{Down: true}, 0, 1, world.DirDown},
	}

	for _, tt := range tests {
		dx, dy := tt.in.Axis()
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("%s: Axis() = (%d,%d), want (%d,%d)", tt.name, dx, dy, tt.dx, tt.dy)
		}
		if got := tt.in.Heading(); got != tt.dir {
			t.Errorf("%s: Heading() = %v, want %v", tt.name, got, tt.dir)
		}
	}
}
