package ui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/stickquest/internal/assets"
	"github.com/samdwyer/stickquest/internal/game"
)

// gridCanvas is an in-memory canvas.
type gridCanvas struct {
	w, h  int
	cells [][]rune
	shown int
}

func newGridCanvas(w, h int) *gridCanvas {
	c := &gridCanvas{w: w, h: h}
	c.Clear()
	return c
}

func (c *gridCanvas) Clear() {
	c.cells = make([][]rune, c.h)
	for y := range c.cells {
		c.cells[y] = []rune(strings.Repeat(" ", c.w))
	}
}

func (c *gridCanvas) Show()            { c.shown++ }
func (c *gridCanvas) Size() (int, int) { return c.w, c.h }
func (c *gridCanvas) row(y int) string { return string(c.cells[y]) }

func (c *gridCanvas) all() string {
	rows := make([]string, c.h)
	for y := range rows {
		rows[y] = c.row(y)
	}
	return strings.Join(rows, "\n")
}

func (c *gridCanvas) SetContent(x, y int, cluster []rune, _ tcell.Style) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h || len(cluster) == 0 {
		return
	}
	c.cells[y][x] = cluster[0]
}

type lowRoller struct{}

func (lowRoller) Range(lo, _ int) int { return lo }

func newTestGame(t *testing.T) *game.Game {
	t.Helper()
	g, err := game.New(game.Options{Roller: lowRoller{}})
	require.NoError(t, err)
	return g
}

func step(t *testing.T, g *game.Game, in game.Input) {
	t.Helper()
	require.NoError(t, g.Update(context.Background(), in))
}

func TestRenderExploreHUD(t *testing.T) {
	g := newTestGame(t)
	canvas := newGridCanvas(80, 24)
	r := NewRenderer(canvas, assets.NewLibrary(t.TempDir()))

	r.Render(g)

	assert.Equal(t, 1, canvas.shown)
	assert.Contains(t, canvas.row(0), "HP: 100/100")
	assert.Contains(t, canvas.row(1), "███████████████")
	assert.NotContains(t, canvas.all(), "Press SPACE to interact")
	assert.NotContains(t, canvas.all(), "Stick of Truth")
}

func TestRenderInteractionHint(t *testing.T) {
	g := newTestGame(t)
	g.Player().X = 400
	canvas := newGridCanvas(80, 24)

	NewRenderer(canvas, assets.NewLibrary(t.TempDir())).Render(g)

	assert.Contains(t, canvas.row(22), "Press SPACE to interact with Princess Kenny")
}

func TestRenderDialogAndBattle(t *testing.T) {
	g := newTestGame(t)
	g.Player().X = 400
	canvas := newGridCanvas(80, 24)
	r := NewRenderer(canvas, assets.NewLibrary(t.TempDir()))

	step(t, g, game.Input{Confirm: true})
	r.Render(g)
	assert.Contains(t, canvas.all(), "Mfhhfh !")
	assert.Contains(t, canvas.all(), "Press SPACE to continue...")

	for g.State() == game.StateDialog {
		step(t, g, game.Input{Confirm: true})
	}
	r.Render(g)
	screen := canvas.all()
	assert.Contains(t, screen, "Battle with Princess Kenny started!")
	assert.Contains(t, screen, "> Attack")
	assert.Contains(t, screen, "Warrior Stan: 100/100 HP")
	assert.Contains(t, screen, "Princess Kenny: 80/80 HP")

	step(t, g, game.Input{SelectNext: true})
	r.Render(g)
	assert.Contains(t, canvas.all(), "> Special")
}

func TestRenderGameOver(t *testing.T) {
	g := newTestGame(t)
	p := g.Player()
	p.TakeDamage(95)
	p.X = 400

	step(t, g, game.Input{Confirm: true})
	for g.State() == game.StateDialog {
		step(t, g, game.Input{Confirm: true})
	}
	step(t, g, game.Input{Confirm: true})
	for i := 0; i < 100 && g.State() == game.StateBattle; i++ {
		step(t, g, game.Input{})
	}
	require.Equal(t, game.StateGameOver, g.State())

	canvas := newGridCanvas(80, 24)
	NewRenderer(canvas, assets.NewLibrary(t.TempDir())).Render(g)
	assert.Contains(t, canvas.all(), "GAME OVER")
	assert.Contains(t, canvas.all(), "Press R to restart")
}

func TestKeyStateEdgesLastOneFrame(t *testing.T) {
	var k keyState

	k.handleKey(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	k.handleKey(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))

	in := k.next()
	assert.True(t, in.Confirm)
	assert.True(t, in.Restart)

	in = k.next()
	assert.False(t, in.Confirm)
	assert.False(t, in.Restart)
}

func TestKeyStateMovementHeld(t *testing.T) {
	var k keyState

	k.handleKey(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	k.handleKey(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone))

	for i := 0; i < HoldFrames; i++ {
		in := k.next()
		assert.True(t, in.Left, "frame %d", i)
		assert.True(t, in.Up, "frame %d", i)
		assert.Equal(t, i == 0, in.SelectPrev, "frame %d", i)
	}
	in := k.next()
	assert.False(t, in.Left)
	assert.False(t, in.Up)
}

func TestKeyStateMapping(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want game.Input
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), game.Input{Quit: true}},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone), game.Input{Quit: true}},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), game.Input{Quit: true}},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), game.Input{Confirm: true}},
		{"down arrow", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), game.Input{Down: true, SelectNext: true}},
		{"S", tcell.NewEventKey(tcell.KeyRune, 'S', tcell.ModNone), game.Input{Down: true, SelectNext: true}},
		{"d", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), game.Input{Right: true}},
		{"other rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), game.Input{}},
	}

	for _, tt := range tests {
		var k keyState
		k.handleKey(tt.ev)
		if got := k.next(); got != tt.want {
			t.Errorf("%s: next() = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestPutTextWidths(t *testing.T) {
	canvas := newGridCanvas(10, 1)

	end := putText(canvas, 1, 0, "Hi", tcell.StyleDefault)
	assert.Equal(t, 3, end)
	assert.Equal(t, " Hi       ", canvas.row(0))

	assert.Equal(t, 4, textWidth("日本"))
	assert.Equal(t, 5, putText(canvas, 1, 0, "日本", tcell.StyleDefault))
}

func TestScreenOnSimulation(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	s, err := NewScreenFrom(sim)
	require.NoError(t, err)
	defer s.Close()

	sim.SetSize(40, 12)
	w, h := s.Size()
	assert.Equal(t, 40, w)
	assert.Equal(t, 12, h)

	putText(s, 2, 1, "Stan", tcell.StyleDefault)
	s.Show()

	cells, width, _ := sim.GetContents()
	var got []rune
	for x := 2; x < 6; x++ {
		got = append(got, cells[1*width+x].Runes[0])
	}
	assert.Equal(t, "Stan", string(got))
}

func TestScreenEventsForwardsKeys(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	s, err := NewScreenFrom(sim)
	require.NoError(t, err)

	done := make(chan struct{})
	events := s.Events(done)
	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	timeout := time.After(2 * time.Second)
	for {
		select {
		case ev := <-events:
			if key, ok := ev.(*tcell.EventKey); ok {
				assert.Equal(t, tcell.KeyEnter, key.Key())
				close(done)
				s.Close()
				return
			}
		case <-timeout:
			t.Fatal("no key event forwarded")
		}
	}
}
