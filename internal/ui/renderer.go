package ui

import (
	"fmt"
	"image"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/stickquest/internal/assets"
	"github.com/samdwyer/stickquest/internal/dialog"
	"github.com/samdwyer/stickquest/internal/entity"
	"github.com/samdwyer/stickquest/internal/game"
	"github.com/samdwyer/stickquest/internal/gamedata"
)

var (
	yellow     = gamedata.RGB{255, 255, 0}
	promptFill = gamedata.RGB{100, 0, 0}
	victoryBG  = gamedata.RGB{20, 20, 50}
	gameOverBG = gamedata.RGB{50, 0, 0}
)

// Renderer handles drawing the game to the screen. The game's pixel layout
// is scaled down onto the terminal grid; sprites become blocks tinted with
// the average color of their image.
type Renderer struct {
	screen canvas
	lib    *assets.Library
	tints  map[image.Image]gamedata.RGB

	cols, rows int
	viewW      int
	viewH      int
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen canvas, lib *assets.Library) *Renderer {
	return &Renderer{
		screen: screen,
		lib:    lib,
		tints:  make(map[image.Image]gamedata.RGB),
	}
}

// Render draws the current frame of g to the screen.
func (r *Renderer) Render(g *game.Game) {
	s := g.Settings()
	r.cols, r.rows = r.screen.Size()
	r.viewW, r.viewH = s.Window.Width, s.Window.Height
	r.screen.Clear()

	switch g.State() {
	case game.StateExplore:
		r.fillAll(r.tint(assets.Background, r.viewW, r.viewH, assets.BackgroundColor))
		r.drawField(g)
		r.drawHUD(g)
	case game.StateDialog:
		r.fillAll(r.tint(assets.Background, r.viewW, r.viewH, assets.BackgroundColor))
		r.drawSprite(g.Player(), false)
		if c := g.Current(); c != nil {
			r.drawSprite(c, false)
		}
		r.drawDialog(g)
	case game.StateBattle:
		r.fillAll(r.tint(assets.BattleBackground, r.viewW, r.viewH, s.Colors.BattleBG))
		r.drawBattle(g)
	case game.StateVictory:
		r.drawVictory()
	case game.StateGameOver:
		r.drawGameOver(g)
	}

	r.screen.Show()
}

// =============================================================================
// Grid mapping
// =============================================================================

func (r *Renderer) col(px int) int {
	if r.viewW <= 0 {
		return 0
	}
	return px * r.cols / r.viewW
}

func (r *Renderer) row(py int) int {
	if r.viewH <= 0 {
		return 0
	}
	return py * r.rows / r.viewH
}

// tint returns the average color of an image lookup, cached per image.
func (r *Renderer) tint(name string, w, h int, fallback gamedata.RGB) gamedata.RGB {
	img := r.lib.Image(name, w, h, fallback)
	if c, ok := r.tints[img]; ok {
		return c
	}
	c := assets.AverageColor(img)
	r.tints[img] = c
	return c
}

func style(fg, bg gamedata.RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(fg.TCell()).Background(bg.TCell())
}

func (r *Renderer) fill(x, y, w, h int, bg gamedata.RGB) {
	st := style(bg, bg)
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			putRune(r.screen, xx, yy, ' ', st)
		}
	}
}

func (r *Renderer) fillAll(bg gamedata.RGB) {
	r.fill(0, 0, r.cols, r.rows, bg)
}

// box draws a filled rectangle with a single-line border.
func (r *Renderer) box(x, y, w, h int, border, bg gamedata.RGB) {
	r.fill(x, y, w, h, bg)
	st := style(border, bg)
	for xx := x + 1; xx < x+w-1; xx++ {
		putRune(r.screen, xx, y, tcell.RuneHLine, st)
		putRune(r.screen, xx, y+h-1, tcell.RuneHLine, st)
	}
	for yy := y + 1; yy < y+h-1; yy++ {
		putRune(r.screen, x, yy, tcell.RuneVLine, st)
		putRune(r.screen, x+w-1, yy, tcell.RuneVLine, st)
	}
	putRune(r.screen, x, y, tcell.RuneULCorner, st)
	putRune(r.screen, x+w-1, y, tcell.RuneURCorner, st)
	putRune(r.screen, x, y+h-1, tcell.RuneLLCorner, st)
	putRune(r.screen, x+w-1, y+h-1, tcell.RuneLRCorner, st)
}

func (r *Renderer) text(x, y int, s string, fg, bg gamedata.RGB) {
	putText(r.screen, x, y, s, style(fg, bg))
}

func (r *Renderer) centered(y int, s string, fg, bg gamedata.RGB) {
	r.text((r.cols-textWidth(s))/2, y, s, fg, bg)
}

// =============================================================================
// Sprites and bars
// =============================================================================

// drawSprite draws a character as a tinted block with its initial in the
// middle. A walking character shows its lean on the top edge.
func (r *Renderer) drawSprite(c *entity.Character, inBattle bool) {
	x, y := c.DrawPosition(inBattle)
	cx, cy := r.col(x), r.row(y)
	w := max(r.col(x+c.Width)-cx, 1)
	h := max(r.row(y+c.Height)-cy, 1)

	bg := r.tint(c.Image, c.Width, c.Height, c.Color)
	r.fill(cx, cy, w, h, bg)

	fg := gamedata.White
	if int(bg[0])+int(bg[1])+int(bg[2]) > 450 {
		fg = gamedata.Black
	}
	initial := []rune(c.Name)
	if len(initial) > 0 {
		putRune(r.screen, cx+w/2, cy+h/2, initial[0], style(fg, bg))
	}

	switch {
	case c.Tilt() > 0:
		putRune(r.screen, cx+w/2, cy, '\\', style(fg, bg))
	case c.Tilt() < 0:
		putRune(r.screen, cx+w/2, cy, '/', style(fg, bg))
	}
}

// bar draws a width-cell health bar shading from empty toward full.
func (r *Renderer) bar(x, y, width, hp, maxHP int, full, empty gamedata.RGB) {
	filled := 0
	if maxHP > 0 && hp > 0 {
		filled = min(hp*width/maxHP, width)
	}
	frac := float64(hp) / float64(max(maxHP, 1))
	clr := gamedata.HealthColor(empty, full, frac)
	for i := 0; i < width; i++ {
		if i < filled {
			putRune(r.screen, x+i, y, '█', style(clr, clr))
		} else {
			putRune(r.screen, x+i, y, '░', style(empty.Darken(0.4), gamedata.Black))
		}
	}
}

// =============================================================================
// Explore
// =============================================================================

func (r *Renderer) drawField(g *game.Game) {
	r.drawSprite(g.Player(), false)
	for _, e := range g.Enemies() {
		if !e.IsDead() {
			r.drawSprite(e, false)
		}
	}
	for _, npc := range g.NPCs() {
		r.drawSprite(npc, false)
	}
}

func (r *Renderer) drawHUD(g *game.Game) {
	p := g.Player()
	colors := g.Settings().Colors

	r.text(1, 0, fmt.Sprintf("HP: %d/%d", p.HP, p.MaxHP), colors.White, colors.Black)
	r.bar(1, 1, 15, p.HP, p.MaxHP, colors.Green, colors.Red)

	if c := g.NearbyHint(); c != nil {
		r.centered(r.rows-2, "Press SPACE to interact with "+c.Name, colors.White, colors.Black)
	}

	if g.QuestComplete() {
		label := "Stick of Truth"
		r.text(r.cols-textWidth(label)-1, 0, label, gamedata.Gold, colors.Black)
	}
}

// =============================================================================
// Dialog
// =============================================================================

func (r *Renderer) drawDialog(g *game.Game) {
	line, ok := g.Dialog().Current()
	if !ok {
		return
	}
	colors := g.Settings().Colors

	x, y := 1, r.row(400)
	w, h := r.cols-2, max(r.rows-y-1, 5)
	r.box(x, y, w, h, colors.White, colors.DialogBG)

	textX := x + 2
	if line.Portrait != "" {
		tint := r.tint(line.Portrait, 100, 100, gamedata.RGB{150, 150, 150})
		r.fill(x+2, y+1, 6, min(3, h-2), tint)
		textX = x + 10
	}

	limit := x + w - 2 - textX
	for i, l := range dialog.Wrap(line.Text, limit, textWidth) {
		if y+1+i >= y+h-2 {
			break
		}
		r.text(textX, y+1+i, l, colors.White, colors.DialogBG)
	}

	hint := "Press SPACE to continue..."
	r.text(x+w-textWidth(hint)-2, y+h-2, hint, colors.White, colors.DialogBG)
}

// =============================================================================
// Battle
// =============================================================================

func (r *Renderer) drawBattle(g *game.Game) {
	b := g.Battle()
	p := g.Player()
	colors := g.Settings().Colors
	barW := max(r.col(200), 10)

	r.drawSprite(p, true)
	r.text(r.col(50), 0, fmt.Sprintf("%s: %d/%d HP", p.Name, p.HP, p.MaxHP), colors.White, colors.Black)
	r.bar(r.col(50), 1, barW, p.HP, p.MaxHP, colors.Green, colors.Red)

	if e := g.Current(); e != nil {
		r.drawSprite(e, true)
		label := fmt.Sprintf("%s: %d/%d HP", e.Name, e.HP, e.MaxHP)
		lx := min(r.col(r.viewW-250), r.cols-textWidth(label)-1)
		r.text(lx, 0, label, colors.White, colors.Black)
		r.bar(r.col(r.viewW-250), 1, barW, e.HP, e.MaxHP, colors.Green, colors.Red)
	}

	r.centered(r.row(150), b.Message(), colors.White, colors.Black)

	if b.PromptShown() {
		prompt := " Press SPACE to BLOCK! "
		r.centered(r.row(200), prompt, yellow, promptFill)
	}

	if b.Blocking() {
		r.text(r.col(p.BattleX), max(r.row(p.BattleY)-1, 0), "BLOCKING!", colors.Green, colors.Black)
	}

	if b.MenuVisible() {
		names := b.ActionNames()
		x, y := r.col(50), r.row(200)
		r.box(x, y, 14, len(names)+2, colors.White, colors.DialogBG)
		for i, name := range names {
			fg, marker := colors.White, "  "
			if i == b.Selected() {
				fg, marker = colors.Green, "> "
			}
			r.text(x+1, y+1+i, marker+name, fg, colors.DialogBG)
		}
	}
}

// =============================================================================
// End screens
// =============================================================================

func (r *Renderer) drawVictory() {
	r.fillAll(victoryBG)

	tint := r.tint(assets.StickOfTruth, 300, 300, assets.StickOfTruthColor)
	w, h := max(r.col(300)/3, 2), max(r.row(300)/3, 2)
	r.fill((r.cols-w)/2, r.row(r.viewH/2-50)-h/2, w, h, tint)

	r.centered(r.row(r.viewH/2+100), "You got the Stick of Truth!", gamedata.Gold, victoryBG)
	r.centered(r.row(r.viewH/2+150), "You are now the ruler of the Kingdom!", gamedata.Gold, victoryBG)
}

func (r *Renderer) drawGameOver(g *game.Game) {
	colors := g.Settings().Colors
	r.fillAll(gameOverBG)

	r.centered(r.row(r.viewH/2-50), "GAME OVER", colors.Red, gameOverBG)
	r.centered(r.row(r.viewH/2+50), "Press R to restart", colors.White, gameOverBG)
}
