package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/samdwyer/stickquest/internal/assets"
	"github.com/samdwyer/stickquest/internal/dialog"
	"github.com/samdwyer/stickquest/internal/entity"
	"github.com/samdwyer/stickquest/internal/game"
	"github.com/samdwyer/stickquest/internal/gamedata"
)

// Screen layout, in logical pixels.
const (
	portraitSize = 100
	stickSize    = 300
	stickIcon    = 50

	battleBarWidth  = 200
	battleBarHeight = 20
	hudBarWidth     = 150
	hudBarHeight    = 15

	lineHeight = 30
)

var (
	yellow        = gamedata.RGB{255, 255, 0}
	promptFill    = gamedata.RGB{100, 0, 0}
	portraitColor = gamedata.RGB{150, 150, 150}
	victoryBG     = gamedata.RGB{20, 20, 50}
	gameOverBG    = gamedata.RGB{50, 0, 0}
	hudShade      = color.RGBA{0, 0, 0, 150}
)

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	g := w.game
	colors := g.Settings().Colors
	screen.Fill(colors.Black.RGBA())

	switch g.State() {
	case game.StateExplore:
		w.drawScenery(screen, assets.Background, assets.BackgroundColor)
		w.drawField(screen)
		w.drawHUD(screen)
	case game.StateDialog:
		w.drawScenery(screen, assets.Background, assets.BackgroundColor)
		w.drawSprite(screen, g.Player(), false)
		if c := g.Current(); c != nil {
			w.drawSprite(screen, c, false)
		}
		w.drawDialog(screen, g.Dialog())
	case game.StateBattle:
		w.drawScenery(screen, assets.BattleBackground, colors.BattleBG)
		w.drawBattle(screen)
	case game.StateVictory:
		w.drawVictory(screen)
	case game.StateGameOver:
		w.drawGameOver(screen)
	}
}

func (w *Window) drawScenery(screen *ebiten.Image, name string, fallback gamedata.RGB) {
	screen.DrawImage(w.image(w.lib.Image(name, w.width, w.height, fallback)), nil)
}

// drawSprite draws a character rotated about its center by its walk tilt.
func (w *Window) drawSprite(screen *ebiten.Image, c *entity.Character, inBattle bool) {
	img := w.image(w.lib.Image(c.Image, c.Width, c.Height, c.Color))
	x, y := c.DrawPosition(inBattle)
	hw, hh := float64(c.Width)/2, float64(c.Height)/2

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-hw, -hh)
	// Positive tilt leans counter-clockwise; GeoM rotates clockwise.
	op.GeoM.Rotate(-float64(c.Tilt()) * math.Pi / 180)
	op.GeoM.Translate(float64(x)+hw, float64(y)+hh)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

func (w *Window) drawField(screen *ebiten.Image) {
	g := w.game
	w.drawSprite(screen, g.Player(), false)
	for _, e := range g.Enemies() {
		if !e.IsDead() {
			w.drawSprite(screen, e, false)
		}
	}
	for _, npc := range g.NPCs() {
		w.drawSprite(screen, npc, false)
	}
}

// =============================================================================
// Bars and boxes
// =============================================================================

func fillRect(dst *ebiten.Image, x, y, width, height int, clr color.Color) {
	vector.FillRect(dst, float32(x), float32(y), float32(width), float32(height), clr, false)
}

func strokeRect(dst *ebiten.Image, x, y, width, height, stroke int, clr color.Color) {
	vector.StrokeRect(dst, float32(x), float32(y), float32(width), float32(height), float32(stroke), clr, false)
}

// barFill returns how many pixels of a width-wide bar hp/maxHP covers.
func barFill(hp, maxHP, width int) int {
	if maxHP <= 0 || hp <= 0 {
		return 0
	}
	if hp >= maxHP {
		return width
	}
	return hp * width / maxHP
}

func (w *Window) drawHealthBar(dst *ebiten.Image, x, y, width, height, hp, maxHP int) {
	colors := w.game.Settings().Colors
	frac := float64(hp) / float64(max(maxHP, 1))

	fillRect(dst, x, y, width, height, colors.Red.RGBA())
	fillRect(dst, x, y, barFill(hp, maxHP, width), height, gamedata.HealthColor(colors.Red, colors.Green, frac).RGBA())
	strokeRect(dst, x, y, width, height, 2, colors.Black.RGBA())
}

// =============================================================================
// Explore HUD
// =============================================================================

func (w *Window) drawHUD(screen *ebiten.Image) {
	g := w.game
	p := g.Player()
	colors := g.Settings().Colors

	fillRect(screen, 10, 10, hudBarWidth+10, 50, hudShade)
	w.drawHealthBar(screen, 15, 35, hudBarWidth, hudBarHeight, p.HP, p.MaxHP)
	w.text.draw(screen, fmt.Sprintf("HP: %d/%d", p.HP, p.MaxHP), 15, 15, colors.White, textSmall)

	if c := g.NearbyHint(); c != nil {
		w.text.drawCentered(screen, "Press SPACE to interact with "+c.Name, w.height-50, colors.White, textSmall)
	}

	if g.QuestComplete() {
		icon := w.image(w.lib.Image(assets.StickOfTruth, stickIcon, stickIcon, assets.StickOfTruthColor))
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(w.width-60), 10)
		screen.DrawImage(icon, op)
		w.text.draw(screen, "Stick of Truth", w.width-130, 60, gamedata.Gold, textSmall)
	}
}

// =============================================================================
// Dialog box
// =============================================================================

func (w *Window) drawDialog(screen *ebiten.Image, s *dialog.Session) {
	line, ok := s.Current()
	if !ok {
		return
	}
	colors := w.game.Settings().Colors

	boxW := w.width - 100
	fillRect(screen, 50, 400, boxW, 150, colors.DialogBG.RGBA())
	strokeRect(screen, 50, 400, boxW, 150, 2, colors.White.RGBA())

	textX := 70
	if line.Portrait != "" {
		fillRect(screen, 60, 410, portraitSize, portraitSize, colors.DialogBG.Lighten(0.1).RGBA())
		portrait := w.image(w.lib.Image(line.Portrait, portraitSize, portraitSize, portraitColor))
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(60, 410)
		screen.DrawImage(portrait, op)
		textX = 180
	}

	measure := func(s string) int { return measureText(s, textLarge) }
	for i, l := range dialog.Wrap(line.Text, w.width-200, measure) {
		w.text.draw(screen, l, textX, 430+i*lineHeight, colors.White, textLarge)
	}

	w.text.draw(screen, "Press SPACE to continue...", w.width-250, 520, colors.White, textSmall)
}

// =============================================================================
// Battle screen
// =============================================================================

func (w *Window) drawBattle(screen *ebiten.Image) {
	g := w.game
	b := g.Battle()
	p := g.Player()
	colors := g.Settings().Colors

	w.drawSprite(screen, p, true)
	if e := g.Current(); e != nil {
		w.drawSprite(screen, e, true)
		w.drawBattleBar(screen, e.Name, e.HP, e.MaxHP, w.width-250)
	}
	w.drawBattleBar(screen, p.Name, p.HP, p.MaxHP, 50)

	w.text.drawCentered(screen, b.Message(), 150, colors.White, textLarge)

	if b.PromptShown() {
		boxX := w.width/2 - 150
		fillRect(screen, boxX, 200, 300, 50, promptFill.RGBA())
		strokeRect(screen, boxX, 200, 300, 50, 3, yellow.RGBA())
		w.text.drawCentered(screen, "Press SPACE to BLOCK!", 210, yellow, textLarge)
	}

	if b.Blocking() {
		w.text.draw(screen, "BLOCKING!", p.BattleX, p.BattleY-40, colors.Green, textLarge)
	}

	if b.MenuVisible() {
		names := b.ActionNames()
		fillRect(screen, 50, 200, 200, lineHeight*len(names)+20, colors.DialogBG.RGBA())
		strokeRect(screen, 50, 200, 200, lineHeight*len(names)+20, 2, colors.White.RGBA())
		for i, name := range names {
			clr := colors.White
			if i == b.Selected() {
				clr = colors.Green
				fillRect(screen, 52, 205+i*lineHeight, 196, lineHeight, colors.DialogBG.Lighten(0.15).RGBA())
			}
			w.text.draw(screen, name, 70, 210+i*lineHeight, clr, textLarge)
		}
	}
}

// drawBattleBar draws a health bar with its "name: hp/max HP" label above it.
// The label is pulled left when it would run off the screen.
func (w *Window) drawBattleBar(screen *ebiten.Image, name string, hp, maxHP, x int) {
	w.drawHealthBar(screen, x, 50, battleBarWidth, battleBarHeight, hp, maxHP)

	label := fmt.Sprintf("%s: %d/%d HP", name, hp, maxHP)
	lx := min(x, w.width-measureText(label, textSmall)-10)
	w.text.draw(screen, label, lx, 25, w.game.Settings().Colors.White, textSmall)
}

// =============================================================================
// End screens
// =============================================================================

func (w *Window) drawVictory(screen *ebiten.Image) {
	screen.Fill(victoryBG.RGBA())

	stick := w.image(w.lib.Image(assets.StickOfTruth, stickSize, stickSize, assets.StickOfTruthColor))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(w.width/2-stickSize/2), float64(w.height/2-50-stickSize/2))
	screen.DrawImage(stick, op)

	w.text.drawCentered(screen, "You got the Stick of Truth!", w.height/2+100, gamedata.Gold, textLarge)
	w.text.drawCentered(screen, "You are now the ruler of the Kingdom!", w.height/2+150, gamedata.Gold, textLarge)
}

func (w *Window) drawGameOver(screen *ebiten.Image) {
	colors := w.game.Settings().Colors
	screen.Fill(gameOverBG.RGBA())

	w.text.drawCentered(screen, "GAME OVER", w.height/2-50, colors.Red, textLarge)
	w.text.drawCentered(screen, "Press R to restart", w.height/2+50, colors.White, textLarge)
}
