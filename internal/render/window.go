// Package render draws the game in a desktop window using Ebitengine.
package render

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/samdwyer/stickquest/internal/assets"
	"github.com/samdwyer/stickquest/internal/game"
)

// Window adapts a game.Game to ebiten.Game. Update steps the game once per
// tick; Draw only reads it.
type Window struct {
	ctx    context.Context
	game   *game.Game
	lib    *assets.Library
	keys   keyboard
	text   *textCache
	images map[image.Image]*ebiten.Image

	width, height int
}

var _ ebiten.Game = (*Window)(nil)

// NewWindow creates the window adapter for g, loading images from lib.
func NewWindow(ctx context.Context, g *game.Game, lib *assets.Library) *Window {
	s := g.Settings()
	return &Window{
		ctx:    ctx,
		game:   g,
		lib:    lib,
		keys:   ebitenKeyboard{},
		text:   newTextCache(),
		images: make(map[image.Image]*ebiten.Image),
		width:  s.Window.Width,
		height: s.Window.Height,
	}
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	if w.ctx.Err() != nil {
		return ebiten.Termination
	}
	err := w.game.Update(w.ctx, readInput(w.keys))
	if errors.Is(err, game.ErrQuit) {
		return ebiten.Termination
	}
	return err
}

// Layout implements ebiten.Game. The logical screen is always the
// configured viewport; Ebitengine scales it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.width, w.height
}

// image returns the GPU copy of a library image.
func (w *Window) image(src image.Image) *ebiten.Image {
	if img, ok := w.images[src]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(src)
	w.images[src] = img
	return img
}

// Run opens the window and blocks until the player quits or closes it.
func Run(ctx context.Context, g *game.Game, lib *assets.Library) error {
	s := g.Settings()
	ebiten.SetWindowSize(s.Window.Width, s.Window.Height)
	ebiten.SetWindowTitle(s.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(s.Game.FrameRate)

	if err := ebiten.RunGame(NewWindow(ctx, g, lib)); err != nil {
		return fmt.Errorf("failed to run window: %w", err)
	}
	return nil
}
