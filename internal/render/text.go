package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/samdwyer/stickquest/internal/gamedata"
)

// Text sizes, as multiples of the 7x13 base face.
const (
	textLarge = 2.0
	textSmall = 1.5
)

var face = basicfont.Face7x13

// measureText returns the pixel width of s at the given scale.
func measureText(s string, scale float64) int {
	return int(float64(font.MeasureString(face, s).Round()) * scale)
}

// textCache holds one white rendering per distinct string. Color and scale
// are applied when drawing.
type textCache struct {
	images map[string]*ebiten.Image
}

func newTextCache() *textCache {
	return &textCache{images: make(map[string]*ebiten.Image)}
}

func (t *textCache) image(s string) *ebiten.Image {
	if img, ok := t.images[s]; ok {
		return img
	}

	w := font.MeasureString(face, s).Round()
	h := face.Metrics().Height.Ceil()
	rgba := image.NewNRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	d := &font.Drawer{
		Dst:  rgba,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(0, face.Metrics().Ascent.Round()),
	}
	d.DrawString(s)

	img := ebiten.NewImageFromImage(rgba)
	t.images[s] = img
	return img
}

// draw renders s with its top-left corner at (x, y).
func (t *textCache) draw(dst *ebiten.Image, s string, x, y int, clr gamedata.RGB, scale float64) {
	if s == "" {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr.RGBA())
	dst.DrawImage(t.image(s), op)
}

// drawCentered renders s horizontally centered on the screen.
func (t *textCache) drawCentered(dst *ebiten.Image, s string, y int, clr gamedata.RGB, scale float64) {
	x := (dst.Bounds().Dx() - measureText(s, scale)) / 2
	t.draw(dst, s, x, y, clr, scale)
}
