// Package assets looks up images by logical file name. Lookups never fail:
// a missing or unreadable file yields a solid placeholder in the caller's color.
package assets

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/samdwyer/stickquest/internal/gamedata"
)

// DefaultDir is where images are looked up when no directory is given.
const DefaultDir = "images"

// Well-known scenery images.
const (
	Background       = "background.png"
	BattleBackground = "battle_background.png"
	StickOfTruth     = "stick_of_truth.png"
)

// Placeholder colors for the scenery images.
var (
	BackgroundColor   = gamedata.RGB{100, 100, 200}
	StickOfTruthColor = gamedata.RGB{220, 180, 50}
)

type key struct {
	name     string
	w, h     int
	fallback gamedata.RGB
}

// Library loads, scales and caches images from one directory.
type Library struct {
	dir   string
	cache map[key]image.Image
}

// NewLibrary creates a library reading from dir.
func NewLibrary(dir string) *Library {
	if dir == "" {
		dir = DefaultDir
	}
	return &Library{
		dir:   dir,
		cache: make(map[key]image.Image),
	}
}

// Dir returns the directory images are read from.
func (l *Library) Dir() string {
	return l.dir
}

// Image returns name decoded and scaled to w×h. When the file is missing or
// cannot be decoded the result is a w×h rectangle of fallback.
func (l *Library) Image(name string, w, h int, fallback gamedata.RGB) image.Image {
	k := key{name: name, w: w, h: h, fallback: fallback}
	if img, ok := l.cache[k]; ok {
		return img
	}

	img, err := l.load(name, w, h)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("Warning: using placeholder for %s: %v", name, err)
		}
		img = Placeholder(w, h, fallback)
	}
	l.cache[k] = img
	return img
}

func (l *Library) load(name string, w, h int) (image.Image, error) {
	if name == "" {
		return nil, fs.ErrNotExist
	}
	f, err := os.Open(filepath.Join(l.dir, name))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return Scale(src, w, h), nil
}

// Placeholder returns a w×h image filled with c.
func Placeholder(w, h int, c gamedata.RGB) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	draw.Draw(img, img.Bounds(), &image.Uniform{c.RGBA()}, image.Point{}, draw.Src)
	return img
}

// Scale resizes src to exactly w×h, ignoring aspect ratio.
func Scale(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// AverageColor returns the mean opaque color of img, or black for a fully
// transparent image. The terminal frontend uses it to tint sprites.
func AverageColor(img image.Image) gamedata.RGB {
	var r, g, b, n uint64
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.A == 0 {
				continue
			}
			r += uint64(c.R)
			g += uint64(c.G)
			b += uint64(c.B)
			n++
		}
	}
	if n == 0 {
		return gamedata.Black
	}
	return gamedata.RGB{uint8(r / n), uint8(g / n), uint8(b / n)}
}
