package gamedata

import (
	"encoding/json"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an opaque color stored as three 0-255 channels.
// In JSON it is either a [r, g, b] array or a "#RRGGBB" string.
type RGB [3]uint8

// Common colors used by the frontends when the settings document has none.
var (
	White = RGB{255, 255, 255}
	Black = RGB{0, 0, 0}
	Gold  = RGB{255, 215, 0}
)

// UnmarshalJSON accepts both the array and the hex string form.
func (c *RGB) UnmarshalJSON(data []byte) error {
	var hex string
	if err := json.Unmarshal(data, &hex); err == nil {
		parsed, err := ParseHexColor(hex)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}

	var channels []int
	if err := json.Unmarshal(data, &channels); err != nil {
		return fmt.Errorf("color must be [r, g, b] or \"#RRGGBB\": %w", err)
	}
	if len(channels) != 3 {
		return fmt.Errorf("color needs 3 channels, got %d", len(channels))
	}
	for i, v := range channels {
		if v < 0 || v > 255 {
			return fmt.Errorf("color channel %d out of range: %d", i, v)
		}
		c[i] = uint8(v)
	}
	return nil
}

// MarshalJSON writes the array form so bootstrapped files match the built-in document.
func (c RGB) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]int{int(c[0]), int(c[1]), int(c[2])})
}

// RGBA converts to an opaque image/color value.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 0xff}
}

// TCell converts to a true-color terminal color.
func (c RGB) TCell() tcell.Color {
	return tcell.NewRGBColor(int32(c[0]), int32(c[1]), int32(c[2]))
}

// Lighten returns the color blended toward white by amount (0-1).
func (c RGB) Lighten(amount float64) RGB {
	return c.blend(White, amount)
}

// Darken returns the color blended toward black by amount (0-1).
func (c RGB) Darken(amount float64) RGB {
	return c.blend(Black, amount)
}

func (c RGB) blend(other RGB, amount float64) RGB {
	a, _ := colorful.MakeColor(c.RGBA())
	b, _ := colorful.MakeColor(other.RGBA())
	r, g, bl := a.BlendRgb(b, clamp01(amount)).Clamped().RGB255()
	return RGB{r, g, bl}
}

// HealthColor picks a bar color for the given health fraction, running from
// the empty color at 0 to the full color at 1 through a perceptual blend.
func HealthColor(empty, full RGB, fraction float64) RGB {
	switch {
	case fraction <= 0:
		return empty
	case fraction >= 1:
		return full
	}
	a, _ := colorful.MakeColor(empty.RGBA())
	b, _ := colorful.MakeColor(full.RGBA())
	r, g, bl := a.BlendLab(b, fraction).Clamped().RGB255()
	return RGB{r, g, bl}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to an RGB.
func ParseHexColor(hex string) (RGB, error) {
	// Remove leading # if present
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("invalid hex color length: %s", hex)
	}

	r, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid red component in %s: %w", hex, err)
	}

	g, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid green component in %s: %w", hex, err)
	}

	b, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid blue component in %s: %w", hex, err)
	}

	return RGB{uint8(r), uint8(g), uint8(b)}, nil
}
