package render

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Fixed interface colours
var (
	RgbBackground = tcell.NewRGBColor(0, 0, 0)       // Night sky
	RgbHUDText    = tcell.NewRGBColor(180, 180, 180) // Light gray
	RgbHUDWarn    = tcell.NewRGBColor(255, 165, 0)   // Orange for paused layers
)

// colourCache memoizes hex parsing; layers repeat the same few colours every frame
var colourCache sync.Map // string -> colorful.Color

// ParseColour decodes #rgb or #rrggbb
func ParseColour(hex string) (colorful.Color, error) {
	if c, ok := colourCache.Load(hex); ok {
		return c.(colorful.Color), nil
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid colour %q: %w", hex, err)
	}
	colourCache.Store(hex, c)
	return c, nil
}

// Blend composites fg over bg at the given opacity
func Blend(fg, bg colorful.Color, opacity float64) colorful.Color {
	switch {
	case opacity <= 0:
		return bg
	case opacity >= 1:
		return fg
	}
	return bg.BlendRgb(fg, opacity).Clamped()
}

// ToTcell converts to a 24-bit terminal colour
func ToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// FromTcell converts a terminal colour back, treating default colours as black
func FromTcell(c tcell.Color) colorful.Color {
	r, g, b := c.RGB()
	if r < 0 {
		return colorful.Color{}
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}
