package render

import (
	"github.com/lixenwraith/snowfall/vmath"
)

// Fill is the paint of a circle; Colour is a #rgb or #rrggbb hex string
type Fill struct {
	Colour  string
	Opacity float64
}

// Line is the stroke of a circle; zero width draws no outline
type Line struct {
	Width float64
}

type CircleStyle struct {
	Fill Fill
	Line Line
}

// Size is a pixel extent
type Size struct {
	Width, Height float64
}

// Surface is the drawing capability layers render through
// Coordinates are pixels with the origin at the top left
type Surface interface {
	Clear()
	Circle(pos vmath.Vec2F, radius float64, style CircleStyle)
	Image(sprite *Sprite, topLeft vmath.Vec2F, size Size)
	// Rotation runs draw with every primitive rotated by degrees about pivot
	Rotation(draw func(), degrees float64, pivot vmath.Vec2F)
}
