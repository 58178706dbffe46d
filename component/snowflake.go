package component

import (
	"github.com/lixenwraith/snowfall/vmath"
)

// Snowflake is one particle of a layer
// Created in batches by the spawner and replaced wholesale on restart
type Snowflake struct {
	// Pixel position of the flake centre
	Position vmath.Vec2F

	// Scales wind and gravity displacement
	Mass float64

	// Target radius in pixels
	Size float64

	// Drawn radius; lags Size while growing back in after a respawn
	RenderedSize float64

	// Fixed sway phase offset, [0, 10)
	Noise float64

	// Sprite rotation in degrees
	Rotation float64

	// Seconds alive, drives the sway phase
	Time float64

	// Fixed jitter in [0, 1) added to mass
	Random float64

	Opacity float64
}
