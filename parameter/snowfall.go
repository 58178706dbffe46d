package parameter

import (
	"time"
)

// Density Scaling
const (
	// ReferenceWidth/Height is the resolution at which layer density is specified
	ReferenceWidth  = 1920.0
	ReferenceHeight = 1080.0
)

// Snowflake Attributes
const (
	// NoiseMax bounds the per-flake sway phase offset, drawn in [0, NoiseMax)
	NoiseMax = 10.0

	// RotationMax bounds the initial sprite rotation in degrees
	RotationMax = 360.0

	// RotationStep is degrees added to image flake rotation every frame
	RotationStep = 1.0

	// FadeInStep is the lerp fraction applied to rendered size when a flake re-enters against gravity
	FadeInStep = 0.025
)

// Frame Loop
const (
	// FrameInterval is the default update/render interval (~60 FPS)
	FrameInterval = 16 * time.Millisecond

	// MaxFrameDelta caps dt after a stall so gust timelines do not skip whole phases
	MaxFrameDelta = 250 * time.Millisecond

	// PostQueueSize is the buffered capacity of closures waiting for the frame loop
	PostQueueSize = 64
)

// Terminal Mapping
const (
	// DefaultCellWidth/Height is the pixel footprint of one terminal cell
	DefaultCellWidth  = 8.0
	DefaultCellHeight = 16.0

	// SpriteAlphaThreshold is the minimum sampled alpha for an image cell to be drawn
	SpriteAlphaThreshold = 0.2
)
