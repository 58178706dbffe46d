package physics

import (
	"math"

	"github.com/lixenwraith/snowfall/component"
	"github.com/lixenwraith/snowfall/parameter"
	"github.com/lixenwraith/snowfall/vmath"
)

// Per-frame displacement primitives for snowflakes
// Displacements are per frame, not per second; dt only advances the sway clock

// Weight is the multiplier a flake applies to wind and gravity
func Weight(s *component.Snowflake) float64 {
	return s.Mass + s.Random
}

// AddWind displaces the flake along the live wind vector
func AddWind(s *component.Snowflake, wind vmath.Vec2F) {
	s.Position = vmath.V2FAdd(s.Position, vmath.V2FScale(wind, Weight(s)))
}

// AddGravity displaces the flake along the gravity vector
func AddGravity(s *component.Snowflake, gravity vmath.Vec2F) {
	s.Position = vmath.V2FAdd(s.Position, vmath.V2FScale(gravity, Weight(s)))
}

// AddRotation spins a sprite flake by the fixed per-frame step
func AddRotation(s *component.Snowflake) {
	s.Rotation = vmath.NormalizeDegrees(s.Rotation + parameter.RotationStep)
}

// AddSway applies a sinusoidal offset perpendicular to gravity
// The phase combines the flake clock with its noise so neighbours drift out of step
func AddSway(s *component.Snowflake, gravityAngle, frequency, amplitude float64) {
	phase := s.Time + s.Noise
	offset := amplitude * math.Sin(frequency*s.Time+phase)
	across := vmath.V2FFromAngle(gravityAngle+90, offset)
	s.Position = vmath.V2FAdd(s.Position, across)
}

// FadeIn pulls the rendered size one lerp step toward the target size
func FadeIn(s *component.Snowflake) {
	if s.RenderedSize < s.Size {
		s.RenderedSize = vmath.Lerp(s.RenderedSize, s.Size, parameter.FadeInStep)
	}
}

// Bounds is the viewport a flake wraps within
type Bounds struct {
	Width, Height float64
}

// ScreenWrap relocates a flake that left the viewport to just outside the
// opposite edge, randomizing the coordinate along the other axis
// Returns true if the flake was relocated
func ScreenWrap(s *component.Snowflake, b Bounds, gravity vmath.Vec2F, rng vmath.Rand) bool {
	r := s.RenderedSize
	before := s.Position

	switch {
	case s.Position.X > b.Width+r:
		s.Position = vmath.V2F(-r, rng.Float64()*b.Height)
	case s.Position.X < -r:
		s.Position = vmath.V2F(b.Width+r, rng.Float64()*b.Height)
	case s.Position.Y > b.Height+r:
		s.Position = vmath.V2F(rng.Float64()*b.Width, -r)
	case s.Position.Y < -r:
		s.Position = vmath.V2F(rng.Float64()*b.Width, b.Height+r)
	default:
		return false
	}

	// Re-entering upstream of gravity reads as a new flake, so it grows in
	moved := vmath.V2FSub(s.Position, before)
	if vmath.V2FDot(moved, vmath.V2FOpposite(gravity)) > 0 {
		FadeIn(s)
	}
	return true
}
