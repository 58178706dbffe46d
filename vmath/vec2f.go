package vmath

import (
	"math"
)

// Vec2F is a float64 2D vector in screen space
// X grows right, Y grows down, so 90° points down the screen
type Vec2F struct {
	X, Y float64
}

func V2F(x, y float64) Vec2F {
	return Vec2F{X: x, Y: y}
}

// V2FFromAngle builds a vector of the given length pointing at deg
// Angles are degrees clockwise from the positive X axis
func V2FFromAngle(deg, strength float64) Vec2F {
	rad := DegToRad(deg)
	return Vec2F{math.Cos(rad) * strength, math.Sin(rad) * strength}
}

func V2FAdd(a, b Vec2F) Vec2F {
	return Vec2F{a.X + b.X, a.Y + b.Y}
}

func V2FSub(a, b Vec2F) Vec2F {
	return Vec2F{a.X - b.X, a.Y - b.Y}
}

func V2FScale(v Vec2F, s float64) Vec2F {
	return Vec2F{v.X * s, v.Y * s}
}

func V2FDot(a, b Vec2F) float64 {
	return a.X*b.X + a.Y*b.Y
}

func V2FMagSq(v Vec2F) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2FMag(v Vec2F) float64 {
	return math.Sqrt(V2FMagSq(v))
}

func V2FOpposite(v Vec2F) Vec2F {
	return Vec2F{-v.X, -v.Y}
}

// V2FAngle returns the heading of v in degrees, in [0, 360)
func V2FAngle(v Vec2F) float64 {
	return NormalizeDegrees(RadToDeg(math.Atan2(v.Y, v.X)))
}

// Clone returns a copy; Vec2F is a value type so this is plain assignment
func (v Vec2F) Clone() Vec2F {
	return v
}

// --- Angles ---

func DegToRad(deg float64) float64 { return deg * math.Pi / 180 }
func RadToDeg(rad float64) float64 { return rad * 180 / math.Pi }

// NormalizeDegrees wraps deg into [0, 360)
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
