package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func TestV2FFromAngle(t *testing.T) {
	tests := []struct {
		name     string
		deg      float64
		strength float64
		want     Vec2F
	}{
		{"east", 0, 1, Vec2F{1, 0}},
		{"down", 90, 1, Vec2F{0, 1}},
		{"west scaled", 180, 2, Vec2F{-2, 0}},
		{"up", 270, 0.5, Vec2F{0, -0.5}},
		{"zero strength", 45, 0, Vec2F{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := V2FFromAngle(tt.deg, tt.strength)
			assert.InDelta(t, tt.want.X, got.X, eps)
			assert.InDelta(t, tt.want.Y, got.Y, eps)
		})
	}
}

func TestV2FArithmetic(t *testing.T) {
	a := V2F(3, 4)
	b := V2F(-1, 2)

	assert.Equal(t, Vec2F{2, 6}, V2FAdd(a, b))
	assert.Equal(t, Vec2F{4, 2}, V2FSub(a, b))
	assert.Equal(t, Vec2F{6, 8}, V2FScale(a, 2))
	assert.Equal(t, 5.0, V2FDot(a, b))
	assert.Equal(t, 5.0, V2FMag(a))
	assert.Equal(t, Vec2F{-3, -4}, V2FOpposite(a))

	c := a.Clone()
	c.X = 10
	assert.Equal(t, 3.0, a.X, "clone must not alias")
}

func TestV2FAngleRoundTrip(t *testing.T) {
	for _, deg := range []float64{0, 30, 90, 179, 181, 270, 359} {
		got := V2FAngle(V2FFromAngle(deg, 3))
		assert.InDelta(t, deg, got, 1e-6, "deg=%v", deg)
	}
}

func TestNormalizeDegrees(t *testing.T) {
	assert.InDelta(t, 270.0, NormalizeDegrees(-90), eps)
	assert.InDelta(t, 90.0, NormalizeDegrees(450), eps)
	assert.InDelta(t, 0.0, NormalizeDegrees(360), eps)
}

func TestEasing(t *testing.T) {
	for _, fn := range []func(float64) float64{Linear, QuadraticOut, QuadraticInOut} {
		assert.InDelta(t, 0.0, fn(0), eps)
		assert.InDelta(t, 1.0, fn(1), eps)
	}
	assert.InDelta(t, 0.5, QuadraticInOut(0.5), eps)
	assert.InDelta(t, 0.125, QuadraticInOut(0.25), eps)
	assert.InDelta(t, 0.75, QuadraticOut(0.5), eps)
	assert.InDelta(t, 0.25, Lerp(0, 10, 0.025), eps)
}

func TestFastRandRange(t *testing.T) {
	r := NewFastRand(42)
	for i := 0; i < 10000; i++ {
		v := r.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64() = %v, out of [0,1)", v)
		}
		b := Between(r, 5, 7)
		if b < 5 || b >= 7 || math.IsNaN(b) {
			t.Fatalf("Between(5,7) = %v", b)
		}
	}
}

func TestFastRandDeterministic(t *testing.T) {
	a, b := NewFastRand(7), NewFastRand(7)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}
	assert.NotZero(t, NewFastRand(0).Next(), "zero seed must not lock the generator")
}

func TestFixedRandCycles(t *testing.T) {
	r := &FixedRand{Values: []float64{0.1, 0.2}}
	assert.Equal(t, 0.1, r.Float64())
	assert.Equal(t, 0.2, r.Float64())
	assert.Equal(t, 0.1, r.Float64())
}
