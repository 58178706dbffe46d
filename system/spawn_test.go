package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/snowfall/config"
	"github.com/lixenwraith/snowfall/vmath"
)

func TestRequiredSnowflakes(t *testing.T) {
	tests := []struct {
		name                   string
		width, height, density float64
		want                   int
	}{
		{"reference", 1920, 1080, 200, 200},
		{"half area", 960, 1080, 200, 100},
		{"quarter", 960, 540, 200, 50},
		{"rounds", 100, 100, 200, 1},
		{"rounds down", 10, 10, 200, 0},
		{"zero density", 1920, 1080, 0, 0},
		{"zero width", 0, 1080, 200, 0},
		{"negative", -5, 1080, 200, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RequiredSnowflakes(tt.width, tt.height, tt.density))
		})
	}
}

func TestRequiredSnowflakesQuadruplesWithDoubledSides(t *testing.T) {
	for _, size := range [][2]float64{{640, 360}, {800, 600}, {1234, 567}} {
		base := RequiredSnowflakes(size[0], size[1], 150)
		doubled := RequiredSnowflakes(size[0]*2, size[1]*2, 150)
		assert.InDelta(t, float64(base*4), float64(doubled), 2, "size %v", size)
	}
}

func TestMakeSnowflakesWithinBounds(t *testing.T) {
	layer := config.DefaultSimpleLayer
	layer.Mass = config.Bounds{Min: 2, Max: 4}
	layer.Size = config.Bounds{Min: 1, Max: 3}
	layer.Opacity = config.Bounds{Min: 0.5, Max: 1}

	flakes := MakeSnowflakes(vmath.NewFastRand(99), 500, layer, 320, 200)
	require.Len(t, flakes, 500)

	for i, s := range flakes {
		if s.Position.X < 0 || s.Position.X >= 320 || s.Position.Y < 0 || s.Position.Y >= 200 {
			t.Fatalf("flake %d position %v outside viewport", i, s.Position)
		}
		assert.GreaterOrEqual(t, s.Mass, 2.0)
		assert.Less(t, s.Mass, 4.0)
		assert.GreaterOrEqual(t, s.Size, 1.0)
		assert.Less(t, s.Size, 3.0)
		assert.Equal(t, s.Size, s.RenderedSize)
		assert.GreaterOrEqual(t, s.Opacity, 0.5)
		assert.Less(t, s.Opacity, 1.0)
		assert.GreaterOrEqual(t, s.Noise, 0.0)
		assert.Less(t, s.Noise, 10.0)
		assert.GreaterOrEqual(t, s.Rotation, 0.0)
		assert.Less(t, s.Rotation, 360.0)
		assert.GreaterOrEqual(t, s.Random, 0.0)
		assert.Less(t, s.Random, 1.0)
		assert.Zero(t, s.Time)
	}
}

func TestMakeSnowflakesFixedDraws(t *testing.T) {
	rng := &vmath.FixedRand{Values: []float64{0.5}}
	layer := config.DefaultSimpleLayer

	flakes := MakeSnowflakes(rng, 1, layer, 100, 40)
	require.Len(t, flakes, 1)
	s := flakes[0]
	assert.Equal(t, vmath.V2F(50, 20), s.Position)
	assert.Equal(t, 2.0, s.Mass)
	assert.Equal(t, 2.0, s.Size)
	assert.Equal(t, 5.0, s.Noise)
	assert.Equal(t, 180.0, s.Rotation)
	assert.Equal(t, 0.5, s.Opacity)
	assert.Equal(t, 0.5, s.Random)
}

func TestMakeSnowflakesEmpty(t *testing.T) {
	assert.Nil(t, MakeSnowflakes(vmath.NewFastRand(1), 0, config.DefaultSimpleLayer, 10, 10))
}
