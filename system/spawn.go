package system

import (
	"math"

	"github.com/lixenwraith/snowfall/component"
	"github.com/lixenwraith/snowfall/config"
	"github.com/lixenwraith/snowfall/parameter"
	"github.com/lixenwraith/snowfall/vmath"
)

// RequiredSnowflakes scales a reference-resolution density to the viewport area
// Keeps visual density constant across viewport sizes
func RequiredSnowflakes(width, height, density float64) int {
	if width <= 0 || height <= 0 || density <= 0 {
		return 0
	}
	area := width * height
	return int(math.Round(density * area / (parameter.ReferenceWidth * parameter.ReferenceHeight)))
}

// MakeSnowflakes allocates count flakes scattered over the viewport
// Attributes are drawn uniformly within the layer bounds
func MakeSnowflakes(rng vmath.Rand, count int, layer config.LayerConfig, width, height float64) []component.Snowflake {
	if count <= 0 {
		return nil
	}

	flakes := make([]component.Snowflake, count)
	for i := range flakes {
		size := vmath.Between(rng, layer.Size.Min, layer.Size.Max)
		flakes[i] = component.Snowflake{
			Position:     vmath.V2F(rng.Float64()*width, rng.Float64()*height),
			Mass:         vmath.Between(rng, layer.Mass.Min, layer.Mass.Max),
			Size:         size,
			RenderedSize: size,
			Noise:        rng.Float64() * parameter.NoiseMax,
			Rotation:     rng.Float64() * parameter.RotationMax,
			Opacity:      vmath.Between(rng, layer.Opacity.Min, layer.Opacity.Max),
			Random:       rng.Float64(),
			Time:         0,
		}
	}
	return flakes
}
