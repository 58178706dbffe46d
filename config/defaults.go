package config

// DefaultAttachTo is the host id a simulation attaches to when none is given
const DefaultAttachTo = "snowfall"

// DefaultColour is the fill of simple layers
const DefaultColour = "#ffffff"

// DefaultWind is calm with gusts enabled
var DefaultWind = Wind{
	Angle:    0,
	Strength: 0,
	Gusts: Gusts{
		Active:       true,
		ChangeChance: 0.25,
		In: GustIn{
			AdditionalStrength: Bounds{Min: 1, Max: 3},
			Duration:           Bounds{Min: 1000, Max: 3000},
			Delay:              Bounds{Min: 1000, Max: 10000},
		},
		Out: GustOut{
			Duration: Bounds{Min: 1000, Max: 10000},
			Delay:    Bounds{Min: 5000, Max: 10000},
		},
	},
}

// defaultBase holds the fields shared by both variants
var defaultBase = LayerConfig{
	Density: 200,
	Mass:    Bounds{Min: 1, Max: 3},
	Size:    Bounds{Min: 1, Max: 3},
	Opacity: Bounds{Min: 0, Max: 1},
	Sway:    Sway{Frequency: 0.02, Amplitude: 1},
	Gravity: Gravity{Angle: 90, Strength: 0.7},
	Wind:    DefaultWind,
}

// DefaultSimpleLayer is the fallback for any simple layer
var DefaultSimpleLayer = func() LayerConfig {
	l := defaultBase
	l.Mode = ModeSimple
	l.Colour = DefaultColour
	return l
}()

// DefaultImageLayer is the fallback for any image layer
var DefaultImageLayer = func() LayerConfig {
	l := defaultBase
	l.Mode = ModeImage
	l.Image = DefaultImage
	l.Rotate = false
	return l
}()

// DefaultLayers are the per-index defaults; an omitted layer list resolves to these
var DefaultLayers = []LayerConfig{DefaultSimpleLayer}

// Default returns the resolved configuration of an empty user config
func Default() Config {
	return Resolve(UserConfig{})
}

// VariantDefault returns the global default layer of the given mode
func VariantDefault(mode LayerMode) LayerConfig {
	if mode == ModeImage {
		return DefaultImageLayer
	}
	return DefaultSimpleLayer
}

// LayerDefault returns the default a layer at index resolves against
// The per-index default wins when its variant matches, otherwise the variant default
func LayerDefault(index int, mode LayerMode) LayerConfig {
	if index >= 0 && index < len(DefaultLayers) && DefaultLayers[index].Mode == mode {
		return DefaultLayers[index]
	}
	return VariantDefault(mode)
}
