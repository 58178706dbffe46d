package config

// LayerMode discriminates the layer variants
type LayerMode string

const (
	ModeSimple LayerMode = "simple"
	ModeImage  LayerMode = "image"
)

// Bounds is an inclusive-exclusive sampling range
// min <= max is assumed, not enforced
type Bounds struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

type Sway struct {
	Frequency float64 `yaml:"frequency" json:"frequency"`
	Amplitude float64 `yaml:"amplitude" json:"amplitude"`
}

type Gravity struct {
	Angle    float64 `yaml:"angle" json:"angle"`
	Strength float64 `yaml:"strength" json:"strength"`
}

// GustIn controls the wind-up half of a gust cycle; durations are milliseconds
type GustIn struct {
	AdditionalStrength Bounds `yaml:"additionalStrength" json:"additionalStrength"`
	Duration           Bounds `yaml:"duration" json:"duration"`
	Delay              Bounds `yaml:"delay" json:"delay"`
}

// GustOut controls the wind-down half of a gust cycle; durations are milliseconds
type GustOut struct {
	Duration Bounds `yaml:"duration" json:"duration"`
	Delay    Bounds `yaml:"delay" json:"delay"`
}

type Gusts struct {
	Active       bool    `yaml:"active" json:"active"`
	ChangeChance float64 `yaml:"changeChance" json:"changeChance"`
	In           GustIn  `yaml:"in" json:"in"`
	Out          GustOut `yaml:"out" json:"out"`
}

type Wind struct {
	Angle    float64 `yaml:"angle" json:"angle"`
	Strength float64 `yaml:"strength" json:"strength"`
	Gusts    Gusts   `yaml:"gusts" json:"gusts"`
}

// LayerConfig is a fully resolved layer
// Mode is fixed at resolution time; Colour is only meaningful for simple
// layers, Image and Rotate only for image layers
type LayerConfig struct {
	Mode    LayerMode `yaml:"mode" json:"mode"`
	Density float64   `yaml:"density" json:"density"`
	Mass    Bounds    `yaml:"mass" json:"mass"`
	Size    Bounds    `yaml:"size" json:"size"`
	Opacity Bounds    `yaml:"opacity" json:"opacity"`
	Sway    Sway      `yaml:"sway" json:"sway"`
	Gravity Gravity   `yaml:"gravity" json:"gravity"`
	Wind    Wind      `yaml:"wind" json:"wind"`

	Colour string `yaml:"colour,omitempty" json:"colour,omitempty"`

	Image  string `yaml:"image,omitempty" json:"image,omitempty"`
	Rotate bool   `yaml:"rotate,omitempty" json:"rotate,omitempty"`
}

// IsImage reports whether the layer draws sprites instead of circles
func (l LayerConfig) IsImage() bool {
	return l.Mode == ModeImage
}

// Config is the resolved top-level configuration for one simulation run
type Config struct {
	AttachTo string        `yaml:"attachTo" json:"attachTo"`
	Layers   []LayerConfig `yaml:"layers" json:"layers"`
}
