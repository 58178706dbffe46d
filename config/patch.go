package config

// Partial configuration as supplied by users
// A nil pointer means the field was not supplied and resolves to its default

type BoundsPatch struct {
	Min *float64 `yaml:"min,omitempty" json:"min,omitempty"`
	Max *float64 `yaml:"max,omitempty" json:"max,omitempty"`
}

type SwayPatch struct {
	Frequency *float64 `yaml:"frequency,omitempty" json:"frequency,omitempty"`
	Amplitude *float64 `yaml:"amplitude,omitempty" json:"amplitude,omitempty"`
}

type GravityPatch struct {
	Angle    *float64 `yaml:"angle,omitempty" json:"angle,omitempty"`
	Strength *float64 `yaml:"strength,omitempty" json:"strength,omitempty"`
}

type GustInPatch struct {
	AdditionalStrength *BoundsPatch `yaml:"additionalStrength,omitempty" json:"additionalStrength,omitempty"`
	Duration           *BoundsPatch `yaml:"duration,omitempty" json:"duration,omitempty"`
	Delay              *BoundsPatch `yaml:"delay,omitempty" json:"delay,omitempty"`
}

type GustOutPatch struct {
	Duration *BoundsPatch `yaml:"duration,omitempty" json:"duration,omitempty"`
	Delay    *BoundsPatch `yaml:"delay,omitempty" json:"delay,omitempty"`
}

type GustsPatch struct {
	Active       *bool         `yaml:"active,omitempty" json:"active,omitempty"`
	ChangeChance *float64      `yaml:"changeChance,omitempty" json:"changeChance,omitempty"`
	In           *GustInPatch  `yaml:"in,omitempty" json:"in,omitempty"`
	Out          *GustOutPatch `yaml:"out,omitempty" json:"out,omitempty"`
}

type WindPatch struct {
	Angle    *float64    `yaml:"angle,omitempty" json:"angle,omitempty"`
	Strength *float64    `yaml:"strength,omitempty" json:"strength,omitempty"`
	Gusts    *GustsPatch `yaml:"gusts,omitempty" json:"gusts,omitempty"`
}

// LayerPatch is a partial layer; Mode may be omitted and is then inferred
type LayerPatch struct {
	Mode    *LayerMode    `yaml:"mode,omitempty" json:"mode,omitempty"`
	Density *float64      `yaml:"density,omitempty" json:"density,omitempty"`
	Mass    *BoundsPatch  `yaml:"mass,omitempty" json:"mass,omitempty"`
	Size    *BoundsPatch  `yaml:"size,omitempty" json:"size,omitempty"`
	Opacity *BoundsPatch  `yaml:"opacity,omitempty" json:"opacity,omitempty"`
	Sway    *SwayPatch    `yaml:"sway,omitempty" json:"sway,omitempty"`
	Gravity *GravityPatch `yaml:"gravity,omitempty" json:"gravity,omitempty"`
	Wind    *WindPatch    `yaml:"wind,omitempty" json:"wind,omitempty"`

	Colour *string `yaml:"colour,omitempty" json:"colour,omitempty"`
	Image  *string `yaml:"image,omitempty" json:"image,omitempty"`
	Rotate *bool   `yaml:"rotate,omitempty" json:"rotate,omitempty"`
}

// UserConfig is the partial top-level configuration
type UserConfig struct {
	AttachTo *string      `yaml:"attachTo,omitempty" json:"attachTo,omitempty"`
	Layers   []LayerPatch `yaml:"layers,omitempty" json:"layers,omitempty"`
}

// IsEmpty reports whether the patch supplies nothing
func (p LayerPatch) IsEmpty() bool {
	return p.Mode == nil && p.Density == nil && p.Mass == nil && p.Size == nil &&
		p.Opacity == nil && p.Sway == nil && p.Gravity == nil && p.Wind == nil &&
		p.Colour == nil && p.Image == nil && p.Rotate == nil
}

// IsEmpty reports whether the config supplies nothing
func (u UserConfig) IsEmpty() bool {
	return u.AttachTo == nil && len(u.Layers) == 0
}

// Ptr returns a pointer to v, for building patches in code
func Ptr[T any](v T) *T {
	return &v
}
