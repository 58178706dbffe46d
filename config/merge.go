package config

// InferMode decides the layer variant of a partial layer
// Supplying mode image, an image or a rotate flag selects the image variant
func InferMode(p LayerPatch) LayerMode {
	if (p.Mode != nil && *p.Mode == ModeImage) || p.Image != nil || p.Rotate != nil {
		return ModeImage
	}
	return ModeSimple
}

// Resolve populates every field of a user config from defaults
// An omitted or empty layer list resolves to DefaultLayers
func Resolve(u UserConfig) Config {
	cfg := Config{
		AttachTo: pick(u.AttachTo, DefaultAttachTo),
	}

	if len(u.Layers) == 0 {
		cfg.Layers = make([]LayerConfig, len(DefaultLayers))
		copy(cfg.Layers, DefaultLayers)
		return cfg
	}

	cfg.Layers = make([]LayerConfig, len(u.Layers))
	for i, p := range u.Layers {
		cfg.Layers[i] = MergeLayer(p, i)
	}
	return cfg
}

// MergeLayer resolves a partial layer at position index
// Each nesting level merges field by field, so a partial branch keeps its default siblings
func MergeLayer(p LayerPatch, index int) LayerConfig {
	mode := InferMode(p)
	d := LayerDefault(index, mode)

	out := LayerConfig{
		Mode:    mode,
		Density: pick(p.Density, d.Density),
		Mass:    mergeBounds(p.Mass, d.Mass),
		Size:    mergeBounds(p.Size, d.Size),
		Opacity: mergeBounds(p.Opacity, d.Opacity),
		Sway:    mergeSway(p.Sway, d.Sway),
		Gravity: mergeGravity(p.Gravity, d.Gravity),
		Wind:    mergeWind(p.Wind, d.Wind),
	}

	switch mode {
	case ModeImage:
		out.Image = pick(p.Image, d.Image)
		out.Rotate = pick(p.Rotate, d.Rotate)
	default:
		out.Colour = pick(p.Colour, d.Colour)
	}
	return out
}

func pick[T any](v *T, def T) T {
	if v == nil {
		return def
	}
	return *v
}

func mergeBounds(p *BoundsPatch, d Bounds) Bounds {
	if p == nil {
		return d
	}
	return Bounds{Min: pick(p.Min, d.Min), Max: pick(p.Max, d.Max)}
}

func mergeSway(p *SwayPatch, d Sway) Sway {
	if p == nil {
		return d
	}
	return Sway{
		Frequency: pick(p.Frequency, d.Frequency),
		Amplitude: pick(p.Amplitude, d.Amplitude),
	}
}

func mergeGravity(p *GravityPatch, d Gravity) Gravity {
	if p == nil {
		return d
	}
	return Gravity{Angle: pick(p.Angle, d.Angle), Strength: pick(p.Strength, d.Strength)}
}

func mergeWind(p *WindPatch, d Wind) Wind {
	if p == nil {
		return d
	}
	return Wind{
		Angle:    pick(p.Angle, d.Angle),
		Strength: pick(p.Strength, d.Strength),
		Gusts:    mergeGusts(p.Gusts, d.Gusts),
	}
}

func mergeGusts(p *GustsPatch, d Gusts) Gusts {
	if p == nil {
		return d
	}
	return Gusts{
		Active:       pick(p.Active, d.Active),
		ChangeChance: pick(p.ChangeChance, d.ChangeChance),
		In:           mergeGustIn(p.In, d.In),
		Out:          mergeGustOut(p.Out, d.Out),
	}
}

func mergeGustIn(p *GustInPatch, d GustIn) GustIn {
	if p == nil {
		return d
	}
	return GustIn{
		AdditionalStrength: mergeBounds(p.AdditionalStrength, d.AdditionalStrength),
		Duration:           mergeBounds(p.Duration, d.Duration),
		Delay:              mergeBounds(p.Delay, d.Delay),
	}
}

func mergeGustOut(p *GustOutPatch, d GustOut) GustOut {
	if p == nil {
		return d
	}
	return GustOut{
		Duration: mergeBounds(p.Duration, d.Duration),
		Delay:    mergeBounds(p.Delay, d.Delay),
	}
}

// Patch lifts a resolved config into a user config with every field supplied
func (c Config) Patch() UserConfig {
	u := UserConfig{AttachTo: Ptr(c.AttachTo)}
	if len(c.Layers) > 0 {
		u.Layers = make([]LayerPatch, len(c.Layers))
		for i, l := range c.Layers {
			u.Layers[i] = l.Patch()
		}
	}
	return u
}

// Patch lifts a resolved layer into a fully supplied partial layer
func (l LayerConfig) Patch() LayerPatch {
	p := LayerPatch{
		Mode:    Ptr(l.Mode),
		Density: Ptr(l.Density),
		Mass:    boundsPatch(l.Mass),
		Size:    boundsPatch(l.Size),
		Opacity: boundsPatch(l.Opacity),
		Sway:    &SwayPatch{Frequency: Ptr(l.Sway.Frequency), Amplitude: Ptr(l.Sway.Amplitude)},
		Gravity: &GravityPatch{Angle: Ptr(l.Gravity.Angle), Strength: Ptr(l.Gravity.Strength)},
		Wind: &WindPatch{
			Angle:    Ptr(l.Wind.Angle),
			Strength: Ptr(l.Wind.Strength),
			Gusts: &GustsPatch{
				Active:       Ptr(l.Wind.Gusts.Active),
				ChangeChance: Ptr(l.Wind.Gusts.ChangeChance),
				In: &GustInPatch{
					AdditionalStrength: boundsPatch(l.Wind.Gusts.In.AdditionalStrength),
					Duration:           boundsPatch(l.Wind.Gusts.In.Duration),
					Delay:              boundsPatch(l.Wind.Gusts.In.Delay),
				},
				Out: &GustOutPatch{
					Duration: boundsPatch(l.Wind.Gusts.Out.Duration),
					Delay:    boundsPatch(l.Wind.Gusts.Out.Delay),
				},
			},
		},
	}

	if l.Mode == ModeImage {
		p.Image = Ptr(l.Image)
		p.Rotate = Ptr(l.Rotate)
	} else {
		p.Colour = Ptr(l.Colour)
	}
	return p
}

func boundsPatch(b Bounds) *BoundsPatch {
	return &BoundsPatch{Min: Ptr(b.Min), Max: Ptr(b.Max)}
}
