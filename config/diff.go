package config

// Diff prunes a user config down to the fields that differ from defaults
// Layers are compared against the same default MergeLayer would use, so
// Resolve(Diff(u)) equals Resolve(u)
func Diff(u UserConfig) UserConfig {
	var out UserConfig
	out.AttachTo = diffValue(u.AttachTo, DefaultAttachTo)

	layers := make([]LayerPatch, len(u.Layers))
	for i, p := range u.Layers {
		layers[i] = DiffLayer(p, i)
	}
	layers = tidyLayers(layers)
	if len(layers) > 0 {
		out.Layers = layers
	}
	return out
}

// DiffResolved returns the minimal user config reproducing c
func DiffResolved(c Config) UserConfig {
	return Diff(c.Patch())
}

// DiffLayer prunes a single partial layer at position index
// Image layers always keep their mode so the variant survives a round trip
func DiffLayer(p LayerPatch, index int) LayerPatch {
	mode := InferMode(p)
	d := LayerDefault(index, mode)

	out := LayerPatch{
		Density: diffValue(p.Density, d.Density),
		Mass:    diffBounds(p.Mass, d.Mass),
		Size:    diffBounds(p.Size, d.Size),
		Opacity: diffBounds(p.Opacity, d.Opacity),
		Sway:    diffSway(p.Sway, d.Sway),
		Gravity: diffGravity(p.Gravity, d.Gravity),
		Wind:    diffWind(p.Wind, d.Wind),
	}

	switch mode {
	case ModeImage:
		out.Mode = Ptr(ModeImage)
		out.Image = diffValue(p.Image, d.Image)
		out.Rotate = diffValue(p.Rotate, d.Rotate)
	default:
		out.Colour = diffValue(p.Colour, d.Colour)
	}
	return out
}

// tidyLayers drops trailing empty layers unless the list is longer than the
// default list; extra layers are explicit and survive even when empty
func tidyLayers(layers []LayerPatch) []LayerPatch {
	if len(layers) > len(DefaultLayers) {
		return layers
	}
	n := len(layers)
	for n > 0 && layers[n-1].IsEmpty() {
		n--
	}
	return layers[:n]
}

func diffValue[T comparable](v *T, def T) *T {
	if v == nil || *v == def {
		return nil
	}
	return Ptr(*v)
}

func diffBounds(p *BoundsPatch, d Bounds) *BoundsPatch {
	if p == nil {
		return nil
	}
	out := BoundsPatch{Min: diffValue(p.Min, d.Min), Max: diffValue(p.Max, d.Max)}
	if out.Min == nil && out.Max == nil {
		return nil
	}
	return &out
}

func diffSway(p *SwayPatch, d Sway) *SwayPatch {
	if p == nil {
		return nil
	}
	out := SwayPatch{
		Frequency: diffValue(p.Frequency, d.Frequency),
		Amplitude: diffValue(p.Amplitude, d.Amplitude),
	}
	if out == (SwayPatch{}) {
		return nil
	}
	return &out
}

func diffGravity(p *GravityPatch, d Gravity) *GravityPatch {
	if p == nil {
		return nil
	}
	out := GravityPatch{Angle: diffValue(p.Angle, d.Angle), Strength: diffValue(p.Strength, d.Strength)}
	if out == (GravityPatch{}) {
		return nil
	}
	return &out
}

func diffWind(p *WindPatch, d Wind) *WindPatch {
	if p == nil {
		return nil
	}
	out := WindPatch{
		Angle:    diffValue(p.Angle, d.Angle),
		Strength: diffValue(p.Strength, d.Strength),
		Gusts:    diffGusts(p.Gusts, d.Gusts),
	}
	if out == (WindPatch{}) {
		return nil
	}
	return &out
}

func diffGusts(p *GustsPatch, d Gusts) *GustsPatch {
	if p == nil {
		return nil
	}
	out := GustsPatch{
		Active:       diffValue(p.Active, d.Active),
		ChangeChance: diffValue(p.ChangeChance, d.ChangeChance),
		In:           diffGustIn(p.In, d.In),
		Out:          diffGustOut(p.Out, d.Out),
	}
	if out == (GustsPatch{}) {
		return nil
	}
	return &out
}

func diffGustIn(p *GustInPatch, d GustIn) *GustInPatch {
	if p == nil {
		return nil
	}
	out := GustInPatch{
		AdditionalStrength: diffBounds(p.AdditionalStrength, d.AdditionalStrength),
		Duration:           diffBounds(p.Duration, d.Duration),
		Delay:              diffBounds(p.Delay, d.Delay),
	}
	if out == (GustInPatch{}) {
		return nil
	}
	return &out
}

func diffGustOut(p *GustOutPatch, d GustOut) *GustOutPatch {
	if p == nil {
		return nil
	}
	out := GustOutPatch{Duration: diffBounds(p.Duration, d.Duration), Delay: diffBounds(p.Delay, d.Delay)}
	if out == (GustOutPatch{}) {
		return nil
	}
	return &out
}
