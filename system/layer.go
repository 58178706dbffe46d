package system

import (
	"errors"
	"time"

	"github.com/lixenwraith/snowfall/component"
	"github.com/lixenwraith/snowfall/config"
	"github.com/lixenwraith/snowfall/physics"
	"github.com/lixenwraith/snowfall/render"
	"github.com/lixenwraith/snowfall/vmath"
)

// ErrNotSimpleLayer is returned when a simple-only setting targets an image layer
var ErrNotSimpleLayer = errors.New("layer is not a simple layer")

// Layer owns one snowflake population and its wind, gravity and gust state
// Not safe for concurrent use; the frame loop serializes all access
type Layer struct {
	// cfg carries the explicitly set values; gusts only change the live wind
	cfg config.LayerConfig

	windStrength float64
	wind         vmath.Vec2F
	gravity      vmath.Vec2F

	flakes []component.Snowflake
	bounds physics.Bounds
	paused bool

	gust   *GustMachine
	rng    vmath.Rand
	sprite *render.Sprite
}

// LayerOption configures a Layer at construction
type LayerOption func(*Layer)

// WithSprite sets the texture drawn by image layers
func WithSprite(s *render.Sprite) LayerOption {
	return func(l *Layer) { l.sprite = s }
}

// NewLayer builds a stopped layer; call Restart to populate it
func NewLayer(cfg config.LayerConfig, width, height float64, rng vmath.Rand, opts ...LayerOption) *Layer {
	l := &Layer{
		cfg:    cfg,
		bounds: physics.Bounds{Width: width, Height: height},
		gust:   NewGustMachine(rng),
		rng:    rng,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.cfg.IsImage() && l.sprite == nil {
		l.sprite = render.DefaultSprite()
	}
	l.resetWind()
	l.updateGravity()
	return l
}

// Restart cancels gusts, restores the explicit wind, restarts gusts and respawns every flake
func (l *Layer) Restart() {
	l.gust.Stop()
	l.resetWind()
	l.gust.Start(l)
	count := RequiredSnowflakes(l.bounds.Width, l.bounds.Height, l.cfg.Density)
	l.flakes = MakeSnowflakes(l.rng, count, l.cfg, l.bounds.Width, l.bounds.Height)
}

// Stop cancels the gust timeline and drops all flakes
func (l *Layer) Stop() {
	l.gust.Stop()
	l.flakes = nil
}

// Update advances gusts and, unless paused, every flake
func (l *Layer) Update(dt time.Duration) {
	l.gust.Advance(dt, l)
	if l.paused {
		return
	}

	seconds := dt.Seconds()
	image := l.cfg.IsImage()
	sway := l.cfg.Sway
	gravityAngle := l.cfg.Gravity.Angle

	for i := range l.flakes {
		s := &l.flakes[i]
		s.Time += seconds
		physics.AddWind(s, l.wind)
		if image {
			physics.AddRotation(s)
		}
		physics.AddGravity(s, l.gravity)
		physics.AddSway(s, gravityAngle, sway.Frequency, sway.Amplitude)
		physics.ScreenWrap(s, l.bounds, l.gravity, l.rng)
	}
}

// Render feeds every flake to the surface without mutating state
func (l *Layer) Render(surface render.Surface) {
	if l.cfg.IsImage() {
		l.renderImages(surface)
		return
	}

	for i := range l.flakes {
		s := &l.flakes[i]
		surface.Circle(s.Position, s.RenderedSize, render.CircleStyle{
			Fill: render.Fill{Colour: l.cfg.Colour, Opacity: s.Opacity},
			Line: render.Line{Width: 0},
		})
	}
}

func (l *Layer) renderImages(surface render.Surface) {
	for i := range l.flakes {
		s := &l.flakes[i]
		// The sprite box is RenderedSize across, centred on the flake
		side := s.RenderedSize
		topLeft := vmath.V2F(s.Position.X-side/2, s.Position.Y-side/2)
		size := render.Size{Width: side, Height: side}
		draw := func() { surface.Image(l.sprite, topLeft, size) }

		if l.cfg.Rotate {
			surface.Rotation(draw, s.Rotation, s.Position)
		} else {
			draw()
		}
	}
}

// --- Wind ---

func (l *Layer) resetWind() {
	l.windStrength = l.cfg.Wind.Strength
	l.updateWind()
}

func (l *Layer) updateWind() {
	l.wind = vmath.V2FFromAngle(l.cfg.Wind.Angle, l.windStrength)
}

func (l *Layer) updateGravity() {
	l.gravity = vmath.V2FFromAngle(l.cfg.Gravity.Angle, l.cfg.Gravity.Strength)
}

func (l *Layer) GustConfig() config.Gusts {
	return l.cfg.Wind.Gusts
}

func (l *Layer) BaseWindStrength() float64 {
	return l.cfg.Wind.Strength
}

// SetLiveWindStrength is the gust write path; restarts return to the explicit strength
func (l *Layer) SetLiveWindStrength(strength float64) {
	l.windStrength = strength
	l.updateWind()
}

func (l *Layer) ReverseWind() {
	l.SetWindAngle(l.cfg.Wind.Angle + 180)
}

// --- Setters that respawn ---

func (l *Layer) SetDensity(density float64) {
	l.cfg.Density = density
	l.Restart()
}

func (l *Layer) SetMassMin(v float64) {
	l.cfg.Mass.Min = v
	l.Restart()
}

func (l *Layer) SetMassMax(v float64) {
	l.cfg.Mass.Max = v
	l.Restart()
}

func (l *Layer) SetSizeMin(v float64) {
	l.cfg.Size.Min = v
	l.Restart()
}

func (l *Layer) SetSizeMax(v float64) {
	l.cfg.Size.Max = v
	l.Restart()
}

func (l *Layer) SetOpacityMin(v float64) {
	l.cfg.Opacity.Min = v
	l.Restart()
}

func (l *Layer) SetOpacityMax(v float64) {
	l.cfg.Opacity.Max = v
	l.Restart()
}

// --- Setters that only recompute vectors ---

func (l *Layer) SetSwayAmplitude(v float64) {
	l.cfg.Sway.Amplitude = v
}

func (l *Layer) SetSwayFrequency(v float64) {
	l.cfg.Sway.Frequency = v
}

func (l *Layer) SetGravityAngle(deg float64) {
	l.cfg.Gravity.Angle = vmath.NormalizeDegrees(deg)
	l.updateGravity()
}

func (l *Layer) SetGravityStrength(v float64) {
	l.cfg.Gravity.Strength = v
	l.updateGravity()
}

func (l *Layer) SetWindAngle(deg float64) {
	l.cfg.Wind.Angle = vmath.NormalizeDegrees(deg)
	l.updateWind()
}

// SetWindStrength sets both the explicit and the live strength
func (l *Layer) SetWindStrength(v float64) {
	l.cfg.Wind.Strength = v
	l.windStrength = v
	l.updateWind()
}

// --- Gusts ---

// SetGustsActive toggles gusting, restarting the timeline from the explicit wind
func (l *Layer) SetGustsActive(active bool) {
	l.cfg.Wind.Gusts.Active = active
	l.gust.Stop()
	l.resetWind()
	l.gust.Start(l)
}

// Gust sub-field setters take effect from the next cycle

func (l *Layer) SetGustChangeChance(v float64)   { l.cfg.Wind.Gusts.ChangeChance = v }
func (l *Layer) SetGustInStrengthMin(v float64)  { l.cfg.Wind.Gusts.In.AdditionalStrength.Min = v }
func (l *Layer) SetGustInStrengthMax(v float64)  { l.cfg.Wind.Gusts.In.AdditionalStrength.Max = v }
func (l *Layer) SetGustInDurationMin(v float64)  { l.cfg.Wind.Gusts.In.Duration.Min = v }
func (l *Layer) SetGustInDurationMax(v float64)  { l.cfg.Wind.Gusts.In.Duration.Max = v }
func (l *Layer) SetGustInDelayMin(v float64)     { l.cfg.Wind.Gusts.In.Delay.Min = v }
func (l *Layer) SetGustInDelayMax(v float64)     { l.cfg.Wind.Gusts.In.Delay.Max = v }
func (l *Layer) SetGustOutDurationMin(v float64) { l.cfg.Wind.Gusts.Out.Duration.Min = v }
func (l *Layer) SetGustOutDurationMax(v float64) { l.cfg.Wind.Gusts.Out.Duration.Max = v }
func (l *Layer) SetGustOutDelayMin(v float64)    { l.cfg.Wind.Gusts.Out.Delay.Min = v }
func (l *Layer) SetGustOutDelayMax(v float64)    { l.cfg.Wind.Gusts.Out.Delay.Max = v }

// --- Appearance ---

// SetColour changes the fill of a simple layer
func (l *Layer) SetColour(colour string) error {
	if l.cfg.IsImage() {
		return ErrNotSimpleLayer
	}
	l.cfg.Colour = colour
	return nil
}

// --- Pause ---

func (l *Layer) SetPaused(paused bool) { l.paused = paused }
func (l *Layer) TogglePaused()         { l.paused = !l.paused }
func (l *Layer) Pause()                { l.paused = true }
func (l *Layer) Resume()               { l.paused = false }
func (l *Layer) Paused() bool          { return l.paused }

// --- Viewport ---

// SetSize changes the wrap bounds; callers restart to respawn at the new density
func (l *Layer) SetSize(width, height float64) {
	l.bounds = physics.Bounds{Width: width, Height: height}
}

// --- Inspection ---

// Config returns the layer's explicit configuration
func (l *Layer) Config() config.LayerConfig {
	return l.cfg
}

// Flakes exposes the live population; callers must not retain it across updates
func (l *Layer) Flakes() []component.Snowflake {
	return l.flakes
}

// Wind returns the live wind vector
func (l *Layer) Wind() vmath.Vec2F {
	return l.wind
}

// Gravity returns the gravity vector
func (l *Layer) Gravity() vmath.Vec2F {
	return l.gravity
}

// LayerStats is a point-in-time summary for display
type LayerStats struct {
	Mode         config.LayerMode
	Flakes       int
	WindStrength float64
	WindAngle    float64
	Gust         GustState
	Paused       bool
}

func (l *Layer) Stats() LayerStats {
	return LayerStats{
		Mode:         l.cfg.Mode,
		Flakes:       len(l.flakes),
		WindStrength: l.windStrength,
		WindAngle:    l.cfg.Wind.Angle,
		Gust:         l.gust.State(),
		Paused:       l.paused,
	}
}
