package system

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/snowfall/component"
	"github.com/lixenwraith/snowfall/config"
	"github.com/lixenwraith/snowfall/render"
	"github.com/lixenwraith/snowfall/vmath"
)

const frame = 16 * time.Millisecond

// calmLayer is a simple layer without gusts on a 1920x1080 viewport
func calmLayer(t *testing.T, mutate func(*config.LayerConfig)) *Layer {
	t.Helper()
	cfg := config.DefaultSimpleLayer
	cfg.Wind.Gusts.Active = false
	if mutate != nil {
		mutate(&cfg)
	}
	l := NewLayer(cfg, 1920, 1080, vmath.NewFastRand(5))
	l.Restart()
	return l
}

func positions(l *Layer) []vmath.Vec2F {
	out := make([]vmath.Vec2F, len(l.Flakes()))
	for i, s := range l.Flakes() {
		out[i] = s.Position
	}
	return out
}

func TestLayerRestartSpawnsRequiredCount(t *testing.T) {
	l := calmLayer(t, nil)
	assert.Len(t, l.Flakes(), 200)

	l.SetSize(960, 540)
	l.Restart()
	assert.Len(t, l.Flakes(), 50)
}

func TestLayerUpdateOrder(t *testing.T) {
	l := calmLayer(t, func(c *config.LayerConfig) {
		c.Wind.Angle, c.Wind.Strength = 0, 1
		c.Gravity.Angle, c.Gravity.Strength = 90, 2
		c.Sway.Amplitude = 0
	})
	l.flakes = []component.Snowflake{{Position: vmath.V2F(100, 100), Mass: 1, Random: 0.5, Size: 2, RenderedSize: 2}}

	l.Update(frame)

	s := l.Flakes()[0]
	assert.InDelta(t, 101.5, s.Position.X, 1e-9)
	assert.InDelta(t, 103.0, s.Position.Y, 1e-9)
	assert.InDelta(t, frame.Seconds(), s.Time, 1e-12)
	assert.Zero(t, s.Rotation, "simple layers do not rotate")
}

func TestLayerImageRotates(t *testing.T) {
	cfg := config.DefaultImageLayer
	cfg.Wind.Gusts.Active = false
	l := NewLayer(cfg, 100, 100, vmath.NewFastRand(5))
	l.flakes = []component.Snowflake{{Position: vmath.V2F(50, 50), Rotation: 10, Size: 2, RenderedSize: 2}}

	l.Update(frame)
	assert.Equal(t, 11.0, l.Flakes()[0].Rotation)
}

func TestLayerWrapsDuringUpdate(t *testing.T) {
	l := calmLayer(t, func(c *config.LayerConfig) {
		c.Gravity.Strength = 0
		c.Sway.Amplitude = 0
		c.Wind.Strength = 5
	})
	l.flakes = []component.Snowflake{{Position: vmath.V2F(1920, 300), Mass: 1, Size: 3, RenderedSize: 3}}

	l.Update(frame)
	assert.Equal(t, -3.0, l.Flakes()[0].Position.X)
}

func TestLayerInactiveGustsNeverTouchWind(t *testing.T) {
	l := calmLayer(t, func(c *config.LayerConfig) {
		c.Wind.Angle, c.Wind.Strength = 30, 1.5
	})
	want := l.Wind()

	for i := 0; i < 5000; i++ {
		l.Update(frame)
		require.Equal(t, want, l.Wind())
	}
}

func TestLayerPauseHaltsMotionButNotGusts(t *testing.T) {
	cfg := config.DefaultSimpleLayer
	cfg.Wind.Gusts = fixedGusts(0)
	cfg.Wind.Gusts.In.Delay = config.Bounds{}
	l := NewLayer(cfg, 1920, 1080, vmath.NewFastRand(5))
	l.Restart()

	l.Pause()
	before := positions(l)
	calm := l.Wind()

	for i := 0; i < 30; i++ {
		l.Update(frame)
	}
	assert.Equal(t, before, positions(l))
	assert.NotEqual(t, calm, l.Wind(), "gusts keep blowing while paused")

	rec := &render.Recorder{}
	l.Render(rec)
	assert.Equal(t, len(before), rec.Count(render.OpCircle), "paused layers still render")

	l.Resume()
	l.Update(frame)
	assert.NotEqual(t, before, positions(l))
}

func TestLayerPauseControls(t *testing.T) {
	l := calmLayer(t, nil)
	assert.False(t, l.Paused())
	l.TogglePaused()
	assert.True(t, l.Paused())
	l.SetPaused(false)
	assert.False(t, l.Paused())
	l.Pause()
	assert.True(t, l.Paused())
	l.Resume()
	assert.False(t, l.Paused())
}

func TestLayerGustFlipsAngleAndSurvivesRestart(t *testing.T) {
	cfg := config.DefaultSimpleLayer
	cfg.Wind.Angle = 20
	cfg.Wind.Strength = 1
	cfg.Wind.Gusts = fixedGusts(1)
	l := NewLayer(cfg, 640, 360, vmath.NewFastRand(9))
	l.Restart()

	// One full cycle is 2700ms
	for elapsed := time.Duration(0); elapsed < 2700*time.Millisecond; elapsed += frame {
		l.Update(frame)
	}
	assert.InDelta(t, 200.0, l.Config().Wind.Angle, 1e-9)
	assert.InDelta(t, 200.0, vmath.V2FAngle(l.Wind()), 1e-6)

	l.Restart()
	assert.InDelta(t, 200.0, l.Config().Wind.Angle, 1e-9)
	assert.InDelta(t, 1.0, vmath.V2FMag(l.Wind()), 1e-9)
}

func TestLayerRestartResetsLiveWind(t *testing.T) {
	l := calmLayer(t, func(c *config.LayerConfig) {
		c.Wind.Angle, c.Wind.Strength = 0, 2
	})

	l.SetLiveWindStrength(7)
	assert.InDelta(t, 7.0, l.Wind().X, 1e-9)
	assert.Equal(t, 2.0, l.Config().Wind.Strength, "live writes keep the explicit strength")

	l.Restart()
	assert.InDelta(t, 2.0, l.Wind().X, 1e-9)
}

func TestLayerSettersThatRespawn(t *testing.T) {
	tests := []struct {
		name  string
		set   func(*Layer)
		check func(*testing.T, *Layer)
	}{
		{"density", func(l *Layer) { l.SetDensity(100) }, func(t *testing.T, l *Layer) {
			assert.Len(t, l.Flakes(), 100)
		}},
		{"mass min", func(l *Layer) { l.SetMassMin(2.5) }, func(t *testing.T, l *Layer) {
			for _, s := range l.Flakes() {
				assert.GreaterOrEqual(t, s.Mass, 2.5)
			}
		}},
		{"mass max", func(l *Layer) { l.SetMassMax(1.1) }, func(t *testing.T, l *Layer) {
			for _, s := range l.Flakes() {
				assert.Less(t, s.Mass, 1.1)
			}
		}},
		{"size min", func(l *Layer) { l.SetSizeMin(2.9) }, func(t *testing.T, l *Layer) {
			for _, s := range l.Flakes() {
				assert.GreaterOrEqual(t, s.Size, 2.9)
			}
		}},
		{"size max", func(l *Layer) { l.SetSizeMax(1.2) }, func(t *testing.T, l *Layer) {
			for _, s := range l.Flakes() {
				assert.Less(t, s.Size, 1.2)
			}
		}},
		{"opacity", func(l *Layer) { l.SetOpacityMin(0.9); l.SetOpacityMax(0.95) }, func(t *testing.T, l *Layer) {
			for _, s := range l.Flakes() {
				assert.GreaterOrEqual(t, s.Opacity, 0.9)
				assert.Less(t, s.Opacity, 0.95)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := calmLayer(t, nil)
			tt.set(l)
			tt.check(t, l)
		})
	}
}

func TestLayerVectorSettersDoNotRespawn(t *testing.T) {
	l := calmLayer(t, nil)
	before := positions(l)

	l.SetWindAngle(-90)
	l.SetWindStrength(3)
	assert.InDelta(t, 270.0, l.Config().Wind.Angle, 1e-9)
	assert.InDelta(t, -3.0, l.Wind().Y, 1e-9)

	l.SetGravityAngle(45)
	l.SetGravityStrength(2)
	assert.InDelta(t, 2.0, vmath.V2FMag(l.Gravity()), 1e-9)
	assert.InDelta(t, 45.0, vmath.V2FAngle(l.Gravity()), 1e-6)

	l.SetSwayAmplitude(4)
	l.SetSwayFrequency(0.5)
	assert.Equal(t, config.Sway{Frequency: 0.5, Amplitude: 4}, l.Config().Sway)

	assert.Equal(t, before, positions(l))
}

func TestLayerGustSetters(t *testing.T) {
	l := calmLayer(t, nil)
	l.SetGustChangeChance(0.9)
	l.SetGustInStrengthMin(0.1)
	l.SetGustInStrengthMax(0.2)
	l.SetGustInDurationMin(10)
	l.SetGustInDurationMax(20)
	l.SetGustInDelayMin(30)
	l.SetGustInDelayMax(40)
	l.SetGustOutDurationMin(50)
	l.SetGustOutDurationMax(60)
	l.SetGustOutDelayMin(70)
	l.SetGustOutDelayMax(80)

	g := l.GustConfig()
	assert.Equal(t, 0.9, g.ChangeChance)
	assert.Equal(t, config.Bounds{Min: 0.1, Max: 0.2}, g.In.AdditionalStrength)
	assert.Equal(t, config.Bounds{Min: 10, Max: 20}, g.In.Duration)
	assert.Equal(t, config.Bounds{Min: 30, Max: 40}, g.In.Delay)
	assert.Equal(t, config.Bounds{Min: 50, Max: 60}, g.Out.Duration)
	assert.Equal(t, config.Bounds{Min: 70, Max: 80}, g.Out.Delay)

	assert.Equal(t, GustIdle, l.Stats().Gust)
	l.SetGustsActive(true)
	assert.Equal(t, GustWindingIn, l.Stats().Gust)
	l.SetGustsActive(false)
	assert.Equal(t, GustIdle, l.Stats().Gust)
}

func TestLayerSetColour(t *testing.T) {
	l := calmLayer(t, nil)
	require.NoError(t, l.SetColour("#ff0000"))

	rec := &render.Recorder{}
	l.Render(rec)
	require.NotEmpty(t, rec.Calls)
	assert.Equal(t, "#ff0000", rec.Calls[0].Style.Fill.Colour)

	img := NewLayer(config.DefaultImageLayer, 100, 100, vmath.NewFastRand(1))
	err := img.SetColour("#ff0000")
	assert.True(t, errors.Is(err, ErrNotSimpleLayer))
	assert.Empty(t, img.Config().Colour)
}

func TestLayerRenderSimple(t *testing.T) {
	l := calmLayer(t, nil)
	rec := &render.Recorder{}
	l.Render(rec)

	require.Equal(t, len(l.Flakes()), rec.Count(render.OpCircle))
	for i, c := range rec.Calls {
		s := l.Flakes()[i]
		assert.Equal(t, s.Position, c.Pos)
		assert.Equal(t, s.RenderedSize, c.Radius)
		assert.Equal(t, s.Opacity, c.Style.Fill.Opacity)
		assert.Zero(t, c.Style.Line.Width)
	}
}

func TestLayerRenderImage(t *testing.T) {
	cfg := config.DefaultImageLayer
	cfg.Wind.Gusts.Active = false
	cfg.Rotate = true
	l := NewLayer(cfg, 100, 100, vmath.NewFastRand(1))
	l.flakes = []component.Snowflake{{Position: vmath.V2F(10, 20), Rotation: 33, Size: 3, RenderedSize: 3}}

	rec := &render.Recorder{}
	l.Render(rec)
	require.Len(t, rec.Calls, 2)
	assert.Equal(t, render.OpRotation, rec.Calls[0].Op)
	assert.Equal(t, 33.0, rec.Calls[0].Degrees)
	assert.Equal(t, vmath.V2F(10, 20), rec.Calls[0].Pos)

	assert.Equal(t, render.OpImage, rec.Calls[1].Op)
	assert.Equal(t, vmath.V2F(8.5, 18.5), rec.Calls[1].Pos)
	assert.Equal(t, render.Size{Width: 3, Height: 3}, rec.Calls[1].Size)
	assert.Same(t, render.DefaultSprite(), rec.Calls[1].Sprite)

	// Without rotate the sprite is drawn directly
	l.cfg.Rotate = false
	rec.Reset()
	l.Render(rec)
	require.Len(t, rec.Calls, 1)
	assert.Equal(t, render.OpImage, rec.Calls[0].Op)
}

func TestLayerStop(t *testing.T) {
	cfg := config.DefaultSimpleLayer
	l := NewLayer(cfg, 640, 360, vmath.NewFastRand(2))
	l.Restart()
	require.NotEmpty(t, l.Flakes())
	require.Equal(t, GustWindingIn, l.Stats().Gust)

	l.Stop()
	assert.Empty(t, l.Flakes())
	assert.Equal(t, GustIdle, l.Stats().Gust)
}
