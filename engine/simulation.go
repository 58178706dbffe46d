package engine

import (
	"fmt"
	"math"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/lixenwraith/snowfall/config"
	"github.com/lixenwraith/snowfall/parameter"
	"github.com/lixenwraith/snowfall/render"
	"github.com/lixenwraith/snowfall/status"
	"github.com/lixenwraith/snowfall/system"
	"github.com/lixenwraith/snowfall/vmath"
)

// WindSink receives the normalized strength of the strongest live wind
type WindSink interface {
	SetLevel(level float64)
}

// Simulation binds resolved layers to a host and a scheduler
// Start and Stop run off the scheduler goroutine; every other method runs on it
type Simulation struct {
	hosts     HostLookup
	scheduler Scheduler
	logger    *zap.Logger
	rng       vmath.Rand
	registry  *status.Registry
	wind      WindSink
	overlay   func(render.Surface)

	// usage warnings are throttled so a misbehaving caller cannot flood the log
	warn rate.Sometimes

	runID   string
	cfg     config.Config
	host    Host
	layers  []*system.Layer
	sprites map[string]*render.Sprite
	running bool

	statLayers *atomic.Int64
	statFlakes *atomic.Int64
	statWind   *status.Float
	layerWind  []*status.Float
}

// SimulationOption configures a Simulation
type SimulationOption func(*Simulation)

func WithLogger(logger *zap.Logger) SimulationOption {
	return func(s *Simulation) { s.logger = logger }
}

// WithRand replaces the time-seeded generator, mainly for deterministic tests
func WithRand(rng vmath.Rand) SimulationOption {
	return func(s *Simulation) { s.rng = rng }
}

func WithRegistry(reg *status.Registry) SimulationOption {
	return func(s *Simulation) { s.registry = reg }
}

func WithWindSink(sink WindSink) SimulationOption {
	return func(s *Simulation) { s.wind = sink }
}

// WithOverlay draws fn on top of every layer each frame
func WithOverlay(fn func(render.Surface)) SimulationOption {
	return func(s *Simulation) { s.overlay = fn }
}

func NewSimulation(hosts HostLookup, scheduler Scheduler, opts ...SimulationOption) *Simulation {
	s := &Simulation{
		hosts:     hosts,
		scheduler: scheduler,
		logger:    zap.NewNop(),
		warn:      rate.Sometimes{Interval: time.Second},
		sprites:   make(map[string]*render.Sprite),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = vmath.NewTimeSeededRand()
	}
	if s.registry == nil {
		s.registry = status.NewRegistry()
	}
	s.statLayers = s.registry.Ints.Get("layers")
	s.statFlakes = s.registry.Ints.Get("flakes")
	s.statWind = s.registry.Floats.Get("wind.max")
	return s
}

// Start resolves the user config, attaches to its host and begins animating
// A running simulation is halted, rebuilt and resumed; a failed rebuild resumes the previous layers
// Like Stop, it must not be called from the scheduler goroutine
func (s *Simulation) Start(user config.UserConfig) error {
	cfg := config.Resolve(user)

	// The scheduler goroutine owns the layers and the generator while it runs
	wasRunning := s.running
	if wasRunning {
		s.scheduler.Stop()
	}

	old := s.layers
	if err := s.build(cfg); err != nil {
		if wasRunning {
			s.scheduler.Start()
		}
		return err
	}
	for _, l := range old {
		l.Stop()
	}

	s.scheduler.SetUpdate(s.Update)
	s.scheduler.SetRender(s.Render)
	s.scheduler.Start()
	s.running = true

	s.logger.Info("simulation started",
		zap.String("run", s.runID),
		zap.String("attachTo", s.cfg.AttachTo),
		zap.Int("layers", len(s.layers)))
	return nil
}

// Restart rebuilds from user when given, otherwise respawns every layer in place
// A failed rebuild keeps the current layers running
func (s *Simulation) Restart(user *config.UserConfig) error {
	if user == nil {
		for _, l := range s.layers {
			l.Restart()
		}
		s.logger.Debug("simulation restarted", zap.String("run", s.runID))
		return nil
	}

	old := s.layers
	if err := s.build(config.Resolve(*user)); err != nil {
		return err
	}
	for _, l := range old {
		l.Stop()
	}
	s.logger.Info("simulation reconfigured",
		zap.String("run", s.runID),
		zap.Int("layers", len(s.layers)))
	return nil
}

// Stop halts the scheduler and releases every layer
func (s *Simulation) Stop() {
	s.scheduler.Stop()
	s.stopLayers()
	if s.wind != nil {
		s.wind.SetLevel(0)
	}
	s.logger.Info("simulation stopped", zap.String("run", s.runID))
}

func (s *Simulation) stopLayers() {
	for _, l := range s.layers {
		l.Stop()
	}
	s.layers = nil
	s.running = false
	s.registry.Floats.Drop("layer.")
	s.layerWind = nil
}

func (s *Simulation) build(cfg config.Config) error {
	host, ok := s.hosts.Lookup(cfg.AttachTo)
	if !ok {
		s.logger.Error("config error: no host to attach to", zap.String("attachTo", cfg.AttachTo))
		return fmt.Errorf("attach to %q: %w", cfg.AttachTo, ErrHostNotFound)
	}

	width, height := host.Size()
	layers := make([]*system.Layer, 0, len(cfg.Layers))
	for _, lc := range cfg.Layers {
		var opts []system.LayerOption
		if lc.IsImage() {
			opts = append(opts, system.WithSprite(s.sprite(lc.Image)))
		}
		l := system.NewLayer(lc, width, height, s.rng, opts...)
		l.Restart()
		layers = append(layers, l)
	}

	s.registry.Floats.Drop("layer.")
	gauges := make([]*status.Float, len(layers))
	for i := range layers {
		gauges[i] = s.registry.Floats.Get("layer." + strconv.Itoa(i) + ".wind")
	}

	s.runID = uuid.NewString()
	s.cfg = cfg
	s.host = host
	s.layers = layers
	s.layerWind = gauges
	s.statLayers.Store(int64(len(layers)))
	return nil
}

// sprite decodes an image reference once; undecodable images fall back to the default flake
func (s *Simulation) sprite(ref string) *render.Sprite {
	if ref == "" || ref == config.DefaultImage {
		return render.DefaultSprite()
	}
	if sp, ok := s.sprites[ref]; ok {
		return sp
	}
	sp, err := render.LoadSprite(ref)
	if err != nil {
		s.logger.Warn("image layer falls back to default flake", zap.Error(err))
		sp = render.DefaultSprite()
	}
	s.sprites[ref] = sp
	return sp
}

// Update advances every layer by dt and publishes gauges
func (s *Simulation) Update(dt time.Duration) {
	var flakes int
	var strongest float64
	for i, l := range s.layers {
		l.Update(dt)
		st := l.Stats()
		flakes += st.Flakes
		strongest = math.Max(strongest, math.Abs(st.WindStrength))
		if i < len(s.layerWind) {
			s.layerWind[i].Set(st.WindStrength)
		}
	}
	s.statFlakes.Store(int64(flakes))
	s.statWind.Set(strongest)
	if s.wind != nil {
		s.wind.SetLevel(vmath.Clamp01(strongest / parameter.WindStrengthFullScale))
	}
}

// Render clears the surface then draws layers in order
func (s *Simulation) Render(surface render.Surface) {
	surface.Clear()
	for _, l := range s.layers {
		l.Render(surface)
	}
	if s.overlay != nil {
		s.overlay(surface)
	}
}

// OnResize propagates the host size and respawns every layer for the new area
func (s *Simulation) OnResize(width, height float64) {
	for _, l := range s.layers {
		l.SetSize(width, height)
		l.Restart()
	}
}

// Layers reports the number of active layers
func (s *Simulation) Layers() int {
	return len(s.layers)
}

// Running reports whether Start succeeded and Stop has not been called since
func (s *Simulation) Running() bool {
	return s.running
}

// Config returns the resolved configuration of the current run
func (s *Simulation) Config() config.Config {
	return s.cfg
}

// Snapshot summarizes the current run for display
type Snapshot struct {
	RunID    string
	AttachTo string
	Flakes   int
	Layers   []system.LayerStats
}

func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		RunID:    s.runID,
		AttachTo: s.cfg.AttachTo,
		Layers:   make([]system.LayerStats, 0, len(s.layers)),
	}
	for _, l := range s.layers {
		st := l.Stats()
		snap.Flakes += st.Flakes
		snap.Layers = append(snap.Layers, st)
	}
	return snap
}

// withLayer applies fn to layer index; out-of-range indices are ignored
func (s *Simulation) withLayer(index int, fn func(*system.Layer)) {
	if index < 0 || index >= len(s.layers) {
		return
	}
	fn(s.layers[index])
}

func (s *Simulation) usageError(index int, setting string, err error) {
	s.warn.Do(func() {
		s.logger.Warn("layer setting ignored",
			zap.String("run", s.runID),
			zap.Int("layer", index),
			zap.String("setting", setting),
			zap.Error(err))
	})
}

// --- Population ---

func (s *Simulation) SetDensity(index int, v float64) {
	s.withLayer(index, func(l *system.Layer) { l.SetDensity(v) })
}

func (s *Simulation) SetMassMin(index int, v float64) {
	s.withLayer(index, func(l *system.Layer) { l.SetMassMin(v) })
}

func (s *Simulation) SetMassMax(index int, v float64) {
	s.withLayer(index, func(l *system.Layer) { l.SetMassMax(v) })
}

func (s *Simulation) SetSizeMin(index int, v float64) {
	s.withLayer(index, func(l *system.Layer) { l.SetSizeMin(v) })
}

func (s *Simulation) SetSizeMax(index int, v float64) {
	s.withLayer(index, func(l *system.Layer) { l.SetSizeMax(v) })
}

func (s *Simulation) SetOpacityMin(index int, v float64) {
	s.withLayer(index, func(l *system.Layer) { l.SetOpacityMin(v) })
}

func (s *Simulation) SetOpacityMax(index int, v float64) {
	s.withLayer(index, func(l *system.Layer) { l.SetOpacityMax(v) })
}

// --- Motion ---

func (s *Simulation) SetSwayAmplitude(index int, v float64) {
	s.withLayer(index, func(l *system.Layer) { l.SetSwayAmplitude(v) })
}

func (s *Simulation) SetSwayFrequency(index int, v float64) {
	s.withLayer(index, func(l *system.Layer) { l.SetSwayFrequency(v) })
}

func (s *Simulation) SetGravityAngle(index int, deg float64) {
	s.withLayer(index, func(l *system.Layer) { l.SetGravityAngle(deg) })
}

func (s *Simulation) SetGravityStrength(index int, v float64) {
	s.withLayer(index, func(l *system.Layer) { l.SetGravityStrength(v) })
}

// SetGravity sets angle and strength together
func (s *Simulation) SetGravity(index int, deg, strength float64) {
	s.withLayer(index, func(l *system.Layer) {
		l.SetGravityAngle(deg)
		l.SetGravityStrength(strength)
	})
}

// SetWind sets the explicit angle and strength together
func (s *Simulation) SetWind(index int, deg, strength float64) {
	s.withLayer(index, func(l *system.Layer) {
		l.SetWindAngle(deg)
		l.SetWindStrength(strength)
	})
}

func (s *Simulation) SetWindAngle(index int, deg float64) {
	s.withLayer(index, func(l *system.Layer) { l.SetWindAngle(deg) })
}

func (s *Simulation) SetWindStrength(index int, v float64) {
	s.withLayer(index, func(l *system.Layer) { l.SetWindStrength(v) })
}

// --- Gusts ---

func (s *Simulation) SetGustsActive(index int, active bool) {
	s.withLayer(index, func(l *system.Layer) { l.SetGustsActive(active) })
}

func (s *Simulation) SetGustChangeChance(index int, v float64) {
	s.withLayer(index, func(l *system.Layer) { l.SetGustChangeChance(v) })
}

func (s *Simulation) SetGustInStrengthMin(index int, v float64) {
	s.withLayer(index, func(l *system.Layer) { l.SetGustInStrengthMin(v) })
}

func (s *Simulation) SetGustInStrengthMax(index int, v float64) {
	s.withLayer(index, func(l *system.Layer) { l.SetGustInStrengthMax(v) })
}

func (s *Simulation) SetGustInDurationMin(index int, v float64) {
	s.withLayer(index, func(l *system.Layer) { l.SetGustInDurationMin(v) })
}

func (s *Simulation) SetGustInDurationMax(index int, v float64) {
	s.withLayer(index, func(l *system.Layer) { l.SetGustInDurationMax(v) })
}

func (s *Simulation) SetGustInDelayMin(index int, v float64) {
	s.withLayer(index, func(l *system.Layer) { l.SetGustInDelayMin(v) })
}

func (s *Simulation) SetGustInDelayMax(index int, v float64) {
	s.withLayer(index, func(l *system.Layer) { l.SetGustInDelayMax(v) })
}

func (s *Simulation) SetGustOutDurationMin(index int, v float64) {
	s.withLayer(index, func(l *system.Layer) { l.SetGustOutDurationMin(v) })
}

func (s *Simulation) SetGustOutDurationMax(index int, v float64) {
	s.withLayer(index, func(l *system.Layer) { l.SetGustOutDurationMax(v) })
}

func (s *Simulation) SetGustOutDelayMin(index int, v float64) {
	s.withLayer(index, func(l *system.Layer) { l.SetGustOutDelayMin(v) })
}

func (s *Simulation) SetGustOutDelayMax(index int, v float64) {
	s.withLayer(index, func(l *system.Layer) { l.SetGustOutDelayMax(v) })
}

// --- Appearance ---

// SetColour recolours a simple layer; bad colours and image layers are logged and ignored
func (s *Simulation) SetColour(index int, colour string) {
	s.withLayer(index, func(l *system.Layer) {
		if _, err := render.ParseColour(colour); err != nil {
			s.usageError(index, "colour", err)
			return
		}
		if err := l.SetColour(colour); err != nil {
			s.usageError(index, "colour", err)
		}
	})
}

// --- Pause ---

func (s *Simulation) Pause(index int) {
	s.withLayer(index, func(l *system.Layer) { l.Pause() })
}

func (s *Simulation) Resume(index int) {
	s.withLayer(index, func(l *system.Layer) { l.Resume() })
}

func (s *Simulation) TogglePaused(index int) {
	s.withLayer(index, func(l *system.Layer) { l.TogglePaused() })
}

func (s *Simulation) PauseAll() {
	for _, l := range s.layers {
		l.Pause()
	}
}

func (s *Simulation) ResumeAll() {
	for _, l := range s.layers {
		l.Resume()
	}
}

// TogglePausedAll pauses everything unless every layer is already paused
func (s *Simulation) TogglePausedAll() {
	for _, l := range s.layers {
		if !l.Paused() {
			s.PauseAll()
			return
		}
	}
	s.ResumeAll()
}
