package system

import (
	"time"

	"github.com/lixenwraith/snowfall/config"
	"github.com/lixenwraith/snowfall/vmath"
)

// GustState is the phase of a layer's gust timeline
type GustState int

const (
	GustIdle GustState = iota
	GustWindingIn
	GustWindingOut
)

func (s GustState) String() string {
	switch s {
	case GustWindingIn:
		return "winding-in"
	case GustWindingOut:
		return "winding-out"
	default:
		return "idle"
	}
}

// gustPhase splits each winding state into a wait and an eased ramp
type gustPhase int

const (
	phaseDelay gustPhase = iota
	phaseRamp
)

// maxGustSteps bounds phase transitions per Advance; zero-length phases complete without consuming time
const maxGustSteps = 8

// WindTarget is the wind state a gust machine drives
type WindTarget interface {
	// GustConfig is read at every cycle start so setters apply from the next cycle
	GustConfig() config.Gusts
	// BaseWindStrength is the explicitly set strength gusts return to
	BaseWindStrength() float64
	// SetLiveWindStrength changes the wind vector without touching the explicit strength
	SetLiveWindStrength(strength float64)
	// ReverseWind turns the explicit wind angle by 180°
	ReverseWind()
}

// gustCycle holds the values sampled for one wind-in/wind-out cycle
type gustCycle struct {
	base        float64
	peak        float64
	delayIn     time.Duration
	durationIn  time.Duration
	delayOut    time.Duration
	durationOut time.Duration
	flipDraw    float64
}

// GustMachine oscillates a layer's wind strength between base and a sampled peak
// Advanced from the layer update, so wind writes are serialized with particle motion
type GustMachine struct {
	rng     vmath.Rand
	state   GustState
	phase   gustPhase
	elapsed time.Duration
	cycle   gustCycle
	cycles  int
}

func NewGustMachine(rng vmath.Rand) *GustMachine {
	return &GustMachine{rng: rng}
}

// State returns the current winding state
func (g *GustMachine) State() GustState {
	return g.state
}

// Cycles counts completed wind-in/wind-out cycles since the last Start
func (g *GustMachine) Cycles() int {
	return g.cycles
}

// Start cancels any running timeline and begins a fresh cycle if gusts are active
func (g *GustMachine) Start(target WindTarget) {
	g.Stop()
	g.cycles = 0
	g.beginCycle(target)
}

// Stop cancels the timeline; an idle machine never writes wind
func (g *GustMachine) Stop() {
	g.state = GustIdle
	g.phase = phaseDelay
	g.elapsed = 0
}

// Advance moves the timeline forward by dt, carrying leftover time across phases
func (g *GustMachine) Advance(dt time.Duration, target WindTarget) {
	for i := 0; dt > 0 && g.state != GustIdle && i < maxGustSteps; i++ {
		dt = g.step(dt, target)
	}
}

func (g *GustMachine) beginCycle(target WindTarget) {
	cfg := target.GustConfig()
	if !cfg.Active {
		g.Stop()
		return
	}

	base := target.BaseWindStrength()
	g.cycle = gustCycle{
		base:        base,
		peak:        base + vmath.Between(g.rng, cfg.In.AdditionalStrength.Min, cfg.In.AdditionalStrength.Max),
		durationIn:  sampleMillis(g.rng, cfg.In.Duration),
		delayIn:     sampleMillis(g.rng, cfg.In.Delay),
		durationOut: sampleMillis(g.rng, cfg.Out.Duration),
		delayOut:    sampleMillis(g.rng, cfg.Out.Delay),
		flipDraw:    g.rng.Float64(),
	}
	g.state = GustWindingIn
	g.phase = phaseDelay
	g.elapsed = 0
}

// step consumes at most the remainder of the current phase and returns unused time
func (g *GustMachine) step(dt time.Duration, target WindTarget) time.Duration {
	length := g.phaseLength()
	left := length - g.elapsed
	if dt < left {
		g.elapsed += dt
		if g.phase == phaseRamp {
			g.apply(target)
		}
		return 0
	}

	g.elapsed = length
	if g.phase == phaseRamp {
		g.apply(target)
	}
	g.next(target)
	return dt - left
}

func (g *GustMachine) phaseLength() time.Duration {
	switch {
	case g.state == GustWindingIn && g.phase == phaseDelay:
		return g.cycle.delayIn
	case g.state == GustWindingIn:
		return g.cycle.durationIn
	case g.phase == phaseDelay:
		return g.cycle.delayOut
	default:
		return g.cycle.durationOut
	}
}

// apply writes the eased strength for the current ramp progress
func (g *GustMachine) apply(target WindTarget) {
	t := 1.0
	if length := g.phaseLength(); length > 0 {
		t = vmath.Clamp01(float64(g.elapsed) / float64(length))
	}

	var strength float64
	if g.state == GustWindingIn {
		strength = vmath.Lerp(g.cycle.base, g.cycle.peak, vmath.QuadraticInOut(t))
	} else {
		strength = vmath.Lerp(g.cycle.peak, g.cycle.base, vmath.QuadraticOut(t))
	}
	target.SetLiveWindStrength(strength)
}

// next performs the transition out of a finished phase
func (g *GustMachine) next(target WindTarget) {
	g.elapsed = 0
	switch {
	case g.phase == phaseDelay:
		g.phase = phaseRamp
	case g.state == GustWindingIn:
		g.state = GustWindingOut
		g.phase = phaseDelay
	default:
		if g.cycle.flipDraw < target.GustConfig().ChangeChance {
			target.ReverseWind()
		}
		g.cycles++
		g.beginCycle(target)
	}
}

func sampleMillis(rng vmath.Rand, b config.Bounds) time.Duration {
	ms := vmath.Between(rng, b.Min, b.Max)
	if ms <= 0 {
		return 0
	}
	return time.Duration(ms * float64(time.Millisecond))
}
