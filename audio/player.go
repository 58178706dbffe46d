package audio

import (
	"fmt"
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/snowfall/parameter"
)

// Player routes a streamer to the system speaker at a fixed volume
type Player struct {
	mu      sync.Mutex
	ctrl    *beep.Ctrl
	started bool
}

// NewPlayer wraps source with a linear volume in [0, 1]
func NewPlayer(source beep.Streamer, volume float64) *Player {
	return &Player{
		ctrl: &beep.Ctrl{Streamer: newVolume(source, volume)},
	}
}

// Start opens the speaker and begins playback
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return nil
	}

	rate := beep.SampleRate(parameter.AudioSampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.ctrl)
	p.started = true
	return nil
}

// SetPaused mutes or resumes playback without closing the device
func (p *Player) SetPaused(paused bool) {
	speaker.Lock()
	p.ctrl.Paused = paused
	speaker.Unlock()
}

// Close stops playback and releases the device
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.started = false
}

// newVolume maps a linear gain onto effects.Volume; Log2(0) is -Inf so zero is silent
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
