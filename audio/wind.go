package audio

import (
	"github.com/lixenwraith/snowfall/parameter"
	"github.com/lixenwraith/snowfall/status"
	"github.com/lixenwraith/snowfall/vmath"
)

// Wind is an endless stereo noise bed whose loudness tracks the live wind
// SetLevel may be called from any goroutine; Stream runs on the speaker goroutine
type Wind struct {
	target status.Float

	rng   *vmath.FastRand
	level float64
	lp    [2]float64
}

func NewWind(seed uint64) *Wind {
	return &Wind{rng: vmath.NewFastRand(seed)}
}

// SetLevel sets the normalized target loudness, clamped to [0, 1]
func (w *Wind) SetLevel(level float64) {
	w.target.Set(vmath.Clamp01(level))
}

// Target returns the last requested level
func (w *Wind) Target() float64 {
	return w.target.Get()
}

// Stream fills samples with low-passed white noise scaled by the smoothed level
func (w *Wind) Stream(samples [][2]float64) (n int, ok bool) {
	target := w.target.Get()
	for i := range samples {
		w.level += (target - w.level) * parameter.WindLevelSmoothing
		for ch := range w.lp {
			noise := w.rng.Float64()*2 - 1
			w.lp[ch] += parameter.WindLowPassAlpha * (noise - w.lp[ch])
			samples[i][ch] = clampSample(w.lp[ch] * w.level * parameter.WindGain)
		}
	}
	return len(samples), true
}

func (w *Wind) Err() error {
	return nil
}

func clampSample(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
