package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Wind Noise
const (
	// WindLowPassAlpha is the one-pole smoothing factor applied to white noise (lower is darker)
	WindLowPassAlpha = 0.04

	// WindLevelSmoothing is the per-sample approach rate toward a new target level
	WindLevelSmoothing = 0.0005

	// WindStrengthFullScale is the wind strength mapped to full noise gain
	WindStrengthFullScale = 6.0

	// WindGain is the output multiplier applied after filtering
	WindGain = 6.0
)
