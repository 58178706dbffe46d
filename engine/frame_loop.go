package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/snowfall/parameter"
	"github.com/lixenwraith/snowfall/render"
	"github.com/lixenwraith/snowfall/status"
)

// Scheduler drives update and render callbacks once per frame
type Scheduler interface {
	SetUpdate(fn func(dt time.Duration))
	SetRender(fn func(surface render.Surface))
	Start()
	Stop()
}

// FrameLoop is the single goroutine that owns simulation state
// Update, render and posted closures all run on it, one at a time
type FrameLoop struct {
	surface  render.Surface
	interval time.Duration
	clock    Clock
	present  func()

	mu     sync.Mutex
	update func(time.Duration)
	render func(render.Surface)

	lastTick time.Time
	frames   atomic.Uint64

	posts chan func()

	// lifecycle serializes Start and Stop; run is nil while the goroutine is not running
	lifecycle sync.Mutex
	run       atomic.Pointer[loopRun]
	inline    atomic.Bool
	wg        sync.WaitGroup

	statFrames *atomic.Int64
	statFPS    *status.Float
}

// loopRun is one Start to Stop span of the loop goroutine
type loopRun struct {
	stop chan struct{}
}

// FrameLoopOption configures a FrameLoop
type FrameLoopOption func(*FrameLoop)

// WithClock replaces the wall clock used to measure frame deltas
func WithClock(c Clock) FrameLoopOption {
	return func(f *FrameLoop) { f.clock = c }
}

// WithPresent sets the hook run after each render, e.g. screen.Show
func WithPresent(fn func()) FrameLoopOption {
	return func(f *FrameLoop) { f.present = fn }
}

// WithLoopRegistry publishes frame count and fps gauges
func WithLoopRegistry(reg *status.Registry) FrameLoopOption {
	return func(f *FrameLoop) {
		f.statFrames = reg.Ints.Get("engine.frames")
		f.statFPS = reg.Floats.Get("engine.fps")
	}
}

func NewFrameLoop(surface render.Surface, interval time.Duration, opts ...FrameLoopOption) *FrameLoop {
	if interval <= 0 {
		interval = parameter.FrameInterval
	}
	f := &FrameLoop{
		surface:  surface,
		interval: interval,
		clock:    RealClock{},
		present:  func() {},
		posts:    make(chan func(), parameter.PostQueueSize),
	}
	f.inline.Store(true)
	for _, opt := range opts {
		opt(f)
	}
	f.lastTick = f.clock.Now()
	return f
}

func (f *FrameLoop) SetUpdate(fn func(time.Duration)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.update = fn
}

func (f *FrameLoop) SetRender(fn func(render.Surface)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.render = fn
}

// Start launches the loop goroutine; calls while running are ignored
// A stopped loop may be started again
func (f *FrameLoop) Start() {
	f.lifecycle.Lock()
	defer f.lifecycle.Unlock()
	if f.run.Load() != nil {
		return
	}

	r := &loopRun{stop: make(chan struct{})}
	f.lastTick = f.clock.Now()
	f.inline.Store(false)
	f.wg.Add(1)
	f.run.Store(r)
	go f.loop(r.stop)
}

// Stop halts the loop and waits for it to exit; closures still queued are dropped
// Must not be called from update, render or a posted closure
func (f *FrameLoop) Stop() {
	f.lifecycle.Lock()
	defer f.lifecycle.Unlock()
	f.inline.Store(false)
	r := f.run.Load()
	if r == nil {
		return
	}

	close(r.stop)
	f.wg.Wait()
	f.run.Store(nil)
	for {
		select {
		case <-f.posts:
		default:
			return
		}
	}
}

// Running reports whether the loop goroutine is active
func (f *FrameLoop) Running() bool {
	return f.run.Load() != nil
}

// Post queues fn to run on the loop goroutine between frames
// Before the first Start, fn runs inline; while stopped, fn is dropped
func (f *FrameLoop) Post(fn func()) {
	if r := f.run.Load(); r != nil {
		select {
		case <-r.stop:
			return
		default:
		}
		select {
		case f.posts <- fn:
		case <-r.stop:
		}
		return
	}
	if f.inline.Load() {
		fn()
	}
}

// Frames reports completed ticks
func (f *FrameLoop) Frames() uint64 {
	return f.frames.Load()
}

// Tick runs one update, render and present cycle
// dt is measured from the previous tick and capped so a stalled process does not teleport flakes
func (f *FrameLoop) Tick() {
	now := f.clock.Now()
	dt := now.Sub(f.lastTick)
	f.lastTick = now
	if dt < 0 {
		dt = 0
	}
	if dt > parameter.MaxFrameDelta {
		dt = parameter.MaxFrameDelta
	}

	f.mu.Lock()
	update, draw := f.update, f.render
	f.mu.Unlock()

	if update != nil {
		update(dt)
	}
	if draw != nil {
		draw(f.surface)
	}
	f.present()

	n := f.frames.Add(1)
	if f.statFrames != nil {
		f.statFrames.Store(int64(n))
	}
	if f.statFPS != nil && dt > 0 {
		f.statFPS.Set(float64(time.Second) / float64(dt))
	}
}

func (f *FrameLoop) loop(stop <-chan struct{}) {
	defer f.wg.Done()

	timer := time.NewTimer(f.interval)
	defer timer.Stop()
	deadline := time.Now().Add(f.interval)

	for {
		select {
		case <-stop:
			return

		case fn := <-f.posts:
			fn()

		case <-timer.C:
			f.Tick()

			// Drift correction, resynchronize when more than two frames behind
			deadline = deadline.Add(f.interval)
			now := time.Now()
			if now.Sub(deadline) > 2*f.interval {
				deadline = now.Add(f.interval)
			}
			wait := deadline.Sub(now)
			if wait < 0 {
				wait = 0
			}
			timer.Reset(wait)
		}
	}
}
