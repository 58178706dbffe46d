package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/lixenwraith/snowfall/parameter"
	"github.com/lixenwraith/snowfall/render"
	"github.com/lixenwraith/snowfall/status"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestFrameLoopTickOrder(t *testing.T) {
	clock := NewMockClock(time.Unix(0, 0))
	rec := &render.Recorder{}
	var order []string

	loop := NewFrameLoop(rec, frame,
		WithClock(clock),
		WithPresent(func() { order = append(order, "present") }))
	loop.SetUpdate(func(dt time.Duration) {
		order = append(order, "update")
		assert.Equal(t, frame, dt)
	})
	loop.SetRender(func(s render.Surface) {
		order = append(order, "render")
		assert.Same(t, rec, s)
	})

	clock.Advance(frame)
	loop.Tick()

	assert.Equal(t, []string{"update", "render", "present"}, order)
	assert.Equal(t, uint64(1), loop.Frames())
}

func TestFrameLoopCapsDelta(t *testing.T) {
	clock := NewMockClock(time.Unix(0, 0))
	loop := NewFrameLoop(&render.Recorder{}, frame, WithClock(clock))
	var got []time.Duration
	loop.SetUpdate(func(dt time.Duration) { got = append(got, dt) })

	clock.Advance(5 * time.Second)
	loop.Tick()
	clock.Set(time.Unix(0, 0))
	loop.Tick()

	assert.Equal(t, []time.Duration{parameter.MaxFrameDelta, 0}, got)
}

func TestFrameLoopGauges(t *testing.T) {
	clock := NewMockClock(time.Unix(0, 0))
	reg := status.NewRegistry()
	loop := NewFrameLoop(&render.Recorder{}, frame, WithClock(clock), WithLoopRegistry(reg))

	clock.Advance(20 * time.Millisecond)
	loop.Tick()

	assert.Equal(t, int64(1), reg.Ints.Get("engine.frames").Load())
	assert.InDelta(t, 50.0, reg.Floats.Get("engine.fps").Get(), 1e-9)
}

func TestFrameLoopPostBeforeStartRunsInline(t *testing.T) {
	loop := NewFrameLoop(&render.Recorder{}, frame)
	ran := false
	loop.Post(func() { ran = true })
	assert.True(t, ran)
}

func TestFrameLoopRunsAndStops(t *testing.T) {
	loop := NewFrameLoop(&render.Recorder{}, time.Millisecond)
	var ticks atomic.Int64
	loop.SetUpdate(func(time.Duration) { ticks.Add(1) })

	loop.Start()
	loop.Start()

	done := make(chan struct{})
	loop.Post(func() { close(done) })
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("posted closure never ran")
	}

	require.Eventually(t, func() bool { return ticks.Load() >= 3 }, 2*time.Second, time.Millisecond)

	loop.Stop()
	loop.Stop()
	stopped := ticks.Load()
	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, stopped, ticks.Load())

	ran := false
	loop.Post(func() { ran = true })
	assert.False(t, ran)
}

func TestFrameLoopDrivesSimulation(t *testing.T) {
	rec := &render.Recorder{}
	loop := NewFrameLoop(rec, time.Millisecond)
	sim := NewSimulation(NewHostRegistry(NewStaticHost("snowfall", 640, 360)), loop)

	require.NoError(t, sim.Start(configWithoutGusts()))

	done := make(chan int)
	require.Eventually(t, func() bool { return loop.Frames() >= 2 }, 2*time.Second, time.Millisecond)
	loop.Post(func() { done <- sim.Layers() })
	assert.Equal(t, 1, <-done)

	sim.Stop()
}

func TestFrameLoopRestartsAfterStop(t *testing.T) {
	loop := NewFrameLoop(&render.Recorder{}, time.Millisecond)
	var ticks atomic.Int64
	loop.SetUpdate(func(time.Duration) { ticks.Add(1) })

	loop.Start()
	require.Eventually(t, func() bool { return ticks.Load() >= 3 }, 2*time.Second, time.Millisecond)
	loop.Stop()
	assert.False(t, loop.Running())
	stopped := ticks.Load()

	loop.Start()
	defer loop.Stop()
	assert.True(t, loop.Running())
	require.Eventually(t, func() bool { return ticks.Load() >= stopped+3 }, 2*time.Second, time.Millisecond)

	done := make(chan struct{})
	loop.Post(func() { close(done) })
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("posted closure never ran after restart")
	}
}

func TestFrameLoopStopBeforeStartDropsPosts(t *testing.T) {
	loop := NewFrameLoop(&render.Recorder{}, frame)
	loop.Stop()

	ran := false
	loop.Post(func() { ran = true })
	assert.False(t, ran)
	assert.False(t, loop.Running())
}
