package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/snowfall/audio"
	"github.com/lixenwraith/snowfall/config"
	"github.com/lixenwraith/snowfall/engine"
	"github.com/lixenwraith/snowfall/render"
	"github.com/lixenwraith/snowfall/schedule"
	"github.com/lixenwraith/snowfall/status"
	"github.com/lixenwraith/snowfall/vmath"
)

// scheduleCheckInterval is how often a running animation re-checks its window
const scheduleCheckInterval = time.Minute

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Animate snowfall in the terminal",
		Long: "Keys: q or Esc quits, space pauses every layer, r respawns, h toggles the HUD.\n" +
			"The config file is watched and reapplied on change.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd.Context())
		},
	}

	f := cmd.Flags()
	f.Int("fps", 0, "frames per second (default app.fps)")
	f.Bool("hud", false, "show the HUD at start")
	f.Bool("audio", false, "play wind noise")
	f.Int64("seed", 0, "random seed, 0 seeds from the clock")
	_ = a.v.BindPFlag("app.fps", f.Lookup("fps"))
	_ = a.v.BindPFlag("app.hud", f.Lookup("hud"))
	_ = a.v.BindPFlag("app.audio.enabled", f.Lookup("audio"))
	_ = a.v.BindPFlag("app.seed", f.Lookup("seed"))
	return cmd
}

func (a *app) run(parent context.Context) (err error) {
	s := a.settings

	var window schedule.Window
	if s.Schedule.Enabled {
		if window, err = schedule.ParseWindow(s.Schedule.From, s.Schedule.To); err != nil {
			return err
		}
		inside, err := schedule.Within(window, time.Now())
		if err != nil {
			return err
		}
		if !inside {
			a.logger.Info("outside schedule window, not starting",
				zap.Stringer("from", window.From), zap.Stringer("to", window.To))
			return nil
		}
	}

	user, err := config.UserConfigFromViper(a.v)
	if err != nil {
		return err
	}
	background, err := render.ParseColour(s.Background)
	if err != nil {
		return fmt.Errorf("app.background: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()
	// Restore the terminal before a panic prints its trace
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			panic(r)
		}
	}()
	screen.HideCursor()

	surface := render.NewCellSurface(screen, s.CellWidth, s.CellHeight, background)
	width, height := surface.PixelSize()
	host := engine.NewStaticHost(config.DefaultAttachTo, width, height)
	registry := status.NewRegistry()

	loop := engine.NewFrameLoop(surface, s.FrameInterval(),
		engine.WithPresent(screen.Show),
		engine.WithLoopRegistry(registry))

	h := &hud{text: surface, registry: registry, visible: s.HUD}
	opts := []engine.SimulationOption{
		engine.WithLogger(a.logger),
		engine.WithRegistry(registry),
		engine.WithOverlay(h.Draw),
	}
	if s.Seed != 0 {
		opts = append(opts, engine.WithRand(vmath.NewFastRand(uint64(s.Seed))))
	}

	var player *audio.Player
	if s.Audio.Enabled {
		wind := audio.NewWind(uint64(time.Now().UnixNano()))
		player = audio.NewPlayer(wind, s.Audio.Volume)
		if err := player.Start(); err != nil {
			a.logger.Warn("audio disabled", zap.Error(err))
			player = nil
		} else {
			defer player.Close()
			opts = append(opts, engine.WithWindSink(wind))
		}
	}

	sim := engine.NewSimulation(engine.NewHostRegistry(host), loop, opts...)
	h.sim = sim
	if err := sim.Start(user); err != nil {
		return err
	}
	defer sim.Stop()

	if s.Watch && a.v.ConfigFileUsed() != "" {
		a.watchConfig(loop, sim)
	}

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sess := &session{
		app:     a,
		screen:  screen,
		surface: surface,
		host:    host,
		loop:    loop,
		sim:     sim,
		hud:     h,
		player:  player,
		cancel:  cancel,
	}

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case ev := <-events:
				sess.handleEvent(ev)
			}
		}
	})

	if s.Schedule.Enabled {
		g.Go(func() error {
			return a.watchSchedule(gctx, window, cancel)
		})
	}

	return g.Wait()
}

// session is one running animation and the objects terminal input drives
type session struct {
	app     *app
	screen  tcell.Screen
	surface *render.CellSurface
	host    *engine.StaticHost
	loop    *engine.FrameLoop
	sim     *engine.Simulation
	hud     *hud
	player  *audio.Player
	cancel  context.CancelFunc
}

// handleEvent translates terminal input into posts on the frame loop
func (s *session) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		s.screen.Sync()
		s.loop.Post(s.resize)

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			s.cancel()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				s.cancel()
			case ' ':
				s.loop.Post(s.togglePause)
			case 'r':
				s.loop.Post(func() { _ = s.sim.Restart(nil) })
			case 'h':
				s.loop.Post(s.hud.Toggle)
			}
		}
	}
}

func (s *session) resize() {
	w, h := s.surface.PixelSize()
	s.host.Resize(w, h)
	s.sim.OnResize(w, h)
	s.app.logger.Debug("resized", zap.Float64("width", w), zap.Float64("height", h))
}

func (s *session) togglePause() {
	s.sim.TogglePausedAll()
	if s.player == nil {
		return
	}
	layers := s.sim.Snapshot().Layers
	s.player.SetPaused(len(layers) > 0 && layers[0].Paused)
}

// watchConfig reapplies the snowfall section whenever the config file changes
func (a *app) watchConfig(loop *engine.FrameLoop, sim *engine.Simulation) {
	a.v.OnConfigChange(func(e fsnotify.Event) {
		next, err := config.UserConfigFromViper(a.v)
		if err != nil {
			a.logger.Warn("config reload rejected", zap.String("file", e.Name), zap.Error(err))
			return
		}
		loop.Post(func() {
			if err := sim.Restart(&next); err != nil {
				a.logger.Warn("config reload failed", zap.String("file", e.Name), zap.Error(err))
				return
			}
			a.logger.Info("config reloaded", zap.String("file", e.Name), zap.Stringer("op", e.Op))
		})
	})
	a.v.WatchConfig()
}

// watchSchedule stops the animation once the window closes
func (a *app) watchSchedule(ctx context.Context, window schedule.Window, cancel context.CancelFunc) error {
	ticker := time.NewTicker(scheduleCheckInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			inside, err := schedule.Within(window, now)
			if err != nil {
				return err
			}
			if !inside {
				a.logger.Info("schedule window closed")
				cancel()
				return nil
			}
		}
	}
}
