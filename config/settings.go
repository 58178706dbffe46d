package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Settings configures the terminal application around the simulation
type Settings struct {
	FPS        int              `mapstructure:"fps" yaml:"fps"`
	CellWidth  float64          `mapstructure:"cell_width" yaml:"cell_width"`
	CellHeight float64          `mapstructure:"cell_height" yaml:"cell_height"`
	Background string           `mapstructure:"background" yaml:"background"`
	HUD        bool             `mapstructure:"hud" yaml:"hud"`
	Watch      bool             `mapstructure:"watch" yaml:"watch"`
	Seed       uint64           `mapstructure:"seed" yaml:"seed"`
	Audio      AudioSettings    `mapstructure:"audio" yaml:"audio"`
	Log        LogSettings      `mapstructure:"log" yaml:"log"`
	Schedule   ScheduleSettings `mapstructure:"schedule" yaml:"schedule"`
}

type AudioSettings struct {
	Enabled bool    `mapstructure:"enabled" yaml:"enabled"`
	Volume  float64 `mapstructure:"volume" yaml:"volume"`
}

// LogSettings configures the zap logger; an empty File disables file output
type LogSettings struct {
	Level      string `mapstructure:"level" yaml:"level"`
	File       string `mapstructure:"file" yaml:"file"`
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" yaml:"max_age"`
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

// ScheduleSettings gates the run command to a yearly window of MM-DD dates
type ScheduleSettings struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	From    string `mapstructure:"from" yaml:"from"`
	To      string `mapstructure:"to" yaml:"to"`
}

// FrameInterval converts FPS to a tick period
func (s *Settings) FrameInterval() time.Duration {
	return time.Second / time.Duration(s.FPS)
}

// SetDefaults registers application defaults under the app section
func SetDefaults(v *viper.Viper) {
	// -- Display --
	v.SetDefault("app.fps", 60)
	v.SetDefault("app.cell_width", 8.0)
	v.SetDefault("app.cell_height", 16.0)
	v.SetDefault("app.background", "#000000")
	v.SetDefault("app.hud", false)
	v.SetDefault("app.watch", true)
	v.SetDefault("app.seed", 0)

	// -- Audio --
	v.SetDefault("app.audio.enabled", false)
	v.SetDefault("app.audio.volume", 0.5)

	// -- Logger --
	v.SetDefault("app.log.level", "info")
	v.SetDefault("app.log.file", "")
	v.SetDefault("app.log.max_size", 10)
	v.SetDefault("app.log.max_backups", 3)
	v.SetDefault("app.log.max_age", 7)
	v.SetDefault("app.log.compress", false)

	// -- Schedule --
	v.SetDefault("app.schedule.enabled", false)
	v.SetDefault("app.schedule.from", "12-01")
	v.SetDefault("app.schedule.to", "01-06")
}

// NewSettingsFromViper decodes and validates the app section
func NewSettingsFromViper(v *viper.Viper) (*Settings, error) {
	// Unmarshal walks AllSettings, so file values merge over per-key defaults
	var root struct {
		App Settings `mapstructure:"app"`
	}
	if err := v.Unmarshal(&root); err != nil {
		return nil, fmt.Errorf("error unmarshaling settings: %w", err)
	}
	s := root.App
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return &s, nil
}

// Validate checks ranges the application relies on
func (s *Settings) Validate() error {
	var errs []error
	if s.FPS < 1 || s.FPS > 240 {
		errs = append(errs, fmt.Errorf("app.fps must be within 1..240, got %d", s.FPS))
	}
	if s.CellWidth <= 0 || s.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("app.cell_width and app.cell_height must be positive"))
	}
	if s.Audio.Volume < 0 || s.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("app.audio.volume must be within 0..1, got %v", s.Audio.Volume))
	}
	switch s.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("app.log.level %q is not one of debug, info, warn, error", s.Log.Level))
	}
	return errors.Join(errs...)
}
