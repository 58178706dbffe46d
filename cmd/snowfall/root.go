package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/snowfall/config"
	"github.com/lixenwraith/snowfall/observability"
)

const envPrefix = "SNOWFALL"

// app carries state shared by every subcommand
type app struct {
	v        *viper.Viper
	cfgFile  string
	settings *config.Settings
	logger   *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "snowfall",
		Short:         "Layered snowfall for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initialize(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "config file (default ./snowfall.yaml, then the user config dir)")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	_ = a.v.BindPFlag("app.log.level", pf.Lookup("log-level"))

	root.AddCommand(
		newRunCmd(a),
		newResolveCmd(a),
		newDiffCmd(a),
		newScheduleCmd(a),
	)
	return root
}

func (a *app) initialize(cmd *cobra.Command) error {
	if err := initializeConfig(a.v, a.cfgFile); err != nil {
		return err
	}

	settings, err := config.NewSettingsFromViper(a.v)
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so run logs only reach the file core
	console := zapcore.AddSync(cmd.ErrOrStderr())
	if cmd.Name() == "run" {
		console = zapcore.AddSync(io.Discard)
	}
	logger, err := observability.NewLogger(settings.Log, console)
	if err != nil {
		return err
	}

	a.settings = settings
	a.logger = logger
	if used := a.v.ConfigFileUsed(); used != "" {
		logger.Debug("config loaded", zap.String("file", used))
	}
	return nil
}

// initializeConfig reads the config file and SNOWFALL_ environment overrides
func initializeConfig(v *viper.Viper, file string) error {
	config.SetDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("snowfall")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "snowfall"))
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// No config file; defaults and environment apply
	}
	return nil
}
