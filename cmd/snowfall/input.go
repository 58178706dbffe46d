package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/snowfall/config"
)

// readUserConfig loads the snowfall config from a path argument, stdin ("-") or the loaded config file
func (a *app) readUserConfig(cmd *cobra.Command, args []string) (config.UserConfig, error) {
	if len(args) == 0 {
		return config.UserConfigFromViper(a.v)
	}

	path := args[0]
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return config.UserConfig{}, fmt.Errorf("error reading %s: %w", path, err)
	}

	// YAML accepts JSON documents, so stdin needs no format hint
	format := config.FormatYAML
	if path != "-" {
		format = config.FormatFromPath(path)
	}
	return config.Parse(data, format)
}

func writeEncoded(cmd *cobra.Command, v any, formatName string) error {
	format, err := config.ParseFormat(formatName)
	if err != nil {
		return err
	}
	out, err := config.Encode(v, format)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
