package main

import (
	"github.com/spf13/cobra"

	"github.com/lixenwraith/snowfall/config"
)

func newResolveCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "resolve [file|-]",
		Short: "Print the fully resolved configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.readUserConfig(cmd, args)
			if err != nil {
				return err
			}
			return writeEncoded(cmd, config.Resolve(user), format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(config.FormatYAML), "output format: yaml or json")
	return cmd
}
