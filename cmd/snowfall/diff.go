package main

import (
	"github.com/spf13/cobra"

	"github.com/lixenwraith/snowfall/config"
)

func newDiffCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "diff [file|-]",
		Short: "Print the minimal configuration that reproduces the input",
		Long: "Strips every value equal to its default. Resolving the output yields the same " +
			"configuration as resolving the input.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.readUserConfig(cmd, args)
			if err != nil {
				return err
			}
			return writeEncoded(cmd, config.Diff(user), format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(config.FormatYAML), "output format: yaml or json")
	return cmd
}
