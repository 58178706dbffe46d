package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/snowfall/schedule"
)

func newScheduleCmd(a *app) *cobra.Command {
	var from, to, date string
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Report whether a date falls inside the snowfall window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if from == "" {
				from = a.settings.Schedule.From
			}
			if to == "" {
				to = a.settings.Schedule.To
			}
			window, err := schedule.ParseWindow(from, to)
			if err != nil {
				return err
			}

			now := time.Now()
			if date != "" {
				if now, err = time.ParseInLocation(time.DateOnly, date, time.Local); err != nil {
					return fmt.Errorf("%w: %v", schedule.ErrInvalidDate, err)
				}
			}

			inside, err := schedule.Within(window, now)
			if err != nil {
				return err
			}
			state := "outside"
			if inside {
				state = "inside"
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s window %s..%s\n", now.Format(time.DateOnly), state, window.From, window.To)
			return err
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "window start MM-DD (default app.schedule.from)")
	cmd.Flags().StringVar(&to, "to", "", "window end MM-DD, inclusive (default app.schedule.to)")
	cmd.Flags().StringVar(&date, "date", "", "date to check as YYYY-MM-DD (default today)")
	return cmd
}
