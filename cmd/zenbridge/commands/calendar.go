package commands

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/takumx/zenbridge/applet"
)

func calendarCmd() *cobra.Command {
	var (
		text   string
		day    int
		month  int
		year   int
		format string
	)
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Ask for a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			cal := applet.Calendar{
				Text:   text,
				Day:    day,
				Month:  time.Month(month),
				Year:   year,
				Format: format,
			}

			d := newDialog(cal)
			log.Debug().Str("program", d.Program()).Strs("argv", d.Argv()).Msg("spawning dialog")

			res, err := d.Show(cmd.Context())
			if err != nil {
				return err
			}

			// With the default format the selected date round-trips
			// through time.Time, so scripts always see ISO 8601.
			if res.Affirmed() && format == "" && res.Content != "" {
				date, err := cal.ParseDate(res.Content)
				if err != nil {
					return fmt.Errorf("parsing selected date: %w", err)
				}
				res.Content = date.Format("2006-01-02")
			}
			finish(res)
			return nil
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "dialog text")
	cmd.Flags().IntVar(&day, "day", 0, "day of the month to preselect")
	cmd.Flags().IntVar(&month, "month", 0, "month to preselect (1-12)")
	cmd.Flags().IntVar(&year, "year", 0, "year to preselect")
	cmd.Flags().StringVar(&format, "date-format", "", "strftime format for the printed date (disables parsing)")
	return cmd
}
