package commands

import (
	"bufio"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/takumx/zenbridge"
	"github.com/takumx/zenbridge/applet"
	"github.com/takumx/zenbridge/internal/ptyrun"
)

func progressCmd() *cobra.Command {
	var (
		text       string
		percentage int
		pulsate    bool
		autoClose  bool
		noCancel   bool
	)
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show a progress dialog fed from stdin",
		Long: "Show a progress dialog and forward this process's stdin to it.\n" +
			"Lines with a number move the bar, lines starting with '# ' replace\n" +
			"the label, exactly like piping to zenity --progress.",
		RunE: func(cmd *cobra.Command, args []string) error {
			d := newDialog(applet.Progress{
				Text:       text,
				Percentage: percentage,
				Pulsate:    pulsate,
				AutoClose:  autoClose,
				NoCancel:   noCancel,
			})
			log.Debug().Str("program", d.Program()).Strs("argv", d.Argv()).Msg("spawning dialog")

			stream, err := d.Stream(cmd.Context())
			if err != nil {
				return err
			}

			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				if err := stream.Forward(scanner.Text()); err != nil {
					// The dialog went away (canceled or auto-closed);
					// stop feeding and collect the result.
					break
				}
			}

			res, err := stream.Close()
			if err != nil {
				return err
			}
			finish(res)
			return nil
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "initial dialog text")
	cmd.Flags().IntVar(&percentage, "percentage", 0, "initial percentage")
	cmd.Flags().BoolVar(&pulsate, "pulsate", false, "pulsate the progress bar")
	cmd.Flags().BoolVar(&autoClose, "auto-close", false, "close the dialog when 100% is reached")
	cmd.Flags().BoolVar(&noCancel, "no-cancel", false, "hide the Cancel button")
	return cmd
}

func runCmd() *cobra.Command {
	var (
		text     string
		pulsate  bool
		autoKill bool
	)
	cmd := &cobra.Command{
		Use:   "run -- command [args...]",
		Short: "Run a command with a progress dialog",
		Long: "Run a command under a pseudo-terminal and show a progress dialog\n" +
			"tracking the percentages the command prints. The command's output\n" +
			"is mirrored to stdout with colors stripped.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if text == "" {
				text = strings.Join(args, " ")
			}
			d := newDialog(applet.Progress{
				Text:      text,
				Pulsate:   pulsate,
				AutoClose: true,
				AutoKill:  autoKill,
			})
			log.Debug().Str("program", d.Program()).Strs("argv", d.Argv()).Msg("spawning dialog")

			stream, err := d.Stream(cmd.Context())
			if err != nil {
				return err
			}

			runner := &ptyrun.Runner{
				Output:      os.Stdout,
				StripColors: true,
				OnPercent: func(pct int) {
					stream.Percent(pct)
				},
			}
			code, err := runner.Run(cmd.Context(), args[0], args[1:]...)
			if err != nil {
				stream.Close()
				return err
			}
			log.Debug().Int("exit_code", code).Msg("command finished")

			stream.Percent(100)
			if res, err := stream.Close(); err == nil && res.Outcome == zenbridge.OutcomeRejected {
				// Cancel on the dialog outranks the command's own status.
				os.Exit(1)
			}
			os.Exit(code)
			return nil
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "dialog text (default: the command line)")
	cmd.Flags().BoolVar(&pulsate, "pulsate", false, "pulsate instead of tracking percentages")
	cmd.Flags().BoolVar(&autoKill, "auto-kill", false, "kill the command when Cancel is pressed")
	return cmd
}
