// Package commands implements the zenbridge CLI. Each subcommand maps its
// flags onto one dialog applet, shows the dialog, prints the content the
// dialog produced, and exits with a code scripts can branch on: 0 for an
// affirmative response, 1 for a negative one, 2 for the extra button, and
// the program's own exit code for anything unrecognized.
package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/takumx/zenbridge"
	"github.com/takumx/zenbridge/applet"
)

var (
	title       string
	icon        string
	width       int
	height      int
	timeoutSec  int
	modalHint   string
	extraButton string
	program     string
	verbose     bool
)

func Execute() error {
	root := &cobra.Command{
		Use:           "zenbridge",
		Short:         "Scriptable desktop dialogs via zenity",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
			zerolog.SetGlobalLevel(zerolog.WarnLevel)
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}

	root.PersistentFlags().StringVar(&title, "title", "", "dialog title")
	root.PersistentFlags().StringVar(&icon, "icon", "", "icon name (error, info, question, warning) or icon path")
	root.PersistentFlags().IntVar(&width, "width", 0, "dialog width")
	root.PersistentFlags().IntVar(&height, "height", 0, "dialog height")
	root.PersistentFlags().IntVar(&timeoutSec, "timeout", 0, "close the dialog after this many seconds")
	root.PersistentFlags().StringVar(&modalHint, "modal", "", "modal hint text")
	root.PersistentFlags().StringVar(&extraButton, "extra-button", "", "label for an extra button (exit code 2 when pressed)")
	root.PersistentFlags().StringVar(&program, "program", "", "dialog program to spawn (default $ZENITY or zenity)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		infoCmd(), errorCmd(), warningCmd(), questionCmd(),
		entryCmd(), calendarCmd(), progressCmd(), notifyCmd(), runCmd(),
	)

	err := root.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "zenbridge:", err)
	}
	return err
}

// newDialog wraps an applet with the common options from the persistent
// flags.
func newDialog(a applet.Applet) *zenbridge.Dialog {
	d := zenbridge.New(a).
		WithTitle(title).
		WithIcon(zenbridge.Icon(icon)).
		WithWidth(width).
		WithHeight(height).
		WithModalHint(modalHint)
	if timeoutSec > 0 {
		d.WithTimeout(time.Duration(timeoutSec) * time.Second)
	}
	if extraButton != "" {
		d.WithExtraButton(extraButton)
	}
	if program != "" {
		d.WithPath(program)
	}
	return d
}

// show renders the dialog and finishes the process with the outcome's
// exit code. It only returns on errors that prevented the dialog from
// being shown at all.
func show(cmd *cobra.Command, a applet.Applet) error {
	d := newDialog(a)
	log.Debug().Str("program", d.Program()).Strs("argv", d.Argv()).Msg("spawning dialog")

	res, err := d.Show(cmd.Context())
	if err != nil {
		return err
	}
	finish(res)
	return nil
}

// finish prints the dialog content and exits with the outcome's code.
func finish(res *zenbridge.Result) {
	log.Debug().
		Stringer("outcome", res.Outcome).
		Int("exit_code", res.ExitCode).
		Msg("dialog finished")
	if res.Content != "" {
		fmt.Println(res.Content)
	}
	if res.Stderr != "" && res.Outcome == zenbridge.OutcomeUnknown {
		fmt.Fprint(os.Stderr, res.Stderr)
	}
	os.Exit(exitCode(res))
}

// exitCode maps a dialog result to the process exit code.
func exitCode(res *zenbridge.Result) int {
	switch res.Outcome {
	case zenbridge.OutcomeAffirmed:
		return 0
	case zenbridge.OutcomeRejected:
		return 1
	case zenbridge.OutcomeExtra:
		return 2
	default:
		if res.ExitCode > 0 {
			return res.ExitCode
		}
		return 1
	}
}
