package commands

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/takumx/zenbridge"
	"github.com/takumx/zenbridge/applet"
)

func questionCmd() *cobra.Command {
	var (
		text          string
		okLabel       string
		cancelLabel   string
		defaultCancel bool
		noWrap        bool
		noMarkup      bool
	)
	cmd := &cobra.Command{
		Use:   "question",
		Short: "Ask a yes/no question",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := show(cmd, applet.Question{
				Text:          text,
				OKLabel:       okLabel,
				CancelLabel:   cancelLabel,
				DefaultCancel: defaultCancel,
				NoWrap:        noWrap,
				NoMarkup:      noMarkup,
			})
			if errors.Is(err, zenbridge.ErrNotInstalled) && term.IsTerminal(int(os.Stdin.Fd())) {
				return askTerminal(text)
			}
			return err
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "question text")
	cmd.Flags().StringVar(&okLabel, "ok-label", "", "label for the OK button")
	cmd.Flags().StringVar(&cancelLabel, "cancel-label", "", "label for the Cancel button")
	cmd.Flags().BoolVar(&defaultCancel, "default-cancel", false, "focus the Cancel button by default")
	cmd.Flags().BoolVar(&noWrap, "no-wrap", false, "disable word wrapping")
	cmd.Flags().BoolVar(&noMarkup, "no-markup", false, "disable text markup")
	return cmd
}

// askTerminal is the fallback when no dialog program is installed but we
// are attached to a terminal: ask on stderr, read the answer from stdin.
func askTerminal(text string) error {
	log.Debug().Msg("no dialog program, falling back to terminal prompt")

	fmt.Fprintf(os.Stderr, "%s [y/N] ", text)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		os.Exit(1)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		os.Exit(0)
	}
	os.Exit(1)
	return nil
}
