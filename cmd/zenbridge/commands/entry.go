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

func entryCmd() *cobra.Command {
	var (
		text      string
		entryText string
		hideText  bool
	)
	cmd := &cobra.Command{
		Use:   "entry",
		Short: "Ask for a line of text",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := show(cmd, applet.Entry{
				Text:      text,
				EntryText: entryText,
				HideText:  hideText,
			})
			if errors.Is(err, zenbridge.ErrNotInstalled) && term.IsTerminal(int(os.Stdin.Fd())) {
				return readTerminal(text, hideText)
			}
			return err
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "prompt text")
	cmd.Flags().StringVar(&entryText, "entry-text", "", "prefill the input with this text")
	cmd.Flags().BoolVar(&hideText, "hide-text", false, "mask the input, as for a password")
	return cmd
}

// readTerminal is the fallback when no dialog program is installed but we
// are attached to a terminal: prompt on stderr, read the value from stdin.
func readTerminal(text string, hide bool) error {
	log.Debug().Msg("no dialog program, falling back to terminal prompt")

	fmt.Fprintf(os.Stderr, "%s: ", text)
	if hide {
		value, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			os.Exit(1)
		}
		fmt.Println(string(value))
		os.Exit(0)
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		os.Exit(1)
	}
	fmt.Println(strings.TrimRight(line, "\r\n"))
	os.Exit(0)
	return nil
}
