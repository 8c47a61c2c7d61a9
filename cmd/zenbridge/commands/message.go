package commands

import (
	"github.com/spf13/cobra"

	"github.com/takumx/zenbridge/applet"
)

func infoCmd() *cobra.Command {
	var (
		text      string
		okLabel   string
		noWrap    bool
		noMarkup  bool
		ellipsize bool
	)
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show an informational dialog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return show(cmd, applet.Info{
				Text:      text,
				OKLabel:   okLabel,
				NoWrap:    noWrap,
				NoMarkup:  noMarkup,
				Ellipsize: ellipsize,
			})
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "dialog text")
	cmd.Flags().StringVar(&okLabel, "ok-label", "", "label for the OK button")
	cmd.Flags().BoolVar(&noWrap, "no-wrap", false, "disable word wrapping")
	cmd.Flags().BoolVar(&noMarkup, "no-markup", false, "disable text markup")
	cmd.Flags().BoolVar(&ellipsize, "ellipsize", false, "ellipsize text that is too long")
	return cmd
}

func errorCmd() *cobra.Command {
	var (
		text     string
		noWrap   bool
		noMarkup bool
	)
	cmd := &cobra.Command{
		Use:   "error",
		Short: "Show an error dialog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return show(cmd, applet.Error{Text: text, NoWrap: noWrap, NoMarkup: noMarkup})
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "dialog text")
	cmd.Flags().BoolVar(&noWrap, "no-wrap", false, "disable word wrapping")
	cmd.Flags().BoolVar(&noMarkup, "no-markup", false, "disable text markup")
	return cmd
}

func warningCmd() *cobra.Command {
	var (
		text     string
		noWrap   bool
		noMarkup bool
	)
	cmd := &cobra.Command{
		Use:   "warning",
		Short: "Show a warning dialog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return show(cmd, applet.Warning{Text: text, NoWrap: noWrap, NoMarkup: noMarkup})
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "dialog text")
	cmd.Flags().BoolVar(&noWrap, "no-wrap", false, "disable word wrapping")
	cmd.Flags().BoolVar(&noMarkup, "no-markup", false, "disable text markup")
	return cmd
}

func notifyCmd() *cobra.Command {
	var text string
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Show a desktop notification",
		RunE: func(cmd *cobra.Command, args []string) error {
			return show(cmd, applet.Notification{Text: text})
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "notification text")
	return cmd
}
