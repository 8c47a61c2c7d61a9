package applet

// Question configures a yes/no question dialog (zenity --question).
type Question struct {
	// Text is the body text.
	Text string
	// OKLabel overrides the label of the OK button.
	OKLabel string
	// CancelLabel overrides the label of the Cancel button.
	CancelLabel string
	// DefaultCancel gives the Cancel button focus by default.
	DefaultCancel bool
	// NoWrap disables word wrapping.
	NoWrap bool
	// NoMarkup disables Pango markup in Text.
	NoMarkup bool
}

// Args returns the zenity arguments for the question dialog.
func (a Question) Args() []string {
	args := []string{"--question"}
	if a.Text != "" {
		args = append(args, "--text="+a.Text)
	}
	if a.OKLabel != "" {
		args = append(args, "--ok-label="+a.OKLabel)
	}
	if a.CancelLabel != "" {
		args = append(args, "--cancel-label="+a.CancelLabel)
	}
	if a.DefaultCancel {
		args = append(args, "--default-cancel")
	}
	if a.NoWrap {
		args = append(args, "--no-wrap")
	}
	if a.NoMarkup {
		args = append(args, "--no-markup")
	}
	return args
}
