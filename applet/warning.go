package applet

// Warning configures a warning dialog (zenity --warning).
type Warning struct {
	// Text is the body text.
	Text string
	// NoWrap disables word wrapping.
	NoWrap bool
	// NoMarkup disables Pango markup in Text.
	NoMarkup bool
}

// Args returns the zenity arguments for the warning dialog.
func (a Warning) Args() []string {
	args := []string{"--warning"}
	if a.Text != "" {
		args = append(args, "--text="+a.Text)
	}
	if a.NoWrap {
		args = append(args, "--no-wrap")
	}
	if a.NoMarkup {
		args = append(args, "--no-markup")
	}
	return args
}
