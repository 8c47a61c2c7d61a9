package applet

// Error configures a dialog that warns the user of an error (zenity --error).
type Error struct {
	// Text is the body text.
	Text string
	// NoWrap disables word wrapping.
	NoWrap bool
	// NoMarkup disables Pango markup in Text.
	NoMarkup bool
}

// Args returns the zenity arguments for the error dialog.
func (a Error) Args() []string {
	args := []string{"--error"}
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
