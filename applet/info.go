package applet

// Info configures an informational dialog (zenity --info).
type Info struct {
	// Text is the body text.
	Text string
	// OKLabel overrides the label of the OK button.
	OKLabel string
	// NoWrap disables word wrapping.
	NoWrap bool
	// NoMarkup disables Pango markup in Text.
	NoMarkup bool
	// Ellipsize shortens text that is too long to display.
	Ellipsize bool
}

// Args returns the zenity arguments for the info dialog.
func (a Info) Args() []string {
	args := []string{"--info"}
	if a.Text != "" {
		args = append(args, "--text="+a.Text)
	}
	if a.OKLabel != "" {
		args = append(args, "--ok-label="+a.OKLabel)
	}
	if a.NoWrap {
		args = append(args, "--no-wrap")
	}
	if a.NoMarkup {
		args = append(args, "--no-markup")
	}
	if a.Ellipsize {
		args = append(args, "--ellipsize")
	}
	return args
}
