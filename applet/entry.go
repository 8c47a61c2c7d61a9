package applet

// Entry configures a text entry dialog (zenity --entry).
type Entry struct {
	// Text is the prompt shown above the input.
	Text string
	// EntryText prefills the input with the given text.
	EntryText string
	// HideText masks the input, as for a password prompt.
	HideText bool
}

// Args returns the zenity arguments for the entry dialog.
func (a Entry) Args() []string {
	args := []string{"--entry"}
	if a.Text != "" {
		args = append(args, "--text="+a.Text)
	}
	if a.EntryText != "" {
		args = append(args, "--entry-text="+a.EntryText)
	}
	if a.HideText {
		args = append(args, "--hide-text")
	}
	return args
}
