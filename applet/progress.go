package applet

import "fmt"

// Progress configures a progress dialog (zenity --progress). The dialog
// reads percentage lines and "# text" lines from stdin while it is shown.
type Progress struct {
	// Text is the initial body text.
	Text string
	// Percentage is the initial progress value.
	Percentage int
	// Pulsate animates the bar instead of filling it.
	Pulsate bool
	// AutoClose dismisses the dialog when progress reaches 100%.
	AutoClose bool
	// AutoKill kills the parent process when Cancel is pressed.
	AutoKill bool
	// NoCancel hides the Cancel button.
	NoCancel bool
}

// Args returns the zenity arguments for the progress dialog.
func (a Progress) Args() []string {
	args := []string{"--progress"}
	if a.Text != "" {
		args = append(args, "--text="+a.Text)
	}
	if a.Percentage > 0 {
		args = append(args, fmt.Sprintf("--percentage=%d", a.Percentage))
	}
	if a.Pulsate {
		args = append(args, "--pulsate")
	}
	if a.AutoClose {
		args = append(args, "--auto-close")
	}
	if a.AutoKill {
		args = append(args, "--auto-kill")
	}
	if a.NoCancel {
		args = append(args, "--no-cancel")
	}
	return args
}
