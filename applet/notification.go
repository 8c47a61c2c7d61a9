package applet

// Notification configures a desktop notification (zenity --notification).
// Notifications do not wait for user input; the process exits as soon as
// the notification is delivered.
type Notification struct {
	// Text is the notification text.
	Text string
}

// Args returns the zenity arguments for the notification.
func (a Notification) Args() []string {
	args := []string{"--notification"}
	if a.Text != "" {
		args = append(args, "--text="+a.Text)
	}
	return args
}
