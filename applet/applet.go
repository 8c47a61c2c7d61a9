// Package applet contains the configuration structs for the dialog kinds
// zenity can render. Each applet knows how to serialize itself into the
// leading portion of a zenity argument vector.
package applet

// Applet is a dialog kind that can be rendered by zenity. Args returns the
// arguments selecting the dialog and its kind-specific options; common
// options like --title are appended by the caller.
type Applet interface {
	Args() []string
}
