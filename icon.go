package zenbridge

// Icon is the icon shown by a dialog, either one of the stock names or a
// path to a custom icon file.
type Icon string

const (
	IconError    Icon = "error"
	IconInfo     Icon = "info"
	IconQuestion Icon = "question"
	IconWarning  Icon = "warning"
)

// IconPath returns an Icon referring to a custom icon file.
func IconPath(path string) Icon {
	return Icon(path)
}
