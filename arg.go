package zenbridge

import "strings"

// Arg is a generic long option for the dialog program, used with
// Dialog.WithExtraArg to pass flags this package does not model
// statically. The leading "--" is added automatically; providing it
// anyway still works.
type Arg struct {
	Name  string
	Value string
}

// String formats the argument as "--name" or "--name=value".
func (a Arg) String() string {
	name := strings.TrimPrefix(a.Name, "--")
	if a.Value == "" {
		return "--" + name
	}
	return "--" + name + "=" + a.Value
}
