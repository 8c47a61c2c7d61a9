// Package zenbridge is a thin bridge to zenity, the GTK dialog renderer.
// It builds a zenity command line from a dialog configuration, spawns the
// program, and classifies its exit code and output streams into a
// structured Result.
package zenbridge

import (
	"errors"
	"os"
	"os/exec"
)

// DefaultProgram is the dialog program spawned when no override is set.
const DefaultProgram = "zenity"

// programEnv overrides the dialog program path when set.
const programEnv = "ZENITY"

var (
	// ErrNotInstalled reports that the dialog program could not be found
	// on the host.
	ErrNotInstalled = errors.New("dialog program is not installed")

	// ErrBadOutput reports that the dialog program wrote something to
	// stdout that is not valid UTF-8.
	ErrBadOutput = errors.New("dialog program produced non-UTF-8 output")
)

// compatiblePrograms are known zenity-compatible dialog renderers, probed
// in order by Detect.
var compatiblePrograms = []string{"zenity", "qarma", "matedialog"}

// Detect probes PATH for a zenity-compatible dialog program and returns
// the resolved path of the first one found. It fails with ErrNotInstalled
// when none is available.
func Detect() (string, error) {
	for _, name := range compatiblePrograms {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", ErrNotInstalled
}

// notInstalled reports whether a spawn error means the program is absent.
func notInstalled(err error) bool {
	return errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist)
}
