package zenbridge

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/takumx/zenbridge/applet"
)

// Dialog is the configuration for one dialog invocation: the applet to
// render plus the options common to every dialog kind. A Dialog is built
// once, shown once, and discarded.
type Dialog struct {
	// Applet selects the kind of dialog to display.
	Applet applet.Applet
	// Title is displayed at the top of the dialog.
	Title string
	// Icon overrides the default window icon.
	Icon Icon
	// Width overrides the default dialog width.
	Width int
	// Height overrides the default dialog height.
	Height int
	// Timeout closes the dialog automatically after the duration has
	// passed. zenity only honors whole seconds.
	Timeout time.Duration
	// ModalHint sets the modal hint text.
	ModalHint string

	extraButton string
	extraArgs   []string
	path        string
}

// New returns a dialog rendering the given applet.
func New(a applet.Applet) *Dialog {
	return &Dialog{Applet: a}
}

// WithTitle sets a custom title for the dialog.
func (d *Dialog) WithTitle(title string) *Dialog {
	d.Title = title
	return d
}

// WithIcon overrides the default icon.
func (d *Dialog) WithIcon(icon Icon) *Dialog {
	d.Icon = icon
	return d
}

// WithWidth sets a specific width for the dialog.
func (d *Dialog) WithWidth(width int) *Dialog {
	d.Width = width
	return d
}

// WithHeight sets a specific height for the dialog.
func (d *Dialog) WithHeight(height int) *Dialog {
	d.Height = height
	return d
}

// WithTimeout makes the dialog close automatically after the duration has
// passed.
func (d *Dialog) WithTimeout(timeout time.Duration) *Dialog {
	d.Timeout = timeout
	return d
}

// WithModalHint renders a hint displaying the provided text.
func (d *Dialog) WithModalHint(hint string) *Dialog {
	d.ModalHint = hint
	return d
}

// WithExtraButton renders an extra button with the provided label. When
// the user presses it, Show classifies the result as OutcomeExtra.
func (d *Dialog) WithExtraButton(label string) *Dialog {
	d.extraButton = label
	return d
}

// WithExtraArg attaches an additional argument for options this package
// does not model statically. Use at your own risk.
func (d *Dialog) WithExtraArg(arg Arg) *Dialog {
	d.extraArgs = append(d.extraArgs, arg.String())
	return d
}

// WithExtraArgs is like WithExtraArg for multiple arguments.
func (d *Dialog) WithExtraArgs(args ...Arg) *Dialog {
	for _, arg := range args {
		d.extraArgs = append(d.extraArgs, arg.String())
	}
	return d
}

// WithPath overrides the dialog program. The default is the ZENITY
// environment variable when set, otherwise DefaultProgram.
func (d *Dialog) WithPath(path string) *Dialog {
	d.path = path
	return d
}

// Argv returns the full argument vector passed to the dialog program:
// applet arguments first, then common options, then extra arguments.
func (d *Dialog) Argv() []string {
	args := d.Applet.Args()
	if d.Title != "" {
		args = append(args, "--title="+d.Title)
	}
	if d.Icon != "" {
		args = append(args, "--icon-name="+string(d.Icon))
	}
	if d.Width > 0 {
		args = append(args, fmt.Sprintf("--width=%d", d.Width))
	}
	if d.Height > 0 {
		args = append(args, fmt.Sprintf("--height=%d", d.Height))
	}
	if secs := int(d.Timeout.Seconds()); secs > 0 {
		args = append(args, fmt.Sprintf("--timeout=%d", secs))
	}
	if d.ModalHint != "" {
		args = append(args, "--modal="+d.ModalHint)
	}
	if d.extraButton != "" {
		args = append(args, "--extra-button="+d.extraButton)
	}
	args = append(args, d.extraArgs...)
	return args
}

// Program returns the dialog program that Show would spawn.
func (d *Dialog) Program() string {
	if d.path != "" {
		return d.path
	}
	if env := os.Getenv(programEnv); env != "" {
		return env
	}
	return DefaultProgram
}

// Show renders the dialog and blocks until the user responds, the timeout
// fires, or ctx is canceled. Non-zero exit codes are reported through the
// Result; an error means the dialog could never be shown.
func (d *Dialog) Show(ctx context.Context) (*Result, error) {
	cmd := exec.CommandContext(ctx, d.Program(), d.Argv()...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			if notInstalled(err) {
				return nil, fmt.Errorf("%w: %s", ErrNotInstalled, d.Program())
			}
			return nil, err
		}
	}

	return d.classify(cmd.ProcessState.ExitCode(), stdout.Bytes(), stderr.Bytes())
}

// classify maps an exit code and the captured streams to a Result.
func (d *Dialog) classify(code int, stdout, stderr []byte) (*Result, error) {
	if !utf8.Valid(stdout) {
		return nil, ErrBadOutput
	}

	res := &Result{
		Content:  strings.TrimSpace(string(stdout)),
		ExitCode: code,
		Stderr:   string(stderr),
	}

	switch code {
	case 0:
		res.Outcome = OutcomeAffirmed
	case 1:
		if d.extraButton != "" && res.Content == d.extraButton {
			res.Outcome = OutcomeExtra
		} else {
			res.Outcome = OutcomeRejected
		}
	default:
		res.Outcome = OutcomeUnknown
	}
	return res, nil
}
