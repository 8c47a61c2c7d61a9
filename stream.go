package zenbridge

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
)

// ProgressStream is a running progress dialog fed through its stdin.
// zenity updates the bar from percentage lines and the label from lines
// starting with "# ". A stream is single-shot: feed it, then Close it.
type ProgressStream struct {
	dialog *Dialog
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout bytes.Buffer
	stderr bytes.Buffer
}

// Stream spawns the dialog with a stdin pipe and returns a handle for
// feeding it updates. It is meant for the Progress applet; other applets
// ignore their stdin.
func (d *Dialog) Stream(ctx context.Context) (*ProgressStream, error) {
	cmd := exec.CommandContext(ctx, d.Program(), d.Argv()...)

	s := &ProgressStream{dialog: d, cmd: cmd}
	cmd.Stdout = &s.stdout
	cmd.Stderr = &s.stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	s.stdin = stdin

	if err := cmd.Start(); err != nil {
		if notInstalled(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotInstalled, d.Program())
		}
		return nil, err
	}
	return s, nil
}

// Percent moves the progress bar to the given percentage.
func (s *ProgressStream) Percent(pct int) error {
	_, err := fmt.Fprintf(s.stdin, "%d\n", pct)
	return err
}

// Text replaces the dialog's label text.
func (s *ProgressStream) Text(text string) error {
	_, err := fmt.Fprintf(s.stdin, "# %s\n", text)
	return err
}

// Forward writes a raw line to the dialog's stdin, for callers relaying
// an existing zenity-style update stream.
func (s *ProgressStream) Forward(line string) error {
	_, err := fmt.Fprintln(s.stdin, line)
	return err
}

// Close closes the dialog's stdin, waits for the program to exit, and
// classifies the result the same way Dialog.Show does.
func (s *ProgressStream) Close() (*Result, error) {
	s.stdin.Close()

	if err := s.cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, err
		}
	}
	return s.dialog.classify(s.cmd.ProcessState.ExitCode(), s.stdout.Bytes(), s.stderr.Bytes())
}
