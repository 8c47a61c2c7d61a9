// Package ptyrun runs a command under a pseudo-terminal, mirrors its
// output, and extracts progress percentages from the output lines. It
// exists so a long-running command can drive a progress dialog.
package ptyrun

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"regexp"
	"strconv"

	"github.com/creack/pty"
)

var (
	ansiEscape  = regexp.MustCompile(`\x1b\[[0-9;?]*[mKHJhlABCDEFGPST]`)
	percentExpr = regexp.MustCompile(`(\d{1,3})\s*%`)
)

// StripAnsi removes ANSI escape sequences from a string.
func StripAnsi(s string) string {
	return ansiEscape.ReplaceAllString(s, "")
}

// ExtractPercent returns the last progress percentage mentioned in a line.
// Values above 100 are not progress figures and are ignored.
func ExtractPercent(line string) (int, bool) {
	matches := percentExpr.FindAllStringSubmatch(StripAnsi(line), -1)
	for i := len(matches) - 1; i >= 0; i-- {
		pct, err := strconv.Atoi(matches[i][1])
		if err == nil && pct <= 100 {
			return pct, true
		}
	}
	return 0, false
}

// ColorStripWriter is a writer that strips ANSI colors before writing.
// An escape sequence split across two writes is held back until the rest
// of it arrives, so chunked output is stripped the same as whole lines.
type ColorStripWriter struct {
	Writer  io.Writer
	pending []byte
}

func (w *ColorStripWriter) Write(p []byte) (n int, err error) {
	data := append(w.pending, p...)
	w.pending = nil
	if i := partialEscape(data); i >= 0 {
		w.pending = append([]byte(nil), data[i:]...)
		data = data[:i]
	}
	if _, err := w.Writer.Write([]byte(StripAnsi(string(data)))); err != nil {
		return 0, err
	}
	return len(p), nil
}

// partialEscape returns the start of a trailing, not yet complete ANSI
// escape sequence in p, or -1 when p ends cleanly.
func partialEscape(p []byte) int {
	i := bytes.LastIndexByte(p, 0x1b)
	if i < 0 {
		return -1
	}
	rest := p[i:]
	if ansiEscape.Match(rest) {
		// The last sequence is complete.
		return -1
	}
	for j := 1; j < len(rest); j++ {
		c := rest[j]
		if j == 1 {
			if c != '[' {
				// Not a CSI sequence; nothing to strip, pass through.
				return -1
			}
			continue
		}
		if (c >= '0' && c <= '9') || c == ';' || c == '?' {
			continue
		}
		// Reached a final byte the strip pattern does not cover.
		return -1
	}
	return i
}

// Runner executes one command under a pty and scans its output.
type Runner struct {
	// Output mirrors the command's output when non-nil.
	Output io.Writer
	// StripColors removes ANSI color sequences from the mirrored output.
	StripColors bool
	// OnPercent is called for every progress percentage found in the
	// output, in order of appearance.
	OnPercent func(pct int)
	// OnLine is called for every non-empty output segment after ANSI
	// stripping.
	OnLine func(line string)
}

// Run starts the command under a pty and blocks until it exits, returning
// its exit code. The command sees a terminal, so tools that only report
// progress interactively keep doing so.
//
// The pty is consumed in raw chunks and segments are cut at both \r and
// \n: progress tools like wget and rsync redraw a single line with \r and
// emit no newline until they finish, and their updates must be seen as
// they happen, not when the command exits.
func (r *Runner) Run(ctx context.Context, name string, args ...string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return 0, err
	}
	defer ptmx.Close()

	out := r.Output
	if out != nil && r.StripColors {
		out = &ColorStripWriter{Writer: out}
	}

	var pending []byte
	buf := make([]byte, 4096)
	for {
		n, readErr := ptmx.Read(buf)
		if n > 0 {
			if out != nil {
				out.Write(buf[:n])
			}
			pending = r.scanSegments(append(pending, buf[:n]...))
		}
		if readErr != nil {
			// The pty returns EIO once the child side closes; that is
			// the normal end of output, not a failure.
			break
		}
	}
	if len(pending) > 0 {
		r.segment(string(pending))
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return 0, err
		}
	}
	return cmd.ProcessState.ExitCode(), nil
}

// scanSegments handles every \r- or \n-terminated segment in buf and
// returns the unterminated remainder.
func (r *Runner) scanSegments(buf []byte) []byte {
	for {
		i := bytes.IndexAny(buf, "\r\n")
		if i < 0 {
			return buf
		}
		r.segment(string(buf[:i]))
		buf = buf[i+1:]
	}
}

// segment reports one output segment through the callbacks.
func (r *Runner) segment(seg string) {
	clean := StripAnsi(seg)
	if clean == "" {
		return
	}
	if r.OnLine != nil {
		r.OnLine(clean)
	}
	if r.OnPercent != nil {
		if pct, ok := ExtractPercent(clean); ok {
			r.OnPercent(pct)
		}
	}
}
