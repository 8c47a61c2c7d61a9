package zenbridge

import "fmt"

// Outcome is the classification of a dialog's exit code.
type Outcome int

const (
	// OutcomeAffirmed means the user chose the affirmative response
	// (exit code 0).
	OutcomeAffirmed Outcome = iota
	// OutcomeRejected means the user chose the negative response or
	// dismissed the dialog (exit code 1).
	OutcomeRejected
	// OutcomeExtra means the user pressed the configured extra button.
	// It is only reachable on dialogs built with WithExtraButton.
	OutcomeExtra
	// OutcomeUnknown means the program exited with a code this package
	// does not recognize. The Result carries the exact exit code, stdout
	// and stderr so callers can react to it.
	OutcomeUnknown
)

// String returns a short name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeAffirmed:
		return "affirmed"
	case OutcomeRejected:
		return "rejected"
	case OutcomeExtra:
		return "extra"
	case OutcomeUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result is the structured response of a finished dialog. Non-zero exit
// codes are results, not errors.
type Result struct {
	// Outcome is the exit code classification.
	Outcome Outcome
	// Content is the trimmed stdout of the dialog program. Empty for
	// dialogs that produce no output.
	Content string
	// ExitCode is the raw exit code. It is -1 when the program was
	// terminated by a signal.
	ExitCode int
	// Stderr is the captured stderr of the dialog program.
	Stderr string
}

// Affirmed reports whether the user gave an affirmative response.
func (r *Result) Affirmed() bool {
	return r.Outcome == OutcomeAffirmed
}
