package commands

import (
	"reflect"
	"testing"

	"github.com/takumx/zenbridge"
	"github.com/takumx/zenbridge/applet"
)

func resetFlags() {
	title = ""
	icon = ""
	width = 0
	height = 0
	timeoutSec = 0
	modalHint = ""
	extraButton = ""
	program = ""
}

func TestExitCode(t *testing.T) {
	testCases := []struct {
		name string
		res  *zenbridge.Result
		want int
	}{
		{
			name: "affirmed",
			res:  &zenbridge.Result{Outcome: zenbridge.OutcomeAffirmed},
			want: 0,
		},
		{
			name: "rejected",
			res:  &zenbridge.Result{Outcome: zenbridge.OutcomeRejected, ExitCode: 1},
			want: 1,
		},
		{
			name: "extra button",
			res:  &zenbridge.Result{Outcome: zenbridge.OutcomeExtra, ExitCode: 1},
			want: 2,
		},
		{
			name: "unknown mirrors the program",
			res:  &zenbridge.Result{Outcome: zenbridge.OutcomeUnknown, ExitCode: 5},
			want: 5,
		},
		{
			name: "killed process maps to one",
			res:  &zenbridge.Result{Outcome: zenbridge.OutcomeUnknown, ExitCode: -1},
			want: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := exitCode(tc.res); got != tc.want {
				t.Errorf("exitCode() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestNewDialogAppliesCommonFlags(t *testing.T) {
	resetFlags()
	t.Cleanup(resetFlags)

	title = "Deploy"
	icon = "warning"
	width = 300
	timeoutSec = 30
	extraButton = "Later"

	d := newDialog(applet.Question{Text: "Proceed?"})
	want := []string{
		"--question", "--text=Proceed?",
		"--title=Deploy", "--icon-name=warning", "--width=300",
		"--timeout=30", "--extra-button=Later",
	}
	if got := d.Argv(); !reflect.DeepEqual(got, want) {
		t.Errorf("Argv() = %v, want %v", got, want)
	}
}

func TestNewDialogProgramOverride(t *testing.T) {
	resetFlags()
	t.Cleanup(resetFlags)

	program = "/opt/bin/matedialog"
	d := newDialog(applet.Info{})
	if got := d.Program(); got != "/opt/bin/matedialog" {
		t.Errorf("Program() = %q, want /opt/bin/matedialog", got)
	}
}
