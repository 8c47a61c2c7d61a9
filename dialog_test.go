package zenbridge

import (
	"reflect"
	"testing"
	"time"

	"github.com/takumx/zenbridge/applet"
)

func TestDialogArgv(t *testing.T) {
	testCases := []struct {
		name   string
		dialog *Dialog
		want   []string
	}{
		{
			name:   "applet only",
			dialog: New(applet.Info{Text: "hi"}),
			want:   []string{"--info", "--text=hi"},
		},
		{
			name: "common options in order",
			dialog: New(applet.Question{Text: "Proceed?"}).
				WithTitle("Deploy").
				WithIcon(IconWarning).
				WithWidth(400).
				WithHeight(200).
				WithTimeout(90 * time.Second).
				WithModalHint("requires attention"),
			want: []string{
				"--question", "--text=Proceed?",
				"--title=Deploy", "--icon-name=warning",
				"--width=400", "--height=200",
				"--timeout=90", "--modal=requires attention",
			},
		},
		{
			name: "extra button before extra args",
			dialog: New(applet.Question{Text: "Proceed?"}).
				WithExtraButton("Later").
				WithExtraArg(Arg{Name: "switch"}).
				WithExtraArgs(Arg{Name: "--ok-label", Value: "Go"}),
			want: []string{
				"--question", "--text=Proceed?",
				"--extra-button=Later", "--switch", "--ok-label=Go",
			},
		},
		{
			name: "custom icon path",
			dialog: New(applet.Info{}).
				WithIcon(IconPath("/usr/share/icons/deploy.png")),
			want: []string{"--info", "--icon-name=/usr/share/icons/deploy.png"},
		},
		{
			name:   "sub-second timeout is dropped",
			dialog: New(applet.Info{}).WithTimeout(500 * time.Millisecond),
			want:   []string{"--info"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.dialog.Argv()
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Argv() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDialogProgram(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		t.Setenv(programEnv, "")
		if got := New(applet.Info{}).Program(); got != DefaultProgram {
			t.Errorf("Program() = %q, want %q", got, DefaultProgram)
		}
	})

	t.Run("environment override", func(t *testing.T) {
		t.Setenv(programEnv, "/opt/bin/qarma")
		if got := New(applet.Info{}).Program(); got != "/opt/bin/qarma" {
			t.Errorf("Program() = %q, want /opt/bin/qarma", got)
		}
	})

	t.Run("explicit path outranks environment", func(t *testing.T) {
		t.Setenv(programEnv, "/opt/bin/qarma")
		got := New(applet.Info{}).WithPath("/usr/local/bin/zenity").Program()
		if got != "/usr/local/bin/zenity" {
			t.Errorf("Program() = %q, want /usr/local/bin/zenity", got)
		}
	})
}

func TestArgString(t *testing.T) {
	testCases := []struct {
		name string
		arg  Arg
		want string
	}{
		{name: "flag only", arg: Arg{Name: "switch"}, want: "--switch"},
		{name: "name and value", arg: Arg{Name: "ok-label", Value: "Go"}, want: "--ok-label=Go"},
		{name: "leading dashes tolerated", arg: Arg{Name: "--switch"}, want: "--switch"},
		{name: "leading dashes with value", arg: Arg{Name: "--day", Value: "7"}, want: "--day=7"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.arg.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestOutcomeString(t *testing.T) {
	testCases := []struct {
		outcome Outcome
		want    string
	}{
		{OutcomeAffirmed, "affirmed"},
		{OutcomeRejected, "rejected"},
		{OutcomeExtra, "extra"},
		{OutcomeUnknown, "unknown"},
		{Outcome(42), "Outcome(42)"},
	}

	for _, tc := range testCases {
		if got := tc.outcome.String(); got != tc.want {
			t.Errorf("Outcome(%d).String() = %q, want %q", int(tc.outcome), got, tc.want)
		}
	}
}
