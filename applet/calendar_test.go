package applet

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestCalendarArgs(t *testing.T) {
	testCases := []struct {
		name     string
		calendar Calendar
		want     []string
	}{
		{
			name:     "defaults pin the parseable format",
			calendar: Calendar{},
			want:     []string{"--calendar", "--date-format=%Y-%m-%d"},
		},
		{
			name: "full preselection",
			calendar: Calendar{
				Text:  "Pick a release date",
				Day:   24,
				Month: time.December,
				Year:  2026,
			},
			want: []string{
				"--calendar", "--text=Pick a release date",
				"--day=24", "--month=12", "--year=2026",
				"--date-format=%Y-%m-%d",
			},
		},
		{
			name:     "custom format passes through",
			calendar: Calendar{Format: "%A %d/%m/%y"},
			want:     []string{"--calendar", "--date-format=%A %d/%m/%y"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.calendar.Args()
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Args() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCalendarParseDate(t *testing.T) {
	t.Run("default format parses", func(t *testing.T) {
		date, err := Calendar{}.ParseDate("2026-08-31\n")
		if err != nil {
			t.Fatalf("ParseDate() error = %v", err)
		}
		want := time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)
		if !date.Equal(want) {
			t.Errorf("ParseDate() = %v, want %v", date, want)
		}
	})

	t.Run("custom format refuses to parse", func(t *testing.T) {
		_, err := Calendar{Format: "%d/%m/%y"}.ParseDate("31/08/26")
		if !errors.Is(err, ErrCustomFormat) {
			t.Errorf("ParseDate() error = %v, want ErrCustomFormat", err)
		}
	})

	t.Run("garbage input fails", func(t *testing.T) {
		if _, err := (Calendar{}).ParseDate("next tuesday"); err == nil {
			t.Error("ParseDate() expected an error for unparseable input")
		}
	})
}
