package applet

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrCustomFormat is returned by Calendar.ParseDate when a custom date
// format is configured. zenity formats the selected date itself, so output
// produced with a custom format can only be handled as a raw string.
var ErrCustomFormat = errors.New("cannot parse date rendered with a custom format")

// defaultFormat is the strftime format passed to zenity when no custom
// format is configured. It matches defaultLayout below.
const (
	defaultFormat = "%Y-%m-%d"
	defaultLayout = "2006-01-02"
)

// Calendar configures a date selection dialog (zenity --calendar).
//
// When Format is empty, the dialog is pinned to an ISO 8601 date format and
// ParseDate can turn the resulting content into a time.Time. Setting Format
// passes it to zenity verbatim (strftime style, e.g. "%A %d/%m/%y") and
// disables parsing.
type Calendar struct {
	// Text is the body text.
	Text string
	// Day is the day of the month to preselect. Values impossible for the
	// selected month are ignored by zenity.
	Day int
	// Month is the month to preselect.
	Month time.Month
	// Year is the year to preselect.
	Year int
	// Format is the strftime output format for the selected date.
	Format string
}

// Args returns the zenity arguments for the calendar dialog.
func (a Calendar) Args() []string {
	args := []string{"--calendar"}
	if a.Text != "" {
		args = append(args, "--text="+a.Text)
	}
	if a.Day > 0 {
		args = append(args, fmt.Sprintf("--day=%d", a.Day))
	}
	if a.Month > 0 {
		args = append(args, fmt.Sprintf("--month=%d", int(a.Month)))
	}
	if a.Year != 0 {
		args = append(args, fmt.Sprintf("--year=%d", a.Year))
	}
	format := a.Format
	if format == "" {
		format = defaultFormat
	}
	args = append(args, "--date-format="+format)
	return args
}

// ParseDate converts the content of an affirmed calendar dialog into a
// time.Time. It fails with ErrCustomFormat when Format is set.
func (a Calendar) ParseDate(content string) (time.Time, error) {
	if a.Format != "" {
		return time.Time{}, ErrCustomFormat
	}
	return time.Parse(defaultLayout, strings.TrimSpace(content))
}
