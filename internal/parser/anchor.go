package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fraglog/fraglog-go/pkg/fraglog/frag"
)

// TimezoneKey is the cvar holding the server's UTC offset in whole hours.
const TimezoneKey = "g_timezone"

// headerLayout is the human-readable date that follows "at " on the first line,
// e.g. "Friday, November 09, 2018 12:22:07".
const headerLayout = "Monday, January 2, 2006 15:04:05"

// ParseHeaderTime returns the wall-clock time written on the first line of doc.
// The result carries no zone information and is reported in UTC.
func ParseHeaderTime(doc string) (time.Time, error) {
	first, _, _ := strings.Cut(doc, "\n")
	first = strings.TrimRight(first, "\r")

	parts := strings.Split(first, "at ")
	if len(parts) < 2 {
		return time.Time{}, parseErrorf(first, "header has no %q delimiter", "at ")
	}
	stamp := strings.Join(parts[1:], "")

	naive, err := time.Parse(headerLayout, stamp)
	if err != nil {
		return time.Time{}, &ParseError{Line: first, Err: err}
	}
	return naive, nil
}

// TimezoneOffset reads the whole-hour UTC offset declared by g_timezone.
func TimezoneOffset(cfg frag.Configuration) (int, error) {
	raw, ok := cfg.Lookup(TimezoneKey)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingConfiguration, TimezoneKey)
	}
	hours, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not a whole number of hours", ErrMissingConfiguration, TimezoneKey, raw)
	}
	return hours, nil
}

// Anchor attaches a fixed UTC offset of hours to the wall-clock fields of naive.
func Anchor(naive time.Time, hours int) time.Time {
	zone := time.FixedZone("", hours*3600)
	return time.Date(naive.Year(), naive.Month(), naive.Day(),
		naive.Hour(), naive.Minute(), naive.Second(), 0, zone)
}

// ParseStartTime resolves the session anchor from the header line and the
// g_timezone setting in cfg.
func ParseStartTime(doc string, cfg frag.Configuration) (time.Time, error) {
	naive, err := ParseHeaderTime(doc)
	if err != nil {
		return time.Time{}, err
	}
	hours, err := TimezoneOffset(cfg)
	if err != nil {
		return time.Time{}, err
	}
	return Anchor(naive, hours), nil
}
