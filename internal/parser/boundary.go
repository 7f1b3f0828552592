package parser

import (
	"fmt"
	"regexp"
	"time"
)

// Session boundary markers. Each captures the MM:SS reading of its line.
var (
	levelLoadPattern  = regexp.MustCompile(`<(\d\d:\d\d)>.*Loading level`)
	statisticsPattern = regexp.MustCompile(`<(\d\d:\d\d)>.*Statistics`)
	scriptErrPattern  = regexp.MustCompile(`<(\d\d:\d\d)> ERROR: \$3#SCRIPT ERROR File: =C, Function: _ERRORMESSAGE,`)
)

// ParseBoundaries resolves the absolute start and end of the session.
//
// The start is the first level load. The end is the last statistics dump,
// or the last fatal script error when the session never reached one. If the
// end reading sorts before the start reading the clock is assumed to have
// wrapped once in between.
func ParseBoundaries(doc string, clock Clock) (start, end time.Time, err error) {
	rawStart, ok := firstReading(levelLoadPattern, doc)
	if !ok {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: no %q marker", ErrBoundaryNotFound, "Loading level")
	}

	rawEnd, ok := lastReading(statisticsPattern, doc)
	if !ok {
		rawEnd, ok = lastReading(scriptErrPattern, doc)
	}
	if !ok {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: no %q or script error marker", ErrBoundaryNotFound, "Statistics")
	}

	endWraps := 0
	if rawEnd < rawStart {
		endWraps = 1
	}

	start, err = clock.AtRaw(rawStart, 0)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err = clock.AtRaw(rawEnd, endWraps)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

func firstReading(re *regexp.Regexp, doc string) (string, bool) {
	m := re.FindStringSubmatch(doc)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func lastReading(re *regexp.Regexp, doc string) (string, bool) {
	all := re.FindAllStringSubmatch(doc, -1)
	if len(all) == 0 {
		return "", false
	}
	return all[len(all)-1][1], true
}
