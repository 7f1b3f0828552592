package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fraglog/fraglog-go/pkg/fraglog/frag"
)

// ParseRelTime parses an in-log "MM:SS" reading.
func ParseRelTime(raw string) (frag.RelTime, error) {
	m, s, ok := strings.Cut(raw, ":")
	if !ok {
		return frag.RelTime{}, parseErrorf(raw, "relative time must be MM:SS")
	}
	minutes, err := strconv.Atoi(m)
	if err != nil || minutes < 0 {
		return frag.RelTime{}, parseErrorf(raw, "invalid minutes %q", m)
	}
	seconds, err := strconv.Atoi(s)
	if err != nil || seconds < 0 || seconds > 59 {
		return frag.RelTime{}, parseErrorf(raw, "invalid seconds %q", s)
	}
	return frag.RelTime{Minutes: minutes, Seconds: seconds}, nil
}

// Clock converts relative log readings into absolute times.
//
// The log's MM:SS clock is aligned to the anchor's position within its hour,
// so a reading equal to the anchor's own minute:second with no wraps maps to
// the anchor itself. Each wrap adds one hour.
type Clock struct {
	Anchor time.Time
}

// At returns the absolute time of rel after the given number of wraps.
// Results before the anchor are valid.
func (c Clock) At(rel frag.RelTime, wraps int) time.Time {
	base := c.Anchor.Minute()*60 + c.Anchor.Second()
	offset := (wraps*60+rel.Minutes)*60 + rel.Seconds
	return c.Anchor.Add(time.Duration(offset-base) * time.Second)
}

// AtRaw parses raw and returns its absolute time after wraps.
func (c Clock) AtRaw(raw string, wraps int) (time.Time, error) {
	rel, err := ParseRelTime(raw)
	if err != nil {
		return time.Time{}, err
	}
	return c.At(rel, wraps), nil
}

// WrapTracker counts apparent backward jumps of the in-log clock over one pass.
//
// Readings are compared as raw strings, not numerically. Both fields are fixed
// two digit values in well-formed logs, which makes the orders agree.
type WrapTracker struct {
	last  string
	seen  bool
	wraps int
}

// Observe records raw and returns the wrap count that applies to it.
func (w *WrapTracker) Observe(raw string) int {
	if w.seen && raw < w.last {
		w.wraps++
	}
	w.last = raw
	w.seen = true
	return w.wraps
}

// Wraps returns the current wrap count.
func (w *WrapTracker) Wraps() int {
	return w.wraps
}

func (w *WrapTracker) String() string {
	return fmt.Sprintf("wraps=%d last=%s", w.wraps, w.last)
}
