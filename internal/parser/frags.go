package parser

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/fraglog/fraglog-go/pkg/fraglog/frag"
)

// fragPattern matches kill lines such as
//
//	<37:45> <Lua> papazark killed theprophete with P90
//	<38:03> <Lua> lamonthe killed itself
var fragPattern = regexp.MustCompile(`<\d\d:\d\d> <Lua> [a-zA-Z_+\-,.0-9/ ]* killed [a-zA-Z_+\-,.0-9/ ]*\w`)

// ParseFrags extracts every frag in document order and assigns absolute
// times through clock. Order matters: wrap detection compares each reading
// with the one before it.
//
// logger may be nil.
func ParseFrags(doc string, clock Clock, logger *slog.Logger) ([]frag.Frag, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	matches := fragPattern.FindAllString(doc, -1)
	frags := make([]frag.Frag, 0, len(matches))
	var tracker WrapTracker

	for _, line := range matches {
		raw, killer, rest, err := splitFragLine(line)
		if err != nil {
			return nil, err
		}

		before := tracker.Wraps()
		wraps := tracker.Observe(raw)
		if wraps != before {
			logger.Debug("clock wrap detected", "at", raw, "wraps", wraps)
		}

		ts, err := clock.AtRaw(raw, wraps)
		if err != nil {
			return nil, err
		}

		f := frag.Frag{Time: ts, Killer: killer}
		if strings.Contains(rest, " with ") {
			parts := strings.Split(rest, " with ")
			if len(parts) != 2 {
				return nil, parseErrorf(line, "ambiguous victim/weapon %q", rest)
			}
			f.Victim, f.Weapon = parts[0], parts[1]
		}
		frags = append(frags, f)
	}

	logger.Debug("frags parsed", "count", len(frags), "wraps", tracker.Wraps())
	return frags, nil
}

// splitFragLine breaks a matched kill line into its raw MM:SS reading, the
// killer name and everything after "killed".
func splitFragLine(line string) (raw, killer, rest string, err error) {
	halves := strings.Split(line, " killed ")
	if len(halves) != 2 {
		return "", "", "", parseErrorf(line, "expected exactly one %q", " killed ")
	}
	head := strings.Split(halves[0], " <Lua> ")
	if len(head) != 2 {
		return "", "", "", parseErrorf(line, "expected exactly one %q", " <Lua> ")
	}
	raw = strings.Trim(head[0], "<>")
	return raw, head[1], halves[1], nil
}
