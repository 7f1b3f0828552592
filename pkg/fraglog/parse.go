package fraglog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fraglog/fraglog-go/internal/logreader"
	"github.com/fraglog/fraglog-go/internal/parser"
)

// ReadConfiguration returns every cvar declared in doc.
// A log without declarations yields an empty Configuration, not an error.
func ReadConfiguration(doc string) (Configuration, error) {
	return parser.ParseConfiguration(doc)
}

// ParseStartTime returns the session anchor: the wall-clock time on the first
// line of doc, in a fixed zone of g_timezone hours.
//
// Errors:
//   - *ParseError: the first line has no "at " or the date does not parse
//   - ErrMissingConfiguration: g_timezone is absent (and WithTimezone was
//     not given) or not an integer
func ParseStartTime(doc string, opts ...ParseOption) (time.Time, error) {
	_, anchor, err := resolveAnchor(doc, applyParseOptions(opts))
	return anchor, err
}

// ParseFrags extracts every frag in doc with absolute times.
// Kind and time filters from opts are applied after reconstruction.
func ParseFrags(doc string, opts ...ParseOption) ([]Frag, error) {
	cfg := applyParseOptions(opts)
	_, anchor, err := resolveAnchor(doc, cfg)
	if err != nil {
		return nil, err
	}
	return parseFrags(doc, anchor, cfg)
}

// ParseModeAndMap returns the game mode and map name from the first
// "Loading level" line.
func ParseModeAndMap(doc string) (mode, mapName string, err error) {
	return parser.ParseModeAndMap(doc)
}

// ParseSessionWindow resolves the session start, end, mode and map.
func ParseSessionWindow(doc string, opts ...ParseOption) (Window, error) {
	cfg := applyParseOptions(opts)
	_, anchor, err := resolveAnchor(doc, cfg)
	if err != nil {
		return Window{}, err
	}
	return parseWindow(doc, anchor)
}

// Parse runs every extraction step over one session log.
//
// Return values:
//   - (*Match, nil): everything resolved
//   - (*Match, err) with errors.Is(err, ErrBoundaryNotFound): frags, mode and
//     map are valid; Window.Start and Window.End are zero
//   - (nil, err): the document could not be parsed
func Parse(doc string, opts ...ParseOption) (*Match, error) {
	cfg := applyParseOptions(opts)

	settings, anchor, err := resolveAnchor(doc, cfg)
	if err != nil {
		return nil, err
	}
	cfg.logger.Debug("session anchor resolved", "anchor", anchor, "cvars", len(settings))

	frags, err := parseFrags(doc, anchor, cfg)
	if err != nil {
		return nil, err
	}

	m := &Match{
		Anchor: anchor,
		Config: settings,
		Frags:  frags,
	}

	window, err := parseWindow(doc, anchor)
	m.Window = window
	if err != nil {
		if errors.Is(err, ErrBoundaryNotFound) {
			cfg.logger.Debug("session window unresolved", "error", err)
			return m, err
		}
		return nil, err
	}
	return m, nil
}

// ParseFile reads the log at path and parses it with Parse.
//
// Example:
//
//	m, err := fraglog.ParseFile(ctx, "logs/log04.txt",
//	    fraglog.WithExcludeKinds(fraglog.KindSuicide),
//	)
//	if err != nil {
//	    log.Printf("error: %v", err)
//	}
func ParseFile(ctx context.Context, path string, opts ...ParseOption) (*Match, error) {
	doc, err := logreader.ReadAll(ctx, path)
	if err != nil {
		return nil, err
	}
	return Parse(doc, opts...)
}

// resolveAnchor reads the configuration and the session anchor, falling back
// to the WithTimezone offset when g_timezone is not declared.
func resolveAnchor(doc string, cfg *parseConfig) (Configuration, time.Time, error) {
	settings, err := parser.ParseConfiguration(doc)
	if err != nil {
		return nil, time.Time{}, err
	}

	naive, err := parser.ParseHeaderTime(doc)
	if err != nil {
		return nil, time.Time{}, err
	}

	hours, err := parser.TimezoneOffset(settings)
	if err != nil {
		_, declared := settings.Lookup(parser.TimezoneKey)
		if declared || !cfg.hasTimezone {
			return nil, time.Time{}, err
		}
		hours = cfg.timezone
	}
	return settings, parser.Anchor(naive, hours), nil
}

func parseFrags(doc string, anchor time.Time, cfg *parseConfig) ([]Frag, error) {
	all, err := parser.ParseFrags(doc, parser.Clock{Anchor: anchor}, cfg.logger)
	if err != nil {
		return nil, err
	}

	frags := all[:0]
	for _, f := range all {
		if cfg.keep(f) {
			frags = append(frags, f)
		}
	}
	return frags, nil
}

// parseWindow fills mode and map first so a missing end marker still
// reports them.
func parseWindow(doc string, anchor time.Time) (Window, error) {
	var w Window
	mode, mapName, err := parser.ParseModeAndMap(doc)
	if err != nil {
		return w, err
	}
	w.Mode, w.Map = mode, mapName

	start, end, err := parser.ParseBoundaries(doc, parser.Clock{Anchor: anchor})
	if err != nil {
		return w, fmt.Errorf("resolving session window: %w", err)
	}
	w.Start, w.End = start, end
	return w, nil
}
