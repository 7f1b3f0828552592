package fraglog

import (
	"log/slog"
	"time"
)

// ParseOption configures Parse and ParseFile behavior using the functional
// options pattern.
type ParseOption func(*parseConfig)

// parseConfig holds internal configuration for parsing.
type parseConfig struct {
	logger      *slog.Logger
	timezone    int
	hasTimezone bool
	filter      *compiledFilter
	since       time.Time
	until       time.Time
}

// defaultParseConfig returns a parseConfig with sensible defaults.
func defaultParseConfig() *parseConfig {
	return &parseConfig{
		logger: slog.New(slog.DiscardHandler),
	}
}

// applyParseOptions applies functional options to a parseConfig.
func applyParseOptions(opts []ParseOption) *parseConfig {
	cfg := defaultParseConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// WithLogger sets the slog logger for debug output.
// If nil (default), logging is disabled.
func WithLogger(logger *slog.Logger) ParseOption {
	return func(c *parseConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTimezone sets the UTC offset, in whole hours, used when the log does
// not declare g_timezone. A declared g_timezone always takes precedence.
func WithTimezone(hours int) ParseOption {
	return func(c *parseConfig) {
		c.timezone = hours
		c.hasTimezone = true
	}
}

// WithIncludeKinds keeps only frags of the specified kinds in Match.Frags.
// If called multiple times, only the last call takes effect.
func WithIncludeKinds(kinds ...Kind) ParseOption {
	return func(c *parseConfig) {
		if c.filter == nil {
			c.filter = &compiledFilter{}
		}
		c.filter.include = make(map[Kind]struct{}, len(kinds))
		for _, k := range kinds {
			c.filter.include[k] = struct{}{}
		}
	}
}

// WithExcludeKinds drops frags of the specified kinds from Match.Frags.
// Exclude takes precedence over include.
func WithExcludeKinds(kinds ...Kind) ParseOption {
	return func(c *parseConfig) {
		if c.filter == nil {
			c.filter = &compiledFilter{}
		}
		c.filter.exclude = make(map[Kind]struct{}, len(kinds))
		for _, k := range kinds {
			c.filter.exclude[k] = struct{}{}
		}
	}
}

// WithFilter sets both include and exclude kind filters.
func WithFilter(include, exclude []Kind) ParseOption {
	return func(c *parseConfig) {
		c.filter = newCompiledFilter(include, exclude)
	}
}

// WithTimeRange keeps only frags within the time range.
// since is inclusive, until is exclusive.
// Zero values are ignored (no filtering for that boundary).
//
// Filtering happens after times are reconstructed, so clock wraps are still
// detected across dropped frags.
func WithTimeRange(since, until time.Time) ParseOption {
	return func(c *parseConfig) {
		c.since = since
		c.until = until
	}
}

// WithSince keeps only frags at or after the given time.
func WithSince(since time.Time) ParseOption {
	return func(c *parseConfig) {
		c.since = since
	}
}

// WithUntil keeps only frags before the given time.
func WithUntil(until time.Time) ParseOption {
	return func(c *parseConfig) {
		c.until = until
	}
}

// keep reports whether f passes the configured kind and time filters.
func (c *parseConfig) keep(f Frag) bool {
	if !c.filter.Allows(f.Kind()) {
		return false
	}
	if !c.since.IsZero() && f.Time.Before(c.since) {
		return false
	}
	if !c.until.IsZero() && !f.Time.Before(c.until) {
		return false
	}
	return true
}
