package fraglog

import (
	"github.com/fraglog/fraglog-go/internal/logfinder"
	"github.com/fraglog/fraglog-go/internal/parser"
)

// Sentinel errors returned by this package.
var (
	// ErrMissingConfiguration is returned when a required cvar (g_timezone)
	// is absent or not a whole number of hours.
	ErrMissingConfiguration = parser.ErrMissingConfiguration

	// ErrBoundaryNotFound is returned when the session start or end marker
	// cannot be found. Frag parsing is unaffected.
	ErrBoundaryNotFound = parser.ErrBoundaryNotFound

	// ErrLogDirNotFound is returned when the log directory
	// cannot be found or accessed.
	ErrLogDirNotFound = logfinder.ErrLogDirNotFound

	// ErrNoLogFiles is returned when no log files are found
	// in the specified directory.
	ErrNoLogFiles = logfinder.ErrNoLogFiles
)

// ParseError is returned when log text does not match an expected grammar
// (header line, cvar declaration, kill line or level load). Line holds the
// offending fragment.
type ParseError = parser.ParseError
