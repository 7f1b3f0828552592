package fraglog

import (
	"time"

	"github.com/fraglog/fraglog-go/pkg/fraglog/frag"
)

// Re-export frag types for convenience.
// Users can import just "github.com/fraglog/fraglog-go/pkg/fraglog"
// and use fraglog.Frag, fraglog.KindKill, etc.

// Frag is a single kill event.
type Frag = frag.Frag

// Kind classifies a frag.
type Kind = frag.Kind

// Window is the resolved time span and classification of one session.
type Window = frag.Window

// Configuration maps cvar names to their declared values.
type Configuration = frag.Configuration

// Kind constants.
const (
	KindKill    = frag.Kill
	KindSuicide = frag.Suicide
)

// Match is everything extracted from one session log.
type Match struct {
	// Anchor is the absolute time of the log's first line.
	Anchor time.Time `json:"anchor"`

	// Config holds every cvar declared in the log.
	Config Configuration `json:"-"`

	// Window is the session span, mode and map. Start and End are zero
	// when the boundaries could not be resolved.
	Window Window `json:"window"`

	// Frags are in document order.
	Frags []Frag `json:"frags"`
}
