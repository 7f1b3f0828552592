// Package fraglog parses game-server session logs into frag records.
//
// A session log carries a human-readable start time on its first line,
// cvar declarations (including the server's UTC offset in g_timezone) and
// event lines stamped only with an in-game MM:SS clock. This package
// reconstructs absolute times for those events, detecting the points where
// the in-game clock wraps back to a smaller reading.
//
// # Basic Usage
//
// To parse a whole log file:
//
//	m, err := fraglog.ParseFile(ctx, "logs/log04.txt")
//	if err != nil && !errors.Is(err, fraglog.ErrBoundaryNotFound) {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("%s on %s\n", m.Window.Mode, m.Window.Map)
//	for _, f := range m.Frags {
//	    if f.IsSuicide() {
//	        fmt.Printf("%s %s killed themself\n", f.Time, f.Killer)
//	        continue
//	    }
//	    fmt.Printf("%s %s -> %s (%s)\n", f.Time, f.Killer, f.Victim, f.Weapon)
//	}
//
// ErrBoundaryNotFound is the one error that still returns a usable Match:
// the frags are valid, only the session window could not be resolved.
//
// The individual extraction steps (ReadConfiguration, ParseStartTime,
// ParseFrags, ParseModeAndMap, ParseSessionWindow) are exported for callers
// that only need one of them.
package fraglog
