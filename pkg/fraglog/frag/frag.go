// Package frag defines the core record types produced by session log parsing.
//
// This package is separated from the main fraglog package to avoid import cycles
// between pkg/fraglog and internal/parser.
package frag

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Kind classifies a frag.
type Kind string

const (
	// Kill is a frag with a victim and a weapon.
	Kill Kind = "kill"

	// Suicide is a frag where the killer died by their own hand.
	Suicide Kind = "suicide"
)

// allKinds is the canonical list of all frag kinds.
var allKinds = []Kind{Kill, Suicide}

// KindNames returns a sorted list of all valid kind names.
func KindNames() []string {
	names := make([]string, len(allKinds))
	for i, k := range allKinds {
		names[i] = string(k)
	}
	sort.Strings(names)
	return names
}

var kindByName = func() map[string]Kind {
	m := make(map[string]Kind, len(allKinds))
	for _, k := range allKinds {
		m[string(k)] = k
	}
	return m
}()

// ParseKind converts a string to Kind if valid.
// It is case-insensitive and trims leading/trailing whitespace.
func ParseKind(name string) (Kind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	k, ok := kindByName[name]
	return k, ok
}

// Configuration maps cvar names declared in a log to their raw values.
// When a key is declared more than once, the last declaration wins.
type Configuration map[string]string

// Lookup returns the value for key and whether it was declared.
func (c Configuration) Lookup(key string) (string, bool) {
	v, ok := c[key]
	return v, ok
}

// RelTime is an in-log MM:SS reading. Seconds are always 0-59; minutes come
// from a two digit field.
type RelTime struct {
	Minutes int
	Seconds int
}

// String formats the reading the way it appears in the log.
func (r RelTime) String() string {
	return fmt.Sprintf("%02d:%02d", r.Minutes, r.Seconds)
}

// Frag is a single kill event.
//
// A suicide has an empty Victim and Weapon; use IsSuicide rather than
// comparing fields directly.
type Frag struct {
	// Time is the reconstructed absolute time of the frag.
	Time time.Time `json:"frag_time"`

	// Killer is the name of the player who fragged, or killed themself.
	Killer string `json:"killer_name"`

	// Victim is the name of the fragged player (empty for suicides).
	Victim string `json:"victim_name,omitempty"`

	// Weapon is the code name of the weapon used (empty for suicides).
	Weapon string `json:"weapon_code,omitempty"`
}

// IsSuicide reports whether the frag has no victim.
func (f Frag) IsSuicide() bool {
	return f.Victim == ""
}

// Kind returns Suicide for victimless frags and Kill otherwise.
func (f Frag) Kind() Kind {
	if f.IsSuicide() {
		return Suicide
	}
	return Kill
}

// Window is the resolved time span and classification of one session.
type Window struct {
	Start time.Time `json:"start_time"`
	End   time.Time `json:"end_time"`
	Mode  string    `json:"game_mode"`
	Map   string    `json:"map_name"`
}

// Duration returns the length of the session.
func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}
