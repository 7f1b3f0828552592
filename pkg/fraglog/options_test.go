package fraglog

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestApplyParseOptions_Defaults(t *testing.T) {
	cfg := applyParseOptions(nil)
	if cfg.logger == nil {
		t.Error("default logger is nil")
	}
	if cfg.hasTimezone {
		t.Error("default config should not carry a timezone fallback")
	}
	if cfg.filter != nil {
		t.Error("default config should not filter")
	}
}

func TestApplyParseOptions_NilOption(t *testing.T) {
	cfg := applyParseOptions([]ParseOption{nil, WithTimezone(2), nil})
	if !cfg.hasTimezone || cfg.timezone != 2 {
		t.Errorf("timezone = %d (set %v), want 2", cfg.timezone, cfg.hasTimezone)
	}
}

func TestWithLogger_NilKeepsDefault(t *testing.T) {
	cfg := applyParseOptions([]ParseOption{WithLogger(nil)})
	if cfg.logger == nil {
		t.Error("WithLogger(nil) cleared the logger")
	}
}

func TestWithLogger_ReceivesDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	doc := `Log Started at Friday, November 09, 2018 12:22:07
Lua cvar: (g_timezone,7)
<22:07>  Loading level Levels/mp_surf, mission ASSAULT
<59:50> <Lua> cyap killed lamonthe with AG36Grenade
<00:12> <Lua> theprophete killed cyap with Machete
<05:30>  == Statistics ==
`
	if _, err := Parse(doc, WithLogger(logger)); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{"session anchor resolved", "clock wrap detected", "frags parsed"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestParseConfig_Keep(t *testing.T) {
	zone := time.FixedZone("", 0)
	at := func(h, m int) time.Time { return time.Date(2020, 1, 1, h, m, 0, 0, zone) }

	kill := Frag{Time: at(10, 0), Killer: "a", Victim: "b", Weapon: "M4"}
	suicide := Frag{Time: at(10, 0), Killer: "a"}

	tests := []struct {
		name string
		opts []ParseOption
		frag Frag
		want bool
	}{
		{"no filter", nil, kill, true},
		{"exclude suicide drops suicide", []ParseOption{WithExcludeKinds(KindSuicide)}, suicide, false},
		{"exclude suicide keeps kill", []ParseOption{WithExcludeKinds(KindSuicide)}, kill, true},
		{"since inclusive", []ParseOption{WithSince(at(10, 0))}, kill, true},
		{"since excludes earlier", []ParseOption{WithSince(at(10, 1))}, kill, false},
		{"until exclusive", []ParseOption{WithUntil(at(10, 0))}, kill, false},
		{"until keeps earlier", []ParseOption{WithUntil(at(10, 1))}, kill, true},
		{"filter helper", []ParseOption{WithFilter([]Kind{KindKill}, nil)}, suicide, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := applyParseOptions(tt.opts)
			if got := cfg.keep(tt.frag); got != tt.want {
				t.Errorf("keep() = %v, want %v", got, tt.want)
			}
		})
	}
}
