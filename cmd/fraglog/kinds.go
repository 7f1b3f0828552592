package main

import (
	"fmt"
	"strings"

	"github.com/fraglog/fraglog-go/pkg/fraglog"
	"github.com/fraglog/fraglog-go/pkg/fraglog/frag"
)

// ValidKindNames returns a sorted list of valid frag kind names.
// Delegates to frag.KindNames() as the single source of truth.
func ValidKindNames() []string {
	return frag.KindNames()
}

// NormalizeKinds converts CLI string values to a fraglog.Kind slice.
// It handles case-insensitivity, whitespace trimming, and duplicate removal.
func NormalizeKinds(values []string) ([]fraglog.Kind, error) {
	if len(values) == 0 {
		return nil, nil
	}

	result := make([]fraglog.Kind, 0, len(values))
	seen := make(map[fraglog.Kind]struct{})

	for _, raw := range values {
		if strings.TrimSpace(raw) == "" {
			return nil, fmt.Errorf("empty frag kind provided (input: %q); valid kinds: %s", raw, strings.Join(ValidKindNames(), ", "))
		}

		k, ok := frag.ParseKind(raw)
		if !ok {
			return nil, fmt.Errorf("unknown frag kind %q (valid: %s)", raw, strings.Join(ValidKindNames(), ", "))
		}

		if _, dup := seen[k]; dup {
			continue // ignore duplicates silently
		}
		seen[k] = struct{}{}
		result = append(result, k)
	}

	return result, nil
}

// RejectOverlap returns an error if any kind is in both includes and excludes.
func RejectOverlap(includes, excludes []fraglog.Kind) error {
	ex := make(map[fraglog.Kind]struct{}, len(excludes))
	for _, k := range excludes {
		ex[k] = struct{}{}
	}
	for _, k := range includes {
		if _, ok := ex[k]; ok {
			return fmt.Errorf("frag kind %q cannot be both included and excluded", k)
		}
	}
	return nil
}
