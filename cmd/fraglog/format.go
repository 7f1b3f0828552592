package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/fraglog/fraglog-go/internal/export"
	"github.com/fraglog/fraglog-go/pkg/fraglog"
)

// Output formats.
const (
	FormatJSONL  = "jsonl"
	FormatPretty = "pretty"
	FormatCSV    = "csv"
)

// ValidFormats is the set of accepted --format values.
var ValidFormats = map[string]bool{
	FormatJSONL:  true,
	FormatPretty: true,
	FormatCSV:    true,
}

// FormatNames returns the valid format names, sorted.
func FormatNames() []string {
	names := make([]string, 0, len(ValidFormats))
	for name := range ValidFormats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// OutputMatch writes the frags of m to w in the given format.
// withSession prefixes JSON Lines output with a session record.
func OutputMatch(format string, m *fraglog.Match, withSession bool, w io.Writer) error {
	switch format {
	case FormatJSONL:
		jw := export.NewJSONLWriter(w)
		if withSession {
			if err := jw.WriteSession(m.Window); err != nil {
				return err
			}
		}
		return jw.WriteFrags(m.Frags)
	case FormatPretty:
		return export.NewPrettyRenderer(w, export.DefaultIcons()).Write(w, m.Frags)
	case FormatCSV:
		return export.WriteCSV(w, m.Frags)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns stdout for "" or "-", otherwise creates the file at path.
func openOutput(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, nil
}
