// Package export writes parsed frags as CSV, JSON Lines or decorated text.
package export

import (
	"encoding/csv"
	"io"

	"github.com/fraglog/fraglog-go/pkg/fraglog/frag"
)

// Record returns the CSV fields for f: two for a suicide
// (time, killer) and four otherwise (time, killer, victim, weapon).
func Record(f frag.Frag) []string {
	ts := f.Time.Format(TimeLayout)
	if f.IsSuicide() {
		return []string{ts, f.Killer}
	}
	return []string{ts, f.Killer, f.Victim, f.Weapon}
}

// WriteCSV writes one row per frag in order. Fields are quoted only when
// they contain a delimiter, quote or newline.
func WriteCSV(w io.Writer, frags []frag.Frag) error {
	cw := csv.NewWriter(w)
	for _, f := range frags {
		if err := cw.Write(Record(f)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
