package export

import (
	"io"

	"github.com/goccy/go-json"

	"github.com/fraglog/fraglog-go/pkg/fraglog/frag"
)

// Record types written by JSONLWriter.
const (
	RecordSession = "session"
	RecordFrag    = "frag"
)

type sessionRecord struct {
	Type string `json:"type"`
	frag.Window
}

type fragRecord struct {
	Type string    `json:"type"`
	Kind frag.Kind `json:"kind"`
	frag.Frag
}

// JSONLWriter writes one JSON object per line.
type JSONLWriter struct {
	enc *json.Encoder
}

// NewJSONLWriter returns a writer that encodes to w.
func NewJSONLWriter(w io.Writer) *JSONLWriter {
	return &JSONLWriter{enc: json.NewEncoder(w)}
}

// WriteSession writes the session window as a "session" record.
func (j *JSONLWriter) WriteSession(w frag.Window) error {
	return j.enc.Encode(sessionRecord{Type: RecordSession, Window: w})
}

// WriteFrag writes f as a "frag" record.
func (j *JSONLWriter) WriteFrag(f frag.Frag) error {
	return j.enc.Encode(fragRecord{Type: RecordFrag, Kind: f.Kind(), Frag: f})
}

// WriteFrags writes every frag in order.
func (j *JSONLWriter) WriteFrags(frags []frag.Frag) error {
	for _, f := range frags {
		if err := j.WriteFrag(f); err != nil {
			return err
		}
	}
	return nil
}
