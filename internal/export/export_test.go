package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/fraglog/fraglog-go/pkg/fraglog/frag"
)

var plus7 = time.FixedZone("", 7*3600)

func sampleFrags() []frag.Frag {
	return []frag.Frag{
		{Time: time.Date(2018, 11, 9, 12, 38, 3, 0, plus7), Killer: "lamonthe"},
		{Time: time.Date(2018, 11, 9, 12, 37, 45, 0, plus7), Killer: "papazark", Victim: "theprophete", Weapon: "P90"},
	}
}

func TestDefaultIcons(t *testing.T) {
	icons := DefaultIcons()

	tests := []struct {
		code string
		want Icon
	}{
		{"P90", IconGun},
		{"Vehicle", IconAutomobile},
		{"Boat", IconBoat},
		{"HandGrenade", IconGrenade},
		{"VehicleRocket", IconRocket},
		{"Machete", IconMachete},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := icons.Lookup(tt.code)
			if err != nil {
				t.Fatalf("Lookup(%q) error = %v", tt.code, err)
			}
			if got != tt.want {
				t.Errorf("Lookup(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}

	if n := len(icons.Codes()); n != 21 {
		t.Errorf("DefaultIcons() has %d codes, want 21", n)
	}
}

func TestIconTable_Unknown(t *testing.T) {
	_, err := DefaultIcons().Lookup("BFG9000")
	var uw *UnknownWeaponError
	if !errors.As(err, &uw) {
		t.Fatalf("Lookup() error = %v, want *UnknownWeaponError", err)
	}
	if uw.Code != "BFG9000" {
		t.Errorf("UnknownWeaponError.Code = %q, want BFG9000", uw.Code)
	}

	var empty IconTable
	if _, err := empty.Lookup("P90"); !errors.As(err, &uw) {
		t.Errorf("zero IconTable Lookup() error = %v, want *UnknownWeaponError", err)
	}
}

func TestNewIconTable_Copies(t *testing.T) {
	src := map[string]Icon{"P90": IconGun}
	table := NewIconTable(src)
	src["P90"] = IconBoat

	if got, _ := table.Lookup("P90"); got != IconGun {
		t.Errorf("table changed with its source map: %q", got)
	}
}

func TestPrettyRenderer_Line(t *testing.T) {
	var buf bytes.Buffer
	r := NewPrettyRenderer(&buf, DefaultIcons())
	frags := sampleFrags()

	tests := []struct {
		name     string
		frag     frag.Frag
		contains []string
	}{
		{
			name:     "suicide",
			frag:     frags[0],
			contains: []string{"2018-11-09 12:38:03+07:00", string(IconVictim), "lamonthe", string(IconSuicide)},
		},
		{
			name:     "kill",
			frag:     frags[1],
			contains: []string{"2018-11-09 12:37:45+07:00", string(IconKiller), "papazark", string(IconGun), "theprophete"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, err := r.Line(tt.frag)
			if err != nil {
				t.Fatalf("Line() error = %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(line, want) {
					t.Errorf("Line() = %q, want to contain %q", line, want)
				}
			}
		})
	}
}

func TestPrettyRenderer_UnknownWeapon(t *testing.T) {
	frags := append(sampleFrags(), frag.Frag{
		Time:   time.Date(2018, 11, 9, 12, 40, 0, 0, plus7),
		Killer: "cyap",
		Victim: "lamonthe",
		Weapon: "Railgun",
	})
	before := append([]frag.Frag(nil), frags...)

	r := NewPrettyRenderer(&bytes.Buffer{}, DefaultIcons())
	lines, err := r.Lines(frags)

	var uw *UnknownWeaponError
	if !errors.As(err, &uw) || uw.Code != "Railgun" {
		t.Fatalf("Lines() error = %v, want UnknownWeaponError{Railgun}", err)
	}
	if len(lines) != 2 {
		t.Errorf("got %d lines before the error, want 2", len(lines))
	}
	if !reflect.DeepEqual(frags, before) {
		t.Error("Lines() modified the frag slice")
	}
}

func TestPrettyRenderer_Write(t *testing.T) {
	var buf bytes.Buffer
	r := NewPrettyRenderer(&buf, DefaultIcons())
	if err := r.Write(&buf, sampleFrags()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if n := strings.Count(buf.String(), "\n"); n != 2 {
		t.Errorf("Write() produced %d lines, want 2", n)
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleFrags()); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	want := "2018-11-09 12:38:03+07:00,lamonthe\n" +
		"2018-11-09 12:37:45+07:00,papazark,theprophete,P90\n"
	if buf.String() != want {
		t.Errorf("WriteCSV() = %q, want %q", buf.String(), want)
	}

	r := csv.NewReader(&buf)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 || len(rows[0]) != 2 || len(rows[1]) != 4 {
		t.Errorf("rows = %v, want 2 rows of 2 and 4 fields", rows)
	}
}

func TestWriteCSV_Quoting(t *testing.T) {
	var buf bytes.Buffer
	frags := []frag.Frag{{Time: time.Date(2018, 11, 9, 12, 0, 0, 0, plus7), Killer: "a,b"}}
	if err := WriteCSV(&buf, frags); err != nil {
		t.Fatal(err)
	}
	if want := "2018-11-09 12:00:00+07:00,\"a,b\"\n"; buf.String() != want {
		t.Errorf("WriteCSV() = %q, want %q", buf.String(), want)
	}
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("WriteCSV(nil) = %q, want empty", buf.String())
	}
}

func TestJSONLWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONLWriter(&buf)

	window := frag.Window{
		Start: time.Date(2018, 11, 9, 12, 22, 7, 0, plus7),
		End:   time.Date(2018, 11, 9, 13, 5, 30, 0, plus7),
		Mode:  "ASSAULT",
		Map:   "mp_surf",
	}
	if err := w.WriteSession(window); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteFrags(sampleFrags()); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}

	var session map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &session); err != nil {
		t.Fatalf("session line is not JSON: %v", err)
	}
	if session["type"] != RecordSession || session["map_name"] != "mp_surf" || session["game_mode"] != "ASSAULT" {
		t.Errorf("session record = %v", session)
	}

	var suicide map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &suicide); err != nil {
		t.Fatal(err)
	}
	if suicide["kind"] != string(frag.Suicide) || suicide["killer_name"] != "lamonthe" {
		t.Errorf("suicide record = %v", suicide)
	}
	if _, ok := suicide["victim_name"]; ok {
		t.Errorf("suicide record has victim_name: %v", suicide)
	}

	var kill struct {
		Type   string    `json:"type"`
		Kind   string    `json:"kind"`
		Time   time.Time `json:"frag_time"`
		Weapon string    `json:"weapon_code"`
	}
	if err := json.Unmarshal([]byte(lines[2]), &kill); err != nil {
		t.Fatal(err)
	}
	if kill.Type != RecordFrag || kill.Kind != string(frag.Kill) || kill.Weapon != "P90" {
		t.Errorf("kill record = %+v", kill)
	}
	if !kill.Time.Equal(sampleFrags()[1].Time) {
		t.Errorf("kill time = %v, want %v", kill.Time, sampleFrags()[1].Time)
	}
}
