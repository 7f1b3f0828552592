package export

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/fraglog/fraglog-go/pkg/fraglog/frag"
)

// TimeLayout renders absolute frag times, e.g. "2018-11-09 12:37:45+07:00".
const TimeLayout = "2006-01-02 15:04:05-07:00"

// PrettyRenderer formats frags as one decorated line each.
type PrettyRenderer struct {
	icons  IconTable
	time   lipgloss.Style
	killer lipgloss.Style
	victim lipgloss.Style
}

// NewPrettyRenderer returns a renderer whose colours match the terminal
// capabilities of w. Output to a file or pipe is plain text.
func NewPrettyRenderer(w io.Writer, icons IconTable) *PrettyRenderer {
	r := lipgloss.NewRenderer(w)
	return &PrettyRenderer{
		icons:  icons,
		time:   r.NewStyle().Foreground(lipgloss.Color("245")),
		killer: r.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		victim: r.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// Line renders a single frag:
//
//	<time> 😛 <killer> <weapon icon> 😦 <victim>
//	<time> 😦 <killer> ☠
func (r *PrettyRenderer) Line(f frag.Frag) (string, error) {
	ts := r.time.Render(f.Time.Format(TimeLayout))
	if f.IsSuicide() {
		return fmt.Sprintf("%s %s %s %s", ts, IconVictim, r.victim.Render(f.Killer), IconSuicide), nil
	}

	icon, err := r.icons.Lookup(f.Weapon)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s %s %s %s %s", ts, IconKiller, r.killer.Render(f.Killer), icon, IconVictim, r.victim.Render(f.Victim)), nil
}

// Lines renders frags in order. On an unknown weapon it returns the lines
// rendered so far together with the error; frags is never modified.
func (r *PrettyRenderer) Lines(frags []frag.Frag) ([]string, error) {
	lines := make([]string, 0, len(frags))
	for _, f := range frags {
		line, err := r.Line(f)
		if err != nil {
			return lines, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// Write renders frags to w, one line each.
func (r *PrettyRenderer) Write(w io.Writer, frags []frag.Frag) error {
	for _, f := range frags {
		line, err := r.Line(f)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
