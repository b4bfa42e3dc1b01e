package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/keypals/internal/ui/theme"
)

// SessionProgress shows a lesson as one segment per session.
type SessionProgress struct {
	Done  int
	Total int
	// Pending marks the segment after Done as being written.
	Pending bool
}

// View renders the segments followed by "n of total".
func (p SessionProgress) View() string {
	if p.Total <= 0 {
		return ""
	}

	segments := make([]string, 0, p.Total)
	for i := 0; i < p.Total; i++ {
		switch {
		case i < p.Done:
			segments = append(segments, lipgloss.NewStyle().Foreground(theme.Secondary).Render("■■■"))
		case i == p.Done && p.Pending:
			segments = append(segments, lipgloss.NewStyle().Foreground(theme.Accent).Render("□□□"))
		default:
			segments = append(segments, lipgloss.NewStyle().Foreground(theme.Border).Render("□□□"))
		}
	}

	label := theme.Pending.Render(fmt.Sprintf("  %d of %d", min(p.Done, p.Total), p.Total))
	return strings.Join(segments, " ") + label
}
