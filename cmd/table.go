package cmd

import (
	"io"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/abhisek/keypals/internal/ui/theme"
)

const timeLayout = "2006-01-02 15:04:05"

// newTable returns a table with a bold header over a rule and no other
// borders.
func newTable(headers ...string) *table.Table {
	cell := lipgloss.NewStyle().PaddingRight(2)
	return table.New().
		Headers(headers...).
		Border(lipgloss.NormalBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return cell.Bold(true)
			}
			return cell
		})
}

// printTable writes t, dropping colour when w is not a terminal.
func printTable(w io.Writer, t *table.Table) {
	lipgloss.Fprintln(w, t.String())
}

// truncate cuts s to n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
