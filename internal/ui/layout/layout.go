// Package layout frames every screen with a one-line header and footer.
// Both are plain text over a thin rule; nothing blinks or fills with colour.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/keypals/internal/ui/theme"
)

// Lessons are a few short lines, so a small terminal is enough.
const (
	MinWidth  = 60
	MinHeight = 18
)

// KeyHint is a key and what it does, shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks for a bigger window without any warning colour.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf(
			"The window is a little small.\n\nMake it at least %d wide and %d tall\nand the lesson will come back.",
			MinWidth, MinHeight,
		))
}

// RenderHeader shows the app name on the left, title in the middle and
// status, such as lesson progress, on the right.
func RenderHeader(title, status string, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Keypals")
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	right := lipgloss.NewStyle().Foreground(theme.Accent).Render(status)

	inner := max(width-2*pad, 0)
	line := spread(left, center, right, inner)
	return indent(line) + "\n" + rule(width)
}

// RenderFooter lists key hints under a rule.
func RenderFooter(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = key.Render(h.Key) + " " + desc.Render(h.Description)
	}
	return rule(width) + "\n" + indent(strings.Join(parts, "    "))
}

// RenderFrame stacks header, content and footer, padding content so the
// footer sits on the last line.
func RenderFrame(header, content, footer string, width, height int) string {
	bodyHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(bodyHeight).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

const pad = 2

func indent(s string) string {
	return strings.Repeat(" ", pad) + s
}

func rule(width int) string {
	return lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width, 0)))
}

// spread places center in the middle of width and right at its end,
// keeping at least one space between neighbours.
func spread(left, center, right string, width int) string {
	lw, cw, rw := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)
	gap1 := max((width-cw)/2-lw, 1)
	gap2 := max(width-lw-gap1-cw-rw, 1)
	return left + strings.Repeat(" ", gap1) + center + strings.Repeat(" ", gap2) + right
}
