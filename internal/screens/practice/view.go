package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/keypals/internal/ui/components"
	"github.com/abhisek/keypals/internal/ui/theme"
)

func (s *PracticeScreen) View(width, height int) string {
	if s.errMsg != "" && s.plan == nil {
		return centered(width, theme.Body, "\n\n"+s.errMsg+"\n\nPress any key to go back.")
	}
	if s.plan == nil || (s.session.Number == 0 && s.pending) {
		return centered(width, theme.Hint, "\n\nGetting your lesson ready...")
	}

	var b strings.Builder

	progress := components.SessionProgress{
		Done:    s.plan.CurrentSession,
		Total:   s.plan.TotalSessions,
		Pending: s.pending,
	}
	b.WriteString("  " + progress.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("  " + strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	if s.session.Number > 0 {
		if s.session.Objective != "" {
			b.WriteString(theme.Hint.Render("  " + s.session.Objective))
			b.WriteString("\n\n")
		}
		b.WriteString(s.renderLines())
		b.WriteString("\n")
	}

	switch {
	case s.sessionDone():
		b.WriteString(s.renderSessionDone())
	case s.session.Number > 0:
		b.WriteString("  " + s.input.View())
		b.WriteString("\n")
		if s.hint != "" {
			b.WriteString("\n" + theme.Hint.Render("  "+s.hint) + "\n")
		}
	}

	if s.errMsg != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Mistake).Render("  "+s.errMsg) + "\n")
	}

	if s.pending || s.next.Active {
		b.WriteString("\n  " + s.next.View() + "\n")
	}

	return b.String()
}

// renderLines shows typed lines dimmed, the current line with live
// feedback and the rest plain.
func (s *PracticeScreen) renderLines() string {
	var b strings.Builder
	for i, line := range s.lines {
		switch {
		case i < s.line:
			b.WriteString("  " + theme.Done.Render(line))
		case i == s.line:
			b.WriteString("  " + renderTarget(line, s.input.Value()))
		default:
			b.WriteString("  " + theme.Body.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderTarget colours the part of target already typed and marks the
// first mistake. Everything after it stays plain.
func renderTarget(target, typed string) string {
	t := []rune(target)
	n := min(len([]rune(typed)), len(t))
	miss := firstMistake(target, typed)

	switch {
	case miss < 0:
		return theme.Typed.Render(string(t[:n])) + theme.Body.Render(string(t[n:]))
	case miss >= len(t):
		// Extra characters past the end of the line.
		return theme.Typed.Render(target) + theme.Mistyped.Render(" ")
	default:
		return theme.Typed.Render(string(t[:miss])) +
			theme.Mistyped.Render(string(t[miss])) +
			theme.Body.Render(string(t[miss+1:]))
	}
}

func (s *PracticeScreen) renderSessionDone() string {
	msg := fmt.Sprintf("  Part %d is done. %d lines, %.0f%% of letters right.",
		s.session.Number, s.stats.Lines, s.stats.Accuracy()*100)
	if s.plan.Complete() {
		msg += " That was the last part."
	}
	return lipgloss.NewStyle().Foreground(theme.Secondary).Render(msg) + "\n"
}

func centered(width int, style lipgloss.Style, text string) string {
	return style.Width(width).Align(lipgloss.Center).Render(text)
}
