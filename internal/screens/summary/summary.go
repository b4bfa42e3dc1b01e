// Package summary shows how a finished lesson went.
package summary

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/keypals/internal/lessonplan"
	"github.com/abhisek/keypals/internal/router"
	"github.com/abhisek/keypals/internal/screen"
	"github.com/abhisek/keypals/internal/ui/layout"
	"github.com/abhisek/keypals/internal/ui/theme"
)

// Result is the typing outcome of one session.
type Result struct {
	Number    int
	Stage     string
	Objective string
	Fallback  bool
	Lines     int
	Attempts  int
	Accuracy  float64
	WPM       float64
	Duration  time.Duration
}

// SummaryScreen lists every session of a finished plan.
type SummaryScreen struct {
	plan    *lessonplan.Plan
	results []Result
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(plan *lessonplan.Plan, results []Result) *SummaryScreen {
	return &SummaryScreen{plan: plan, results: results}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "All done"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Pick another lesson"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	if s.plan == nil {
		return ""
	}

	center := func(style lipgloss.Style, text string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(text))
	}

	var b strings.Builder
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
		fmt.Sprintf("You finished %s!", s.plan.Title)))
	b.WriteString("\n\n")

	var lines, attempts int
	var total time.Duration
	for _, r := range s.results {
		lines += r.Lines
		attempts += r.Attempts
		total += r.Duration
	}
	b.WriteString(center(theme.Pending, fmt.Sprintf("%d parts   %d lines   %s",
		len(s.results), lines, formatDuration(total))))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, r := range s.results {
		line := fmt.Sprintf("part %d  %-16s  %3.0f%% letters right  %4.0f wpm",
			r.Number, r.Stage, r.Accuracy*100, r.WPM)
		if r.Fallback {
			line += "  (built-in)"
		}
		style := theme.Body
		if r.Attempts == r.Lines {
			style = lipgloss.NewStyle().Foreground(theme.Success)
		}
		b.WriteString(center(style, line))
		b.WriteString("\n")
	}

	if attempts > 0 && attempts == lines {
		b.WriteString("\n")
		b.WriteString(center(theme.Hint, "Every line right the first time."))
		b.WriteString("\n")
	}

	return b.String()
}

func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
