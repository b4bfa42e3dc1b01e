// Package picker is the home screen where a lesson template is chosen.
package picker

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/keypals/internal/catalog"
	"github.com/abhisek/keypals/internal/router"
	"github.com/abhisek/keypals/internal/screen"
	"github.com/abhisek/keypals/internal/screens/practice"
	"github.com/abhisek/keypals/internal/ui/components"
	"github.com/abhisek/keypals/internal/ui/layout"
	"github.com/abhisek/keypals/internal/ui/theme"
)

// PickerScreen lists lesson templates.
type PickerScreen struct {
	menu components.Menu
	live bool
}

var _ screen.Screen = (*PickerScreen)(nil)
var _ screen.KeyHintProvider = (*PickerScreen)(nil)

// New builds the menu. Choosing a template pushes a practice screen for it.
// live is false when lessons come only from the built-in library.
func New(ctx context.Context, lessons practice.Lessons, templates []catalog.Template, learner practice.Learner, live bool) *PickerScreen {
	items := make([]components.MenuItem, 0, len(templates)+1)
	for _, t := range templates {
		items = append(items, components.MenuItem{
			Label:  t.Title,
			Detail: fmt.Sprintf("%s  (%d parts, ages %s)", t.Description, t.SuggestedSessions, t.Ages),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: practice.New(ctx, lessons, t, learner)}
				}
			},
		})
	}
	items = append(items, components.MenuItem{
		Label:  "Quit",
		Action: func() tea.Cmd { return tea.Quit },
	})

	return &PickerScreen{
		menu: components.NewMenu(items),
		live: live,
	}
}

func (p *PickerScreen) Init() tea.Cmd {
	return nil
}

func (p *PickerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	p.menu, cmd = p.menu.Update(msg)
	return p, cmd
}

func (p *PickerScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("What shall we type today?"))
	b.WriteString("\n")
	if !p.live {
		b.WriteString(theme.Subtitle.Width(width).Render("Using the built-in lessons."))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	menu := p.menu.View()
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(min(width-4, 72)).Render(menu)))
	return b.String()
}

func (p *PickerScreen) Title() string {
	return "Lessons"
}

func (p *PickerScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
