package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/keypals/internal/ui/theme"
)

// Button fires OnPress on enter while Active and turns itself off, so a
// second enter does nothing until the owner turns it back on. While
// inactive it shows WaitLabel, if set.
type Button struct {
	Label     string
	WaitLabel string
	Active    bool
	OnPress   func() tea.Cmd
}

func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !b.Active || b.OnPress == nil || key.String() != "enter" {
		return b, nil
	}
	b.Active = false
	return b, b.OnPress()
}

func (b Button) View() string {
	switch {
	case b.Active:
		return theme.ButtonActive.Render(b.Label)
	case b.WaitLabel != "":
		return theme.ButtonInactive.Render(b.WaitLabel)
	default:
		return theme.ButtonInactive.Render(b.Label)
	}
}
