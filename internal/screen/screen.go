package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/keypals/internal/ui/layout"
)

// Screen is one full-window view managed by the router. View draws only
// the body; the app adds the header and footer around it.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider fills the right side of the header, e.g. "Part 2 of 5".
type StatusProvider interface {
	Status() string
}
