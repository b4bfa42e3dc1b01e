// Package theme holds the calm palette shared by every screen. Colours
// sit close together in brightness and nothing blinks; a mistake is
// shown with a soft clay background rather than red.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

var (
	Primary   = lipgloss.Color("#7C9CBF") // soft blue
	Secondary = lipgloss.Color("#8FBC9F") // sage
	Accent    = lipgloss.Color("#D8B67A") // sand
	Success   = Secondary
	Mistake   = lipgloss.Color("#C99A8B") // clay
	Text      = lipgloss.Color("#E5E9F0")
	TextDim   = lipgloss.Color("#8A94A6")
	BgDark    = lipgloss.Color("#1F2430")
	Border    = lipgloss.Color("#3B4456")
)

func fg(c color.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

var (
	Title    = fg(Primary).Bold(true).Align(lipgloss.Center)
	Subtitle = fg(TextDim).Align(lipgloss.Center)
	Body     = fg(Text)
	Hint     = fg(TextDim).Italic(true)
)

// Passage text while typing: done lines, the typed prefix, the first
// wrong character, and what is still to type.
var (
	Done     = fg(TextDim).Faint(true)
	Typed    = fg(Success)
	Mistyped = fg(BgDark).Background(Mistake)
	Pending  = fg(TextDim)
)

var (
	ButtonActive   = fg(BgDark).Background(Primary).Bold(true).Padding(0, 2)
	ButtonInactive = fg(TextDim).Border(lipgloss.RoundedBorder()).BorderForeground(Border).Padding(0, 2)
)
