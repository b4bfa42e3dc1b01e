package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestRenderHeader(t *testing.T) {
	h := RenderHeader("Under the Sea", "part 2 of 4", 100)
	assert.Contains(t, h, "Keypals")
	assert.Contains(t, h, "Under the Sea")
	assert.Contains(t, h, "part 2 of 4")
	assert.Equal(t, 2, lipgloss.Height(h))
	assert.Equal(t, 100, lipgloss.Width(h))
}

func TestRenderHeader_Narrow(t *testing.T) {
	// Neighbours never touch, even when they do not fit.
	h := RenderHeader("A Very Long Lesson Title", "part 10 of 12", 20)
	first := ansi.Strip(strings.SplitN(h, "\n", 2)[0])
	assert.Contains(t, first, "Keypals ")
	assert.Contains(t, first, " part 10 of 12")
	assert.NotContains(t, first, "Keypals"+"A", "title is kept apart from the name")
}

func TestRenderFooter(t *testing.T) {
	f := RenderFooter([]KeyHint{
		{Key: "Enter", Description: "Check line"},
		{Key: "Esc", Description: "Back"},
	}, 80)
	assert.Contains(t, f, "Enter")
	assert.Contains(t, f, "Check line")
	assert.Contains(t, f, "Esc")
	assert.Equal(t, 2, lipgloss.Height(f))
}

func TestRenderFrame_FillsHeight(t *testing.T) {
	header := RenderHeader("Space", "", 70)
	footer := RenderFooter([]KeyHint{{Key: "Esc", Description: "Back"}}, 70)
	frame := RenderFrame(header, "the rocket is red.", footer, 70, 20)
	assert.Equal(t, 20, lipgloss.Height(frame))
	assert.Contains(t, frame, "the rocket is red.")
}

func TestSizes(t *testing.T) {
	assert.True(t, IsTooSmall(MinWidth-1, 30))
	assert.True(t, IsTooSmall(100, MinHeight-1))
	assert.False(t, IsTooSmall(MinWidth, MinHeight))
}

func TestRenderMinSizeMessage(t *testing.T) {
	msg := RenderMinSizeMessage(40, 10)
	assert.Contains(t, msg, "a little small")
	assert.Equal(t, 10, lipgloss.Height(msg))
}
