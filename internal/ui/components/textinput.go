package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// TextInput wraps bubbles/textinput for typing practice. While disabled it
// drops every message so keys pressed during a wait are not queued up.
type TextInput struct {
	Model    textinput.Model
	disabled bool
}

// NewTextInput creates a focused input. limit caps the length, 0 means none.
func NewTextInput(placeholder string, limit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	if limit > 0 {
		ti.CharLimit = limit
	}
	ti.Focus()
	return TextInput{Model: ti}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.disabled {
		return t, nil
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input.
func (t TextInput) View() string {
	return t.Model.View()
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// Reset clears the input.
func (t *TextInput) Reset() {
	t.Model.Reset()
}

// SetDisabled blurs or refocuses the input.
func (t *TextInput) SetDisabled(disabled bool) {
	t.disabled = disabled
	if disabled {
		t.Model.Blur()
		return
	}
	t.Model.Focus()
}

// Disabled reports whether input is ignored.
func (t TextInput) Disabled() bool {
	return t.disabled
}
