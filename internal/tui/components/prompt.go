package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/hay-kot/mindmap/internal/core/styles"
)

// Prompt is a single-line input shown in the footer.
type Prompt struct {
	label string
	input textinput.Model
}

// NewPrompt creates a focused prompt pre-filled with value.
func NewPrompt(label, value, placeholder string, width int) *Prompt {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.SetWidth(max(width-len(label)-2, 10))
	ti.SetStyles(InputStyles())
	ti.SetValue(value)
	ti.CursorEnd()
	ti.Focus()

	return &Prompt{label: label, input: ti}
}

// Value returns the current input.
func (p *Prompt) Value() string {
	return p.input.Value()
}

// Update forwards msg to the input.
func (p *Prompt) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

// View renders the label followed by the input.
func (p *Prompt) View() string {
	return styles.PromptStyle.Render(p.label+" ") + p.input.View()
}

// InputStyles returns text input styles in the active theme.
func InputStyles() textinput.Styles {
	s := textinput.DefaultStyles(true)
	s.Cursor.Color = styles.ColorPrimary
	s.Focused.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	s.Blurred.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	return s
}
