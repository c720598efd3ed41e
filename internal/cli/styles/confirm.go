package styles

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var confirmKeys = struct {
	Yes, No, Toggle, Accept, Cancel key.Binding
}{
	Yes:    key.NewBinding(key.WithKeys("y", "Y")),
	No:     key.NewBinding(key.WithKeys("n", "N")),
	Toggle: key.NewBinding(key.WithKeys("left", "right", "h", "l", "tab")),
	Accept: key.NewBinding(key.WithKeys("enter")),
	Cancel: key.NewBinding(key.WithKeys("esc", "q", "ctrl+c")),
}

// ConfirmModel asks a yes/no question before a destructive command. y and n
// answer at once; the arrows move the selection and enter accepts it.
// "No" is selected initially.
type ConfirmModel struct {
	Message string
	// Detail lines are shown under the question, e.g. what will be lost.
	Detail []string
	Yes    bool

	answered bool
	canceled bool
	theme    *Theme
}

// NewConfirm creates a confirmation prompt.
func NewConfirm(theme *Theme, message string, detail ...string) ConfirmModel {
	return ConfirmModel{Message: message, Detail: detail, theme: theme}
}

// Init implements tea.Model.
func (ConfirmModel) Init() tea.Cmd { return nil }

// Update handles key presses. Input after the prompt is answered is ignored.
func (m ConfirmModel) Update(msg tea.Msg) (ConfirmModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.Done() {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, confirmKeys.Yes):
		m.Yes, m.answered = true, true
	case key.Matches(keyMsg, confirmKeys.No):
		m.Yes, m.answered = false, true
	case key.Matches(keyMsg, confirmKeys.Toggle):
		m.Yes = !m.Yes
	case key.Matches(keyMsg, confirmKeys.Accept):
		m.answered = true
	case key.Matches(keyMsg, confirmKeys.Cancel):
		m.canceled = true
	}
	return m, nil
}

// View renders the question and both choices.
func (m ConfirmModel) View() string {
	t := m.theme

	yes, no := t.InactiveTab, t.ActiveTab
	if m.Yes {
		yes, no = t.ActiveTab, t.InactiveTab
	}

	lines := []string{t.Title.Render(m.Message)}
	for _, d := range m.Detail {
		lines = append(lines, t.Subtle.Render(d))
	}
	lines = append(lines,
		"",
		lipgloss.JoinHorizontal(lipgloss.Center, no.Render(" No "), "  ", yes.Render(" Yes ")),
		"",
		t.Subtle.Render("y/n to answer, ←/→ and enter to pick, esc to cancel"),
	)
	return t.Box.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

// Done reports whether the prompt was answered or canceled.
func (m ConfirmModel) Done() bool {
	return m.answered || m.canceled
}

// Result reports whether the user answered yes.
func (m ConfirmModel) Result() bool {
	return m.answered && !m.canceled && m.Yes
}
