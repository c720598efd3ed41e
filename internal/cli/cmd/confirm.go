package cmd

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/tiler/internal/cli/styles"
)

// confirmProgram runs a ConfirmModel on its own until it is answered.
type confirmProgram struct {
	styles.ConfirmModel
}

func (c confirmProgram) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := c.ConfirmModel.Update(msg)
	c.ConfirmModel = m
	if m.Done() {
		return c, tea.Quit
	}
	return c, cmd
}

// confirm asks a yes/no question and reports whether it was accepted.
func confirm(theme *styles.Theme, message string, detail ...string) (bool, error) {
	final, err := tea.NewProgram(confirmProgram{styles.NewConfirm(theme, message, detail...)}).Run()
	if err != nil {
		return false, err
	}
	return final.(confirmProgram).Result(), nil
}
