package components

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Component is a widget owned by the main model and rendered inside a page.
// Widgets receive data through their own methods; Update is only for the
// messages they handle themselves.
type Component interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Model, tea.Cmd)
	View() string
}
