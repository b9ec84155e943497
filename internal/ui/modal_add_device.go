package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// AddDeviceModal asks for the name of a device to add to the sheet.
type AddDeviceModal struct {
	input textinput.Model
	theme Theme
}

// Ensure AddDeviceModal implements View.
var _ View = (*AddDeviceModal)(nil)

// NewAddDeviceModal creates an add-device modal.
func NewAddDeviceModal(t Theme) *AddDeviceModal {
	ti := textinput.New()
	ti.Placeholder = "Device name"
	ti.CharLimit = 40
	ti.Width = 30
	ti.Focus()
	return &AddDeviceModal{input: ti, theme: t}
}

// Init implements View.
func (m *AddDeviceModal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *AddDeviceModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter":
			name := strings.TrimSpace(m.input.Value())
			if name != "" {
				return m, func() tea.Msg { return AddDeviceMsg{Name: name} }
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements View.
func (m *AddDeviceModal) View() string {
	content := m.theme.Title.Render("Add device") + "\n\n"
	content += m.input.View() + "\n\n"
	content += m.theme.Hint.Render("Enter: add  Esc: cancel")
	return m.theme.Box.Render(content)
}
