package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"tabsheet/internal/tab"
)

// globalHints are shown in the help line when no leader sequence is pending.
var globalHints = []key.Binding{
	key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "tab")),
	key.NewBinding(key.WithKeys("k", "j"), key.WithHelp("k/j", "sheet")),
	key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "focus")),
	key.NewBinding(key.WithKeys(" "), key.WithHelp("SPC", "more")),
	key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
}

func newHelpModel(t Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = t.Button
	h.Styles.ShortDesc = t.Muted
	h.Styles.ShortSeparator = t.Muted
	return h
}

// RenderHintLine produces the one-line hint shown at the top of the page.
func RenderHintLine(t Theme, width int) string {
	h := newHelpModel(t)
	h.Width = width
	return h.ShortHelpView(globalHints)
}

// RenderKeybindHelp produces the transient help box shown after SPC.
// When a submenu is pending (e.g. "SPC t"), shows its next keys.
func RenderKeybindHelp(keyHandler *KeyHandler, active tab.Tab, t Theme) string {
	if keyHandler == nil {
		return ""
	}
	bindings := NewKeyMap(keyHandler, active).ShortHelp()
	if len(bindings) == 0 {
		return ""
	}
	content := newHelpModel(t).ShortHelpView(bindings)

	prefix := keyHandler.LeaderSeq
	if seq := keyHandler.CurrentSeq(); seq != "" {
		prefix = seq
	}
	box := t.Box.Padding(0, 1)
	return box.Render(t.Muted.Render(prefix) + " " + content)
}

// placeBottom draws overlay over the last rows of base, which is width x height.
func placeBottom(base, overlay string, width, height int) string {
	oh := lipgloss.Height(overlay)
	if oh >= height {
		return overlay
	}
	top := lipgloss.NewStyle().Width(width).Height(height - oh).MaxHeight(height - oh).Render(base)
	return lipgloss.JoinVertical(lipgloss.Left, top, overlay)
}
