package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"tabsheet/internal/state"
	"tabsheet/internal/tab"
	"tabsheet/internal/ui/textutil"
)

// TabBarView draws one cell per tab and highlights the active one. It holds no
// selection of its own; it reads and writes the coordinator.
type TabBarView struct {
	coord    *state.Coordinator
	renderer Renderer
	width    int
	focused  bool
}

// Ensure TabBarView implements View.
var _ View = (*TabBarView)(nil)

// NewTabBarView creates a tab bar bound to coord.
func NewTabBarView(coord *state.Coordinator, r Renderer) *TabBarView {
	return &TabBarView{coord: coord, renderer: r}
}

// SetSize implements Sizer. The height is fixed at TabBarHeight.
func (v *TabBarView) SetSize(width, _ int) {
	v.width = width
}

// SetFocused marks the tab bar as the keyboard target.
func (v *TabBarView) SetFocused(f bool) {
	v.focused = f
}

// Init implements View.
func (v *TabBarView) Init() tea.Cmd {
	return nil
}

// Update implements View. With focus, left/right move the selection.
func (v *TabBarView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
	case tea.KeyMsg:
		if !v.focused {
			return v, nil
		}
		switch msg.String() {
		case "left", "h":
			v.coord.SetActiveTab(v.coord.ActiveTab().Prev())
		case "right", "l":
			v.coord.SetActiveTab(v.coord.ActiveTab().Next())
		}
	}
	return v, nil
}

// TabAt resolves a column inside the tab bar to the tab drawn there.
func (v *TabBarView) TabAt(x int) (tab.Tab, bool) {
	tabs := tab.All()
	if v.width <= 0 || x < 0 || x >= v.width {
		return "", false
	}
	start := 0
	for i, t := range tabs {
		end := start + cellWidth(v.width, len(tabs), i)
		if x < end {
			return t, true
		}
		start = end
	}
	return "", false
}

// View implements View: divider, icons, titles.
func (v *TabBarView) View() string {
	w := v.width
	if w <= 0 {
		w = 80
	}
	theme := v.renderer.Theme()
	tabs := tab.All()
	active := v.coord.ActiveTab()

	divider := "-"
	if v.renderer.Unicode() {
		divider = "─"
	}
	var icons, titles strings.Builder
	for i, t := range tabs {
		cell := cellWidth(w, len(tabs), i)
		style := theme.TabInactive
		if t == active {
			style = theme.TabActive
		}
		icon, title := t.Icon(v.renderer.Unicode()), t.Title()
		if t == active {
			icon, title = theme.markActive(icon), theme.markActive(title)
		}
		icons.WriteString(style.Render(textutil.Center(icon, cell)))
		titles.WriteString(style.Render(textutil.Center(title, cell)))
	}
	return strings.Join([]string{
		theme.Divider.Render(strings.Repeat(divider, w)),
		icons.String(),
		titles.String(),
	}, "\n")
}

// cellWidth splits w columns into n near-equal cells.
func cellWidth(w, n, i int) int {
	return (i+1)*w/n - i*w/n
}
