package ui

// TabBarHeight is the number of rows the tab bar occupies when fully shown:
// a divider, the icons and the titles.
const TabBarHeight = 3

// Layout arranges panels and defines focus order.
type Layout interface {
	Panels() []Panel
	FocusOrder() []string // Tab order for focus
}

// WindowLayout anchors the sheet to the bottom of the window with the content
// page above it. The tab bar floats over the bottom rows of the sheet and
// slides down by TabBarOffset rows when hidden, uncovering the sheet.
type WindowLayout struct {
	SheetHeight  int
	TabBarOffset int

	Content View
	Sheet   View
	TabBar  View
}

// Ensure WindowLayout implements Layout.
var _ Layout = WindowLayout{}

// SheetRows returns the sheet's footprint, tab bar included.
func (l WindowLayout) SheetRows(height int) int {
	return clampInt(l.SheetHeight, 0, max(height, 0))
}

// TabBarRows returns how many tab bar rows are on screen.
func (l WindowLayout) TabBarRows(height int) int {
	return clampInt(TabBarHeight-l.TabBarOffset, 0, l.SheetRows(height))
}

// SheetVisibleRows returns the sheet rows not covered by the tab bar.
func (l WindowLayout) SheetVisibleRows(height int) int {
	return l.SheetRows(height) - l.TabBarRows(height)
}

// ContentRows returns the rows left for the page above the sheet.
func (l WindowLayout) ContentRows(height int) int {
	return max(height, 0) - l.SheetRows(height)
}

// Panels implements Layout, top to bottom.
func (l WindowLayout) Panels() []Panel {
	return []Panel{
		{ID: PanelContent, View: l.Content, Bounds: func(w, h int) (int, int, int, int) {
			return 0, 0, w, l.ContentRows(h)
		}},
		{ID: PanelSheet, View: l.Sheet, Bounds: func(w, h int) (int, int, int, int) {
			return 0, l.ContentRows(h), w, l.SheetVisibleRows(h)
		}},
		{ID: PanelTabBar, View: l.TabBar, Bounds: func(w, h int) (int, int, int, int) {
			return 0, l.ContentRows(h) + l.SheetVisibleRows(h), w, l.TabBarRows(h)
		}},
	}
}

// FocusOrder implements Layout. The content page never takes focus.
func (l WindowLayout) FocusOrder() []string {
	return []string{PanelTabBar, PanelSheet}
}

// PanelAt returns the panel under the cell (x, y), if any.
func (l WindowLayout) PanelAt(width, height, x, y int) (Panel, bool) {
	for _, p := range l.Panels() {
		if p.Contains(width, height, x, y) {
			return p, true
		}
	}
	return Panel{}, false
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
