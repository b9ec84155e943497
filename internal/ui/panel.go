package ui

// Panel IDs used by the window layout and the focus manager.
const (
	PanelContent = "content"
	PanelSheet   = "sheet"
	PanelTabBar  = "tabbar"
)

// BoundsFunc returns the panel's position and size given terminal dimensions.
// Returns x, y, width, height.
type BoundsFunc func(width, height int) (x, y, w, h int)

// Panel hosts a View and knows its bounds within a layout.
type Panel struct {
	ID     string
	View   View
	Bounds BoundsFunc
}

// Contains reports whether the cell (x, y) falls inside the panel.
func (p Panel) Contains(width, height, x, y int) bool {
	px, py, pw, ph := p.Bounds(width, height)
	return x >= px && x < px+pw && y >= py && y < py+ph
}
