package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"tabsheet/internal/device"
	"tabsheet/internal/state"
	"tabsheet/internal/tab"
	"tabsheet/internal/ui/textutil"
)

// SheetHeaderRows is the number of rows above the sheet body: the top edge
// with the grabber, the title row and a spacer.
const SheetHeaderRows = 3

// deviceItem implements list.DefaultItem for a device row.
type deviceItem struct {
	device.Device
	unicode bool
}

func (d deviceItem) FilterValue() string { return d.Name }
func (d deviceItem) Title() string       { return d.Kind.Icon(d.unicode) + "  " + d.Name }
func (d deviceItem) Description() string { return d.Location + " · " + d.Distance }

// SheetView draws the sheet: grabber, the active tab's title, a "+" button on
// Devices and the device list on Devices.
type SheetView struct {
	coord    *state.Coordinator
	catalog  *device.Catalog
	renderer Renderer
	list     list.Model
	width    int
	height   int
	focused  bool
	unsub    func()
}

// Ensure SheetView implements View.
var _ View = (*SheetView)(nil)

// NewSheetView creates a sheet view and subscribes it to tab changes so the
// list scrolls back to the top whenever a tab is selected.
func NewSheetView(coord *state.Coordinator, catalog *device.Catalog, r Renderer) *SheetView {
	l := list.New(nil, NewDeviceListDelegate(r.Theme()), 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()

	v := &SheetView{coord: coord, catalog: catalog, renderer: r, list: l}
	v.Refresh()
	v.unsub = coord.Subscribe(func(ch state.Change) {
		if ch.Kind == state.ChangeActiveTab {
			v.list.Select(0)
		}
	})
	return v
}

// Close drops the coordinator subscription.
func (v *SheetView) Close() {
	if v.unsub != nil {
		v.unsub()
		v.unsub = nil
	}
}

// Refresh reloads the rows from the catalog.
func (v *SheetView) Refresh() {
	devs := v.catalog.List()
	items := make([]list.Item, len(devs))
	for i, d := range devs {
		items[i] = deviceItem{Device: d, unicode: v.renderer.Unicode()}
	}
	v.list.SetItems(items)
}

// SetSize implements Sizer.
func (v *SheetView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.list.SetSize(max(width-2, 0), max(height-SheetHeaderRows, 0))
}

// SetFocused marks the sheet as the keyboard target.
func (v *SheetView) SetFocused(f bool) {
	v.focused = f
}

// ShowsAddButton reports whether the header carries the "+" button.
func (v *SheetView) ShowsAddButton() bool {
	return v.coord.ActiveTab() == tab.Devices
}

// ShowsDevices reports whether the body lists devices.
func (v *SheetView) ShowsDevices() bool {
	return v.coord.ActiveTab() == tab.Devices
}

// HitAddButton reports whether a click at column x on sheet row row lands on "+".
func (v *SheetView) HitAddButton(x, row int) bool {
	return row == 1 && v.ShowsAddButton() && x >= v.width-4
}

// IsHandle reports whether sheet row row starts a drag.
func (v *SheetView) IsHandle(row int) bool {
	return row == 0 || row == 1
}

// SelectedDevice returns the highlighted row.
func (v *SheetView) SelectedDevice() (device.Device, bool) {
	item, ok := v.list.SelectedItem().(deviceItem)
	if !ok {
		return device.Device{}, false
	}
	return item.Device, true
}

// Init implements View.
func (v *SheetView) Init() tea.Cmd {
	return nil
}

// Update implements View. Keys reach the list only while the sheet has focus
// and lists devices.
func (v *SheetView) Update(msg tea.Msg) (View, tea.Cmd) {
	km, isKey := msg.(tea.KeyMsg)
	if isKey && (!v.focused || !v.ShowsDevices()) {
		return v, nil
	}
	if isKey && km.String() == "enter" {
		if d, ok := v.SelectedDevice(); ok {
			return v, func() tea.Msg { return OpenDeviceMsg{Device: d} }
		}
		return v, nil
	}
	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// View implements View.
func (v *SheetView) View() string {
	w := v.width
	if w <= 0 {
		w = 80
	}
	theme := v.renderer.Theme()
	unicode := v.renderer.Unicode()

	edge := theme.SheetEdge
	if v.focused {
		edge = theme.SheetFocus
	}
	left, fill, right, grab := "+", "-", "+", "==="
	if unicode {
		left, fill, right, grab = "╭", "─", "╮", "━━━"
	}
	if v.focused && theme.FocusFill != "" {
		fill = theme.FocusFill
	}
	side := max(w-2-len([]rune(grab)), 0)
	top := left + strings.Repeat(fill, side/2) + grab + strings.Repeat(fill, side-side/2) + right
	lines := []string{edge.Render(top)}

	title := theme.Title.Render(" " + v.coord.ActiveTab().Title())
	button := ""
	if v.ShowsAddButton() {
		button = theme.Button.Render("[+] ")
		if unicode {
			button = theme.Button.Render(" ＋ ")
		}
	}
	lines = append(lines, textutil.SpaceBetween(title, button, w), "")

	if v.ShowsDevices() && v.height > SheetHeaderRows {
		for _, l := range strings.Split(v.list.View(), "\n") {
			lines = append(lines, " "+l)
		}
	}
	if v.height > 0 && len(lines) > v.height {
		lines = lines[:v.height]
	}
	return strings.Join(lines, "\n")
}
