package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tabsheet/internal/device"
	"tabsheet/internal/tab"
)

// PageView is a tab's root page. Devices shows the map; the others show a
// placeholder title.
type PageView struct {
	Tab      tab.Tab
	renderer Renderer
	width    int
	height   int
}

// Ensure PageView implements View.
var _ View = (*PageView)(nil)

// NewPageView creates the root page for t.
func NewPageView(t tab.Tab, r Renderer) *PageView {
	return &PageView{Tab: t, renderer: r}
}

// SetSize implements Sizer.
func (p *PageView) SetSize(width, height int) {
	p.width, p.height = width, height
}

// Init implements View.
func (p *PageView) Init() tea.Cmd { return nil }

// Update implements View.
func (p *PageView) Update(msg tea.Msg) (View, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		p.SetSize(ws.Width, ws.Height)
	}
	return p, nil
}

// View implements View.
func (p *PageView) View() string {
	if p.width <= 0 || p.height <= 0 {
		return ""
	}
	if p.Tab == tab.Devices {
		return p.renderer.Map(ApplePark, p.width, p.height)
	}
	return lipgloss.Place(p.width, p.height, lipgloss.Center, lipgloss.Center,
		p.renderer.Theme().Title.Render(p.Tab.Title()))
}

// DeviceDetailView is pushed on the Devices stack when a row is opened.
type DeviceDetailView struct {
	Device   device.Device
	renderer Renderer
	width    int
	height   int
}

// Ensure DeviceDetailView implements View.
var _ View = (*DeviceDetailView)(nil)

// NewDeviceDetailView creates a detail page for d.
func NewDeviceDetailView(d device.Device, r Renderer) *DeviceDetailView {
	return &DeviceDetailView{Device: d, renderer: r}
}

// SetSize implements Sizer.
func (d *DeviceDetailView) SetSize(width, height int) {
	d.width, d.height = width, height
}

// Init implements View.
func (d *DeviceDetailView) Init() tea.Cmd { return nil }

// Update implements View. Esc is handled by the app, which pops the stack.
func (d *DeviceDetailView) Update(msg tea.Msg) (View, tea.Cmd) {
	return d, nil
}

// View implements View.
func (d *DeviceDetailView) View() string {
	theme := d.renderer.Theme()
	body := lipgloss.JoinVertical(lipgloss.Left,
		theme.Title.Render(d.Device.Kind.Icon(d.renderer.Unicode())+"  "+d.Device.Name),
		"",
		theme.Muted.Render("Location: ")+d.Device.Location,
		theme.Muted.Render("Distance: ")+d.Device.Distance,
		"",
		theme.Hint.Render("Esc: back"),
	)
	if d.width <= 0 || d.height <= 0 {
		return body
	}
	return lipgloss.Place(d.width, d.height, lipgloss.Center, lipgloss.Center, body)
}
