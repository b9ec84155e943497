package ui

import (
	"io"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tabsheet/internal/device"
	"tabsheet/internal/logger"
	"tabsheet/internal/sheet"
	"tabsheet/internal/state"
	"tabsheet/internal/tab"
	"tabsheet/internal/trace"
)

// Options configures NewAppModel. Zero values pick defaults.
type Options struct {
	Coordinator *state.Coordinator
	Sheet       sheet.Config
	Renderer    Renderer
	Devices     []device.Device // nil = mock devices
	Logger      *slog.Logger
	Recorder    *trace.Recorder
}

// AppModel is the root model: one window with a page per tab, the sheet and
// the tab bar, all driven by a shared coordinator.
type AppModel struct {
	Coord      *state.Coordinator
	Sheet      *sheet.Sheet
	Catalog    *device.Catalog
	Renderer   Renderer
	TabBar     *TabBarView
	SheetView  *SheetView
	Stacks     map[tab.Tab]*ViewStack
	Overlays   OverlayStack
	Focus      *FocusManager
	KeyHandler *KeyHandler
	Logger     *slog.Logger
	Recorder   *trace.Recorder

	Width  int
	Height int

	tabBarOffset sheet.Motion
	framePending bool
	unsub        func()
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel wires the coordinator, sheet, views and keybinds together.
func NewAppModel(opts Options) *AppModel {
	coord := opts.Coordinator
	if coord == nil {
		coord = state.New()
	}
	cfg := opts.Sheet
	if cfg == (sheet.Config{}) {
		cfg = sheet.DefaultConfig()
	}
	r := opts.Renderer
	if r == nil {
		r = DetectRenderer("")
	}
	log := opts.Logger
	if log == nil {
		log = logger.New(io.Discard, "info")
	}
	devs := opts.Devices
	if devs == nil {
		devs = device.Mock()
	}

	m := &AppModel{
		Coord:      coord,
		Sheet:      sheet.New(coord, cfg),
		Catalog:    device.NewCatalog(devs),
		Renderer:   r,
		TabBar:     NewTabBarView(coord, r),
		Stacks:     make(map[tab.Tab]*ViewStack),
		KeyHandler: NewKeyHandler(defaultKeybinds()),
		Logger:     log,
		Recorder:   opts.Recorder,
	}
	m.SheetView = NewSheetView(coord, m.Catalog, r)
	for _, t := range tab.All() {
		m.Stacks[t] = NewViewStack(NewPageView(t, r))
	}

	offset := 0.0
	if coord.HideTabBar() {
		offset = TabBarHeight
	}
	m.tabBarOffset = sheet.NewMotion(offset, cfg.Animate, cfg.Frequency, cfg.Damping)

	m.Focus = NewFocusManager(m.layout())
	m.Focus.OnChange = func(from, to string) {
		m.TabBar.SetFocused(to == PanelTabBar)
		m.SheetView.SetFocused(to == PanelSheet)
		m.Logger.Debug("focus changed", "from", from, "to", to)
	}
	m.TabBar.SetFocused(m.Focus.Is(PanelTabBar))

	m.unsub = coord.Subscribe(m.onChange)
	if m.Recorder != nil {
		m.Recorder.Attach(coord)
		m.Recorder.SessionStarted(r.Name(), coord.Snapshot())
	}
	return m
}

// defaultKeybinds returns the registry of app-level bindings.
func defaultKeybinds() *KeybindRegistry {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	for i, t := range tab.All() {
		t := t
		n := string(rune('1' + i))
		selectTab := func() tea.Msg { return SelectTabMsg{Tab: t} }
		reg.Bind(n, selectTab)
		reg.BindWithDesc("SPC t "+n, selectTab, t.Title())
	}
	reg.Bind("tab", func() tea.Msg { return CycleTabMsg{Delta: 1} })
	reg.Bind("shift+tab", func() tea.Msg { return CycleTabMsg{Delta: -1} })
	reg.Bind("f", func() tea.Msg { return FocusNextMsg{} })
	reg.BindWithDesc("SPC s", func() tea.Msg { return ToggleSheetMsg{} }, "Toggle sheet")
	reg.BindWithDesc("SPC f", func() tea.Msg { return FocusNextMsg{} }, "Focus")

	addDevice := func() tea.Msg { return ShowAddDeviceMsg{} }
	onDevices := []tab.Tab{tab.Devices}
	reg.BindOnTabs("SPC a", addDevice, "Add device", onDevices)
	reg.BindOnTabs("+", addDevice, "", onDevices)
	reg.BindOnTabs("a", addDevice, "", onDevices)
	return reg
}

// Close releases coordinator subscriptions.
func (m *AppModel) Close() {
	if m.unsub != nil {
		m.unsub()
		m.unsub = nil
	}
	m.SheetView.Close()
	if m.Recorder != nil {
		m.Recorder.Detach()
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// onChange is the app's own coordinator listener: it starts the tab bar
// slide and logs transitions.
func (m *AppModel) onChange(ch state.Change) {
	switch ch.Kind {
	case state.ChangeActiveTab:
		m.Logger.Info("tab selected", "from", ch.Prev.ActiveTab, "to", ch.Next.ActiveTab)
		if n := m.Overlays.CloseOutside(ch.Next.ActiveTab); n > 0 {
			m.Logger.Debug("closed overlays for previous tab", "count", n)
		}
	case state.ChangeHideTabBar:
		target := 0.0
		if ch.Next.HideTabBar {
			target = TabBarHeight
		}
		m.tabBarOffset.SetTarget(target)
		m.Logger.Debug("tab bar visibility", "hidden", ch.Next.HideTabBar)
	}
}

// layout snapshots the current geometry.
func (m *AppModel) layout() WindowLayout {
	return WindowLayout{
		SheetHeight:  m.Sheet.Height(),
		TabBarOffset: m.tabBarOffset.Value(),
		Content:      m.activeStack().Peek(),
		Sheet:        m.SheetView,
		TabBar:       m.TabBar,
	}
}

func (m *AppModel) activeStack() *ViewStack {
	return m.Stacks[m.Coord.ActiveTab()]
}

// TabBarOffset returns how many rows the tab bar is currently pushed down.
func (m *AppModel) TabBarOffset() int {
	return m.tabBarOffset.Value()
}

// syncSizes hands every panel its current box.
func (m *AppModel) syncSizes() {
	l := m.layout()
	m.TabBar.SetSize(m.Width, TabBarHeight)
	m.SheetView.SetSize(m.Width, l.SheetVisibleRows(m.Height))
	rows := l.ContentRows(m.Height)
	for _, s := range m.Stacks {
		for _, v := range s.Stack {
			if sz, ok := v.(Sizer); ok {
				sz.SetSize(m.Width, max(rows-1, 0))
			}
		}
	}
}

// animate schedules the next frame if something is still moving.
func (m *AppModel) animate() tea.Cmd {
	m.syncSizes()
	if m.framePending || (!m.Sheet.Animating() && !m.tabBarOffset.Animating()) {
		return nil
	}
	m.framePending = true
	return tea.Tick(sheet.FrameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// sheetSettled records where the sheet is heading after a gesture or key.
func (m *AppModel) sheetSettled() {
	d := m.Sheet.Detent()
	m.Logger.Debug("sheet settled", "detent", d.String())
	if m.Recorder != nil {
		m.Recorder.SheetSettled(d)
	}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.Width, a.Height = msg.Width, msg.Height
		a.Sheet.Resize(msg.Height)
		return a, a.animate()
	case frameMsg:
		a.framePending = false
		a.Sheet.Step()
		a.tabBarOffset.Step()
		return a, a.animate()
	case tea.MouseMsg:
		return a.handleMouse(msg)
	case tea.KeyMsg:
		return a.handleKey(msg)
	case SelectTabMsg:
		a.Coord.SetActiveTab(msg.Tab)
		return a, a.animate()
	case CycleTabMsg:
		t := a.Coord.ActiveTab()
		for i := 0; i < abs(msg.Delta); i++ {
			if msg.Delta > 0 {
				t = t.Next()
			} else {
				t = t.Prev()
			}
		}
		a.Coord.SetActiveTab(t)
		return a, a.animate()
	case ToggleSheetMsg:
		a.Sheet.Toggle()
		a.sheetSettled()
		return a, a.animate()
	case ExpandSheetMsg:
		a.Sheet.Expand()
		a.sheetSettled()
		return a, a.animate()
	case CollapseSheetMsg:
		a.Sheet.Collapse()
		a.sheetSettled()
		return a, a.animate()
	case FocusNextMsg:
		a.Focus.Next()
		return a, nil
	case ShowAddDeviceMsg:
		return a.handleShowAddDevice()
	case AddDeviceMsg:
		return a.handleAddDevice(msg)
	case OpenDeviceMsg:
		detail := NewDeviceDetailView(msg.Device, a.Renderer)
		a.Stacks[tab.Devices].Push(detail)
		a.syncSizes()
		return a, detail.Init()
	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil
	}

	// Anything else (cursor blink, list internals) goes to the top overlay.
	if cmd, ok := a.Overlays.UpdateTop(msg); ok {
		return a, cmd
	}
	return a, nil
}

func (a *appModelAdapter) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := msg.String()
	if top, ok := a.Overlays.Peek(); ok {
		if s == "ctrl+c" {
			return a, tea.Quit
		}
		if top.IsDismissKey(s) {
			a.Overlays.Pop()
			return a, nil
		}
		cmd, _ := a.Overlays.UpdateTop(msg)
		return a, cmd
	}

	if consumed, cmd := a.KeyHandler.Handle(msg, a.Coord.ActiveTab()); consumed {
		return a, cmd
	}

	if s == "esc" {
		if a.activeStack().Pop() != nil {
			return a, nil
		}
		a.Focus.SetFocus(PanelTabBar)
		return a, nil
	}

	if a.Focus.Is(PanelSheet) && a.SheetView.ShowsDevices() {
		_, cmd := a.SheetView.Update(msg)
		return a, cmd
	}

	switch s {
	case "k", "up":
		return a, func() tea.Msg { return ExpandSheetMsg{} }
	case "j", "down":
		return a, func() tea.Msg { return CollapseSheetMsg{} }
	}
	_, cmd := a.TabBar.Update(msg)
	return a, cmd
}

func (a *appModelAdapter) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if a.Overlays.Len() > 0 {
		return a, nil
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return a, nil
		}
		l := a.layout()
		p, ok := l.PanelAt(a.Width, a.Height, msg.X, msg.Y)
		if !ok {
			return a, nil
		}
		switch p.ID {
		case PanelTabBar:
			if t, ok := a.TabBar.TabAt(msg.X); ok {
				a.Coord.SetActiveTab(t)
			}
			a.Focus.SetFocus(PanelTabBar)
		case PanelSheet:
			_, top, _, _ := p.Bounds(a.Width, a.Height)
			row := msg.Y - top
			switch {
			case a.SheetView.HitAddButton(msg.X, row):
				return a, func() tea.Msg { return ShowAddDeviceMsg{} }
			case a.SheetView.IsHandle(row):
				a.Sheet.BeginDrag(msg.Y)
			default:
				a.Focus.SetFocus(PanelSheet)
			}
		}
	case tea.MouseActionMotion:
		if a.Sheet.Dragging() {
			a.Sheet.DragTo(msg.Y)
		}
	case tea.MouseActionRelease:
		if a.Sheet.Dragging() {
			a.Sheet.EndDrag()
			a.sheetSettled()
		}
	}
	return a, a.animate()
}

func (a *appModelAdapter) handleShowAddDevice() (tea.Model, tea.Cmd) {
	if a.Coord.ActiveTab() != tab.Devices || a.Overlays.Len() > 0 {
		return a, nil
	}
	modal := NewAddDeviceModal(a.Renderer.Theme())
	a.Overlays.Push(Overlay{View: modal, Dismiss: "esc", Tab: tab.Devices})
	return a, modal.Init()
}

func (a *appModelAdapter) handleAddDevice(msg AddDeviceMsg) (tea.Model, tea.Cmd) {
	a.Overlays.Pop()
	d, err := a.Catalog.Add(msg.Name)
	if err != nil {
		a.Logger.Warn("add device", "err", err)
		return a, nil
	}
	a.SheetView.Refresh()
	a.Logger.Info("device added", "name", d.Name)
	if a.Recorder != nil {
		a.Recorder.DeviceAdded(d.Name)
	}
	return a, nil
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	w, h := a.Width, a.Height
	if w <= 0 || h <= 0 {
		return ""
	}
	a.syncSizes()
	l := a.layout()

	var blocks []string
	if rows := l.ContentRows(h); rows > 0 {
		blocks = append(blocks, a.renderContent(rows))
	}
	if rows := l.SheetVisibleRows(h); rows > 0 {
		blocks = append(blocks, fitBlock(a.SheetView.View(), w, rows))
	}
	if rows := l.TabBarRows(h); rows > 0 {
		lines := strings.Split(a.TabBar.View(), "\n")
		blocks = append(blocks, fitBlock(strings.Join(lines[:min(rows, len(lines))], "\n"), w, rows))
	}
	return strings.Join(blocks, "\n")
}

// renderContent draws the hint line and the active page, with any modal or
// leader help on top.
func (a *appModelAdapter) renderContent(rows int) string {
	w := a.Width
	theme := a.Renderer.Theme()
	page := a.activeStack().Peek().View()
	body := page
	if rows > 1 {
		body = RenderHintLine(theme, w) + "\n" + page
	}
	body = fitBlock(body, w, rows)

	if modal, ok := a.Overlays.Render(w, rows); ok {
		return fitBlock(modal, w, rows)
	}
	if a.KeyHandler.LeaderWaiting {
		if help := RenderKeybindHelp(a.KeyHandler, a.Coord.ActiveTab(), theme); help != "" {
			return fitBlock(placeBottom(body, help, w, rows), w, rows)
		}
	}
	return body
}

// fitBlock pads or clips s to exactly w x h cells.
func fitBlock(s string, w, h int) string {
	return lipgloss.NewStyle().Width(w).Height(h).MaxWidth(w).MaxHeight(h).Render(s)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
