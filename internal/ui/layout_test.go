package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabsheet/internal/tab"
)

func TestWindowLayout_Rows(t *testing.T) {
	tests := []struct {
		name                              string
		sheet, offset, height             int
		content, visible, tabBar, sheetFt int
	}{
		{name: "peek", sheet: 5, offset: 0, height: 30, content: 25, visible: 2, tabBar: 3, sheetFt: 5},
		{name: "sliding", sheet: 9, offset: 2, height: 30, content: 21, visible: 8, tabBar: 1, sheetFt: 9},
		{name: "hidden", sheet: 28, offset: 3, height: 30, content: 2, visible: 28, tabBar: 0, sheetFt: 28},
		{name: "tiny window", sheet: 5, offset: 0, height: 2, content: 0, visible: 0, tabBar: 2, sheetFt: 2},
		{name: "no window", sheet: 5, offset: 0, height: 0, content: 0, visible: 0, tabBar: 0, sheetFt: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := WindowLayout{SheetHeight: tt.sheet, TabBarOffset: tt.offset}
			assert.Equal(t, tt.content, l.ContentRows(tt.height), "content")
			assert.Equal(t, tt.visible, l.SheetVisibleRows(tt.height), "sheet visible")
			assert.Equal(t, tt.tabBar, l.TabBarRows(tt.height), "tab bar")
			assert.Equal(t, tt.sheetFt, l.SheetRows(tt.height), "sheet footprint")
			assert.Equal(t, tt.height, l.ContentRows(tt.height)+l.SheetVisibleRows(tt.height)+l.TabBarRows(tt.height))
		})
	}
}

func TestWindowLayout_PanelAt(t *testing.T) {
	l := WindowLayout{SheetHeight: 5}

	tests := []struct {
		y    int
		want string
		ok   bool
	}{
		{y: 0, want: PanelContent, ok: true},
		{y: 24, want: PanelContent, ok: true},
		{y: 25, want: PanelSheet, ok: true},
		{y: 26, want: PanelSheet, ok: true},
		{y: 27, want: PanelTabBar, ok: true},
		{y: 29, want: PanelTabBar, ok: true},
		{y: 30, ok: false},
	}
	for _, tt := range tests {
		p, ok := l.PanelAt(80, 30, 10, tt.y)
		assert.Equal(t, tt.ok, ok, "y=%d", tt.y)
		if tt.ok {
			assert.Equal(t, tt.want, p.ID, "y=%d", tt.y)
		}
	}

	_, ok := l.PanelAt(80, 30, 80, 27)
	assert.False(t, ok, "x past the right edge")
}

func TestWindowLayout_FocusOrder(t *testing.T) {
	assert.Equal(t, []string{PanelTabBar, PanelSheet}, WindowLayout{}.FocusOrder())
}

func TestFocusManager_Rotate(t *testing.T) {
	var changes [][2]string
	f := NewFocusManager(WindowLayout{})
	f.OnChange = func(from, to string) { changes = append(changes, [2]string{from, to}) }

	assert.True(t, f.Is(PanelTabBar))
	assert.Equal(t, PanelSheet, f.Next())
	assert.Equal(t, PanelTabBar, f.Next())
	assert.Equal(t, PanelSheet, f.Prev())

	assert.False(t, f.SetFocus(PanelContent), "content is not focusable")
	assert.True(t, f.SetFocus(PanelSheet))

	assert.Equal(t, [][2]string{
		{PanelTabBar, PanelSheet},
		{PanelSheet, PanelTabBar},
		{PanelTabBar, PanelSheet},
	}, changes, "SetFocus to the current panel does not notify")
}

func TestViewStack_RootIsPermanent(t *testing.T) {
	r := SelectRenderer(RendererPlain, 0)
	root := NewPageView("devices", r)
	s := NewViewStack(root)

	assert.Nil(t, s.Pop())
	assert.Equal(t, 1, s.Len())

	detail := NewDeviceDetailView(mockDevice(), r)
	s.Push(detail)
	assert.Same(t, detail, s.Peek())
	assert.Same(t, detail, s.Pop())
	assert.Same(t, root, s.Peek())

	other := NewPageView("me", r)
	s.Replace(other)
	assert.Same(t, other, s.Peek())
	assert.Equal(t, 1, s.Len())
}

func TestOverlayStack(t *testing.T) {
	var s OverlayStack
	_, ok := s.Peek()
	assert.False(t, ok)
	_, ok = s.Pop()
	assert.False(t, ok)
	cmd, ok := s.UpdateTop(keyMsg("x"))
	assert.Nil(t, cmd)
	assert.False(t, ok)

	m := NewAddDeviceModal(plainTheme())
	s.Push(Overlay{View: m, Dismiss: "esc"})
	top, ok := s.Peek()
	assert.True(t, ok)
	assert.True(t, top.IsDismissKey("esc"))
	assert.False(t, top.IsDismissKey("q"))

	_, ok = s.UpdateTop(keyMsg("x"))
	assert.True(t, ok)
	assert.Equal(t, 1, s.Len())

	empty := Overlay{}
	assert.False(t, empty.IsDismissKey(""), "no dismiss key configured")

	out, ok := s.Render(40, 12)
	assert.True(t, ok)
	assert.Len(t, strings.Split(out, "\n"), 12)
	assert.Contains(t, out, "Add device")
}

func TestOverlayStack_CloseOutside(t *testing.T) {
	var s OverlayStack
	s.Push(Overlay{View: NewAddDeviceModal(plainTheme())})
	s.Push(Overlay{View: NewAddDeviceModal(plainTheme()), Tab: tab.Devices})

	assert.Equal(t, 0, s.CloseOutside(tab.Devices))
	assert.Equal(t, 2, s.Len())

	assert.Equal(t, 1, s.CloseOutside(tab.People))
	require.Equal(t, 1, s.Len())
	top, _ := s.Peek()
	assert.True(t, top.BelongsTo(tab.Me), "untagged overlays stay on every tab")

	_, ok := (&OverlayStack{}).Render(10, 10)
	assert.False(t, ok)
}
