package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tabsheet/internal/tab"
)

// Overlay is a modal drawn centred over the content page.
type Overlay struct {
	View    View
	Dismiss string  // Key that closes the overlay without going through View, e.g. "esc"
	Tab     tab.Tab // Tab the overlay belongs to; empty means any tab
}

// IsDismissKey reports whether key closes this overlay.
func (o *Overlay) IsDismissKey(key string) bool {
	return o.Dismiss != "" && key == o.Dismiss
}

// BelongsTo reports whether the overlay may stay open while t is active.
func (o *Overlay) BelongsTo(t tab.Tab) bool {
	return o.Tab == "" || o.Tab == t
}

// OverlayStack holds open overlays; the top one receives input first.
type OverlayStack struct {
	Stack []Overlay
}

// Push opens o above the current overlays.
func (s *OverlayStack) Push(o Overlay) {
	s.Stack = append(s.Stack, o)
}

// Pop closes and returns the top overlay.
func (s *OverlayStack) Pop() (Overlay, bool) {
	o, ok := s.Peek()
	if ok {
		s.Stack = s.Stack[:len(s.Stack)-1]
	}
	return o, ok
}

// Peek returns the top overlay.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Len returns the number of open overlays.
func (s *OverlayStack) Len() int {
	return len(s.Stack)
}

// CloseOutside closes every overlay that does not belong to active and
// returns how many were closed.
func (s *OverlayStack) CloseOutside(active tab.Tab) int {
	kept := s.Stack[:0]
	for _, o := range s.Stack {
		if o.BelongsTo(active) {
			kept = append(kept, o)
		}
	}
	closed := len(s.Stack) - len(kept)
	s.Stack = kept
	return closed
}

// UpdateTop forwards msg to the top overlay and stores the view it returns.
// The caller runs the returned command.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	top := &s.Stack[len(s.Stack)-1]
	v, cmd := top.View.Update(msg)
	top.View = v
	return cmd, true
}

// Render centres the top overlay in a width x height box.
func (s *OverlayStack) Render(width, height int) (string, bool) {
	top, ok := s.Peek()
	if !ok {
		return "", false
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, top.View.View()), true
}
