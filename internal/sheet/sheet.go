// Package sheet models the bottom sheet attached to the tab bar: its peek and
// full detents, the drag gesture, and the threshold rule that tucks the tab
// bar away while the sheet is pulled open.
package sheet

import (
	"tabsheet/internal/state"
)

const (
	// DefaultPeekHeight is the collapsed height in rows.
	DefaultPeekHeight = 5
	// DefaultHideThreshold is how many rows above peek the sheet may be
	// pulled before the tab bar is hidden.
	DefaultHideThreshold = 2
	// TopInset is the number of rows kept free above a fully open sheet.
	TopInset = 2

	DefaultFrequency = 8.0
	DefaultDamping   = 1.0
)

// Detent is a resting height of the sheet.
type Detent int

const (
	DetentPeek Detent = iota
	DetentFull
)

func (d Detent) String() string {
	switch d {
	case DetentPeek:
		return "peek"
	case DetentFull:
		return "full"
	default:
		return "unknown"
	}
}

// Config holds sheet geometry and animation parameters.
type Config struct {
	PeekHeight    int
	HideThreshold int
	Animate       bool
	Frequency     float64
	Damping       float64
}

// DefaultConfig returns the stock geometry with animation on.
func DefaultConfig() Config {
	return Config{
		PeekHeight:    DefaultPeekHeight,
		HideThreshold: DefaultHideThreshold,
		Animate:       true,
		Frequency:     DefaultFrequency,
		Damping:       DefaultDamping,
	}
}

// Sheet tracks the sheet height and drives the coordinator's hideTabBar flag.
type Sheet struct {
	coord *state.Coordinator
	cfg   Config

	full   int
	height Motion

	dragging        bool
	dragMoved       bool
	dragOriginY     int
	dragStartHeight int
	dragFrom        Detent
}

// New creates a sheet resting at peek height. Until Resize is called the
// full detent equals peek.
func New(coord *state.Coordinator, cfg Config) *Sheet {
	if cfg.PeekHeight <= 0 {
		cfg.PeekHeight = DefaultPeekHeight
	}
	if cfg.HideThreshold < 0 {
		cfg.HideThreshold = 0
	}
	return &Sheet{
		coord:  coord,
		cfg:    cfg,
		full:   cfg.PeekHeight,
		height: NewMotion(float64(cfg.PeekHeight), cfg.Animate, cfg.Frequency, cfg.Damping),
	}
}

// PeekHeight returns the collapsed height.
func (s *Sheet) PeekHeight() int { return s.cfg.PeekHeight }

// FullHeight returns the expanded height for the current window.
func (s *Sheet) FullHeight() int { return s.full }

// HideThreshold returns the drag offset above which the tab bar hides.
func (s *Sheet) HideThreshold() int { return s.cfg.HideThreshold }

// Height returns the height to draw this frame.
func (s *Sheet) Height() int { return s.height.Value() }

// Dragging reports whether a drag gesture is in progress.
func (s *Sheet) Dragging() bool { return s.dragging }

// Detent returns the detent the sheet rests at or is moving toward.
func (s *Sheet) Detent() Detent {
	if int(s.height.Target()) > s.cfg.PeekHeight {
		return DetentFull
	}
	return DetentPeek
}

// Resize recomputes the full detent for a window of the given height.
func (s *Sheet) Resize(windowHeight int) {
	wasFull := s.Detent() == DetentFull
	s.full = max(s.cfg.PeekHeight, windowHeight-TopInset)
	if s.dragging {
		return
	}
	if wasFull {
		s.height.Jump(float64(s.full))
	}
	s.OnDragOffsetChanged(int(s.height.Target()) - s.cfg.PeekHeight)
}

// BeginDrag starts a gesture at screen row y.
// A running animation stops where it is.
func (s *Sheet) BeginDrag(y int) {
	s.dragFrom = s.Detent()
	s.height.Jump(float64(s.Height()))
	s.dragging = true
	s.dragMoved = false
	s.dragOriginY = y
	s.dragStartHeight = s.Height()
}

// DragTo follows the pointer to row y. Dragging up grows the sheet.
func (s *Sheet) DragTo(y int) {
	if !s.dragging {
		return
	}
	if y != s.dragOriginY {
		s.dragMoved = true
	}
	h := s.clamp(s.dragStartHeight + (s.dragOriginY - y))
	s.height.Jump(float64(h))
	s.OnDragOffsetChanged(h - s.cfg.PeekHeight)
}

// EndDrag releases the gesture and snaps to the nearest detent. A press
// and release without movement resumes toward the detent the sheet was
// heading to.
func (s *Sheet) EndDrag() {
	if !s.dragging {
		return
	}
	s.dragging = false
	if !s.dragMoved {
		s.settle(s.dragFrom)
		return
	}
	if s.Height()-s.cfg.PeekHeight > (s.full-s.cfg.PeekHeight)/2 {
		s.settle(DetentFull)
	} else {
		s.settle(DetentPeek)
	}
}

// OnDragOffsetChanged applies the threshold rule for an offset measured in
// rows above peek height.
func (s *Sheet) OnDragOffsetChanged(offset int) {
	s.coord.SetHideTabBar(offset > s.cfg.HideThreshold)
}

// Expand animates to the full detent.
func (s *Sheet) Expand() { s.settle(DetentFull) }

// Collapse animates to the peek detent.
func (s *Sheet) Collapse() { s.settle(DetentPeek) }

// Toggle switches between the two detents.
func (s *Sheet) Toggle() {
	if s.Detent() == DetentFull {
		s.Collapse()
		return
	}
	s.Expand()
}

// Step advances the height animation by one frame.
func (s *Sheet) Step() bool { return s.height.Step() }

// Animating reports whether frames are still needed.
func (s *Sheet) Animating() bool { return s.height.Animating() }

func (s *Sheet) settle(d Detent) {
	target := s.cfg.PeekHeight
	if d == DetentFull {
		target = s.full
	}
	s.height.SetTarget(float64(target))
	s.OnDragOffsetChanged(target - s.cfg.PeekHeight)
}

func (s *Sheet) clamp(h int) int {
	return min(max(h, s.cfg.PeekHeight), s.full)
}
