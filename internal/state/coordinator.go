// Package state holds the coordinator shared by the tab bar, the content pages
// and the sheet. It is the single source of truth for which tab is active and
// whether the tab bar is tucked away.
//
// A Coordinator is owned by one window and is mutated from the Bubble Tea
// Update goroutine only; it does no locking.
package state

import "tabsheet/internal/tab"

// ChangeKind identifies which field a Change touched.
type ChangeKind string

const (
	ChangeActiveTab  ChangeKind = "active_tab"
	ChangeHideTabBar ChangeKind = "hide_tab_bar"
)

// Snapshot is a copy of the coordinator's fields at one point in time.
type Snapshot struct {
	ActiveTab  tab.Tab
	HideTabBar bool
}

// Change is delivered to listeners after a transition.
type Change struct {
	Kind ChangeKind
	Prev Snapshot
	Next Snapshot
}

// Listener observes transitions.
type Listener func(Change)

type subscription struct {
	id int
	fn Listener
}

// Coordinator synchronizes tab selection and tab-bar visibility.
type Coordinator struct {
	activeTab  tab.Tab
	hideTabBar bool

	subs   []subscription
	nextID int
}

// Option configures a Coordinator at construction.
type Option func(*Coordinator)

// WithInitialTab overrides the default tab. Undefined tabs are ignored.
func WithInitialTab(t tab.Tab) Option {
	return func(c *Coordinator) {
		if t.Valid() {
			c.activeTab = t
		}
	}
}

// New creates a coordinator with Devices active and the tab bar visible.
func New(opts ...Option) *Coordinator {
	c := &Coordinator{activeTab: tab.Default}
	for _, o := range opts {
		o(c)
	}
	return c
}

// ActiveTab returns the selected tab.
func (c *Coordinator) ActiveTab() tab.Tab {
	return c.activeTab
}

// HideTabBar reports whether the tab bar is moved off-screen.
func (c *Coordinator) HideTabBar() bool {
	return c.hideTabBar
}

// Snapshot returns the current state.
func (c *Coordinator) Snapshot() Snapshot {
	return Snapshot{ActiveTab: c.activeTab, HideTabBar: c.hideTabBar}
}

// SetActiveTab selects t and notifies listeners.
// Returns false, without notifying, when t is already active or is not a defined tab.
func (c *Coordinator) SetActiveTab(t tab.Tab) bool {
	if !t.Valid() || t == c.activeTab {
		return false
	}
	prev := c.Snapshot()
	c.activeTab = t
	c.notify(ChangeActiveTab, prev)
	return true
}

// SetHideTabBar sets the tab bar visibility flag and notifies listeners.
// Returns false when the flag already has that value.
func (c *Coordinator) SetHideTabBar(hidden bool) bool {
	if hidden == c.hideTabBar {
		return false
	}
	prev := c.Snapshot()
	c.hideTabBar = hidden
	c.notify(ChangeHideTabBar, prev)
	return true
}

// Subscribe registers fn for every future transition, in subscription order.
// The returned func removes the listener; calling it more than once is harmless.
func (c *Coordinator) Subscribe(fn Listener) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	id := c.nextID
	c.nextID++
	c.subs = append(c.subs, subscription{id: id, fn: fn})
	return func() {
		for i, s := range c.subs {
			if s.id == id {
				c.subs = append(c.subs[:i:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

// Listeners returns the number of registered listeners.
func (c *Coordinator) Listeners() int {
	return len(c.subs)
}

func (c *Coordinator) notify(kind ChangeKind, prev Snapshot) {
	ch := Change{Kind: kind, Prev: prev, Next: c.Snapshot()}
	// Copy so a listener may unsubscribe itself during delivery.
	subs := make([]subscription, len(c.subs))
	copy(subs, c.subs)
	for _, s := range subs {
		s.fn(ch)
	}
}
