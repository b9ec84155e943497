package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabsheet/internal/tab"
)

func TestNew_Defaults(t *testing.T) {
	c := New()
	assert.Equal(t, tab.Devices, c.ActiveTab())
	assert.False(t, c.HideTabBar())
	assert.Equal(t, Snapshot{ActiveTab: tab.Devices}, c.Snapshot())
}

func TestNew_WithInitialTab(t *testing.T) {
	assert.Equal(t, tab.Me, New(WithInitialTab(tab.Me)).ActiveTab())
	assert.Equal(t, tab.Devices, New(WithInitialTab(tab.Tab("bogus"))).ActiveTab())
}

func TestSetActiveTab_AllTabs(t *testing.T) {
	for _, tb := range tab.All() {
		t.Run(tb.String(), func(t *testing.T) {
			c := New()
			c.SetActiveTab(tb)
			assert.Equal(t, tb, c.ActiveTab())
		})
	}
}

func TestSetActiveTab_IdempotentNotifiesOnce(t *testing.T) {
	c := New()
	var changes []Change
	c.Subscribe(func(ch Change) { changes = append(changes, ch) })

	assert.True(t, c.SetActiveTab(tab.People))
	assert.False(t, c.SetActiveTab(tab.People))

	require.Len(t, changes, 1)
	assert.Equal(t, ChangeActiveTab, changes[0].Kind)
	assert.Equal(t, tab.Devices, changes[0].Prev.ActiveTab)
	assert.Equal(t, tab.People, changes[0].Next.ActiveTab)
	assert.Equal(t, tab.People, c.ActiveTab())
}

func TestSetActiveTab_RejectsUndefined(t *testing.T) {
	c := New()
	notified := false
	c.Subscribe(func(Change) { notified = true })

	assert.False(t, c.SetActiveTab(tab.Tab("settings")))
	assert.Equal(t, tab.Devices, c.ActiveTab())
	assert.False(t, notified)
}

func TestSetHideTabBar_RoundTrip(t *testing.T) {
	c := New()
	before := c.Snapshot()

	assert.True(t, c.SetHideTabBar(true))
	assert.True(t, c.HideTabBar())
	assert.True(t, c.SetHideTabBar(false))

	assert.Equal(t, before, c.Snapshot())
}

func TestSetHideTabBar_SameValueNoNotify(t *testing.T) {
	c := New()
	count := 0
	c.Subscribe(func(Change) { count++ })

	c.SetHideTabBar(false)
	c.SetHideTabBar(true)
	c.SetHideTabBar(true)

	assert.Equal(t, 1, count)
}

func TestAllStatesReachable(t *testing.T) {
	c := New()
	seen := map[Snapshot]bool{}
	for _, tb := range tab.All() {
		for _, hidden := range []bool{false, true} {
			c.SetActiveTab(tb)
			c.SetHideTabBar(hidden)
			seen[c.Snapshot()] = true
		}
	}
	assert.Len(t, seen, 8)
}

func TestSubscribe_OrderAndUnsubscribe(t *testing.T) {
	c := New()
	var order []string
	unsubA := c.Subscribe(func(Change) { order = append(order, "a") })
	c.Subscribe(func(Change) { order = append(order, "b") })
	require.Equal(t, 2, c.Listeners())

	c.SetActiveTab(tab.Items)
	assert.Equal(t, []string{"a", "b"}, order)

	unsubA()
	unsubA()
	assert.Equal(t, 1, c.Listeners())

	order = nil
	c.SetActiveTab(tab.Me)
	assert.Equal(t, []string{"b"}, order)
}

func TestSubscribe_UnsubscribeDuringDelivery(t *testing.T) {
	c := New()
	calls := 0
	var unsub func()
	unsub = c.Subscribe(func(Change) {
		calls++
		unsub()
	})
	other := 0
	c.Subscribe(func(Change) { other++ })

	c.SetHideTabBar(true)
	c.SetHideTabBar(false)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, other)
}

func TestSubscribe_NilListener(t *testing.T) {
	c := New()
	unsub := c.Subscribe(nil)
	unsub()
	assert.Equal(t, 0, c.Listeners())
	c.SetActiveTab(tab.People)
}
