package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tabsheet/internal/tab"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	reg.Bind("SPC q", tea.Quit)
	reg.Bind("j", nil)

	if reg.Lookup("q") == nil {
		t.Error("expected q to be bound")
	}
	if reg.Lookup("space q") == nil {
		t.Error("expected space q to normalize to SPC q")
	}
	if reg.Lookup("unknown") != nil {
		t.Error("expected unknown to be unbound")
	}
}

func TestKeybindRegistry_BindOnTabs(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindOnTabs("SPC a", tea.Quit, "Add device", []tab.Tab{tab.Devices})

	if reg.LookupOn("SPC a", tab.Devices) == nil {
		t.Error("expected SPC a on Devices")
	}
	if reg.LookupOn("SPC a", tab.People) != nil {
		t.Error("SPC a should not apply on People")
	}
	if reg.Lookup("SPC a") == nil {
		t.Error("Lookup ignores the tab filter")
	}
}

func TestKeybindRegistry_LeaderHints(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("SPC t 1", tea.Quit, "People")
	reg.BindWithDesc("SPC t 2", tea.Quit, "Devices")
	reg.BindWithDesc("SPC s", tea.Quit, "Toggle sheet")
	reg.BindOnTabs("SPC a", tea.Quit, "Add device", []tab.Tab{tab.Devices})

	hints := reg.LeaderHints("", tab.People)
	if hints["t"] != "Tab" {
		t.Errorf("t hint = %q, want Tab", hints["t"])
	}
	if hints["s"] != "Toggle sheet" {
		t.Errorf("s hint = %q", hints["s"])
	}
	if _, ok := hints["a"]; ok {
		t.Error("a should be hidden off Devices")
	}
	if _, ok := reg.LeaderHints("", tab.Devices)["a"]; !ok {
		t.Error("a should be listed on Devices")
	}

	sub := reg.LeaderHints("SPC t", tab.People)
	if sub["1"] != "People" || sub["2"] != "Devices" {
		t.Errorf("SPC t hints = %v", sub)
	}
}

func TestKeyHandler_LeaderKey(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("SPC x", func() tea.Msg {
		executed = true
		return nil
	})
	h := NewKeyHandler(reg)

	// Press space -> leader waiting (Bubble Tea reports space as " ")
	consumed, cmd := h.Handle(keyMsg(" "), tab.Devices)
	if !consumed || cmd != nil {
		t.Errorf("space: consumed=%v cmd=%v", consumed, cmd)
	}
	if !h.LeaderWaiting {
		t.Error("expected leader waiting after space")
	}

	consumed, cmd = h.Handle(keyMsg("x"), tab.Devices)
	if !consumed {
		t.Errorf("x: expected consumed")
	}
	if h.LeaderWaiting {
		t.Error("leader should not be waiting after completing sequence")
	}
	if cmd == nil {
		t.Fatal("expected command for SPC x")
	}
	cmd()
	if !executed {
		t.Error("expected command to execute")
	}
}

func TestKeyHandler_NestedSequence(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC t 1", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "), tab.Devices)
	consumed, cmd := h.Handle(keyMsg("t"), tab.Devices)
	if !consumed || cmd != nil {
		t.Errorf("t: consumed=%v cmd=%v", consumed, cmd)
	}
	if got := h.CurrentSeq(); got != "SPC t" {
		t.Errorf("CurrentSeq = %q, want SPC t", got)
	}
	_, cmd = h.Handle(keyMsg("1"), tab.Devices)
	if cmd == nil {
		t.Error("expected SPC t 1 to resolve")
	}
	if h.LeaderWaiting {
		t.Error("leader should reset after a full sequence")
	}
}

func TestKeyHandler_EscCancelsLeader(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "), tab.Devices)
	if !h.LeaderWaiting {
		t.Fatal("expected leader waiting")
	}

	consumed, cmd := h.Handle(keyMsg("esc"), tab.Devices)
	if !consumed || cmd != nil {
		t.Errorf("esc: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("esc should cancel leader mode")
	}
}

func TestKeyHandler_UnknownLeaderSequenceResets(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "), tab.Devices)
	consumed, cmd := h.Handle(keyMsg("z"), tab.Devices)
	if !consumed || cmd != nil {
		t.Errorf("z: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("unknown sequence should leave leader mode")
	}
}

func TestKeyHandler_SingleKey(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg("q"), tab.Devices)
	if !consumed || cmd == nil {
		t.Errorf("q: consumed=%v cmd=%v", consumed, cmd)
	}
}

func TestKeyHandler_TabFilteredKeyFallsThrough(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindOnTabs("+", tea.Quit, "", []tab.Tab{tab.Devices})
	h := NewKeyHandler(reg)

	if consumed, _ := h.Handle(keyMsg("+"), tab.Me); consumed {
		t.Error("+ should not be consumed on Me")
	}
	if consumed, _ := h.Handle(keyMsg("+"), tab.Devices); !consumed {
		t.Error("+ should be consumed on Devices")
	}
}

func TestKeyHandler_UnboundFallsThrough(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, _ := h.Handle(keyMsg("j"), tab.Devices)
	if consumed {
		t.Error("unbound j should not be consumed")
	}
}

func TestKeyMap_ShortHelpFiltersByTab(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("SPC s", tea.Quit, "Toggle sheet")
	reg.BindOnTabs("SPC a", tea.Quit, "Add device", []tab.Tab{tab.Devices})
	h := NewKeyHandler(reg)
	h.Handle(keyMsg(" "), tab.Items)

	for _, b := range NewKeyMap(h, tab.Items).ShortHelp() {
		if b.Help().Key == "a" {
			t.Error("a should not be offered on Items")
		}
	}
}

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
// KeySpace.String() returns " ", KeyEsc returns "esc", etc.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
