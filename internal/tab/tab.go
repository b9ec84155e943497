// Package tab defines the fixed set of navigation destinations shown in the tab bar.
package tab

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by Parse for an identifier that names no tab.
var ErrNotFound = errors.New("tab not found")

// Tab is a navigation destination. The value is its stable identifier.
type Tab string

const (
	People  Tab = "people"
	Devices Tab = "devices"
	Items   Tab = "items"
	Me      Tab = "me"
)

// Default is the tab selected when a window opens.
const Default = Devices

var ordered = []Tab{People, Devices, Items, Me}

// All returns the tabs in display order.
func All() []Tab {
	out := make([]Tab, len(ordered))
	copy(out, ordered)
	return out
}

// Parse resolves an identifier (case-insensitive) or a 1-based position ("1".."4").
func Parse(s string) (Tab, error) {
	id := strings.ToLower(strings.TrimSpace(s))
	for i, t := range ordered {
		if id == string(t) || id == fmt.Sprint(i+1) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrNotFound, s)
}

// Valid reports whether t is one of the defined tabs.
func (t Tab) Valid() bool {
	return t.Index() >= 0
}

// Index returns the display position of t, or -1 if t is not defined.
func (t Tab) Index() int {
	for i, o := range ordered {
		if o == t {
			return i
		}
	}
	return -1
}

// Next returns the tab after t, wrapping around.
func (t Tab) Next() Tab {
	return ordered[(t.Index()+1+len(ordered))%len(ordered)]
}

// Prev returns the tab before t, wrapping around.
func (t Tab) Prev() Tab {
	i := t.Index()
	if i < 0 {
		i = 0
	}
	return ordered[(i-1+len(ordered))%len(ordered)]
}

// Title is the display name shown under the icon and in the sheet header.
func (t Tab) Title() string {
	switch t {
	case People:
		return "People"
	case Devices:
		return "Devices"
	case Items:
		return "Items"
	case Me:
		return "Me"
	default:
		return "Unknown"
	}
}

// Icon returns the tab's glyph. Plain terminals get an ASCII rendition.
func (t Tab) Icon(unicode bool) string {
	if !unicode {
		switch t {
		case People:
			return "o/"
		case Devices:
			return "[]"
		case Items:
			return "::"
		case Me:
			return "(@)"
		}
		return "?"
	}
	switch t {
	case People:
		return "👥"
	case Devices:
		return "💻"
	case Items:
		return "▦"
	case Me:
		return "◉"
	}
	return "?"
}

func (t Tab) String() string {
	return string(t)
}
