// Package device provides the static device rows shown in the sheet on the
// Devices tab. There is no discovery; rows added at runtime live in memory.
package device

import (
	"errors"
	"strings"
)

// ErrEmptyName is returned when adding a device without a name.
var ErrEmptyName = errors.New("device name is empty")

// Kind selects the icon drawn next to a row.
type Kind string

const (
	KindPhone  Kind = "phone"
	KindTablet Kind = "tablet"
	KindWatch  Kind = "watch"
	KindOther  Kind = "other"
)

// Icon returns the glyph for k. Plain terminals get an ASCII rendition.
func (k Kind) Icon(unicode bool) string {
	if !unicode {
		switch k {
		case KindPhone:
			return "[P]"
		case KindTablet:
			return "[T]"
		case KindWatch:
			return "[W]"
		}
		return "[?]"
	}
	switch k {
	case KindPhone:
		return "📱"
	case KindTablet:
		return "▭"
	case KindWatch:
		return "⌚"
	}
	return "◇"
}

// Device is one row in the devices list.
type Device struct {
	Kind     Kind
	Name     string
	Location string
	Distance string
}

// Mock returns the sample devices.
func Mock() []Device {
	return []Device{
		{Kind: KindPhone, Name: "iJustine's iPhone", Location: "Home", Distance: "0 km"},
		{Kind: KindTablet, Name: "iJustine's iPad", Location: "Home", Distance: "0 km"},
		{Kind: KindWatch, Name: "iJustine's Watch Ultra", Location: "Home", Distance: "0 km"},
	}
}

// Catalog is the in-memory device list for one window.
type Catalog struct {
	devices []Device
}

// NewCatalog returns a catalog seeded with the given devices.
func NewCatalog(seed []Device) *Catalog {
	c := &Catalog{devices: make([]Device, len(seed))}
	copy(c.devices, seed)
	return c
}

// List returns a copy of the devices in display order.
func (c *Catalog) List() []Device {
	out := make([]Device, len(c.devices))
	copy(out, c.devices)
	return out
}

// Len returns the number of devices.
func (c *Catalog) Len() int { return len(c.devices) }

// Add appends a device named name at "Home". The name is trimmed.
func (c *Catalog) Add(name string) (Device, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Device{}, ErrEmptyName
	}
	d := Device{Kind: KindOther, Name: name, Location: "Home", Distance: "0 km"}
	c.devices = append(c.devices, d)
	return d, nil
}
