package ui

import (
	"time"

	"tabsheet/internal/device"
	"tabsheet/internal/tab"
)

// SelectTabMsg selects a tab (1-4, SPC t n, or a click on the tab bar).
type SelectTabMsg struct {
	Tab tab.Tab
}

// CycleTabMsg moves the selection by Delta tabs, wrapping (tab / shift+tab).
type CycleTabMsg struct {
	Delta int
}

// ToggleSheetMsg switches the sheet between peek and full (SPC s).
type ToggleSheetMsg struct{}

// ExpandSheetMsg opens the sheet fully.
type ExpandSheetMsg struct{}

// CollapseSheetMsg returns the sheet to peek height.
type CollapseSheetMsg struct{}

// FocusNextMsg moves keyboard focus between the tab bar and the sheet (f).
type FocusNextMsg struct{}

// ShowAddDeviceMsg triggers the add-device modal ("+" in the sheet header, SPC a).
type ShowAddDeviceMsg struct{}

// AddDeviceMsg is sent when the user confirms the add-device modal.
type AddDeviceMsg struct {
	Name string
}

// OpenDeviceMsg pushes a device detail page on the Devices navigation stack.
type OpenDeviceMsg struct {
	Device device.Device
}

// DismissModalMsg is sent when user cancels a modal (Esc).
type DismissModalMsg struct{}

// frameMsg advances running animations by one frame.
type frameMsg time.Time
