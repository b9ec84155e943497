package trace

import (
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// EventType identifies the kind of UI transition recorded as a span.
type EventType string

const (
	EventTabSelected    EventType = "tab.select"        // Active tab changed
	EventTabBarToggled  EventType = "tabbar.visibility" // Tab bar hidden or shown
	EventSheetDetent    EventType = "sheet.detent"      // Sheet settled at peek or full
	EventDeviceAdded    EventType = "device.add"        // Mock device added from the sheet
	EventSessionStarted EventType = "session.start"     // Window opened
)

// Attribute keys, all under the tabsheet.* namespace.
const (
	AttrSession   = attribute.Key("tabsheet.session.id")
	AttrTabFrom   = attribute.Key("tabsheet.tab.from")
	AttrTabTo     = attribute.Key("tabsheet.tab.to")
	AttrHidden    = attribute.Key("tabsheet.tabbar.hidden")
	AttrDetent    = attribute.Key("tabsheet.sheet.detent")
	AttrDevice    = attribute.Key("tabsheet.device.name")
	AttrRenderer  = attribute.Key("tabsheet.renderer")
	AttrActiveTab = attribute.Key("tabsheet.tab.active")
)

// NewSessionID returns a random identifier for one window's lifetime.
func NewSessionID() string {
	return uuid.NewString()
}
