package trace

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	"tabsheet/internal/sheet"
	"tabsheet/internal/state"
)

// Recorder turns coordinator transitions and sheet settles into spans.
// Each transition is a zero-length span carrying the before/after values.
type Recorder struct {
	tracer    oteltrace.Tracer
	sessionID string
	unsub     func()
}

// NewRecorder creates a recorder emitting through tracer.
func NewRecorder(tracer oteltrace.Tracer, sessionID string) *Recorder {
	return &Recorder{tracer: tracer, sessionID: sessionID}
}

// Attach subscribes to c. A recorder observes at most one coordinator.
func (r *Recorder) Attach(c *state.Coordinator) {
	r.Detach()
	r.unsub = c.Subscribe(r.Observe)
}

// Detach stops observing.
func (r *Recorder) Detach() {
	if r.unsub != nil {
		r.unsub()
		r.unsub = nil
	}
}

// Observe records one coordinator change.
func (r *Recorder) Observe(ch state.Change) {
	switch ch.Kind {
	case state.ChangeActiveTab:
		r.emit(EventTabSelected,
			AttrTabFrom.String(ch.Prev.ActiveTab.String()),
			AttrTabTo.String(ch.Next.ActiveTab.String()),
		)
	case state.ChangeHideTabBar:
		r.emit(EventTabBarToggled,
			AttrHidden.Bool(ch.Next.HideTabBar),
			AttrActiveTab.String(ch.Next.ActiveTab.String()),
		)
	}
}

// SessionStarted records the window opening with its rendering strategy.
func (r *Recorder) SessionStarted(renderer string, snap state.Snapshot) {
	r.emit(EventSessionStarted,
		AttrRenderer.String(renderer),
		AttrActiveTab.String(snap.ActiveTab.String()),
	)
}

// SheetSettled records the sheet coming to rest at d.
func (r *Recorder) SheetSettled(d sheet.Detent) {
	r.emit(EventSheetDetent, AttrDetent.String(d.String()))
}

// DeviceAdded records a device added from the sheet.
func (r *Recorder) DeviceAdded(name string) {
	r.emit(EventDeviceAdded, AttrDevice.String(name))
}

func (r *Recorder) emit(ev EventType, attrs ...attribute.KeyValue) {
	if r == nil || r.tracer == nil {
		return
	}
	attrs = append(attrs, AttrSession.String(r.sessionID))
	_, span := r.tracer.Start(context.Background(), string(ev), oteltrace.WithAttributes(attrs...))
	span.End()
}
