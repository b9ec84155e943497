// Package ui renders the tab bar, the content pages and the attached sheet
// with Bubble Tea, all reading one shared *state.Coordinator.
//
// Core abstractions:
//   - View: a screen region with its own model, update, view (Elm-style)
//   - Panel: a bounded region within the window that hosts a View
//   - Layout: arranges the content, sheet and tab bar panels
//   - FocusManager: tracks which panel receives keys
//   - ViewStack: per-tab navigation (push a device detail, pop with Esc)
//   - Overlay: modal views with a dismiss key
//   - Renderer: rich or plain drawing strategy, chosen once at startup
package ui
