// Package fake provides a deterministic in-memory implementation of the
// runtime ports (internal/runtime), used across the test suites of
// packages that depend on the Window/Output/FocusAPI/KeyboardAPI
// surface rather than a real compositor backend.
package fake

import (
	"github.com/cascade-wm/cascade/internal/entities"
	"github.com/cascade-wm/cascade/internal/geometry"
	"github.com/cascade-wm/cascade/internal/runtime"
)

// Window is an in-memory runtime.Window. Mutators update the fake's
// state; MoveTo, SetExtents and SetTranslate also record each call so
// tests can assert on it.
type Window struct {
	id    entities.WindowID
	title string

	extents       geometry.Rectangle
	bufferExtents geometry.Rectangle

	canReceiveFocus bool
	maximized       bool
	fullscreen      bool
	resizing        bool

	maxWidth  int
	maxHeight int

	Closed bool

	MoveToCalls      []geometry.Point
	SetExtentsCalls  []geometry.Rectangle
	TranslateCalls   []geometry.Displacement
}

// NewWindow builds a focusable fake window at the given extents.
func NewWindow(title string, extents geometry.Rectangle) *Window {
	return &Window{
		id:              entities.NewWindowID(),
		title:           title,
		extents:         extents,
		bufferExtents:   extents,
		canReceiveFocus: true,
		maxWidth:        1 << 30,
		maxHeight:       1 << 30,
	}
}

func (w *Window) ID() entities.WindowID             { return w.id }
func (w *Window) Title() string                     { return w.title }
func (w *Window) Extents() geometry.Rectangle        { return w.extents }
func (w *Window) BufferExtents() geometry.Rectangle  { return w.bufferExtents }
func (w *Window) CanReceiveFocus() bool              { return w.canReceiveFocus }
func (w *Window) Maximized() bool                    { return w.maximized }
func (w *Window) Fullscreen() bool                   { return w.fullscreen }
func (w *Window) Resizing() bool                     { return w.resizing }
func (w *Window) MaxWidth() int                      { return w.maxWidth }
func (w *Window) MaxHeight() int                     { return w.maxHeight }

func (w *Window) MoveTo(p geometry.Point) {
	w.extents = w.extents.WithTopLeft(p)
	w.MoveToCalls = append(w.MoveToCalls, p)
}

func (w *Window) SetExtents(r geometry.Rectangle) {
	w.extents = r
	w.SetExtentsCalls = append(w.SetExtentsCalls, r)
}

func (w *Window) SetTranslate(d geometry.Displacement) {
	w.TranslateCalls = append(w.TranslateCalls, d)
}

func (w *Window) SetMaximized(v bool)  { w.maximized = v }
func (w *Window) SetFullscreen(v bool) { w.fullscreen = v }
func (w *Window) SetResizing(v bool)   { w.resizing = v }

func (w *Window) AskClientToClose() { w.Closed = true }

// SetCanReceiveFocus lets tests model a client that refuses focus.
func (w *Window) SetCanReceiveFocus(v bool) { w.canReceiveFocus = v }

// Output is an in-memory runtime.Output.
type Output struct {
	id      entities.OutputID
	name    string
	extents geometry.Rectangle

	subscribers []func()
}

// NewOutput builds a fake output covering extents.
func NewOutput(name string, extents geometry.Rectangle) *Output {
	return &Output{id: entities.NewOutputID(), name: name, extents: extents}
}

func (o *Output) ID() entities.OutputID      { return o.id }
func (o *Output) Name() string               { return o.name }
func (o *Output) Extents() geometry.Rectangle { return o.extents }

func (o *Output) SubscribeFrame(fn func()) func() {
	o.subscribers = append(o.subscribers, fn)
	idx := len(o.subscribers) - 1
	return func() { o.subscribers[idx] = nil }
}

// Tick invokes every live frame subscriber, simulating one compositor
// frame tick.
func (o *Output) Tick() {
	for _, fn := range o.subscribers {
		if fn != nil {
			fn()
		}
	}
}

// Focus is an in-memory runtime.FocusAPI.
type Focus struct {
	focused runtime.Window
	has     bool
}

func (f *Focus) FocusWindow(w runtime.Window) { f.focused, f.has = w, true }
func (f *Focus) Blur()                        { f.focused, f.has = nil, false }
func (f *Focus) FocusedWindow() (runtime.Window, bool) {
	return f.focused, f.has
}
func (f *Focus) WindowHasFocus(w runtime.Window) bool {
	return f.has && f.focused != nil && f.focused.ID() == w.ID()
}

// Keyboard is an in-memory runtime.KeyboardAPI recording installed
// layouts in install order.
type Keyboard struct {
	Installed []string
}

func (k *Keyboard) InstallLayout(name string) error {
	k.Installed = append(k.Installed, name)
	return nil
}
