// Package runtime defines the ports the core consumes from the external
// compositor runtime: windows, outputs, input events, the focus and
// keyboard APIs, and the lifecycle callback surface. No implementation
// of these interfaces ships in this repository — the compositor
// backend, surface rendering, and input plumbing are explicitly out of
// scope. internal/runtime/fake provides a deterministic in-memory
// implementation, used by the policy tests and the cmd/cascade demo.
package runtime

import (
	"github.com/cascade-wm/cascade/internal/entities"
	"github.com/cascade-wm/cascade/internal/geometry"
)

// Window is the runtime-provided surface handle.
type Window interface {
	ID() entities.WindowID
	Title() string
	Extents() geometry.Rectangle
	BufferExtents() geometry.Rectangle

	CanReceiveFocus() bool
	Maximized() bool
	Fullscreen() bool
	Resizing() bool

	MaxWidth() int
	MaxHeight() int

	MoveTo(point geometry.Point)
	SetExtents(rect geometry.Rectangle)
	SetTranslate(d geometry.Displacement)
	SetMaximized(v bool)
	SetFullscreen(v bool)
	SetResizing(v bool)

	AskClientToClose()
}

// Output is the runtime-provided monitor handle.
type Output interface {
	ID() entities.OutputID
	Name() string
	Extents() geometry.Rectangle
	// SubscribeFrame registers fn to run on every frame tick for this
	// output; returns an unsubscribe function.
	SubscribeFrame(fn func()) (unsubscribe func())
}

// FocusAPI is the runtime's focus surface.
type FocusAPI interface {
	FocusWindow(w Window)
	Blur()
	FocusedWindow() (Window, bool)
	WindowHasFocus(w Window) bool
}

// KeyboardAPI installs keyboard layouts by name.
type KeyboardAPI interface {
	InstallLayout(name string) error
}

// ModifierSet is a bitmask of active key modifiers.
type ModifierSet uint8

const (
	ModAlt ModifierSet = 1 << iota
	ModCtrl
	ModShift
	ModSuper
)

// Has reports whether mod is present in the set.
func (m ModifierSet) Has(mod ModifierSet) bool {
	return m&mod != 0
}

// KeyEvent is a keyboard input event.
type KeyEvent struct {
	Keysym    string
	Modifiers ModifierSet
	Pressed   bool
}

// PointerMotionEvent is an absolute pointer-motion input event, with the
// delta since the previous event.
type PointerMotionEvent struct {
	Position geometry.Point
	Delta    geometry.Displacement
}

// PointerButtonEvent is a pointer button press/release event.
type PointerButtonEvent struct {
	Position geometry.Point
	Pressed  bool
}

// Edges is a bitmask of the window edges a resize gesture affects.
type Edges uint8

const (
	EdgeTop Edges = 1 << iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// Has reports whether edge is present in the set.
func (e Edges) Has(edge Edges) bool {
	return e&edge != 0
}

// Callbacks is the lifecycle callback surface the policy glue implements:
// window-ready, configured, focused, delete, output-create/update/delete,
// request-move/resize, and input dispatch.
type Callbacks interface {
	WindowReady(w Window)
	Configured(w Window)
	Focused(w Window)
	Delete(w Window)

	OutputCreate(o Output)
	OutputUpdate(o Output)
	OutputDelete(o Output)

	RequestMove(w Window)
	RequestResize(w Window, edges Edges)

	HandleKey(event KeyEvent) (consumed bool)
	HandlePointerMotion(event PointerMotionEvent) (consumed bool)
	HandlePointerButton(event PointerButtonEvent) (consumed bool)
}
