package entities

import "github.com/cascade-wm/cascade/internal/geometry"

// AnimationPhase tags whether a window is at rest or mid-flight toward a
// target point.
type AnimationPhase int

const (
	// Still means the window is not animating.
	Still AnimationPhase = iota
	// Animating means the window has an in-flight position animation.
	Animating
)

// AnimationStatus is the window's Still|Animating(target) tagged variant.
type AnimationStatus struct {
	Phase  AnimationPhase
	Target geometry.Point
}

// ulauncherBlocklistTitle is the hard-coded title excluded from the
// tiled set. Whether this should become configurable is an open
// question; until then it stays hard-coded, matching the behavior
// observed in the original sources.
const ulauncherBlocklistTitle = "ulauncher"

// Window is a handle onto a compositor-managed surface.
type Window struct {
	ID    WindowID
	Title string

	Workspace    WorkspaceID
	hasWorkspace bool

	// PendingPosition is a rectangle in workspace-local coordinates
	// awaiting commit to the runtime; CurrentPosition is the last
	// committed rectangle.
	PendingPosition geometry.Rectangle
	CurrentPosition geometry.Rectangle

	Dragging bool
	Status   AnimationStatus

	CanReceiveFocus bool
	Fullscreen      bool
	Maximized       bool
	Resizing        bool
	Transient       bool // is a transient child of another window

	MaxWidth  int
	MaxHeight int
}

// NewWindow constructs a Window with a freshly allocated id.
func NewWindow(title string) *Window {
	return &Window{
		ID:              NewWindowID(),
		Title:           title,
		CanReceiveFocus: true,
		MaxWidth:        1 << 30,
		MaxHeight:       1 << 30,
	}
}

// HasWorkspace reports whether the window currently belongs to a
// workspace.
func (w *Window) HasWorkspace() bool {
	return w.hasWorkspace
}

// SetWorkspace binds the window to a workspace.
func (w *Window) SetWorkspace(id WorkspaceID) {
	w.Workspace = id
	w.hasWorkspace = true
}

// ClearWorkspace unbinds the window from any workspace.
func (w *Window) ClearWorkspace() {
	w.Workspace = 0
	w.hasWorkspace = false
}

// Focusable reports whether the window can become focused: the runtime
// says it accepts focus, it is not fullscreen, not a transient child,
// and its title isn't blocklisted.
func (w *Window) Focusable() bool {
	if !w.CanReceiveFocus || w.Fullscreen || w.Transient {
		return false
	}
	return w.Title != ulauncherBlocklistTitle
}
