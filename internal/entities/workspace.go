package entities

import "github.com/cascade-wm/cascade/internal/mru"

// Direction is a horizontal neighbor direction used by window_by_direction
// and move_window.
type Direction int

const (
	Left Direction = iota
	Right
)

// VerticalDirection is used for workspace-by-direction navigation.
type VerticalDirection int

const (
	Up VerticalDirection = iota
	Down
)

// InsertKind tags how a window is inserted into a workspace's ordered
// sequence.
type InsertKind int

const (
	// AfterActiveWindow inserts immediately after the workspace's MRU
	// top window (or at the start, if the workspace is empty).
	AfterActiveWindow InsertKind = iota
	// AtStart inserts as the leftmost window.
	AtStart
	// AtEnd inserts as the rightmost window.
	AtEnd
	// AtCoordinate inserts per the scan-left-to-right rule relative to a
	// workspace-local x coordinate.
	AtCoordinate
)

// InsertPosition selects where add_window places a new window.
type InsertPosition struct {
	Kind InsertKind
	X    int // only meaningful when Kind == AtCoordinate
}

// Workspace is an ordered sequence of windows plus an MRU overlay over the
// same set, a scroll offset, and an optional monitor binding.
type Workspace struct {
	ID WorkspaceID

	windows     []WindowID
	mruWindows  *mru.List[WindowID]
	ScrollLeft  int

	Monitor      OutputID
	hasMonitor   bool
}

// NewWorkspace constructs an empty, unbound workspace.
func NewWorkspace() *Workspace {
	return &Workspace{
		ID:         NewWorkspaceID(),
		mruWindows: mru.New[WindowID](),
	}
}

// Windows returns the ordered (left-to-right) window sequence.
func (w *Workspace) Windows() []WindowID {
	out := make([]WindowID, len(w.windows))
	copy(out, w.windows)
	return out
}

// Len returns the number of windows on the workspace.
func (w *Workspace) Len() int {
	return len(w.windows)
}

// MRU exposes the workspace-local MRU overlay.
func (w *Workspace) MRU() *mru.List[WindowID] {
	return w.mruWindows
}

// HasMonitor reports whether the workspace is currently bound to a
// monitor.
func (w *Workspace) HasMonitor() bool {
	return w.hasMonitor
}

// BindMonitor binds the workspace to a monitor.
func (w *Workspace) BindMonitor(id OutputID) {
	w.Monitor = id
	w.hasMonitor = true
}

// UnbindMonitor orphans the workspace (it remains in the global set).
func (w *Workspace) UnbindMonitor() {
	w.Monitor = 0
	w.hasMonitor = false
}

// HasWindow reports whether window is a member of the workspace.
func (w *Workspace) HasWindow(window WindowID) bool {
	_, ok := w.indexOf(window)
	return ok
}

func (w *Workspace) indexOf(window WindowID) (int, bool) {
	for i, id := range w.windows {
		if id == window {
			return i, true
		}
	}
	return 0, false
}

// IndexOf returns the ordered-sequence index of window, or -1 if absent.
func (w *Workspace) IndexOf(window WindowID) int {
	if i, ok := w.indexOf(window); ok {
		return i
	}
	return -1
}

// WindowByDirection returns the ordered-sequence neighbor of from, or
// false at the ends.
func (w *Workspace) WindowByDirection(from WindowID, dir Direction) (WindowID, bool) {
	i, ok := w.indexOf(from)
	if !ok {
		return 0, false
	}
	switch dir {
	case Left:
		if i == 0 {
			return 0, false
		}
		return w.windows[i-1], true
	default: // Right
		if i+1 >= len(w.windows) {
			return 0, false
		}
		return w.windows[i+1], true
	}
}

// MoveWindow swaps window with its ordered-sequence neighbor in the given
// direction. It returns false, a silent no-op, if window is already at
// that end.
func (w *Workspace) MoveWindow(window WindowID, dir Direction) bool {
	i, ok := w.indexOf(window)
	if !ok {
		return false
	}
	var j int
	switch dir {
	case Left:
		if i == 0 {
			return false
		}
		j = i - 1
	default:
		j = i + 1
		if j >= len(w.windows) {
			return false
		}
	}
	w.windows[i], w.windows[j] = w.windows[j], w.windows[i]
	return true
}

// PromoteWindow moves window to the top of the workspace's MRU overlay.
func (w *Workspace) PromoteWindow(window WindowID) {
	w.mruWindows.Promote(window)
}

// AddWindow inserts window into the ordered sequence at the position
// described by pos, and pushes it onto the MRU overlay.
//
// centerOf resolves a window's current workspace-local center-x, used only
// for InsertPosition{Kind: AtCoordinate}.
func (w *Workspace) AddWindow(window WindowID, pos InsertPosition, centerOf func(WindowID) int) {
	var index int
	switch pos.Kind {
	case AtStart:
		index = 0
	case AtEnd:
		index = len(w.windows)
	case AtCoordinate:
		index = len(w.windows)
		for i, id := range w.windows {
			if centerOf(id) > pos.X {
				index = i
				break
			}
		}
	default: // AfterActiveWindow
		if top, ok := w.mruWindows.Top(); ok {
			if i, found := w.indexOf(top); found {
				index = i + 1
			}
		}
	}

	w.windows = append(w.windows, 0)
	copy(w.windows[index+1:], w.windows[index:])
	w.windows[index] = window

	w.mruWindows.Push(window)
}

// RemoveWindow deletes window from both the ordered sequence and the MRU
// overlay, preserving the invariant that the two always contain the same
// set.
func (w *Workspace) RemoveWindow(window WindowID) {
	if i, ok := w.indexOf(window); ok {
		w.windows = append(w.windows[:i], w.windows[i+1:]...)
	}
	w.mruWindows.Remove(window)
}
