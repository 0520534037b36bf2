// Package gesture implements the pointer-driven move/resize state
// machine: title-bar scroll, drag-to-swap neighbor ordering,
// cross-monitor transfer, and edge-resize. Grounded on
// original_source/src/pointer.rs's handle_motion_event /
// handle_button_event.
package gesture

import (
	"github.com/cascade-wm/cascade/internal/entities"
	"github.com/cascade-wm/cascade/internal/geometry"
	"github.com/cascade-wm/cascade/internal/layout"
	"github.com/cascade-wm/cascade/internal/runtime"
)

// titleBarBandHeight is the cursor-y threshold (in screen coordinates,
// measured from the top of the screen) below which a Move gesture
// scrolls the workspace instead of dragging the window.
const titleBarBandHeight = 100

// Kind tags the state a Machine is in.
type Kind int

const (
	None Kind = iota
	Move
	Resize
)

type moveState struct {
	window    entities.WindowID
	dragPoint geometry.Displacement
	dragging  bool
}

type resizeState struct {
	window          entities.WindowID
	startCursor     geometry.Point
	edges           runtime.Edges
	originalExtents geometry.Rectangle
}

// Machine owns one in-progress move-or-resize gesture at a time.
type Machine struct {
	arena  *entities.Arena
	deps   layout.Dependencies
	kind   Kind
	move   moveState
	resize resizeState
	cursor geometry.Point
}

// NewMachine builds a gesture state machine sharing the same layout
// dependencies (arena, animation engine, surface lookup) the layout
// package uses, so an in-progress gesture and a normal re-layout commit
// to the same runtime surfaces.
func NewMachine(deps layout.Dependencies) *Machine {
	m := &Machine{arena: deps.Arena, deps: deps}
	deps.HeldByGesture = m.HeldByGesture
	m.deps = deps
	return m
}

// State reports the gesture kind currently in progress.
func (m *Machine) State() Kind {
	return m.kind
}

// ActiveWindow returns the window engaged by the in-progress gesture, if
// any, so a caller can finish per-window bookkeeping (e.g. clearing a
// runtime resizing flag) after Release resets internal state.
func (m *Machine) ActiveWindow() (entities.WindowID, bool) {
	switch m.kind {
	case Move:
		return m.move.window, true
	case Resize:
		return m.resize.window, true
	default:
		return 0, false
	}
}

// HeldByGesture reports whether id is the window currently being dragged
// or resized (title-bar scroll does not count: the window tracks the
// scroll like any other tiled window in that sub-mode). Wired into
// layout.Dependencies.HeldByGesture so Arrange skips recommitting a
// window whose position this package is setting directly.
func (m *Machine) HeldByGesture(id entities.WindowID) bool {
	switch m.kind {
	case Move:
		return m.move.window == id && m.move.dragging
	case Resize:
		return m.resize.window == id
	default:
		return false
	}
}

func (m *Machine) zoneOf(ws *entities.Workspace) (geometry.Rectangle, bool) {
	if !ws.HasMonitor() {
		return geometry.Rectangle{}, false
	}
	mon, ok := m.arena.Monitor(ws.Monitor)
	if !ok {
		return geometry.Rectangle{}, false
	}
	return mon.ApplicationZone, true
}

// BeginMove starts a move gesture for window, anchored at cursor.
// Refused (returns false) if a gesture is already in progress.
func (m *Machine) BeginMove(window entities.WindowID, cursor geometry.Point) bool {
	if m.kind != None {
		return false
	}
	win, ok := m.arena.Window(window)
	if !ok {
		return false
	}
	win.Maximized = false
	win.Fullscreen = false

	m.kind = Move
	m.move = moveState{
		window:    window,
		dragPoint: cursor.Sub(win.CurrentPosition.TopLeft),
	}
	m.cursor = cursor
	return true
}

// BeginResize starts a resize gesture for window against the given
// edges, anchored at cursor. Refused if a gesture is already in
// progress.
func (m *Machine) BeginResize(window entities.WindowID, cursor geometry.Point, edges runtime.Edges) bool {
	if m.kind != None {
		return false
	}
	win, ok := m.arena.Window(window)
	if !ok {
		return false
	}

	m.kind = Resize
	m.resize = resizeState{
		window:          window,
		startCursor:     cursor,
		edges:           edges,
		originalExtents: win.CurrentPosition,
	}
	m.cursor = cursor
	return true
}

// FocusFunc is called by PointerMotion while scrolling via the title-bar
// band, mirroring the original's re-focus-on-every-scroll-tick behavior.
type FocusFunc func(entities.WindowID)

// PointerMotion advances the in-progress gesture, if any, and reports
// whether it consumed the event.
func (m *Machine) PointerMotion(event runtime.PointerMotionEvent, focus FocusFunc) bool {
	defer func() { m.cursor = event.Position }()

	switch m.kind {
	case Move:
		return m.motionMove(event, focus)
	case Resize:
		return m.motionResize(event)
	default:
		return false
	}
}

func (m *Machine) motionMove(event runtime.PointerMotionEvent, focus FocusFunc) bool {
	win, ok := m.arena.Window(m.move.window)
	if !ok {
		m.reset()
		return false
	}
	if !win.HasWorkspace() {
		return true
	}
	ws, ok := m.arena.Workspace(win.Workspace)
	if !ok {
		return true
	}

	if event.Position.Y < titleBarBandHeight {
		m.move.dragging = false
		win.Dragging = false

		ws.ScrollLeft -= event.Delta.DX
		if zone, ok := m.zoneOf(ws); ok {
			layout.Arrange(ws, zone, m.deps, false)
		}
		if focus != nil {
			focus(win.ID)
		}
		return true
	}

	m.move.dragging = true
	win.Dragging = true

	windowWidth := win.CurrentPosition.Width()

	if targetWS, ok := m.monitorWorkspaceAt(event.Position); ok && targetWS.ID != ws.ID {
		localX := event.Position.X + targetWS.ScrollLeft
		m.transferToWorkspace(win, ws, targetWS, localX)
		return true
	}

	tiled := layout.Tiled(ws, m.arena)
	index := indexOf(tiled, win.ID)
	if index > 0 {
		left, _ := m.arena.Window(tiled[index-1])
		if event.Position.X < left.CurrentPosition.Left()+left.CurrentPosition.Width()/2+windowWidth/2 {
			ws.MoveWindow(win.ID, entities.Left)
			if zone, ok := m.zoneOf(ws); ok {
				layout.Arrange(ws, zone, m.deps, false)
			}
			return true
		}
	}
	if index >= 0 && index+1 < len(tiled) {
		right, _ := m.arena.Window(tiled[index+1])
		if event.Position.X > right.CurrentPosition.Left()+right.CurrentPosition.Width()/2-windowWidth/2 {
			ws.MoveWindow(win.ID, entities.Right)
			if zone, ok := m.zoneOf(ws); ok {
				layout.Arrange(ws, zone, m.deps, false)
			}
			return true
		}
	}

	target := geometry.Point{
		X: event.Position.X - m.move.dragPoint.DX,
		Y: event.Position.Y - m.move.dragPoint.DY,
	}
	win.CurrentPosition = win.CurrentPosition.WithTopLeft(target)
	if surf := m.deps.Surface(win.ID); surf != nil {
		surf.MoveTo(target)
	}
	return true
}

// monitorWorkspaceAt returns the workspace bound to whichever monitor's
// application zone contains point, if any.
func (m *Machine) monitorWorkspaceAt(point geometry.Point) (*entities.Workspace, bool) {
	for _, mon := range m.arena.Monitors() {
		if !mon.ApplicationZone.Contains(point) || !mon.HasWorkspace() {
			continue
		}
		return m.arena.Workspace(mon.Workspace)
	}
	return nil, false
}

// transferToWorkspace moves win from its current workspace to target,
// inserting at the tiled-order position implied by localX (target's
// workspace-local x, converted from the cursor's screen position).
func (m *Machine) transferToWorkspace(win *entities.Window, from, target *entities.Workspace, localX int) {
	from.RemoveWindow(win.ID)
	win.SetWorkspace(target.ID)
	target.AddWindow(win.ID, entities.InsertPosition{Kind: entities.AtCoordinate, X: localX}, func(id entities.WindowID) int {
		if w, ok := m.arena.Window(id); ok {
			return w.PendingPosition.CenterX()
		}
		return 0
	})

	if zone, ok := m.zoneOf(from); ok {
		layout.Arrange(from, zone, m.deps, false)
	}
	if zone, ok := m.zoneOf(target); ok {
		layout.Arrange(target, zone, m.deps, false)
	}
}

func (m *Machine) motionResize(event runtime.PointerMotionEvent) bool {
	win, ok := m.arena.Window(m.resize.window)
	if !ok {
		m.reset()
		return false
	}

	d := event.Position.Sub(m.resize.startCursor)
	extents := m.resize.originalExtents

	switch {
	case m.resize.edges.Has(runtime.EdgeTop):
		extents.TopLeft.Y += d.DY
		extents.Size.Height -= d.DY
	case m.resize.edges.Has(runtime.EdgeBottom):
		extents.Size.Height += d.DY
	}

	var ws *entities.Workspace
	if win.HasWorkspace() {
		ws, _ = m.arena.Workspace(win.Workspace)
	}

	switch {
	case m.resize.edges.Has(runtime.EdgeLeft):
		extents.TopLeft.X += d.DX
		extents.Size.Width -= d.DX
		if ws != nil {
			ws.ScrollLeft -= d.DX
		}
	case m.resize.edges.Has(runtime.EdgeRight):
		extents.Size.Width += d.DX
	}

	win.CurrentPosition = extents
	win.PendingPosition = win.PendingPosition.WithSize(extents.Size)
	if surf := m.deps.Surface(win.ID); surf != nil {
		surf.SetExtents(extents)
	}

	if ws != nil {
		if zone, ok := m.zoneOf(ws); ok {
			layout.Arrange(ws, zone, m.deps, false)
		}
	}
	return true
}

// Release ends the in-progress gesture, if any, and reports whether it
// consumed the event. Ending a Move snaps the released window back into
// the tiled flow (Resize leaves the last motion-computed extents as
// final, matching the original: no closing re-layout).
func (m *Machine) Release() bool {
	switch m.kind {
	case Move:
		win, ok := m.arena.Window(m.move.window)
		m.reset()
		if !ok {
			return true
		}
		win.Dragging = false
		if win.HasWorkspace() {
			if ws, ok := m.arena.Workspace(win.Workspace); ok {
				if zone, ok := m.zoneOf(ws); ok {
					layout.Arrange(ws, zone, m.deps, false)
				}
			}
		}
		return true
	case Resize:
		m.reset()
		return true
	default:
		return false
	}
}

func (m *Machine) reset() {
	m.kind = None
	m.move = moveState{}
	m.resize = resizeState{}
}

func indexOf(ids []entities.WindowID, id entities.WindowID) int {
	for i, existing := range ids {
		if existing == id {
			return i
		}
	}
	return -1
}
