// Package focus implements the MRU-driven focus and workspace-activation
// model: which window is focused, which workspace is active, and how
// they drive the output→workspace binding.
package focus

import (
	"github.com/cascade-wm/cascade/internal/entities"
	"github.com/cascade-wm/cascade/internal/mru"
)

// EntryKind is how a newly-focused workspace picks which of its windows
// to focus ("Window-for-entry into a newly focused workspace").
type EntryKind int

const (
	ActiveWindow EntryKind = iota
	EntryStart
	EntryEnd
	EntryCoordinate
)

// Entry selects which window to focus when entering a workspace.
type Entry struct {
	Kind EntryKind
	X    int // only meaningful when Kind == EntryCoordinate
}

// RuntimeFocus is the subset of the Focus API the model drives.
type RuntimeFocus interface {
	FocusWindow(id entities.WindowID)
	Blur()
}

// Model owns the global MRU state and implements focus-window,
// focus-workspace, and the directional workspace/monitor lookups.
type Model struct {
	Arena         *entities.Arena
	MRUWindows    *mru.List[entities.WindowID]
	MRUWorkspaces *mru.List[entities.WorkspaceID]
	Runtime       RuntimeFocus
}

// NewModel constructs an empty focus model over arena.
func NewModel(arena *entities.Arena, runtime RuntimeFocus) *Model {
	return &Model{
		Arena:         arena,
		MRUWindows:    mru.New[entities.WindowID](),
		MRUWorkspaces: mru.New[entities.WorkspaceID](),
		Runtime:       runtime,
	}
}

// workspaceOf resolves the workspace containing window w, if any.
func (m *Model) workspaceOf(w entities.WindowID) (*entities.Workspace, bool) {
	win, ok := m.Arena.Window(w)
	if !ok || !win.HasWorkspace() {
		return nil, false
	}
	return m.Arena.Workspace(win.Workspace)
}

// FocusWindow implements "Focus a window W":
//  1. promote W in mru_windows
//  2. find W's workspace, promote W in its MRU, promote that workspace
//  3. if the workspace is unbound, rebind it to the monitor currently
//     holding the previously-focused workspace
//  4. instruct the runtime to focus W
//  5. re-layout is left to the caller (policy glue), which has the
//     zone/engine dependencies this package does not own.
func (m *Model) FocusWindow(w entities.WindowID) {
	prevWorkspace, hadPrev := m.MRUWorkspaces.Top()

	m.MRUWindows.Promote(w)

	ws, ok := m.workspaceOf(w)
	if !ok {
		m.Runtime.FocusWindow(w)
		return
	}

	ws.PromoteWindow(w)
	m.MRUWorkspaces.Promote(ws.ID)

	if !ws.HasMonitor() && hadPrev {
		if prevWS, ok := m.Arena.Workspace(prevWorkspace); ok && prevWS.HasMonitor() {
			m.Arena.BindOutputWorkspace(prevWS.Monitor, ws.ID)
		}
	}

	m.Runtime.FocusWindow(w)
}

// FocusWorkspace implements "Focus a workspace WS": same as
// FocusWindow, but focuses WS's MRU-top window, or clears focus if WS is
// empty.
func (m *Model) FocusWorkspace(ws entities.WorkspaceID) {
	workspace, ok := m.Arena.Workspace(ws)
	if !ok {
		return
	}
	if top, ok := workspace.MRU().Top(); ok {
		m.FocusWindow(top)
		return
	}

	prevWorkspace, hadPrev := m.MRUWorkspaces.Top()
	m.MRUWorkspaces.Promote(ws)

	if !workspace.HasMonitor() && hadPrev {
		if prevWS, ok := m.Arena.Workspace(prevWorkspace); ok && prevWS.HasMonitor() {
			m.Arena.BindOutputWorkspace(prevWS.Monitor, workspace.ID)
		}
	}

	m.Runtime.Blur()
}

// WorkspaceByDirection implements "Workspace by vertical
// direction": from the active workspace, consider the subsequence of
// mru_workspaces containing the active one and every unbound workspace,
// in MRU order, and step by one position.
func (m *Model) WorkspaceByDirection(active entities.WorkspaceID, dir entities.VerticalDirection) (entities.WorkspaceID, bool) {
	candidates := m.MRUWorkspaces.Iter() // most-recent-first
	var subsequence []entities.WorkspaceID
	activeIndex := -1
	for _, id := range candidates {
		ws, ok := m.Arena.Workspace(id)
		if !ok {
			continue
		}
		if id == active || !ws.HasMonitor() {
			if id == active {
				activeIndex = len(subsequence)
			}
			subsequence = append(subsequence, id)
		}
	}
	if activeIndex == -1 {
		return 0, false
	}

	var target int
	switch dir {
	case entities.Up:
		target = activeIndex - 1
	default:
		target = activeIndex + 1
	}
	if target < 0 || target >= len(subsequence) {
		return 0, false
	}
	return subsequence[target], true
}

// MonitorByDirection implements "Monitor by horizontal
// direction": bound monitors sorted by zone-left ascending, stepped from
// the active workspace's monitor.
func (m *Model) MonitorByDirection(active entities.WorkspaceID, dir HorizontalDirection) (entities.OutputID, bool) {
	ws, ok := m.Arena.Workspace(active)
	if !ok || !ws.HasMonitor() {
		return 0, false
	}

	monitors := m.Arena.Monitors()
	sortMonitorsByLeft(monitors)

	index := -1
	for i, mon := range monitors {
		if mon.ID == ws.Monitor {
			index = i
			break
		}
	}
	if index == -1 {
		return 0, false
	}

	var target int
	switch dir {
	case HorizontalLeft:
		target = index - 1
	default:
		target = index + 1
	}
	if target < 0 || target >= len(monitors) {
		return 0, false
	}
	return monitors[target].ID, true
}

// HorizontalDirection selects Left/Right for MonitorByDirection.
type HorizontalDirection int

const (
	HorizontalLeft HorizontalDirection = iota
	HorizontalRight
)

func sortMonitorsByLeft(monitors []*entities.Monitor) {
	for i := 1; i < len(monitors); i++ {
		for j := i; j > 0 && monitors[j].ApplicationZone.Left() < monitors[j-1].ApplicationZone.Left(); j-- {
			monitors[j], monitors[j-1] = monitors[j-1], monitors[j]
		}
	}
}

// ResolveEntry picks which window, if any, to focus when entering ws per
// an Entry policy. centerOf resolves a window's current workspace-local
// center-x, used only for EntryCoordinate (same scan rule as
// entities.AtCoordinate).
func ResolveEntry(ws *entities.Workspace, entry Entry, centerOf func(entities.WindowID) int) (entities.WindowID, bool) {
	windows := ws.Windows()
	switch entry.Kind {
	case EntryStart:
		if len(windows) == 0 {
			return 0, false
		}
		return windows[0], true
	case EntryEnd:
		if len(windows) == 0 {
			return 0, false
		}
		return windows[len(windows)-1], true
	case EntryCoordinate:
		if len(windows) == 0 {
			return 0, false
		}
		for _, id := range windows {
			if centerOf(id) > entry.X {
				return id, true
			}
		}
		return windows[len(windows)-1], true
	default: // ActiveWindow
		return ws.MRU().Top()
	}
}
