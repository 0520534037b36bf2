package entities

import "github.com/cascade-wm/cascade/internal/geometry"

// Arena owns every Window, Workspace and Monitor by id, plus the
// canonical output→workspace binding. Nothing outside Arena holds a Go
// pointer across turns; everywhere else, entities reference each other by
// id and resolve through Arena. This is the "arena + stable identifier"
// scheme in place of the original's Rc/RefCell cycles.
type Arena struct {
	windows    map[WindowID]*Window
	workspaces map[WorkspaceID]*Workspace
	monitors   map[OutputID]*Monitor

	// outputToWorkspace is the single source of truth for which
	// workspace is visible on which monitor.
	outputToWorkspace map[OutputID]WorkspaceID
}

// NewArena returns an empty Arena.
func NewArena() *Arena {
	return &Arena{
		windows:           make(map[WindowID]*Window),
		workspaces:        make(map[WorkspaceID]*Workspace),
		monitors:          make(map[OutputID]*Monitor),
		outputToWorkspace: make(map[OutputID]WorkspaceID),
	}
}

// CreateWindow allocates and registers a new Window.
func (a *Arena) CreateWindow(title string) *Window {
	w := NewWindow(title)
	a.windows[w.ID] = w
	return w
}

// CreateWorkspace allocates and registers a new, unbound Workspace.
func (a *Arena) CreateWorkspace() *Workspace {
	ws := NewWorkspace()
	a.workspaces[ws.ID] = ws
	return ws
}

// CreateMonitor allocates and registers a new, unbound Monitor.
func (a *Arena) CreateMonitor(name string, zone geometry.Rectangle) *Monitor {
	m := NewMonitor(name, zone)
	a.monitors[m.ID] = m
	return m
}

// Window looks up a window by id.
func (a *Arena) Window(id WindowID) (*Window, bool) {
	w, ok := a.windows[id]
	return w, ok
}

// Workspace looks up a workspace by id.
func (a *Arena) Workspace(id WorkspaceID) (*Workspace, bool) {
	ws, ok := a.workspaces[id]
	return ws, ok
}

// Monitor looks up a monitor by id.
func (a *Arena) Monitor(id OutputID) (*Monitor, bool) {
	m, ok := a.monitors[id]
	return m, ok
}

// DeleteWindow removes a window from the arena entirely. Callers must
// first remove it from any workspace (delete(W)).
func (a *Arena) DeleteWindow(id WindowID) {
	delete(a.windows, id)
}

// DeleteMonitor removes a monitor from the arena. Its bound workspace (if
// any) is orphaned — it becomes unbound and remains in the workspace set,
// per Monitor lifecycle.
func (a *Arena) DeleteMonitor(id OutputID) {
	if wsID, ok := a.outputToWorkspace[id]; ok {
		if ws, ok := a.workspaces[wsID]; ok {
			ws.UnbindMonitor()
		}
		delete(a.outputToWorkspace, id)
	}
	delete(a.monitors, id)
}

// BindOutputWorkspace binds workspace to output, replacing any previous
// binding on either side: the workspace previously bound to output (if
// any) becomes unbound, and workspace's previous monitor (if any) has its
// binding cleared from the canonical map.
func (a *Arena) BindOutputWorkspace(output OutputID, workspace WorkspaceID) {
	monitor, ok := a.monitors[output]
	if !ok {
		return
	}

	if prevWSID, had := a.outputToWorkspace[output]; had && prevWSID != workspace {
		if prevWS, ok := a.workspaces[prevWSID]; ok {
			prevWS.UnbindMonitor()
		}
	}

	if ws, ok := a.workspaces[workspace]; ok {
		if ws.HasMonitor() && ws.Monitor != output {
			delete(a.outputToWorkspace, ws.Monitor)
			if prevMon, ok := a.monitors[ws.Monitor]; ok {
				prevMon.Workspace = 0
				prevMon.hasWorkspace = false
			}
		}
		ws.BindMonitor(output)
	}
	monitor.BindWorkspace(workspace)
	a.outputToWorkspace[output] = workspace
}

// WorkspaceForOutput returns the workspace currently bound to output, via
// the canonical mapping.
func (a *Arena) WorkspaceForOutput(output OutputID) (WorkspaceID, bool) {
	id, ok := a.outputToWorkspace[output]
	return id, ok
}

// UnboundWorkspaces returns every workspace not bound to any monitor.
// Iteration order is arbitrary; callers that need a stable order should
// consult mru_workspaces instead.
func (a *Arena) UnboundWorkspaces() []*Workspace {
	var out []*Workspace
	for _, ws := range a.workspaces {
		if !ws.HasMonitor() {
			out = append(out, ws)
		}
	}
	return out
}

// Monitors returns every registered monitor. Iteration order is
// arbitrary.
func (a *Arena) Monitors() []*Monitor {
	out := make([]*Monitor, 0, len(a.monitors))
	for _, m := range a.monitors {
		out = append(out, m)
	}
	return out
}

// Workspaces returns every registered workspace, bound or not. Iteration
// order is arbitrary.
func (a *Arena) Workspaces() []*Workspace {
	out := make([]*Workspace, 0, len(a.workspaces))
	for _, ws := range a.workspaces {
		out = append(out, ws)
	}
	return out
}
