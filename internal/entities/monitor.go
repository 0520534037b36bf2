package entities

import "github.com/cascade-wm/cascade/internal/geometry"

// Monitor is a physical output: a stable identity, the usable
// application zone reported by the runtime, and the workspace currently
// bound to it.
type Monitor struct {
	ID              OutputID
	Name            string
	ApplicationZone geometry.Rectangle

	Workspace    WorkspaceID
	hasWorkspace bool
}

// NewMonitor constructs a Monitor with a freshly allocated id. It starts
// unbound; the caller (policy glue, on output-create) must bind it to a
// workspace before it can be laid out.
func NewMonitor(name string, zone geometry.Rectangle) *Monitor {
	return &Monitor{
		ID:              NewOutputID(),
		Name:            name,
		ApplicationZone: zone,
	}
}

// HasWorkspace reports whether the monitor has a bound workspace.
func (m *Monitor) HasWorkspace() bool {
	return m.hasWorkspace
}

// BindWorkspace binds the monitor to a workspace, replacing any prior
// binding.
func (m *Monitor) BindWorkspace(id WorkspaceID) {
	m.Workspace = id
	m.hasWorkspace = true
}
