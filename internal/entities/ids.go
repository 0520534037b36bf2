// Package entities implements the core data model: windows, workspaces
// and monitors, cross-referenced by stable integer ids and owned by a
// single Arena rather than by pointer, so that the
// window/workspace/monitor cycle never becomes a Go pointer cycle.
package entities

import "sync/atomic"

// WindowID, WorkspaceID and OutputID are distinct 64-bit identities handed
// out by a monotonic allocator. They are comparable and zero-valued at
// "no such entity", which doubles as the implicit "nil" for optional
// references (Window.Workspace, Workspace.Monitor, …).
type (
	WindowID    uint64
	WorkspaceID uint64
	OutputID    uint64
)

var idCounter uint64

// nextID returns a process-wide unique id. It never returns 0, so the
// zero value of each id type is safely usable as "unset".
func nextID() uint64 {
	return atomic.AddUint64(&idCounter, 1)
}

// NewWindowID allocates a fresh, never-reused window identity.
func NewWindowID() WindowID { return WindowID(nextID()) }

// NewWorkspaceID allocates a fresh, never-reused workspace identity.
func NewWorkspaceID() WorkspaceID { return WorkspaceID(nextID()) }

// NewOutputID allocates a fresh, never-reused monitor identity.
func NewOutputID() OutputID { return OutputID(nextID()) }
