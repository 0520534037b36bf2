package entities_test

import (
	"testing"

	"github.com/cascade-wm/cascade/internal/entities"
	"github.com/cascade-wm/cascade/internal/geometry"
)

func TestWorkspaceInvariantWindowsMatchMRU(t *testing.T) {
	ws := entities.NewWorkspace()
	a := entities.WindowID(1)
	b := entities.WindowID(2)
	c := entities.WindowID(3)

	ws.AddWindow(a, entities.InsertPosition{Kind: entities.AtEnd}, nil)
	ws.AddWindow(b, entities.InsertPosition{Kind: entities.AtEnd}, nil)
	ws.AddWindow(c, entities.InsertPosition{Kind: entities.AtEnd}, nil)

	if ws.Len() != ws.MRU().Len() {
		t.Fatalf("windows len %d != mru len %d", ws.Len(), ws.MRU().Len())
	}

	ws.RemoveWindow(b)
	if ws.Len() != ws.MRU().Len() {
		t.Fatalf("after remove: windows len %d != mru len %d", ws.Len(), ws.MRU().Len())
	}
	if ws.HasWindow(b) {
		t.Fatal("removed window still present")
	}
}

func TestWorkspaceWindowByDirectionEnds(t *testing.T) {
	ws := entities.NewWorkspace()
	a, b, c := entities.WindowID(1), entities.WindowID(2), entities.WindowID(3)
	ws.AddWindow(a, entities.InsertPosition{Kind: entities.AtEnd}, nil)
	ws.AddWindow(b, entities.InsertPosition{Kind: entities.AtEnd}, nil)
	ws.AddWindow(c, entities.InsertPosition{Kind: entities.AtEnd}, nil)

	if _, ok := ws.WindowByDirection(a, entities.Left); ok {
		t.Fatal("expected no left neighbor of first window")
	}
	if _, ok := ws.WindowByDirection(c, entities.Right); ok {
		t.Fatal("expected no right neighbor of last window")
	}
	if got, ok := ws.WindowByDirection(b, entities.Left); !ok || got != a {
		t.Fatalf("left of b = %v, %v", got, ok)
	}
}

func TestWorkspaceMoveWindowEndsFail(t *testing.T) {
	ws := entities.NewWorkspace()
	a, b := entities.WindowID(1), entities.WindowID(2)
	ws.AddWindow(a, entities.InsertPosition{Kind: entities.AtEnd}, nil)
	ws.AddWindow(b, entities.InsertPosition{Kind: entities.AtEnd}, nil)

	if ws.MoveWindow(a, entities.Left) {
		t.Fatal("expected move-left of leftmost window to fail")
	}
	if !ws.MoveWindow(a, entities.Right) {
		t.Fatal("expected move-right of leftmost window to succeed")
	}
	if got := ws.Windows(); got[0] != b || got[1] != a {
		t.Fatalf("unexpected order after swap: %v", got)
	}
}

func TestWorkspaceAddAtCoordinate(t *testing.T) {
	ws := entities.NewWorkspace()
	centers := map[entities.WindowID]int{
		1: 200, // window at [0,400), center 200
		2: 700, // window at [400,1000), center 700
	}
	ws.AddWindow(1, entities.InsertPosition{Kind: entities.AtEnd}, nil)
	ws.AddWindow(2, entities.InsertPosition{Kind: entities.AtEnd}, nil)

	centerOf := func(id entities.WindowID) int { return centers[id] }

	// Insert at x=500: first window whose center > 500 is window 2, so
	// new window goes before it -> [1, new, 2].
	ws.AddWindow(3, entities.InsertPosition{Kind: entities.AtCoordinate, X: 500}, centerOf)
	if got := ws.Windows(); !(got[0] == 1 && got[1] == 3 && got[2] == 2) {
		t.Fatalf("unexpected order: %v", got)
	}
}

func TestArenaMonitorDeleteOrphansWorkspace(t *testing.T) {
	a := entities.NewArena()
	ws := a.CreateWorkspace()
	mon := a.CreateMonitor("eDP-1", geometry.NewRectangle(geometry.Point{}, geometry.Size{Width: 1000, Height: 800}))

	a.BindOutputWorkspace(mon.ID, ws.ID)
	if !ws.HasMonitor() {
		t.Fatal("expected workspace bound after BindOutputWorkspace")
	}

	a.DeleteMonitor(mon.ID)
	if ws.HasMonitor() {
		t.Fatal("expected workspace to be orphaned after monitor deletion")
	}
	if _, ok := a.Monitor(mon.ID); ok {
		t.Fatal("expected monitor removed from arena")
	}
	if _, ok := a.Workspace(ws.ID); !ok {
		t.Fatal("workspace must remain in the global set after orphaning")
	}
}

func TestArenaBindOutputWorkspaceReplacesPriorBinding(t *testing.T) {
	a := entities.NewArena()
	ws1 := a.CreateWorkspace()
	ws2 := a.CreateWorkspace()
	mon := a.CreateMonitor("eDP-1", geometry.NewRectangle(geometry.Point{}, geometry.Size{Width: 1000, Height: 800}))

	a.BindOutputWorkspace(mon.ID, ws1.ID)
	a.BindOutputWorkspace(mon.ID, ws2.ID)

	if ws1.HasMonitor() {
		t.Fatal("ws1 should have been unbound when ws2 was bound to the same monitor")
	}
	if !ws2.HasMonitor() {
		t.Fatal("ws2 should be bound")
	}
	got, ok := a.WorkspaceForOutput(mon.ID)
	if !ok || got != ws2.ID {
		t.Fatalf("WorkspaceForOutput = %v, %v, want %v, true", got, ok, ws2.ID)
	}
}

func TestWindowFocusablePredicate(t *testing.T) {
	w := entities.NewWindow("term")
	if !w.Focusable() {
		t.Fatal("expected default window to be focusable")
	}

	w.Fullscreen = true
	if w.Focusable() {
		t.Fatal("fullscreen window must not be focusable")
	}
	w.Fullscreen = false

	w.Transient = true
	if w.Focusable() {
		t.Fatal("transient window must not be focusable")
	}
	w.Transient = false

	w.CanReceiveFocus = false
	if w.Focusable() {
		t.Fatal("window that cannot receive focus must not be focusable")
	}
	w.CanReceiveFocus = true

	w.Title = "ulauncher"
	if w.Focusable() {
		t.Fatal("blocklisted title must not be focusable")
	}
}
