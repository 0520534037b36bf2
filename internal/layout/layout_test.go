package layout_test

import (
	"testing"

	"github.com/cascade-wm/cascade/internal/animation"
	"github.com/cascade-wm/cascade/internal/entities"
	"github.com/cascade-wm/cascade/internal/geometry"
	"github.com/cascade-wm/cascade/internal/layout"
)

type fakeSurface struct {
	id      entities.WindowID
	extents geometry.Rectangle
}

func (f *fakeSurface) MoveTo(p geometry.Point)               { f.extents = f.extents.WithTopLeft(p) }
func (f *fakeSurface) SetTranslate(geometry.Displacement)    {}
func (f *fakeSurface) ID() uint64                            { return uint64(f.id) }
func (f *fakeSurface) SetExtents(rect geometry.Rectangle)    { f.extents = rect }

func newDeps(arena *entities.Arena, surfaces map[entities.WindowID]*fakeSurface) layout.Dependencies {
	return layout.Dependencies{
		Arena:  arena,
		Engine: animation.NewEngine(),
		Surface: func(id entities.WindowID) layout.Surface {
			if s, ok := surfaces[id]; ok {
				return s
			}
			return nil
		},
	}
}

// A single window narrower than the zone packs and centers.
func TestArrangePackAndCenterSingleWindow(t *testing.T) {
	arena := entities.NewArena()
	ws := arena.CreateWorkspace()
	w := arena.CreateWindow("term")
	w.PendingPosition = geometry.NewRectangle(geometry.Point{}, geometry.Size{Width: 400, Height: 600})
	w.MaxHeight = 1 << 30
	ws.AddWindow(w.ID, entities.InsertPosition{Kind: entities.AtEnd}, nil)

	zone := geometry.NewRectangle(geometry.Point{X: 0, Y: 0}, geometry.Size{Width: 1000, Height: 800})
	surfaces := map[entities.WindowID]*fakeSurface{w.ID: {id: w.ID}}

	layout.Arrange(ws, zone, newDeps(arena, surfaces), false)

	got := w.CurrentPosition
	want := geometry.NewRectangle(geometry.Point{X: 300, Y: 100}, geometry.Size{Width: 400, Height: 600})
	if got != want {
		t.Fatalf("CurrentPosition = %+v, want %+v", got, want)
	}
	if ws.ScrollLeft != 0 {
		t.Fatalf("ScrollLeft = %d, want 0", ws.ScrollLeft)
	}
}

// Focusing a window past the right edge scrolls it into view.
func TestArrangeScrollToFocusRight(t *testing.T) {
	arena := entities.NewArena()
	ws := arena.CreateWorkspace()
	surfaces := map[entities.WindowID]*fakeSurface{}

	var ids []entities.WindowID
	for i := 0; i < 3; i++ {
		w := arena.CreateWindow("term")
		w.PendingPosition = geometry.NewRectangle(geometry.Point{}, geometry.Size{Width: 600, Height: 100})
		ws.AddWindow(w.ID, entities.InsertPosition{Kind: entities.AtEnd}, nil)
		surfaces[w.ID] = &fakeSurface{id: w.ID}
		ids = append(ids, w.ID)
	}
	ws.MRU().Promote(ids[2]) // focus the third window

	zone := geometry.NewRectangle(geometry.Point{X: 0, Y: 0}, geometry.Size{Width: 1000, Height: 800})
	layout.Arrange(ws, zone, newDeps(arena, surfaces), false)

	if ws.ScrollLeft != 800 {
		t.Fatalf("ScrollLeft = %d, want 800", ws.ScrollLeft)
	}

	first, _ := arena.Window(ids[0])
	if first.CurrentPosition.Left() != -800 {
		t.Fatalf("first window screen-left = %d, want -800", first.CurrentPosition.Left())
	}
	third, _ := arena.Window(ids[2])
	if l := third.CurrentPosition.Left(); l < 200 || l > 800 {
		t.Fatalf("third window screen-left = %d, want in [200, 800]", l)
	}
}

func TestArrangeVerticalCenteringRespectsMaxHeight(t *testing.T) {
	arena := entities.NewArena()
	ws := arena.CreateWorkspace()
	w := arena.CreateWindow("term")
	w.PendingPosition = geometry.NewRectangle(geometry.Point{}, geometry.Size{Width: 200, Height: 100})
	w.MaxHeight = 300
	ws.AddWindow(w.ID, entities.InsertPosition{Kind: entities.AtEnd}, nil)

	zone := geometry.NewRectangle(geometry.Point{X: 0, Y: 0}, geometry.Size{Width: 1000, Height: 800})
	surfaces := map[entities.WindowID]*fakeSurface{w.ID: {id: w.ID}}
	layout.Arrange(ws, zone, newDeps(arena, surfaces), false)

	if w.CurrentPosition.Height() != 300 {
		t.Fatalf("height = %d, want 300 (capped by MaxHeight)", w.CurrentPosition.Height())
	}
	if w.CurrentPosition.Height() > zone.Height() {
		t.Fatal("window height exceeds zone height")
	}
}

func TestArrangeSkipsWindowHeldByGesture(t *testing.T) {
	arena := entities.NewArena()
	ws := arena.CreateWorkspace()
	w := arena.CreateWindow("term")
	w.PendingPosition = geometry.NewRectangle(geometry.Point{X: 50, Y: 50}, geometry.Size{Width: 200, Height: 100})
	w.CurrentPosition = w.PendingPosition
	ws.AddWindow(w.ID, entities.InsertPosition{Kind: entities.AtEnd}, nil)

	zone := geometry.NewRectangle(geometry.Point{X: 0, Y: 0}, geometry.Size{Width: 1000, Height: 800})
	surfaces := map[entities.WindowID]*fakeSurface{w.ID: {id: w.ID, extents: w.CurrentPosition}}
	deps := newDeps(arena, surfaces)
	deps.HeldByGesture = func(id entities.WindowID) bool { return id == w.ID }

	before := w.CurrentPosition
	layout.Arrange(ws, zone, deps, false)

	if w.CurrentPosition != before {
		t.Fatalf("window held by gesture should not have its committed position changed, got %+v", w.CurrentPosition)
	}
}
