package animation_test

import (
	"testing"
	"time"

	"github.com/cascade-wm/cascade/internal/animation"
	"github.com/cascade-wm/cascade/internal/geometry"
)

type fakeSurface struct {
	id          uint64
	moved       []geometry.Point
	translation geometry.Displacement
}

func (f *fakeSurface) MoveTo(p geometry.Point)              { f.moved = append(f.moved, p) }
func (f *fakeSurface) SetTranslate(d geometry.Displacement) { f.translation = d }
func (f *fakeSurface) ID() uint64                           { return f.id }

func TestWindowPositionDriverSnapsThenTranslates(t *testing.T) {
	surf := &fakeSurface{id: 1}
	d := animation.NewWindowPositionDriver(surf, geometry.Point{X: 0, Y: 0}, geometry.Point{X: 100, Y: 0})

	d.Started()
	if len(surf.moved) != 1 || surf.moved[0] != (geometry.Point{X: 100, Y: 0}) {
		t.Fatalf("Started() should move-to end immediately, got %v", surf.moved)
	}

	d.Step(0) // rendered position should equal start
	if surf.translation != (geometry.Displacement{DX: -100, DY: 0}) {
		t.Fatalf("Step(0) translation = %+v, want {-100,0}", surf.translation)
	}

	d.Step(1)
	if surf.translation != (geometry.Displacement{DX: 0, DY: 0}) {
		t.Fatalf("Step(1) translation = %+v, want zero", surf.translation)
	}
}

func TestWindowPositionDriverConflictSameWindow(t *testing.T) {
	surf := &fakeSurface{id: 1}
	a := animation.NewWindowPositionDriver(surf, geometry.Point{}, geometry.Point{X: 10})
	b := animation.NewWindowPositionDriver(surf, geometry.Point{}, geometry.Point{X: 10})
	c := animation.NewWindowPositionDriver(surf, geometry.Point{}, geometry.Point{X: 20})

	if got := b.IsConflict(a); got != animation.Ignore {
		t.Fatalf("same end-point: IsConflict = %v, want Ignore", got)
	}
	if got := c.IsConflict(a); got != animation.Replace {
		t.Fatalf("different end-point: IsConflict = %v, want Replace", got)
	}
}

func TestWindowPositionDriverNoConflictDifferentWindow(t *testing.T) {
	a := animation.NewWindowPositionDriver(&fakeSurface{id: 1}, geometry.Point{}, geometry.Point{X: 10})
	b := animation.NewWindowPositionDriver(&fakeSurface{id: 2}, geometry.Point{}, geometry.Point{X: 10})

	if got := b.IsConflict(a); got != animation.NoConflict {
		t.Fatalf("different window: IsConflict = %v, want NoConflict", got)
	}
}

func TestEngineReplacesConflictingAnimation(t *testing.T) {
	e := animation.NewEngine()
	surf := &fakeSurface{id: 1}

	first := animation.NewWindowPositionDriver(surf, geometry.Point{}, geometry.Point{X: 10})
	e.Start(first, 0, 100*time.Millisecond)
	if e.Len() != 1 {
		t.Fatalf("Len() = %d after first start, want 1", e.Len())
	}

	second := animation.NewWindowPositionDriver(surf, geometry.Point{}, geometry.Point{X: 20})
	e.Start(second, 0, 100*time.Millisecond)
	if e.Len() != 1 {
		t.Fatalf("Len() = %d after replace, want 1 (old retired)", e.Len())
	}
}

func TestEngineZeroDurationSnapsImmediately(t *testing.T) {
	e := animation.NewEngine()
	surf := &fakeSurface{id: 1}
	d := animation.NewWindowPositionDriver(surf, geometry.Point{}, geometry.Point{X: 10})

	e.Start(d, 0, 0)
	if e.Len() != 0 {
		t.Fatalf("Len() = %d, want 0 for zero-duration snap", e.Len())
	}
	if len(surf.moved) != 1 {
		t.Fatalf("expected immediate move-to, got %v", surf.moved)
	}
}

type countingDriver struct {
	started, aborted, completed int
	steps                       []float64
}

func (c *countingDriver) Step(p float64)                      { c.steps = append(c.steps, p) }
func (c *countingDriver) Started()                            { c.started++ }
func (c *countingDriver) Aborted()                             { c.aborted++ }
func (c *countingDriver) Completed()                           { c.completed++ }
func (c *countingDriver) IsConflict(animation.Driver) animation.Conflict {
	return animation.NoConflict
}

func TestEngineFrameLifecycle(t *testing.T) {
	e := animation.NewEngine()
	d := &countingDriver{}
	start := time.Now()

	e.Start(d, 10*time.Millisecond, 100*time.Millisecond)

	e.Frame(start) // before delay elapses: still waiting
	if d.started != 0 {
		t.Fatalf("started too early: %d", d.started)
	}

	e.Frame(start.Add(50 * time.Millisecond)) // past delay, mid-animation
	if d.started != 1 {
		t.Fatalf("expected Started() once, got %d", d.started)
	}
	if e.Len() != 1 {
		t.Fatalf("should still be running, Len() = %d", e.Len())
	}

	e.Frame(start.Add(200 * time.Millisecond)) // past delay+duration
	if d.completed != 1 {
		t.Fatalf("expected Completed() once, got %d", d.completed)
	}
	if e.Len() != 0 {
		t.Fatalf("expected retirement, Len() = %d", e.Len())
	}
	if d.steps[len(d.steps)-1] != 1.0 {
		t.Fatalf("final step should be 1.0, got %v", d.steps)
	}
}

func TestEngineClockGoesBackwardsAborts(t *testing.T) {
	e := animation.NewEngine()
	d := &countingDriver{}
	start := time.Now()

	e.Start(d, 0, 100*time.Millisecond)
	e.Frame(start)
	e.Frame(start.Add(-time.Second))

	if d.aborted != 1 {
		t.Fatalf("expected Aborted() once, got %d", d.aborted)
	}
	if e.Len() != 0 {
		t.Fatalf("expected retirement after abort, Len() = %d", e.Len())
	}
}

func TestMoveDurationCapsAndSnaps(t *testing.T) {
	if got := animation.MoveDuration(geometry.Point{}, geometry.Point{}); got != 0 {
		t.Fatalf("zero distance should snap, got %d", got)
	}
	if got := animation.MoveDuration(geometry.Point{}, geometry.Point{X: 100000}); got != 300 {
		t.Fatalf("large distance should cap at 300ms, got %d", got)
	}
}
