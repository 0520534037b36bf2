package animation

import "github.com/cascade-wm/cascade/internal/geometry"

// Surface is the minimal capability a window position animation needs
// from a runtime window. It is defined locally (rather than importing the
// runtime package) so animation stays a leaf with no dependency on the
// runtime ports.
type Surface interface {
	MoveTo(point geometry.Point)
	SetTranslate(d geometry.Displacement)
	ID() uint64
}

// WindowPositionDriver animates a window's on-screen position from Start
// to End.
type WindowPositionDriver struct {
	Window     Surface
	Start, End geometry.Point
}

// NewWindowPositionDriver builds a driver that will animate window from
// start to end.
func NewWindowPositionDriver(window Surface, start, end geometry.Point) *WindowPositionDriver {
	return &WindowPositionDriver{Window: window, Start: start, End: end}
}

// Started issues one instantaneous move-to(end), snapping the window to
// its destination; Step then layers a translation offset on top so the
// rendered position animates smoothly from start to end.
func (d *WindowPositionDriver) Started() {
	d.Window.MoveTo(d.End)
}

// Step sets a translation offset of (start-end)*(1-percent), so the
// rendered position equals start + (end-start)*percent.
func (d *WindowPositionDriver) Step(percent float64) {
	delta := d.Start.Sub(d.End)
	offset := geometry.Displacement{
		DX: int(float64(delta.DX) * (1 - percent)),
		DY: int(float64(delta.DY) * (1 - percent)),
	}
	d.Window.SetTranslate(offset)
}

// Completed is a no-op: the window is already at End (from Started) with
// a zero translation (from the final Step(1.0)).
func (d *WindowPositionDriver) Completed() {}

// Aborted zeroes the translation, leaving the window wherever Started
// last placed it.
func (d *WindowPositionDriver) Aborted() {
	d.Window.SetTranslate(geometry.Displacement{})
}

// IsConflict: two window position drivers conflict iff they target the
// same window. If their end-points are equal the new one is Ignored
// (already animating to the same place); otherwise it Replaces the
// existing one.
func (d *WindowPositionDriver) IsConflict(other Driver) Conflict {
	o, ok := other.(*WindowPositionDriver)
	if !ok || o.Window.ID() != d.Window.ID() {
		return NoConflict
	}
	if o.End == d.End {
		return Ignore
	}
	return Replace
}

// MoveDuration scales linearly with the distance between start and end,
// capped at 300ms; a zero distance means "snap, no animation" (duration
// 0).
func MoveDuration(start, end geometry.Point) (durationMillis int) {
	const maxDuration = 300
	const pixelsPerMillis = 4 // distance/ms scaling factor

	dx := end.X - start.X
	dy := end.Y - start.Y
	distSq := dx*dx + dy*dy
	if distSq == 0 {
		return 0
	}

	dist := isqrt(distSq)
	ms := dist / pixelsPerMillis
	if ms > maxDuration {
		return maxDuration
	}
	if ms == 0 {
		return 1
	}
	return ms
}

// isqrt is an integer square root (no float math needed for this small
// scaling heuristic).
func isqrt(n int) int {
	if n <= 0 {
		return 0
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}
