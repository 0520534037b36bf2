// Package layout implements the horizontal-strip packing algorithm and its
// auto-scroll-to-focus behavior.
package layout

import (
	"time"

	"github.com/cascade-wm/cascade/internal/animation"
	"github.com/cascade-wm/cascade/internal/entities"
	"github.com/cascade-wm/cascade/internal/geometry"
)

func msToDuration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// Surface is the runtime capability the layout engine commits extents and
// positions to.
type Surface interface {
	animation.Surface
	SetExtents(rect geometry.Rectangle)
}

// Dependencies groups the collaborators Arrange needs beyond the
// workspace and zone themselves, so the call site doesn't grow an
// unwieldy parameter list.
type Dependencies struct {
	Arena   *entities.Arena
	Engine  *animation.Engine
	Surface func(entities.WindowID) Surface
	// HeldByGesture reports whether a window is currently the target of
	// an in-progress move or resize gesture; such windows are skipped during
	// commit unless Force is set (step 4).
	HeldByGesture func(entities.WindowID) bool
}

// Tiled filters ws's ordered window sequence down to the windows that
// participate in the horizontal strip. Fullscreen windows are excluded
// from packing entirely and keep whatever position they last had —
// whether fullscreen windows should be skipped from layout entirely or
// placed outside the scrollable band is resolved here as "skipped
// entirely", see DESIGN.md. Exported so the gesture package can resolve
// drag-swap neighbors against the same tiled subsequence.
func Tiled(ws *entities.Workspace, arena *entities.Arena) []entities.WindowID {
	var out []entities.WindowID
	for _, id := range ws.Windows() {
		w, ok := arena.Window(id)
		if !ok {
			continue
		}
		if w.Focusable() {
			out = append(out, id)
		}
	}
	return out
}

// Arrange lays out a single workspace against its monitor's application
// zone, implementing steps 1-4. force, when true, commits every
// window's position even if it is currently held by a move gesture.
func Arrange(ws *entities.Workspace, zone geometry.Rectangle, deps Dependencies, force bool) {
	ids := Tiled(ws, deps.Arena)
	if len(ids) == 0 {
		return
	}

	type packed struct {
		id     entities.WindowID
		local  geometry.Rectangle
	}

	totalWidth := 0
	for _, id := range ids {
		w, _ := deps.Arena.Window(id)
		width := w.PendingPosition.Width()
		if width == 0 {
			width = w.CurrentPosition.Width()
		}
		totalWidth += width
	}

	// When the packed strip is narrower than the zone, center it instead
	// of pinning it to the left edge — otherwise a lone or small set of
	// windows would sit flush against Z.left with a dead gap on the
	// right (scenario 1: a single 400-wide window in a
	// 1000-wide zone lands at screen x=300, not x=0).
	startX := zone.Left()
	if slack := zone.Width() - totalWidth; slack > 0 {
		startX += slack / 2
	}

	packs := make([]packed, 0, len(ids))
	x := startX
	for _, id := range ids {
		w, _ := deps.Arena.Window(id)
		width := w.PendingPosition.Width()
		if width == 0 {
			width = w.CurrentPosition.Width()
		}

		height := zone.Height()
		if w.MaxHeight > 0 && w.MaxHeight < height {
			height = w.MaxHeight
		}
		y := zone.Top() + (zone.Height()-height)/2

		local := geometry.NewRectangle(geometry.Point{X: x, Y: y}, geometry.Size{Width: width, Height: height})
		packs = append(packs, packed{id: id, local: local})
		x += width
	}

	// Step 3: auto-scroll to keep the MRU-top tiled window visible.
	if top, ok := ws.MRU().Top(); ok {
		for _, p := range packs {
			if p.id != top {
				continue
			}
			viewportLeft := ws.ScrollLeft + zone.Left()
			viewportRight := ws.ScrollLeft + zone.Right()
			wLeft := p.local.Left()
			wRight := p.local.Right()
			switch {
			case wLeft < viewportLeft:
				ws.ScrollLeft = wLeft - zone.Left()
			case wRight > viewportRight:
				ws.ScrollLeft = wRight - zone.Right()
			}
			break
		}
	}

	// Step 4: commit.
	translation := geometry.Displacement{DX: -ws.ScrollLeft, DY: 0}
	for _, p := range packs {
		w, _ := deps.Arena.Window(p.id)
		w.PendingPosition = p.local

		if !force && deps.HeldByGesture != nil && deps.HeldByGesture(p.id) {
			continue
		}

		screen := p.local.Translate(translation)
		surf := deps.Surface(p.id)
		if surf == nil {
			w.CurrentPosition = screen
			continue
		}

		if screen.Size != w.CurrentPosition.Size {
			surf.SetExtents(screen)
			w.CurrentPosition = screen
			continue
		}

		if screen.TopLeft == w.CurrentPosition.TopLeft {
			continue
		}

		duration := animation.MoveDuration(w.CurrentPosition.TopLeft, screen.TopLeft)
		driver := animation.NewWindowPositionDriver(surf, w.CurrentPosition.TopLeft, screen.TopLeft)
		deps.Engine.Start(driver, 0, msToDuration(duration))
		w.CurrentPosition = screen
	}
}

// ArrangeAll walks every monitor (arena.Monitors, in its arbitrary
// order, not mru_workspaces order) and arranges the workspace bound to
// each; unbound workspaces are not laid out.
func ArrangeAll(arena *entities.Arena, deps Dependencies, force bool) {
	for _, mon := range arena.Monitors() {
		if !mon.HasWorkspace() {
			continue
		}
		ws, ok := arena.Workspace(mon.Workspace)
		if !ok {
			continue
		}
		Arrange(ws, mon.ApplicationZone, deps, force)
	}
}
