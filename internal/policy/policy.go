// Package policy wires the arena, focus model, layout engine, gesture
// machine and action dispatcher together behind the runtime.Callbacks
// surface. It is the only package that knows about all of the core's
// pieces at once; everything downstream of it only talks to the pieces
// it directly owns.
package policy

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/cascade-wm/cascade/internal/action"
	"github.com/cascade-wm/cascade/internal/animation"
	"github.com/cascade-wm/cascade/internal/config"
	"github.com/cascade-wm/cascade/internal/entities"
	"github.com/cascade-wm/cascade/internal/focus"
	"github.com/cascade-wm/cascade/internal/geometry"
	"github.com/cascade-wm/cascade/internal/gesture"
	"github.com/cascade-wm/cascade/internal/layout"
	"github.com/cascade-wm/cascade/internal/runtime"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "policy",
})

// Debug gates invariant-violation handling: panic in debug builds,
// log-and-skip otherwise. Set via CASCADE_DEBUG so a developer build
// can opt in without a recompile flag.
var Debug = os.Getenv("CASCADE_DEBUG") != ""

// windowSurface adapts a runtime.Window to layout.Surface, whose ID()
// returns uint64 rather than entities.WindowID (animation stays free of
// any dependency on the runtime or entities packages).
type windowSurface struct{ w runtime.Window }

func (s windowSurface) MoveTo(p geometry.Point)              { s.w.MoveTo(p) }
func (s windowSurface) SetTranslate(d geometry.Displacement) { s.w.SetTranslate(d) }
func (s windowSurface) SetExtents(r geometry.Rectangle)      { s.w.SetExtents(r) }
func (s windowSurface) ID() uint64                           { return uint64(s.w.ID()) }

// focusAdapter satisfies focus.RuntimeFocus by resolving an
// entities.WindowID back to the runtime.Window the controller is
// tracking before forwarding to the real focus API.
type focusAdapter struct {
	lookup func(entities.WindowID) (runtime.Window, bool)
	api    runtime.FocusAPI
}

func (a *focusAdapter) FocusWindow(id entities.WindowID) {
	if w, ok := a.lookup(id); ok {
		a.api.FocusWindow(w)
	}
}

func (a *focusAdapter) Blur() { a.api.Blur() }

// Controller implements runtime.Callbacks. It owns the arena and every
// collaborator built on top of it; the runtime holds a Controller behind
// the Callbacks interface and never reaches into its fields. It is not
// safe for concurrent use — every callback is invoked from the
// compositor's main thread only.
type Controller struct {
	arena      *entities.Arena
	focusModel *focus.Model
	gestureM   *gesture.Machine
	dispatch   *action.Dispatcher
	engine     *animation.Engine
	deps       layout.Dependencies

	cfg      config.Config
	keyboard runtime.KeyboardAPI

	windows  map[entities.WindowID]runtime.Window
	byWindow map[runtime.Window]entities.WindowID

	outputs     map[entities.OutputID]runtime.Output
	byOutput    map[runtime.Output]entities.OutputID
	frameUnsubs map[entities.OutputID]func()

	cursor      geometry.Point
	layoutIndex int
}

// New builds a Controller over a fresh arena, wiring cfg's dispatcher
// (falling back to action.DefaultDispatcher on a config error — the
// config package itself already falls back at load time, but a caller
// handing us a Config straight from YAML decoding may not have gone
// through Validate/Dispatcher) against focusAPI and keyboard.
func New(cfg config.Config, focusAPI runtime.FocusAPI, keyboard runtime.KeyboardAPI) *Controller {
	c := &Controller{
		arena:       entities.NewArena(),
		engine:      animation.NewEngine(),
		cfg:         cfg,
		keyboard:    keyboard,
		windows:     make(map[entities.WindowID]runtime.Window),
		byWindow:    make(map[runtime.Window]entities.WindowID),
		outputs:     make(map[entities.OutputID]runtime.Output),
		byOutput:    make(map[runtime.Output]entities.OutputID),
		frameUnsubs: make(map[entities.OutputID]func()),
	}

	c.focusModel = focus.NewModel(c.arena, &focusAdapter{
		lookup: func(id entities.WindowID) (runtime.Window, bool) { w, ok := c.windows[id]; return w, ok },
		api:    focusAPI,
	})

	c.deps = layout.Dependencies{
		Arena:  c.arena,
		Engine: c.engine,
		Surface: func(id entities.WindowID) layout.Surface {
			w, ok := c.windows[id]
			if !ok {
				return nil
			}
			return windowSurface{w}
		},
	}
	c.gestureM = gesture.NewMachine(c.deps)
	c.deps.HeldByGesture = c.gestureM.HeldByGesture

	d, err := cfg.Dispatcher()
	if err != nil {
		logger.Warn("config dispatcher rejected, falling back to defaults", "error", err)
		d = action.DefaultDispatcher()
	}
	c.dispatch = d

	return c
}

func (c *Controller) invariant(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if Debug {
		panic("policy: invariant violation: " + msg)
	}
	logger.Error("invariant violation", "detail", msg)
}

func (c *Controller) centerOf(id entities.WindowID) int {
	if w, ok := c.arena.Window(id); ok {
		return w.PendingPosition.CenterX()
	}
	return 0
}

func (c *Controller) relayout(ws *entities.Workspace) {
	if ws == nil || !ws.HasMonitor() {
		return
	}
	mon, ok := c.arena.Monitor(ws.Monitor)
	if !ok {
		return
	}
	layout.Arrange(ws, mon.ApplicationZone, c.deps, false)
}

func (c *Controller) relayoutAll() {
	layout.ArrangeAll(c.arena, c.deps, false)
}

func (c *Controller) workspaceOf(id entities.WindowID) (*entities.Workspace, bool) {
	w, ok := c.arena.Window(id)
	if !ok || !w.HasWorkspace() {
		return nil, false
	}
	return c.arena.Workspace(w.Workspace)
}

// activeWorkspace prefers the focused window's own workspace, falling
// back to the MRU-top workspace (meaningful when the active workspace is
// empty and has no focused window).
func (c *Controller) activeWorkspace() (*entities.Workspace, bool) {
	if top, ok := c.focusModel.MRUWindows.Top(); ok {
		if ws, ok := c.workspaceOf(top); ok {
			return ws, true
		}
	}
	if top, ok := c.focusModel.MRUWorkspaces.Top(); ok {
		return c.arena.Workspace(top)
	}
	return nil, false
}

func (c *Controller) isFocused(id entities.WindowID) bool {
	top, ok := c.focusModel.MRUWindows.Top()
	return ok && top == id
}

// windowAt returns the topmost (in ordered-sequence terms — there is no
// z-order concept in the core) window whose current screen extents
// contain point.
func (c *Controller) windowAt(point geometry.Point) (entities.WindowID, bool) {
	for _, ws := range c.arena.Workspaces() {
		for _, id := range ws.Windows() {
			w, ok := c.arena.Window(id)
			if ok && w.CurrentPosition.Contains(point) {
				return id, true
			}
		}
	}
	return 0, false
}

func horizontal(dir entities.Direction) focus.HorizontalDirection {
	if dir == entities.Left {
		return focus.HorizontalLeft
	}
	return focus.HorizontalRight
}

// ---- runtime.Callbacks: window lifecycle ----

// WindowReady implements window_ready(W).
func (c *Controller) WindowReady(w runtime.Window) {
	win := c.arena.CreateWindow(w.Title())
	win.CanReceiveFocus = w.CanReceiveFocus()
	win.Fullscreen = w.Fullscreen()
	win.Maximized = w.Maximized()
	win.MaxWidth = w.MaxWidth()
	win.MaxHeight = w.MaxHeight()
	win.CurrentPosition = w.Extents()
	win.PendingPosition = w.Extents()

	c.windows[win.ID] = w
	c.byWindow[w] = win.ID

	if !win.Focusable() {
		return
	}

	ws, ok := c.activeWorkspace()
	if !ok {
		return
	}

	ws.AddWindow(win.ID, entities.InsertPosition{Kind: entities.AfterActiveWindow}, c.centerOf)
	win.SetWorkspace(ws.ID)

	c.focusModel.MRUWindows.Push(win.ID)
	c.focusModel.FocusWindow(win.ID)
	c.relayout(ws)
}

// Configured implements configured(W).
func (c *Controller) Configured(w runtime.Window) {
	id, ok := c.byWindow[w]
	if !ok {
		c.invariant("configured: unknown window %q", w.Title())
		return
	}
	win, ok := c.arena.Window(id)
	if !ok {
		c.invariant("configured: window id %d not in arena", id)
		return
	}
	win.CurrentPosition = w.Extents()
	if ws, ok := c.workspaceOf(id); ok {
		c.relayout(ws)
	}
}

// Focused implements focused(W).
func (c *Controller) Focused(w runtime.Window) {
	id, ok := c.byWindow[w]
	if !ok {
		c.invariant("focused: unknown window %q", w.Title())
		return
	}
	c.focusModel.FocusWindow(id)
	if ws, ok := c.workspaceOf(id); ok {
		c.relayout(ws)
	}
}

// Delete implements delete(W).
func (c *Controller) Delete(w runtime.Window) {
	id, ok := c.byWindow[w]
	if !ok {
		return
	}
	ws, hadWS := c.workspaceOf(id)
	if hadWS {
		ws.RemoveWindow(id)
	}
	c.focusModel.MRUWindows.Remove(id)
	delete(c.windows, id)
	delete(c.byWindow, w)
	c.arena.DeleteWindow(id)

	if hadWS {
		c.relayout(ws)
	}

	if topWS, ok := c.focusModel.MRUWorkspaces.Top(); ok {
		if top, ok := c.arena.Workspace(topWS); ok {
			if focusID, ok := top.MRU().Top(); ok {
				c.focusModel.FocusWindow(focusID)
			}
		}
	}
}

// ---- runtime.Callbacks: output lifecycle ----

// ensureSpareWorkspaces implements the "at least extra_workspaces+1
// unbound workspaces" maintenance described for output_create.
func (c *Controller) ensureSpareWorkspaces() {
	need := c.cfg.ExtraWorkspaces + 1
	count := 0
	for _, id := range c.focusModel.MRUWorkspaces.Iter() {
		if ws, ok := c.arena.Workspace(id); ok && !ws.HasMonitor() {
			count++
		}
	}
	for count < need {
		ws := c.arena.CreateWorkspace()
		c.focusModel.MRUWorkspaces.PushBottom(ws.ID)
		count++
	}
}

// firstUnboundWorkspace picks the most-recently-used unbound workspace —
// the one most likely to be what the user was last looking at on this
// machine, a reasonable tiebreak the source doesn't document.
func (c *Controller) firstUnboundWorkspace() (*entities.Workspace, bool) {
	for _, id := range c.focusModel.MRUWorkspaces.Iter() {
		if ws, ok := c.arena.Workspace(id); ok && !ws.HasMonitor() {
			return ws, true
		}
	}
	return nil, false
}

// OutputCreate implements output_create(O).
func (c *Controller) OutputCreate(o runtime.Output) {
	mon := c.arena.CreateMonitor(o.Name(), o.Extents())
	c.outputs[mon.ID] = o
	c.byOutput[o] = mon.ID
	c.frameUnsubs[mon.ID] = o.SubscribeFrame(func() { c.engine.Frame(time.Now()) })

	c.ensureSpareWorkspaces()
	ws, ok := c.firstUnboundWorkspace()
	if !ok {
		c.invariant("output_create: no spare workspace for output %q", o.Name())
		return
	}
	c.arena.BindOutputWorkspace(mon.ID, ws.ID)
	c.relayout(ws)
}

// OutputUpdate implements output_update(O).
func (c *Controller) OutputUpdate(o runtime.Output) {
	id, ok := c.byOutput[o]
	if !ok {
		return
	}
	mon, ok := c.arena.Monitor(id)
	if !ok {
		return
	}
	mon.ApplicationZone = o.Extents()
	if mon.HasWorkspace() {
		if ws, ok := c.arena.Workspace(mon.Workspace); ok {
			c.relayout(ws)
		}
	}
}

// OutputDelete implements output_delete(O). Remaining monitors keep the
// workspaces already bound to them; only a remaining monitor that has no
// workspace is given one, the first workspace in mru_workspaces order not
// bound elsewhere. The workspace O was showing becomes unbound and is not
// moved onto another monitor, since every remaining monitor still holds
// its own workspace; it stays reachable through vertical workspace
// navigation.
func (c *Controller) OutputDelete(o runtime.Output) {
	id, ok := c.byOutput[o]
	if !ok {
		return
	}
	if unsub, ok := c.frameUnsubs[id]; ok {
		unsub()
		delete(c.frameUnsubs, id)
	}
	c.arena.DeleteMonitor(id)
	delete(c.outputs, id)
	delete(c.byOutput, o)

	monitors := c.arena.Monitors()
	used := make(map[entities.WorkspaceID]bool, len(monitors))
	for _, m := range monitors {
		if m.HasWorkspace() {
			used[m.Workspace] = true
		}
	}
	mruOrder := c.focusModel.MRUWorkspaces.Iter()
	nextUnbound := func() (entities.WorkspaceID, bool) {
		for _, wsID := range mruOrder {
			if used[wsID] {
				continue
			}
			if _, ok := c.arena.Workspace(wsID); ok {
				used[wsID] = true
				return wsID, true
			}
		}
		return 0, false
	}
	for _, m := range monitors {
		if m.HasWorkspace() {
			continue
		}
		if wsID, ok := nextUnbound(); ok {
			c.arena.BindOutputWorkspace(m.ID, wsID)
		}
	}
	c.relayoutAll()
}

// ---- runtime.Callbacks: gesture entry ----

// RequestMove starts a move gesture for a focused window, clearing any
// maximized/fullscreen state so the drag has somewhere to go.
func (c *Controller) RequestMove(w runtime.Window) {
	id, ok := c.byWindow[w]
	if !ok || !c.isFocused(id) {
		return
	}
	if c.gestureM.BeginMove(id, c.cursor) {
		w.SetMaximized(false)
		w.SetFullscreen(false)
	}
}

// RequestResize starts a resize gesture for a focused window against the
// given edges.
func (c *Controller) RequestResize(w runtime.Window, edges runtime.Edges) {
	id, ok := c.byWindow[w]
	if !ok || !c.isFocused(id) {
		return
	}
	if win, ok := c.arena.Window(id); ok {
		win.Resizing = true
	}
	if c.gestureM.BeginResize(id, c.cursor, edges) {
		w.SetResizing(true)
	}
}

// ---- runtime.Callbacks: input dispatch ----

// HandleKey implements keyboard dispatch.
func (c *Controller) HandleKey(event runtime.KeyEvent) bool {
	if !event.Pressed {
		return false
	}
	chord := action.Chord{Mods: event.Modifiers, Key: strings.ToLower(event.Keysym)}
	act, ok := c.dispatch.Dispatch(chord)
	if !ok {
		return false
	}
	c.perform(act)
	return true
}

// HandlePointerMotion implements pointer-motion dispatch.
func (c *Controller) HandlePointerMotion(event runtime.PointerMotionEvent) bool {
	c.cursor = event.Position
	if c.gestureM.State() == gesture.None {
		return false
	}
	return c.gestureM.PointerMotion(event, func(id entities.WindowID) { c.focusModel.FocusWindow(id) })
}

// HandlePointerButton implements button-release/press dispatch.
func (c *Controller) HandlePointerButton(event runtime.PointerButtonEvent) bool {
	c.cursor = event.Position

	if !event.Pressed {
		id, had := c.gestureM.ActiveWindow()
		consumed := c.gestureM.Release()
		if had {
			if w, ok := c.windows[id]; ok {
				w.SetResizing(false)
			}
		}
		return consumed
	}

	if id, ok := c.windowAt(event.Position); ok {
		c.focusModel.FocusWindow(id)
		return true
	}
	return false
}

// perform executes a resolved keybinding action.
func (c *Controller) perform(act action.Action) {
	switch act.Kind {
	case action.NavigateFirst:
		c.navigateEnd(entities.Left)
	case action.NavigateLast:
		c.navigateEnd(entities.Right)
	case action.Navigate:
		c.navigate(act.Dir)
	case action.NavigateWorkspace:
		c.navigateWorkspace(act.VDir)
	case action.NavigateMonitor:
		c.navigateMonitor(act.Dir, focus.Entry{Kind: focus.ActiveWindow})
	case action.MoveWindow:
		c.moveWindow(act.Dir)
	case action.MoveWindowWorkspace:
		c.moveWindowWorkspace(act.VDir)
	case action.MoveWindowMonitor:
		win, ok := c.focusModel.MRUWindows.Top()
		if !ok {
			return
		}
		ws, ok := c.workspaceOf(win)
		if !ok {
			return
		}
		c.moveWindowToMonitor(win, ws, act.Dir)
	case action.ResizeWindow:
		c.resizeWindow(act.Steps)
	case action.CenterWindow:
		c.centerWindow()
	case action.CloseWindow:
		if win, ok := c.focusModel.MRUWindows.Top(); ok {
			if w, ok := c.windows[win]; ok {
				w.AskClientToClose()
			}
		}
	case action.SwitchKeyboardLayout:
		c.switchKeyboardLayout()
	case action.DebugDump:
		logger.Info("debug dump", "state", c.DebugDump())
	case action.External:
		c.runExternal(act.Command, act.Args)
	}
}

func (c *Controller) navigateEnd(dir entities.Direction) {
	ws, ok := c.activeWorkspace()
	if !ok {
		return
	}
	windows := ws.Windows()
	if len(windows) == 0 {
		return
	}
	var target entities.WindowID
	if dir == entities.Left {
		target = windows[0]
	} else {
		target = windows[len(windows)-1]
	}
	c.focusModel.FocusWindow(target)
	c.relayout(ws)
}

func (c *Controller) navigate(dir entities.Direction) {
	win, ok := c.focusModel.MRUWindows.Top()
	if !ok {
		return
	}
	ws, ok := c.workspaceOf(win)
	if !ok {
		return
	}
	if next, ok := ws.WindowByDirection(win, dir); ok {
		c.focusModel.FocusWindow(next)
		c.relayout(ws)
		return
	}

	entry := focus.Entry{Kind: focus.EntryStart}
	if dir == entities.Left {
		entry = focus.Entry{Kind: focus.EntryEnd}
	}
	c.navigateMonitor(dir, entry)
}

func (c *Controller) navigateWorkspace(vdir entities.VerticalDirection) {
	ws, ok := c.activeWorkspace()
	if !ok {
		return
	}
	target, ok := c.focusModel.WorkspaceByDirection(ws.ID, vdir)
	if !ok {
		return
	}
	c.focusModel.FocusWorkspace(target)
	c.relayoutAll()
}

func (c *Controller) navigateMonitor(dir entities.Direction, entry focus.Entry) {
	ws, ok := c.activeWorkspace()
	if !ok {
		return
	}
	monID, ok := c.focusModel.MonitorByDirection(ws.ID, horizontal(dir))
	if !ok {
		return
	}
	mon, ok := c.arena.Monitor(monID)
	if !ok {
		return
	}
	if !mon.HasWorkspace() {
		c.invariant("navigate-monitor: monitor %q has no bound workspace", mon.Name)
		return
	}
	targetWS, ok := c.arena.Workspace(mon.Workspace)
	if !ok {
		return
	}
	if id, ok := focus.ResolveEntry(targetWS, entry, c.centerOf); ok {
		c.focusModel.FocusWindow(id)
	} else {
		c.focusModel.FocusWorkspace(targetWS.ID)
	}
	c.relayoutAll()
}

func (c *Controller) moveWindow(dir entities.Direction) {
	win, ok := c.focusModel.MRUWindows.Top()
	if !ok {
		return
	}
	ws, ok := c.workspaceOf(win)
	if !ok {
		return
	}
	if ws.MoveWindow(win, dir) {
		c.relayout(ws)
		return
	}
	c.moveWindowToMonitor(win, ws, dir)
}

// moveWindowToMonitor transfers win from ws to the neighboring monitor's
// workspace in direction dir, entering at the start when arriving from
// the left (dir==Right) or the end when arriving from the right
// (dir==Left) — scenario 3.
func (c *Controller) moveWindowToMonitor(win entities.WindowID, ws *entities.Workspace, dir entities.Direction) {
	monID, ok := c.focusModel.MonitorByDirection(ws.ID, horizontal(dir))
	if !ok {
		return
	}
	mon, ok := c.arena.Monitor(monID)
	if !ok {
		return
	}
	if !mon.HasWorkspace() {
		c.invariant("move-window-monitor: monitor %q has no bound workspace", mon.Name)
		return
	}
	targetWS, ok := c.arena.Workspace(mon.Workspace)
	if !ok {
		return
	}

	ws.RemoveWindow(win)
	w, _ := c.arena.Window(win)
	w.SetWorkspace(targetWS.ID)

	insertAt := entities.InsertPosition{Kind: entities.AtStart}
	if dir == entities.Left {
		insertAt = entities.InsertPosition{Kind: entities.AtEnd}
	}
	targetWS.AddWindow(win, insertAt, c.centerOf)

	c.focusModel.FocusWindow(win)
	c.relayout(ws)
	c.relayout(targetWS)
}

// moveWindowWorkspace moves the focused window onto the vertically
// adjacent workspace and follows it there. Not present in
// original_source (no vertical-workspace concept existed there); this
// is the natural reading of the default Ctrl+Up/Down binding, documented
// as a supplemented behavior in DESIGN.md.
func (c *Controller) moveWindowWorkspace(vdir entities.VerticalDirection) {
	win, ok := c.focusModel.MRUWindows.Top()
	if !ok {
		return
	}
	ws, ok := c.workspaceOf(win)
	if !ok {
		return
	}
	targetID, ok := c.focusModel.WorkspaceByDirection(ws.ID, vdir)
	if !ok {
		return
	}
	targetWS, ok := c.arena.Workspace(targetID)
	if !ok {
		return
	}

	ws.RemoveWindow(win)
	w, _ := c.arena.Window(win)
	w.SetWorkspace(targetWS.ID)
	targetWS.AddWindow(win, entities.InsertPosition{Kind: entities.AtEnd}, c.centerOf)

	c.focusModel.FocusWorkspace(targetWS.ID)
	c.focusModel.FocusWindow(win)
	c.relayout(ws)
	c.relayoutAll()
}

func (c *Controller) resizeWindow(steps []float64) {
	win, ok := c.focusModel.MRUWindows.Top()
	if !ok {
		return
	}
	w, ok := c.arena.Window(win)
	if !ok || !w.HasWorkspace() {
		return
	}
	ws, ok := c.arena.Workspace(w.Workspace)
	if !ok || !ws.HasMonitor() {
		return
	}
	mon, ok := c.arena.Monitor(ws.Monitor)
	if !ok {
		return
	}

	currentWidth := w.PendingPosition.Width()
	newWidth := action.ResizeStepWidth(steps, currentWidth, mon.ApplicationZone.Width())
	w.PendingPosition = w.PendingPosition.WithSize(w.PendingPosition.Size.WithWidth(newWidth))
	c.relayout(ws)
}

func (c *Controller) centerWindow() {
	win, ok := c.focusModel.MRUWindows.Top()
	if !ok {
		return
	}
	w, ok := c.arena.Window(win)
	if !ok || !w.HasWorkspace() {
		return
	}
	ws, ok := c.arena.Workspace(w.Workspace)
	if !ok || !ws.HasMonitor() {
		return
	}
	mon, ok := c.arena.Monitor(ws.Monitor)
	if !ok {
		return
	}

	left := w.PendingPosition.Left()
	ws.ScrollLeft = action.CenterScrollLeft(left, w.PendingPosition.Width(), mon.ApplicationZone.Left(), mon.ApplicationZone.Width())
	c.relayout(ws)
}

func (c *Controller) switchKeyboardLayout() {
	if len(c.cfg.KeyboardLayouts) == 0 {
		return
	}
	c.layoutIndex = (c.layoutIndex + 1) % len(c.cfg.KeyboardLayouts)
	name := string(c.cfg.KeyboardLayouts[c.layoutIndex])
	if err := c.keyboard.InstallLayout(name); err != nil {
		logger.Warn("keyboard layout install failed", "layout", name, "error", err)
	}
}

func (c *Controller) runExternal(cmd string, args []string) {
	if cmd == "" {
		return
	}
	if err := exec.Command(cmd, args...).Start(); err != nil {
		logger.Warn("external command failed to spawn", "cmd", cmd, "error", err)
	}
}

// DebugDump renders a terse summary of the arena's current state for the
// DebugDump action.
func (c *Controller) DebugDump() string {
	var b strings.Builder
	for _, mon := range c.arena.Monitors() {
		fmt.Fprintf(&b, "monitor %q zone=%v", mon.Name, mon.ApplicationZone)
		if mon.HasWorkspace() {
			fmt.Fprintf(&b, " workspace=%d", mon.Workspace)
		}
		b.WriteString("\n")
	}
	for _, ws := range c.arena.Workspaces() {
		fmt.Fprintf(&b, "workspace %d scroll_left=%d windows=%v bound=%v\n", ws.ID, ws.ScrollLeft, ws.Windows(), ws.HasMonitor())
	}
	return b.String()
}

// SetCursor lets a runtime driver prime the gesture anchor point before
// the first pointer-motion event arrives (e.g. replaying a grab start
// position). Exercised directly by tests; production callers normally
// only need HandlePointerMotion/HandlePointerButton.
func (c *Controller) SetCursor(p geometry.Point) { c.cursor = p }

var _ runtime.Callbacks = (*Controller)(nil)
