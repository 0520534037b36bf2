package action

import "github.com/cascade-wm/cascade/internal/entities"

// NamedActions backs config.Config.Dispatcher's override lookup: every
// action a user's keyboard_shortcuts entry can name. resize-window and
// maximize-window carry fixed step lists; a user who wants a different
// cycle rebinds the chord to one of these names rather than supplying
// arbitrary steps, since YAML shortcut entries are name-valued.
var NamedActions = map[string]Action{
	"navigate-first":             {Kind: NavigateFirst},
	"navigate-last":              {Kind: NavigateLast},
	"navigate-left":              {Kind: Navigate, Dir: entities.Left},
	"navigate-right":             {Kind: Navigate, Dir: entities.Right},
	"navigate-workspace-up":      {Kind: NavigateWorkspace, VDir: entities.Up},
	"navigate-workspace-down":    {Kind: NavigateWorkspace, VDir: entities.Down},
	"navigate-monitor-left":      {Kind: NavigateMonitor, Dir: entities.Left},
	"navigate-monitor-right":     {Kind: NavigateMonitor, Dir: entities.Right},
	"move-window-left":           {Kind: MoveWindow, Dir: entities.Left},
	"move-window-right":          {Kind: MoveWindow, Dir: entities.Right},
	"move-window-workspace-up":   {Kind: MoveWindowWorkspace, VDir: entities.Up},
	"move-window-workspace-down": {Kind: MoveWindowWorkspace, VDir: entities.Down},
	"move-window-monitor-left":   {Kind: MoveWindowMonitor, Dir: entities.Left},
	"move-window-monitor-right":  {Kind: MoveWindowMonitor, Dir: entities.Right},
	"resize-window":              {Kind: ResizeWindow, Steps: []float64{0.33, 0.5, 0.66}},
	"maximize-window":            {Kind: ResizeWindow, Steps: []float64{1.0}},
	"center-window":              {Kind: CenterWindow},
	"close-window":               {Kind: CloseWindow},
	"switch-keyboard-layout":     {Kind: SwitchKeyboardLayout},
	"debug-dump":                 {Kind: DebugDump},
}

// DefaultDispatcher returns the built-in chord bindings (Logo = Super as
// the base modifier for every binding, Ctrl/Alt layered on top for the
// monitor- and workspace-moving variants).
func DefaultDispatcher() *Dispatcher {
	bind := func(s string) Chord {
		c, err := ParseChord(s)
		if err != nil {
			panic(err) // only reachable if a literal below is malformed
		}
		return c
	}

	return NewDispatcher(map[Chord]Action{
		bind("super+home"):  {Kind: NavigateFirst},
		bind("super+end"):   {Kind: NavigateLast},
		bind("super+left"):  {Kind: Navigate, Dir: entities.Left},
		bind("super+right"): {Kind: Navigate, Dir: entities.Right},
		bind("super+up"):    {Kind: NavigateWorkspace, VDir: entities.Up},
		bind("super+down"):  {Kind: NavigateWorkspace, VDir: entities.Down},

		bind("super+alt+left"):  {Kind: NavigateMonitor, Dir: entities.Left},
		bind("super+alt+right"): {Kind: NavigateMonitor, Dir: entities.Right},

		bind("super+ctrl+left"):  {Kind: MoveWindow, Dir: entities.Left},
		bind("super+ctrl+right"): {Kind: MoveWindow, Dir: entities.Right},
		bind("super+ctrl+up"):    {Kind: MoveWindowWorkspace, VDir: entities.Up},
		bind("super+ctrl+down"):  {Kind: MoveWindowWorkspace, VDir: entities.Down},

		bind("super+ctrl+alt+left"):  {Kind: MoveWindowMonitor, Dir: entities.Left},
		bind("super+ctrl+alt+right"): {Kind: MoveWindowMonitor, Dir: entities.Right},

		bind("super+r"):         {Kind: ResizeWindow, Steps: []float64{0.33, 0.5, 0.66}},
		bind("super+f"):         {Kind: ResizeWindow, Steps: []float64{1.0}},
		bind("super+c"):         {Kind: CenterWindow},
		bind("super+backspace"): {Kind: CloseWindow},
		bind("super+space"):     {Kind: SwitchKeyboardLayout},
	})
}
