// Package action defines the keybinding vocabulary: chords, the action
// enum they resolve to, and the pure resize-step and center-window math
// the original keyboard.rs Ctrl+R / Ctrl+C bindings perform. Dispatch
// from a physical key event to an Action is table driven; executing an
// Action against the arena/focus/layout state is the policy package's
// job.
package action

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/cascade-wm/cascade/internal/entities"
	"github.com/cascade-wm/cascade/internal/runtime"
)

// Chord is a modifier set plus a keysym, the unit a keybinding matches
// against — grounded on keyboard.rs's has_mods/get_one_sym checks.
type Chord struct {
	Mods runtime.ModifierSet
	Key  string
}

var modOrder = []struct {
	bit  runtime.ModifierSet
	name string
}{
	{runtime.ModCtrl, "ctrl"},
	{runtime.ModShift, "shift"},
	{runtime.ModAlt, "alt"},
	{runtime.ModSuper, "super"},
}

// String renders the chord in canonical "mod+mod+key" form, modifiers
// always in ctrl, shift, alt, super order regardless of input order.
func (c Chord) String() string {
	var parts []string
	for _, m := range modOrder {
		if c.Mods.Has(m.bit) {
			parts = append(parts, m.name)
		}
	}
	parts = append(parts, c.Key)
	return strings.Join(parts, "+")
}

// ParseChord parses a "+"-joined chord string such as "ctrl+shift+left".
// Modifier names may appear in any order ("logo" is accepted as a
// synonym for "super"); exactly one non-modifier token (the keysym) is
// required.
func ParseChord(s string) (Chord, error) {
	tokens := strings.Split(s, "+")
	var c Chord
	var key string
	for _, tok := range tokens {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if tok == "" {
			return Chord{}, fmt.Errorf("action: empty token in chord %q", s)
		}
		if tok == "logo" {
			tok = "super"
		}
		matched := false
		for _, m := range modOrder {
			if tok == m.name {
				c.Mods |= m.bit
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		if key != "" {
			return Chord{}, fmt.Errorf("action: chord %q has more than one key token", s)
		}
		key = tok
	}
	if key == "" {
		return Chord{}, fmt.Errorf("action: chord %q has no key token", s)
	}
	c.Key = key
	return c, nil
}

// Kind tags an Action's variant: an enumerated window-manager action or
// an external-command dispatch.
type Kind int

const (
	NavigateFirst Kind = iota
	NavigateLast
	Navigate
	NavigateWorkspace
	NavigateMonitor
	MoveWindow
	MoveWindowWorkspace
	MoveWindowMonitor
	ResizeWindow
	CenterWindow
	CloseWindow
	SwitchKeyboardLayout
	DebugDump
	// External is the {cmd, args} variant: spawn an external command
	// rather than drive window-manager state.
	External
)

// Action is the tagged-variant result of resolving a chord. Dir/VDir are
// meaningful only for the directional kinds, Steps only for
// ResizeWindow, Command/Args only for External.
type Action struct {
	Kind    Kind
	Dir     entities.Direction
	VDir    entities.VerticalDirection
	Steps   []float64
	Command string
	Args    []string
}

// Dispatcher maps chords to actions, the Go analogue of keyboard.rs's
// match expression but data-driven so config can extend it.
type Dispatcher struct {
	bindings map[Chord]Action
}

// NewDispatcher returns a Dispatcher with the given bindings.
func NewDispatcher(bindings map[Chord]Action) *Dispatcher {
	d := &Dispatcher{bindings: make(map[Chord]Action, len(bindings))}
	for c, a := range bindings {
		d.bindings[c] = a
	}
	return d
}

// Bind adds or replaces a single binding.
func (d *Dispatcher) Bind(c Chord, a Action) {
	d.bindings[c] = a
}

// Dispatch resolves a chord to its bound action, if any. An unbound
// chord is a silent no-op, not an error.
func (d *Dispatcher) Dispatch(c Chord) (Action, bool) {
	a, ok := d.bindings[c]
	return a, ok
}

// Chords returns every bound chord, sorted for deterministic iteration
// (used by DebugDump and tests).
func (d *Dispatcher) Chords() []Chord {
	out := make([]Chord, 0, len(d.bindings))
	for c := range d.bindings {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// ResizeStepWidth implements ResizeWindow{steps}: let
// w = currentWidth/monitorWidth; pick the first step strictly greater
// than w and return round(step*monitorWidth); if none qualifies, wrap to
// the first step (scenario 6).
func ResizeStepWidth(steps []float64, currentWidth, monitorWidth int) int {
	if len(steps) == 0 {
		return currentWidth
	}
	ratio := float64(currentWidth) / float64(monitorWidth)
	for _, step := range steps {
		if step > ratio {
			return int(math.Round(step * float64(monitorWidth)))
		}
	}
	return int(math.Round(steps[0] * float64(monitorWidth)))
}

// CenterScrollLeft computes the scroll_left that puts a window at the
// horizontal center of a monitor zone (CenterWindow), grounded
// on actions.rs's Ctrl+C handler. windowLeft is the window's
// workspace-local left edge (window.PendingPosition.Left()); it is
// already in the same coordinate space scroll_left is applied against,
// so it is passed through unmodified.
func CenterScrollLeft(windowLeft, windowWidth, monitorLeft, monitorWidth int) int {
	return windowLeft - monitorLeft - monitorWidth/2 + windowWidth/2
}
