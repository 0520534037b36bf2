package action_test

import (
	"testing"

	"github.com/cascade-wm/cascade/internal/action"
	"github.com/cascade-wm/cascade/internal/entities"
)

func TestChordRoundTrip(t *testing.T) {
	cases := []string{"ctrl+r", "ctrl+shift+left", "shift+alt+left", "super+a"}
	for _, s := range cases {
		c, err := action.ParseChord(s)
		if err != nil {
			t.Fatalf("ParseChord(%q) error: %v", s, err)
		}
		if got := c.String(); got != s {
			t.Fatalf("ParseChord(%q).String() = %q, want %q", s, got, s)
		}
	}
}

func TestChordCanonicalModifierOrderRegardlessOfInputOrder(t *testing.T) {
	c, err := action.ParseChord("alt+ctrl+shift+left")
	if err != nil {
		t.Fatalf("ParseChord error: %v", err)
	}
	if got, want := c.String(), "ctrl+shift+alt+left"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestParseChordRejectsMissingOrDuplicateKey(t *testing.T) {
	if _, err := action.ParseChord("ctrl+shift"); err == nil {
		t.Fatal("expected error for chord with no key token")
	}
	if _, err := action.ParseChord("a+b"); err == nil {
		t.Fatal("expected error for chord with two key tokens")
	}
}

func TestDispatcherResolvesBoundChord(t *testing.T) {
	left, _ := action.ParseChord("ctrl+shift+left")
	d := action.NewDispatcher(map[action.Chord]action.Action{
		left: {Kind: action.Navigate, Dir: entities.Left},
	})

	got, ok := d.Dispatch(left)
	if !ok || got.Kind != action.Navigate || got.Dir != entities.Left {
		t.Fatalf("Dispatch(left) = %+v, %v, want Navigate/Left, true", got, ok)
	}

	unbound, _ := action.ParseChord("ctrl+shift+z")
	if _, ok := d.Dispatch(unbound); ok {
		t.Fatal("unbound chord should not resolve")
	}
}

func TestResizeStepWidthCyclesAndWraps(t *testing.T) {
	monitorWidth := 1200
	steps := []float64{0.33, 0.5, 0.66}
	third := int(0.33 * 1200)
	half := int(0.5 * 1200)
	twoThirds := int(0.66 * 1200)

	if got := action.ResizeStepWidth(steps, 0, monitorWidth); got != third {
		t.Fatalf("from 0 = %d, want %d", got, third)
	}
	if got := action.ResizeStepWidth(steps, third, monitorWidth); got != half {
		t.Fatalf("from third = %d, want %d", got, half)
	}
	if got := action.ResizeStepWidth(steps, half, monitorWidth); got != twoThirds {
		t.Fatalf("from half = %d, want %d", got, twoThirds)
	}
	if got := action.ResizeStepWidth(steps, twoThirds, monitorWidth); got != third {
		t.Fatalf("from two-thirds should wrap to first step, got %d", got)
	}
}

func TestResizeStepWidthSingleStepAlwaysMaximizes(t *testing.T) {
	got := action.ResizeStepWidth([]float64{1.0}, 400, 1200)
	if got != 1200 {
		t.Fatalf("single-step resize = %d, want 1200", got)
	}
}

func TestCenterScrollLeftCentersWindowInMonitor(t *testing.T) {
	// A 400-wide window whose left is at x=100, on a 1000-wide monitor
	// starting at x=0, should produce a scroll that puts its center
	// (100+200=300) at the monitor's center (500): scroll_left=100-0-500+200=-200.
	got := action.CenterScrollLeft(100, 400, 0, 1000)
	want := 100 - 0 - 500 + 200
	if got != want {
		t.Fatalf("CenterScrollLeft = %d, want %d", got, want)
	}
}
