package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/cascade-wm/cascade/internal/config"
	"github.com/cascade-wm/cascade/internal/geometry"
	"github.com/cascade-wm/cascade/internal/policy"
	"github.com/cascade-wm/cascade/internal/runtime"
	"github.com/cascade-wm/cascade/internal/runtime/fake"
)

var debugMode bool

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Drive the core against a scripted two-monitor demo scene",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runDemo()
		},
	}
	cmd.Flags().BoolVar(&debugMode, "debug", false, "Panic on invariant violations instead of logging and skipping")
	return cmd
}

func newDebugDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "debug-dump",
		Short: "Build the demo scene and print its arena state as a colored tree",
		RunE: func(_ *cobra.Command, _ []string) error {
			c, _, _ := buildDemoScene()
			fmt.Println(renderDump(c.DebugDump()))
			return nil
		},
	}
}

// runDemo wires a Controller against two fake outputs and three fake
// windows, then replays a short scripted sequence of key presses -
// navigate, move across monitors, resize - printing the arena state
// after each step. It stands in for a real compositor event loop, which
// this repository does not implement.
func runDemo() error {
	if debugMode {
		policy.Debug = true
	}

	c, outputs, windows := buildDemoScene()

	steps := []struct {
		label string
		event runtime.KeyEvent
	}{
		{"navigate left", runtime.KeyEvent{Keysym: "left", Modifiers: runtime.ModSuper, Pressed: true}},
		{"move window right across monitors", runtime.KeyEvent{Keysym: "right", Modifiers: runtime.ModSuper | runtime.ModCtrl, Pressed: true}},
		{"resize focused window", runtime.KeyEvent{Keysym: "r", Modifiers: runtime.ModSuper, Pressed: true}},
	}

	fmt.Printf("cascade demo: %d monitors, %d windows\n\n", len(outputs), len(windows))
	fmt.Println(renderDump(c.DebugDump()))

	for _, step := range steps {
		c.HandleKey(step.event)
		for _, o := range outputs {
			o.Tick()
		}
		fmt.Printf("\n--- after %s ---\n\n", step.label)
		fmt.Println(renderDump(c.DebugDump()))
	}

	return nil
}

func buildDemoScene() (*policy.Controller, []*fake.Output, []*fake.Window) {
	cfg := config.LoadOrDefault()

	focusAPI := &fake.Focus{}
	keyboard := &fake.Keyboard{}
	c := policy.New(cfg, focusAPI, keyboard)

	left := fake.NewOutput("DP-1", geometry.NewRectangle(geometry.Point{}, geometry.Size{Width: 1920, Height: 1080}))
	right := fake.NewOutput("DP-2", geometry.NewRectangle(geometry.Point{X: 1920, Y: 0}, geometry.Size{Width: 1920, Height: 1080}))
	c.OutputCreate(left)
	c.OutputCreate(right)

	windows := []*fake.Window{
		fake.NewWindow("terminal", geometry.NewRectangle(geometry.Point{}, geometry.Size{Width: 800, Height: 600})),
		fake.NewWindow("editor", geometry.NewRectangle(geometry.Point{}, geometry.Size{Width: 1000, Height: 700})),
		fake.NewWindow("browser", geometry.NewRectangle(geometry.Point{}, geometry.Size{Width: 1200, Height: 800})),
	}
	for _, w := range windows {
		c.WindowReady(w)
	}

	return c, []*fake.Output{left, right}, windows
}

// renderDump colorizes DebugDump's plain-text lines: monitor lines in
// cyan, workspace lines in yellow, grounded on the teacher's
// lipgloss-style-to-ansi.Style conversion in internal/app/render_helpers.go.
func renderDump(dump string) string {
	var cyan, yellow ansi.Style
	cyan = cyan.ForegroundColor(ansi.Color(ansi.ExtendedColor(6)))
	yellow = yellow.ForegroundColor(ansi.Color(ansi.ExtendedColor(3)))
	reset := "\x1b[0m"

	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(dump, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "monitor "):
			b.WriteString(cyan.String())
			b.WriteString(line)
			b.WriteString(reset)
		case strings.HasPrefix(line, "workspace "):
			b.WriteString(yellow.String())
			b.WriteString(line)
			b.WriteString(reset)
		default:
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
