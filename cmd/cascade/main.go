// Package main implements cascade - the core engine of a horizontally
// scrolling tiling window manager, driven here by an in-memory demo
// runtime since no compositor backend ships in this repository.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cascade",
		Short: "Core engine of a horizontally scrolling tiling window manager",
		Long: `cascade is the window-arrangement and interaction core of a
horizontally scrolling tiling window manager: windows, workspaces,
monitors, MRU focus, drag/resize gestures, the layout and animation
engines, and the keybinding-driven action dispatcher.

No compositor backend ships in this repository (out of scope for the
core) - "cascade run" drives the core against a scripted in-memory
demo scene so the wiring can be exercised end to end from a terminal.`,
		Version:      fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newDebugDumpCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
