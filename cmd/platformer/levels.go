package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/level"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List and validate the level pack",
	Long: `Loads the level pack named by --levels (or the built-in levels),
validates every level and prints a summary.

Examples:
  platformer levels
  platformer levels --levels ./levels
  platformer levels --levels ./levels/extra.yaml`,
	Run: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	pack, err := level.Load(flagLevels)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	source := flagLevels
	if source == "" {
		source = "built-in"
	}
	fmt.Printf("Levels (%s):\n", source)
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, l := range pack.Levels() {
		if len(l.Name) > maxNameLen {
			maxNameLen = len(l.Name)
		}
	}

	// Print header
	fmt.Printf("  %-3s  %-*s  %9s  %5s  %7s  %4s\n", "#", maxNameLen, "Name", "Platforms", "Coins", "Enemies", "Exit")
	fmt.Printf("  %-3s  %-*s  %9s  %5s  %7s  %4s\n", "-", maxNameLen, "----", "---------", "-----", "-------", "----")

	for i, l := range pack.Levels() {
		exit := "no"
		if l.Exit != nil {
			exit = "yes"
		}
		fmt.Printf("  %-3d  %-*s  %9d  %5d  %7d  %4s\n",
			i+1, maxNameLen, l.Name, len(l.Platforms), len(l.Coins), len(l.Enemies), exit)
	}

	fmt.Println()
	fmt.Println("Run 'platformer play <#>' to play a level.")
}
