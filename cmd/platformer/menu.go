package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a level and difficulty, then play",
	Long: `Start in interactive menu mode.

Use Up/Down to choose a level and Left/Right to change the difficulty.
After a session ends, you return to the menu to play again.

Controls:
  Up/Down/j/k     - Choose level
  Left/Right/h/l  - Change difficulty
  Enter/Space     - Play
  Q/Esc           - Quit

Examples:
  platformer menu
  platformer menu --levels ./levels`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "normal", "Initial difficulty: easy, normal, hard")
	menuCmd.Flags().BoolVar(&flagCompact, "compact", false, "Shrink the canvas to fit the terminal")
	menuCmd.Flags().BoolVar(&flagMute, "mute", false, "Start muted")
}

func runMenu(_ *cobra.Command, _ []string) {
	diff, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		fail(err)
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fail(err)
	}
	_, pack, err := loadAssets(logger)
	closeLog()
	if err != nil {
		fail(err)
	}

	// Menu loop
	for {
		res, err := tui.RunMenu(pack, diff)
		if err != nil {
			fail(err)
		}
		if res.Quit {
			return
		}
		diff = res.Difficulty

		if err := playTerminal(res.Level, diff); err != nil {
			fail(err)
		}
	}
}
