package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/audio"
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
)

var flagWatch bool

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play in the terminal",
	Long: `Start playing at the given level (default 1). Levels that do not
exist fall back to level 1. Completing a level loads the next one.

Controls:
  Left/A, Right/D   - Move
  Up/W/Space        - Jump
  Mouse             - Left/right third moves, middle third jumps
  M                 - Mute
  R                 - Restart (after game over or the last level)
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Slower enemies, more lives
  normal - Default speed and lives
  hard   - Faster enemies, fewer lives

Examples:
  platformer play
  platformer play 3 --difficulty hard
  platformer play --levels ./levels --watch
  platformer play --compact --mute`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagCompact, "compact", false, "Shrink the canvas to fit the terminal")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start muted")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload levels from --levels when they change")
}

func runPlay(_ *cobra.Command, args []string) {
	lvl, err := levelArg(args)
	if err != nil {
		fail(err)
	}
	diff, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		fail(err)
	}
	if err := playTerminal(lvl, diff); err != nil {
		fail(err)
	}
}

// playTerminal runs one terminal session.
func playTerminal(lvl int, diff config.Difficulty) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, pack, err := loadAssets(logger)
	if err != nil {
		return err
	}

	width, height := tui.TerminalSize()
	return tui.Run(tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Compact:  flagCompact,
		},
		Config:     cfg,
		Levels:     pack,
		LevelsPath: flagLevels,
		Watch:      flagWatch,
		Level:      lvl,
		Difficulty: diff,
		Muted:      flagMute,
		Sound:      audio.NewMixer(audio.NewBellBackend(os.Stderr), logger),
		Logger:     logger,
	})
}
