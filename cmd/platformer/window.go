package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/audio"
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/platform/window"
)

var (
	flagWidth  int
	flagHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window [level]",
	Short: "Play in a desktop window",
	Long: `Open a window and play at the given level (default 1).

Controls:
  Left/A, Right/D   - Move
  Up/W/Space        - Jump
  Touch/Mouse       - Left/right third moves, middle third jumps
  M                 - Mute
  R                 - Restart (after game over or the last level)
  Q/Esc             - Quit

With --compact the canvas shrinks to fit --width x --height and on-screen
controls are drawn below it.

Examples:
  platformer window
  platformer window 2 --difficulty easy
  platformer window --compact --width 420 --height 700`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard")
	windowCmd.Flags().BoolVar(&flagCompact, "compact", false, "Compact layout with on-screen controls")
	windowCmd.Flags().BoolVar(&flagMute, "mute", false, "Start muted")
	windowCmd.Flags().IntVar(&flagWidth, "width", 820, "Available width in pixels (compact layout)")
	windowCmd.Flags().IntVar(&flagHeight, "height", 650, "Available height in pixels (compact layout)")
}

func runWindow(_ *cobra.Command, args []string) {
	lvl, err := levelArg(args)
	if err != nil {
		fail(err)
	}
	diff, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		fail(err)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fail(err)
	}
	defer closeLog()

	cfg, pack, err := loadAssets(logger)
	if err != nil {
		fail(err)
	}

	var backend audio.Backend = audio.Nop{}
	if tones, err := window.NewToneBackend(); err != nil {
		logger.Warn("sound disabled", "err", err)
	} else {
		backend = tones
	}

	err = window.Run(window.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  flagWidth,
			ScreenH:  flagHeight,
			TickRate: flagFPS,
			Compact:  flagCompact,
		},
		Config:     cfg,
		Levels:     pack,
		Level:      lvl,
		Difficulty: diff,
		Muted:      flagMute,
		Sound:      audio.NewMixer(backend, logger),
		Logger:     logger,
	})
	if err != nil {
		closeLog()
		fail(err)
	}
}
