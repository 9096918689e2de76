// platformer is a 2D platformer that runs in the terminal or in a window.
//
// Usage:
//
//	platformer play [level]    - Play in the terminal
//	platformer menu            - Pick a level and difficulty, then play
//	platformer window [level]  - Play in a desktop window
//	platformer levels          - List and validate the level pack
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--config <path>       - Physics and difficulty config YAML
//	--levels <path>       - Level pack file or directory
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagConfig     string
	flagLevels     string
	flagLogLevel   string
	flagLogFile    string
	flagDifficulty string
	flagCompact    bool
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Platformer - jump, collect coins and reach the exit",
	Long: `Platformer is a side-view platform game. Run and jump across
platforms, collect coins, avoid patrolling enemies and reach the glowing
exit portal to finish each level.

Available commands:
  play     - Play in the terminal
  menu     - Interactive level and difficulty picker
  window   - Play in a desktop window
  levels   - List and validate levels

Examples:
  platformer play
  platformer play 2 --difficulty hard
  platformer menu
  platformer window --compact
  platformer levels --levels ./levels`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom physics config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Path to a level pack file or directory (default: built-in levels)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(levelsCmd)
}
