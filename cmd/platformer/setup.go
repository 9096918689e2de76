package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/level"
)

// fail prints the error and exits.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// newLogger creates the logger for a command. Without --log-file, logs go
// to fallback; the terminal shell passes io.Discard since it owns the
// screen. The returned close function releases the log file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closeFn = f, func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
		Level:           lvl,
	})
	return logger, closeFn, nil
}

// loadAssets loads the physics config and the level pack named by the
// global flags.
func loadAssets(logger *log.Logger) (*config.Config, *level.Pack, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("config loaded", "source", source)

	pack, err := level.Load(flagLevels)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("levels loaded", "count", pack.Count(), "path", flagLevels)
	return &cfg, pack, nil
}

// levelArg parses the optional 1-based level argument.
func levelArg(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid level %q: must be a number", args[0])
	}
	return n, nil
}
