package cmd

import (
	"os"

	"github.com/corey/convertx/internal/config"
)

// isStdoutTTY returns true if stdout is connected to a terminal.
func isStdoutTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// resolveColor decides whether listings use ANSI colors.
func resolveColor(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // auto
		return isStdoutTTY()
	}
}
