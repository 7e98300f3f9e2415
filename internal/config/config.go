// Package config resolves process-wide settings from command-line flags and
// CONVERTX_* environment variables. Flags win over the environment, which
// wins over defaults. No configuration file is ever read.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "CONVERTX"

// Flag and key names.
const (
	KeyLogLevel = "log-level"
	KeyColor    = "color"
)

// ColorMode controls ANSI colors in listings. Conversion results are never
// colored.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Config is the resolved settings for one invocation.
type Config struct {
	LogLevel slog.Level
	Color    ColorMode
}

// RegisterFlags adds the global flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(KeyLogLevel, "warn", "Log level on stderr: debug, info, warn, error")
	fs.String(KeyColor, string(ColorAuto), "Colorize listings: auto, always, never")
}

// Load resolves the settings. fs may be nil, in which case only the
// environment and defaults are consulted.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyColor, string(ColorAuto))

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString(KeyLogLevel))); err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", KeyLogLevel, v.GetString(KeyLogLevel), err)
	}

	mode, err := parseColor(v.GetString(KeyColor))
	if err != nil {
		return nil, err
	}
	// NO_COLOR (https://no-color.org) applies unless color was chosen explicitly.
	if os.Getenv("NO_COLOR") != "" && !explicitColor(fs) {
		mode = ColorNever
	}

	return &Config{LogLevel: level, Color: mode}, nil
}

func parseColor(s string) (ColorMode, error) {
	switch mode := ColorMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	default:
		return "", fmt.Errorf("invalid %s %q: want auto, always or never", KeyColor, s)
	}
}

func explicitColor(fs *pflag.FlagSet) bool {
	if fs != nil && fs.Changed(KeyColor) {
		return true
	}
	_, ok := os.LookupEnv(envPrefix + "_COLOR")
	return ok
}
