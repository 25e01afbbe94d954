package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultModeEnvVar    = "DEFAULT_MODE"
	DefaultModeRectangle = "rectangle"
	DefaultModeFreeshape = "freeshape"

	defaultHotplugPollMs = 500
)

type LoadOptions struct {
	DefaultModeOverride string
	OutputDirOverride   string
}

type Config struct {
	DefaultMode           string
	OutputDir             string
	EnableFileLogging     bool
	SuppressOpenAnimation bool
	HotplugPoll           time.Duration
}

func Load() (*Config, error) {
	return LoadWithOptions(LoadOptions{})
}

func LoadWithOptions(opts LoadOptions) (*Config, error) {
	// Load configuration from sources in priority order:
	// 1) .env in the application (executable) directory
	// 2) If not found, use SPATIAL_CAPTURE env var as a path to a config file
	if envPath := resolveEnvPath(); envPath != "" {
		_ = godotenv.Load(envPath)
	}

	cfg := &Config{
		DefaultMode:           resolveDefaultModeValue(opts),
		OutputDir:             resolveOutputDir(opts),
		EnableFileLogging:     strings.ToLower(os.Getenv("ENABLE_FILE_LOGGING")) == "true",
		SuppressOpenAnimation: resolveSuppression(),
		HotplugPoll:           resolveHotplugPoll(),
	}

	return cfg, nil
}

func resolveEnvPath() string {
	execPath, err := os.Executable()
	if err != nil {
		return ""
	}

	execDir := filepath.Dir(execPath)
	exeEnv := filepath.Join(execDir, ".env")
	if _, err := os.Stat(exeEnv); err == nil {
		return exeEnv
	}

	if alt := os.Getenv("SPATIAL_CAPTURE"); alt != "" {
		if _, err := os.Stat(alt); err == nil {
			return alt
		}
	}

	return ""
}

func resolveOutputDir(opts LoadOptions) string {
	if override := strings.TrimSpace(opts.OutputDirOverride); override != "" {
		return override
	}
	if dir := strings.TrimSpace(os.Getenv("OUTPUT_DIR")); dir != "" {
		return dir
	}
	return os.TempDir()
}

// resolveSuppression defaults to suppressing OS window-open animations. With
// animations on, N simultaneous full-screen overlays fade in at slightly
// different times and read as flicker across monitors.
func resolveSuppression() bool {
	return strings.ToLower(os.Getenv("SUPPRESS_OPEN_ANIMATION")) != "false"
}

func resolveHotplugPoll() time.Duration {
	ms := defaultHotplugPollMs
	if v := os.Getenv("HOTPLUG_POLL_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ms = n
		}
	}
	return time.Duration(ms) * time.Millisecond
}

// ResolveMode normalizes a selection-mode string. The freeshape (squiggle)
// variant is the historical default.
func ResolveMode(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "rect", DefaultModeRectangle:
		return DefaultModeRectangle
	case "free", "squiggle", DefaultModeFreeshape:
		return DefaultModeFreeshape
	default:
		return DefaultModeFreeshape
	}
}

func resolveDefaultModeValue(opts LoadOptions) string {
	if override := strings.TrimSpace(opts.DefaultModeOverride); override != "" {
		return ResolveMode(override)
	}
	return ResolveMode(os.Getenv(DefaultModeEnvVar))
}
