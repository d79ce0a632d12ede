// Package paths resolves the configuration directory and store path
// locations for the drawer CLI.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultStoreName is the store created in the working directory when no
// override is active. The .jsonl extension selects the file backend.
const DefaultStoreName = "recipes.jsonl"

// Environment variable names for overrides.
const (
	EnvConfigDir = "DRAWER_CONFIG_DIR"
	EnvStore     = "DRAWER_STORE"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/drawer (fallback ~/.config/drawer)
// macOS:   ~/Library/Application Support/drawer
// Windows: %APPDATA%/drawer
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "drawer"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "drawer"), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "drawer"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > DRAWER_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveStorePath returns the store path following the precedence chain:
// flag > configYAMLValue > DRAWER_STORE env > $(CWD)/recipes.jsonl.
//
// The extension of the resolved path selects the backend; resolution itself
// never touches the filesystem beyond reading the working directory.
func ResolveStorePath(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvStore); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultStoreName), nil
}
