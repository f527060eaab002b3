// Package paths resolves configuration and host descriptor directory
// locations.
// Implements: prd010-configuration-directories (R1.2, R1.3, R2.2, R2.3, R8).
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultHostsDirName is the CWD-relative host descriptor directory per
// prd010 R2.2.
const DefaultHostsDirName = ".prism-hosts"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "PRISM_CONFIG_DIR"
	EnvHostsDir  = "PRISM_HOSTS_DIR"
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
// Linux:   $XDG_CONFIG_HOME/prism (fallback ~/.config/prism)
// macOS:   ~/Library/Application Support/prism
// Windows: %APPDATA%/prism
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "prism"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "prism"), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "prism"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > PRISM_CONFIG_DIR env > DefaultConfigDir().
//
// If flag is non-empty it wins. Otherwise the PRISM_CONFIG_DIR environment
// variable is checked. If neither is set, the platform default is returned.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveHostsDir returns the host descriptor directory following the
// precedence chain: flag > configYAMLValue > PRISM_HOSTS_DIR env >
// $(CWD)/.prism-hosts.
//
// The CWD-relative default keeps descriptor files next to the project
// they describe when no override is active.
func ResolveHostsDir(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvHostsDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultHostsDirName), nil
}
