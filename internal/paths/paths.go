// Package paths resolves the configuration and data directories.
//
// The config directory comes from the --config-dir flag, then TODOS_CONFIG_DIR,
// then the platform default. The data directory comes from the --data-dir
// flag, then data_dir in config.yaml, then TODOS_DATA_DIR, then .todos-db in
// the working directory. A leading "~" is expanded in every override.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	homedir "github.com/mitchellh/go-homedir"
)

// AppName names the per-user platform directories.
const AppName = "todos"

// DefaultDataDirName is the data directory created under the working
// directory when nothing overrides it.
const DefaultDataDirName = ".todos-db"

// ConfigFileName is the configuration file inside the config directory.
const ConfigFileName = "config.yaml"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "TODOS_CONFIG_DIR"
	EnvDataDir   = "TODOS_DATA_DIR"
)

// platformDir holds lookups that tests override.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
	getwd         func() (string, error)
}{
	homeDir:       homedir.Dir,
	userConfigDir: os.UserConfigDir,
	getwd:         os.Getwd,
}

// DefaultConfigDir returns the platform configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/todos (fallback ~/.config/todos)
// Others:  os.UserConfigDir()/todos
func DefaultConfigDir() (string, error) {
	if runtime.GOOS == "linux" {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, AppName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", fmt.Errorf("find home directory: %w", err)
		}
		return filepath.Join(home, ".config", AppName), nil
	}
	dir, err := platformDir.userConfigDir()
	if err != nil {
		return "", fmt.Errorf("find config directory: %w", err)
	}
	return filepath.Join(dir, AppName), nil
}

// ResolveConfigDir applies flag > TODOS_CONFIG_DIR > DefaultConfigDir.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir applies flag > config value > TODOS_DATA_DIR > ./.todos-db.
func ResolveDataDir(flag, configValue string) (string, error) {
	for _, v := range []string{flag, configValue, os.Getenv(EnvDataDir)} {
		if v != "" {
			return Abs(v)
		}
	}
	cwd, err := platformDir.getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}

// ConfigFile returns the config.yaml path inside dir.
func ConfigFile(dir string) string {
	return filepath.Join(dir, ConfigFileName)
}

// Abs expands a leading "~" and makes path absolute.
func Abs(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("expand %q: %w", path, err)
	}
	return filepath.Abs(expanded)
}
