package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for edir
	EnvConfigDir = "EDIR_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for edir
	EnvStateDir = "EDIR_STATE_DIR"

	// EnvEditor names the editor used in preference to $EDITOR
	EnvEditor = "EDIR_EDITOR"

	// EnvGenericEditor is the conventional editor variable
	EnvGenericEditor = "EDITOR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

const (
	// AppName is used for the config/state directory names
	AppName = "edir"

	// ConfigFileName is the TOML configuration file inside ConfigDir
	ConfigFileName = "config.toml"

	// FlagsFileName holds default command-line flags, one or more per line.
	// It lives directly in the XDG config home, not in ConfigDir.
	FlagsFileName = AppName + "-flags.conf"

	// LogFileName is the name of the log file
	LogFileName = AppName + ".log"

	// StagingDirName is created beside each rename destination to hold
	// entries in flight. It never survives a run.
	StagingDirName = ".tmp-" + AppName

	// ListingBaseName is the stem of the temporary file handed to the editor
	ListingBaseName = AppName
)

// ConfigDir returns the directory holding edir's configuration
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, AppName)
}

// ConfigFilePath returns the default TOML configuration file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// FlagsFilePath returns the path of the default-flags file
func FlagsFilePath() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return filepath.Join(ExpandHome(dir), FlagsFileName)
	}
	return filepath.Join(xdg.ConfigHome, FlagsFileName)
}

// StateDir returns the directory for edir's state such as logs
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.StateHome, AppName)
}

// LogFilePath returns the path to the log file
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}
