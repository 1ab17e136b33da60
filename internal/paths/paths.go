package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const appDirName = "twig"

// AppDataDir returns the application directory for the log file.
// Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)

	// Use restrictive permissions for application data
	_ = os.MkdirAll(path, 0700)

	return path
}

// AppLocalDataDir returns the OS-appropriate local data directory, where
// the history database lives.
//   - macOS: ~/Library/Application Support/twig
//   - Linux: $XDG_DATA_HOME/twig or ~/.local/share/twig
//   - Windows: %LOCALAPPDATA%\twig
func AppLocalDataDir() string {
	var base string

	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		base = filepath.Join(home, "Library", "Application Support")

	case "windows":
		base = os.Getenv("LOCALAPPDATA")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, "AppData", "Local")
		}

	default:
		base = os.Getenv("XDG_DATA_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, ".local", "share")
		}
	}

	return filepath.Join(base, appDirName)
}

// ConfigFilePath returns ~/.twigrc.
func ConfigFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".twigrc"), nil
}

// LogFilePath returns the path to the application log file:
//   - macOS: ~/Library/Application Support/twig/twig.log
//   - Linux: $XDG_CONFIG_HOME/twig/twig.log or ~/.config/twig/twig.log
//   - Windows: %AppData%\twig\twig.log
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "twig.log")
}

// HistoryDBPath returns the path to the console history database.
func HistoryDBPath() string {
	return filepath.Join(AppLocalDataDir(), "history.db")
}
