package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName names the per-user configuration directory.
const AppName = "qqbot"

// ConfigFileName is the name of the bot configuration file.
const ConfigFileName = "qqbot.cfg"

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// UserConfigDir returns <ConfigHome>/qqbot.
func UserConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// UserConfigFile returns <ConfigHome>/qqbot/qqbot.cfg.
func UserConfigFile() string {
	return filepath.Join(UserConfigDir(), ConfigFileName)
}

// ResolveConfigFile returns explicit when set, otherwise the first existing
// candidate in the resolution order, otherwise ConfigFileName.
func ResolveConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}

	for _, candidate := range []string{ConfigFileName, UserConfigFile()} {
		if isRegular(candidate) {
			return candidate
		}
	}

	return ConfigFileName
}

func isRegular(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
