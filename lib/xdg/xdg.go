package xdg

import (
	"os"
	"path/filepath"
	"runtime"
)

// ConfigPath returns paths joined and made relative to the user config dir,
// unless the result is already absolute.
func ConfigPath(paths ...string) string {
	res := filepath.Join(paths...)
	if filepath.IsAbs(res) {
		return res
	}
	return filepath.Join(configHome(), res)
}

func configHome() string {
	if runtime.GOOS == "darwin" {
		if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
			return dir
		}
		return ExpandHome("~/Library/Preferences")
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ExpandHome("~/.config")
	}
	return dir
}
