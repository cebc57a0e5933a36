package xdg

import (
	"os"
	"os/user"
	"path"
	"strings"

	"git.sr.ht/~rjarry/histnav/lib/log"
)

// assign to a local var to allow mocking in unit tests
var currentUser = user.Current

// HomeDir returns $HOME, falling back on the passwd entry of the current
// user.
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		u, e := currentUser()
		if e == nil {
			home = u.HomeDir
		} else {
			log.Errorf("HomeDir: %s (while handling %s)", e, err)
		}
	}
	return home
}

// ExpandHome joins fragments and replaces a leading ~ with the home dir.
func ExpandHome(fragments ...string) string {
	res := path.Join(fragments...)
	if strings.HasPrefix(res, "~/") || res == "~" {
		res = HomeDir() + strings.TrimPrefix(res, "~")
	}
	return res
}

// TildeHome is the inverse of ExpandHome.
func TildeHome(path string) string {
	home := HomeDir()
	if home == "" {
		return path
	}
	if strings.HasPrefix(path, home+"/") || path == home {
		path = "~" + strings.TrimPrefix(path, home)
	}
	return path
}
