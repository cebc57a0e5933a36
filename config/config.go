package config

import (
	"github.com/go-ini/ini"
	"github.com/pkg/errors"

	"git.sr.ht/~rjarry/histnav/lib/log"
	"git.sr.ht/~rjarry/histnav/lib/xdg"
)

type Config struct {
	General GeneralConfig
	History HistoryConfig
}

func Defaults() *Config {
	return &Config{
		General: defaultGeneralConfig(),
		History: defaultHistoryConfig(),
	}
}

// DefaultPath is where histnav.conf is looked up when no path is given.
func DefaultPath() string {
	return xdg.ConfigPath("histnav", "histnav.conf")
}

// LoadConfigFromFile reads the config at path, or at DefaultPath() when path
// is nil. A missing file yields the defaults.
func LoadConfigFromFile(path *string) (*Config, error) {
	filename := DefaultPath()
	if path != nil {
		filename = xdg.ExpandHome(*path)
	}
	conf, err := LoadConfig(filename)
	if err != nil {
		return nil, errors.Wrap(err, xdg.TildeHome(filename))
	}
	log.Debugf("loaded %s", xdg.TildeHome(filename))
	return conf, nil
}

// LoadConfig parses source, which can be anything ini.Load accepts: a file
// name, raw bytes or an io.ReadCloser.
func LoadConfig(source interface{}) (*Config, error) {
	file, err := ini.LoadSources(ini.LoadOptions{
		KeyValueDelimiters: "=",
		Loose:              true,
	}, source)
	if err != nil {
		return nil, errors.Wrap(err, "parse")
	}
	conf := Defaults()
	if err := conf.parseGeneral(file); err != nil {
		return nil, errors.Wrap(err, "[general]")
	}
	if err := conf.parseHistory(file); err != nil {
		return nil, errors.Wrap(err, "[history]")
	}
	return conf, nil
}
