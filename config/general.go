package config

import (
	"github.com/go-ini/ini"

	"git.sr.ht/~rjarry/histnav/lib/log"
)

type GeneralConfig struct {
	LogFile  string       `ini:"log-file"`
	LogLevel log.LogLevel `ini:"-"`
}

func defaultGeneralConfig() GeneralConfig {
	return GeneralConfig{
		LogLevel: log.INFO,
	}
}

func (config *Config) parseGeneral(file *ini.File) error {
	gen, err := file.GetSection("general")
	if err != nil {
		return nil
	}
	if err := gen.MapTo(&config.General); err != nil {
		return err
	}
	if key, err := gen.GetKey("log-level"); err == nil {
		level, err := log.ParseLevel(key.String())
		if err != nil {
			return err
		}
		config.General.LogLevel = level
	}
	return nil
}
