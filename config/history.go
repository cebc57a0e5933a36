package config

import (
	"strings"

	"github.com/go-ini/ini"
	"github.com/pkg/errors"

	"git.sr.ht/~rjarry/histnav/lib/history"
	"git.sr.ht/~rjarry/histnav/lib/log"
)

type HistoryConfig struct {
	Limit   int      `ini:"limit"`
	Initial []string `ini:"initial" delim:","`
}

func defaultHistoryConfig() HistoryConfig {
	return HistoryConfig{
		Limit: history.DefaultLimit,
	}
}

func (config *Config) parseHistory(file *ini.File) error {
	sec, err := file.GetSection("history")
	if err != nil {
		return nil
	}
	if err := sec.StrictMapTo(&config.History); err != nil {
		return err
	}
	if config.History.Limit < 1 {
		return errors.Errorf("limit: must be at least 1, got %d",
			config.History.Limit)
	}
	var initial []string
	for _, entry := range config.History.Initial {
		entry = strings.TrimSpace(entry)
		if entry != "" {
			initial = append(initial, entry)
		}
	}
	config.History.Initial = initial
	log.Debugf("histnav.conf: [history] %#v", config.History)
	return nil
}
