package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/matmul/internal/logging"
)

type fileConfig struct {
	Log fileLogConfig `toml:"log"`
}

type fileLogConfig struct {
	Level     string `toml:"level"`
	Timestamp bool   `toml:"timestamp"`
	NoColor   bool   `toml:"no_color"`
	Disabled  bool   `toml:"disabled"`
}

// loadLogOverrides reads the [log] table from path. An empty path yields no
// overrides.
func loadLogOverrides(path string) (logging.Overrides, error) {
	var out logging.Overrides
	path = strings.TrimSpace(path)
	if path == "" {
		return out, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return logging.Overrides{}, fmt.Errorf("load matmul config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return logging.Overrides{}, fmt.Errorf("load matmul config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("log", "level") {
		level := strings.TrimSpace(raw.Log.Level)
		if _, err := logging.ParseLevel(level); err != nil {
			return logging.Overrides{}, fmt.Errorf("parse log.level: %w", err)
		}
		out.Level = &level
	}
	if meta.IsDefined("log", "timestamp") {
		out.Timestamp = &raw.Log.Timestamp
	}
	if meta.IsDefined("log", "no_color") {
		out.NoColor = &raw.Log.NoColor
	}
	if meta.IsDefined("log", "disabled") {
		out.Disabled = &raw.Log.Disabled
	}
	return out, nil
}
