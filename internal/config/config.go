// Package config loads the textchunk CLI configuration from a TOML file.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/emeiziying/textchunk"
)

type Config struct {
	Chunking textchunk.Config `toml:"chunking"`
	Output   OutputConfig     `toml:"output"`
}

type OutputConfig struct {
	// Pretty enables indented JSON output.
	Pretty bool `toml:"pretty"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Chunking: textchunk.DefaultConfig(),
	}
}

// Load reads config: defaults -> TOML file -> env vars (env wins).
// A missing file is not an error; the defaults stand.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("TEXTCHUNK_CONFIG")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, err
			}
		} else if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}

	if v := os.Getenv("TEXTCHUNK_STRATEGY"); v != "" {
		s, err := textchunk.ParseStrategy(v)
		if err != nil {
			return cfg, err
		}
		cfg.Chunking.Strategy = s
	}

	return cfg, cfg.Chunking.Validate()
}
