package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Sim     SimConfig     `toml:"sim"`
	Server  ServerConfig  `toml:"server"`
	Logging LoggingConfig `toml:"logging"`
}

type SimConfig struct {
	Width    int           `toml:"width"`
	Height   int           `toml:"height"`
	TickRate time.Duration `toml:"tick_rate"`
	Seed     int64         `toml:"seed"` // 0 = seed from the clock
	Drones   int           `toml:"drones"`
	Hunters  int           `toml:"hunters"`
	Wisps    int           `toml:"wisps"`
	Sparks   int           `toml:"sparks"`
}

type ServerConfig struct {
	BindAddress string `toml:"bind_address"`
	HostKeyFile string `toml:"host_key_file"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // log sink; the terminal belongs to tcell
}

// Load reads a TOML config from path, layered over defaults. A missing
// file is not an error — the sandbox runs with zero setup.
func Load(path string) (*Config, error) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Sim: SimConfig{
			Width:    80,
			Height:   20,
			TickRate: 16 * time.Millisecond,
			Drones:   2,
			Hunters:  2,
			Wisps:    3,
			Sparks:   2,
		},
		Server: ServerConfig{
			BindAddress: ":2222",
			HostKeyFile: "server_host_key",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			File:   "glyphsim.log",
		},
	}
}
