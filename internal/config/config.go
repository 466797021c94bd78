package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Server    ServerConfig    `toml:"server"`
	Scripting ScriptingConfig `toml:"scripting"`
	Network   NetworkConfig   `toml:"network"`
	Data      DataConfig      `toml:"data"`
	Logging   LoggingConfig   `toml:"logging"`
}

type ServerConfig struct {
	Name      string `toml:"name"`
	ID        int    `toml:"id"`
	StartTime int64  // set at boot, not from config
}

type ScriptingConfig struct {
	Dir     string   `toml:"dir"`
	Modules []string `toml:"modules"` // init order; names not listed stay disabled
}

type NetworkConfig struct {
	TickRate     time.Duration `toml:"tick_rate"`
	OutQueueSize int           `toml:"out_queue_size"` // per-character outbox preallocation
}

type DataConfig struct {
	Emotes string `toml:"emotes"`
	Spawns string `toml:"spawns"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Server.StartTime = time.Now().Unix()
	return cfg, nil
}

// Default returns the built-in configuration used when no file overrides it.
func Default() *Config {
	return defaults()
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Name: "LGS",
			ID:   1,
		},
		Scripting: ScriptingConfig{
			Dir:     "scripts",
			Modules: []string{"baseentity", "selfemote"},
		},
		Network: NetworkConfig{
			TickRate:     200 * time.Millisecond,
			OutQueueSize: 256,
		},
		Data: DataConfig{
			Emotes: "data/yaml/emotes.yaml",
			Spawns: "data/yaml/spawns.yaml",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
