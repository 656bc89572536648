package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// AgentSpec selects and tunes the agent playing one side.
type AgentSpec struct {
	Kind  string `mapstructure:"kind"`  // "minimax" or "random"
	Depth int    `mapstructure:"depth"` // minimax only
	Seed  uint64 `mapstructure:"seed"`  // random only
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

type Config struct {
	Mode      string    `mapstructure:"mode"` // "match" or "ladder"
	Games     int       `mapstructure:"games"`
	MaxMoves  int       `mapstructure:"max_moves"`
	Alternate bool      `mapstructure:"alternate"` // Swap colors every other game
	OutputDir string    `mapstructure:"output_dir"`
	Log       LogConfig `mapstructure:"log"`
	Red       AgentSpec `mapstructure:"red"`
	Blue      AgentSpec `mapstructure:"blue"`
}

// Load reads the configuration file at path, if given, applies QUADRA_*
// environment overrides and fills in defaults for everything else.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("mode", "match")
	v.SetDefault("games", 30)
	v.SetDefault("max_moves", 300)
	v.SetDefault("alternate", true)
	v.SetDefault("output_dir", "runs")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", true)
	v.SetDefault("red.kind", "minimax")
	v.SetDefault("red.depth", 3)
	v.SetDefault("red.seed", 0)
	v.SetDefault("blue.kind", "minimax")
	v.SetDefault("blue.depth", 3)
	v.SetDefault("blue.seed", 0)

	v.SetEnvPrefix("QUADRA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Mode != "match" && c.Mode != "ladder" {
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if c.Games <= 0 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}
	if c.MaxMoves <= 0 {
		return fmt.Errorf("max_moves must be positive, got %d", c.MaxMoves)
	}
	sides := []struct {
		name string
		spec AgentSpec
	}{{"red", c.Red}, {"blue", c.Blue}}
	for _, side := range sides {
		switch side.spec.Kind {
		case "minimax":
			if side.spec.Depth <= 0 {
				return fmt.Errorf("%s: minimax depth must be positive, got %d", side.name, side.spec.Depth)
			}
		case "random":
		default:
			return fmt.Errorf("%s: unknown agent kind %q", side.name, side.spec.Kind)
		}
	}
	return nil
}
