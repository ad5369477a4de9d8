// Package config loads stakblok settings from defaults, an optional config
// file, STAKBLOK_* environment variables and command line flags, in that
// order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/plus3/stakblok/tetris"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "STAKBLOK"

type Config struct {
	AppName    string    `mapstructure:"appName"`
	Board      BoardConf `mapstructure:"board"`
	Game       GameConf  `mapstructure:"game"`
	Log        LogConf   `mapstructure:"log"`
	MetricPort int       `mapstructure:"metricPort"`
	Debug      DebugConf `mapstructure:"debug"`
	UI         UIConf    `mapstructure:"ui"`
}

type BoardConf struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

type GameConf struct {
	TickInterval time.Duration `mapstructure:"tickInterval"`

	// Seed 0 picks a random seed per session.
	Seed uint64 `mapstructure:"seed"`
}

type LogConf struct {
	Level string `mapstructure:"level"`
	Path  string `mapstructure:"path"`
}

type DebugConf struct {
	Overlay bool `mapstructure:"overlay"`
}

type UIConf struct {
	CellSize int `mapstructure:"cellSize"`
}

// flagKeys maps command line flag names to config keys.
var flagKeys = map[string]string{
	"width":       "board.width",
	"height":      "board.height",
	"tick":        "game.tickInterval",
	"seed":        "game.seed",
	"log-level":   "log.level",
	"log-path":    "log.path",
	"metric-port": "metricPort",
	"debug":       "debug.overlay",
	"cell-size":   "ui.cellSize",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("appName", "stakblok")
	v.SetDefault("board.width", tetris.DefaultWidth)
	v.SetDefault("board.height", tetris.DefaultHeight)
	v.SetDefault("game.tickInterval", tetris.DefaultTickInterval)
	v.SetDefault("game.seed", uint64(0))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", "")
	v.SetDefault("metricPort", 0)
	v.SetDefault("debug.overlay", false)
	v.SetDefault("ui.cellSize", 28)
}

// RegisterFlags adds the flags Load understands to flags.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.Int("width", tetris.DefaultWidth, "board width in columns")
	flags.Int("height", tetris.DefaultHeight, "board height in rows")
	flags.Duration("tick", tetris.DefaultTickInterval, "gravity tick interval")
	flags.Uint64("seed", 0, "piece sequence seed (0 for random)")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("log-path", "", "write logs to this file instead of stdout")
	flags.Int("metric-port", 0, "serve statsviz on this port (0 to disable)")
	flags.Bool("debug", false, "show the debug overlay")
	flags.Int("cell-size", 28, "cell size in pixels")
}

// Load reads configuration. configFile may be empty, and flags may be nil or
// a set prepared with RegisterFlags.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration describes a playable game.
func (c *Config) Validate() error {
	var errs []error
	if c.Board.Width < 4 {
		errs = append(errs, fmt.Errorf("board.width must be at least 4, got %d", c.Board.Width))
	}
	if c.Board.Height < 4 {
		errs = append(errs, fmt.Errorf("board.height must be at least 4, got %d", c.Board.Height))
	}
	if c.Game.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("game.tickInterval must be positive, got %s", c.Game.TickInterval))
	}
	if c.MetricPort < 0 || c.MetricPort > 65535 {
		errs = append(errs, fmt.Errorf("metricPort out of range: %d", c.MetricPort))
	}
	if c.UI.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("ui.cellSize must be positive, got %d", c.UI.CellSize))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// EngineOptions translates the game settings into engine options, followed by
// extra.
func (c *Config) EngineOptions(extra ...tetris.Option) []tetris.Option {
	opts := []tetris.Option{tetris.WithTickInterval(c.Game.TickInterval)}
	if c.Game.Seed != 0 {
		opts = append(opts, tetris.WithPicker(tetris.NewRandomPicker(c.Game.Seed)))
	}
	return append(opts, extra...)
}
