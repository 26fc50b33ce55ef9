package config

import (
	"errors"
	"os"
	"pokerrooms-server/internal/util"
	"pokerrooms-server/pkg/playable/poker/texasholdem"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the poker room server
type Config struct {
	loaded bool
	Log    struct {
		Level             string `yaml:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
	Game struct {
		StartingChips    int   `yaml:"startingChips" envconfig:"starting_chips"`
		MaxSeats         int   `yaml:"maxSeats" envconfig:"max_seats"`
		BotActionDelayMs int   `yaml:"botActionDelayMs" envconfig:"bot_action_delay_ms"`
		NextHandDelayMs  int   `yaml:"nextHandDelayMs" envconfig:"next_hand_delay_ms"`
		CryptoShuffle    bool  `yaml:"cryptoShuffle" envconfig:"crypto_shuffle"`
		ShuffleSeed      int64 `yaml:"shuffleSeed" envconfig:"shuffle_seed"`
	}
	AllowedOrigins []string `yaml:"allowedOrigins" envconfig:"allowed_origins"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	var cfg Config
	defaults := texasholdem.DefaultOptions()
	cfg.Game.StartingChips = defaults.StartingChips
	cfg.Game.MaxSeats = defaults.MaxSeats
	cfg.Game.BotActionDelayMs = int(defaults.BotActionDelay / time.Millisecond)
	cfg.Game.NextHandDelayMs = int(defaults.NextHandDelay / time.Millisecond)
	cfg.AllowedOrigins = []string{"*"}

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error, the defaults and environment are used instead.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("POKER_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	}

	if err := envconfig.Process("poker", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

// GameOptions returns the options every new room starts with
func (c Config) GameOptions() texasholdem.Options {
	opts := texasholdem.DefaultOptions()
	opts.StartingChips = c.Game.StartingChips
	opts.MaxSeats = c.Game.MaxSeats
	opts.BotActionDelay = time.Duration(c.Game.BotActionDelayMs) * time.Millisecond
	opts.NextHandDelay = time.Duration(c.Game.NextHandDelayMs) * time.Millisecond

	return opts
}
