package server

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete service configuration.
type Config struct {
	Server ServerSettings `hcl:"server,block"`
	Game   GameSettings   `hcl:"game,block"`
}

// ServerSettings contains server-level configuration.
type ServerSettings struct {
	Addr     string `hcl:"addr,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// GameSettings contains table defaults and engine timing.
type GameSettings struct {
	SmallBlind    int `hcl:"small_blind,optional"`
	BigBlind      int `hcl:"big_blind,optional"`
	StartChips    int `hcl:"start_chips,optional"`
	BotThinkMs    int `hcl:"bot_think_ms,optional"`
	SettleDelayMs int `hcl:"settle_delay_ms,optional"`
}

// BotThinkDelay is the pause before a scheduled bot action fires.
func (gs GameSettings) BotThinkDelay() time.Duration {
	return time.Duration(gs.BotThinkMs) * time.Millisecond
}

// SettleDelay is the pause between showdown and finished.
func (gs GameSettings) SettleDelay() time.Duration {
	return time.Duration(gs.SettleDelayMs) * time.Millisecond
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerSettings{
			Addr:     ":8080",
			LogLevel: "info",
		},
		Game: GameSettings{
			SmallBlind:    10,
			BigBlind:      20,
			StartChips:    1000,
			BotThinkMs:    2000,
			SettleDelayMs: 3000,
		},
	}
}

// LoadConfig loads configuration from an HCL file, falling back to
// defaults when the file does not exist.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config: %s", diags.Error())
	}

	var cfg Config
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %s", diags.Error())
	}

	defaults := DefaultConfig()
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = defaults.Server.Addr
	}
	if cfg.Server.LogLevel == "" {
		cfg.Server.LogLevel = defaults.Server.LogLevel
	}
	if cfg.Game.SmallBlind == 0 {
		cfg.Game.SmallBlind = defaults.Game.SmallBlind
	}
	if cfg.Game.BigBlind == 0 {
		cfg.Game.BigBlind = defaults.Game.BigBlind
	}
	if cfg.Game.StartChips == 0 {
		cfg.Game.StartChips = defaults.Game.StartChips
	}
	if cfg.Game.BotThinkMs == 0 {
		cfg.Game.BotThinkMs = defaults.Game.BotThinkMs
	}
	if cfg.Game.SettleDelayMs == 0 {
		cfg.Game.SettleDelayMs = defaults.Game.SettleDelayMs
	}

	return &cfg, nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server addr must be set")
	}
	if c.Game.SmallBlind <= 0 {
		return fmt.Errorf("small_blind must be positive, got %d", c.Game.SmallBlind)
	}
	if c.Game.BigBlind < c.Game.SmallBlind {
		return fmt.Errorf("big_blind %d must be at least small_blind %d", c.Game.BigBlind, c.Game.SmallBlind)
	}
	if c.Game.StartChips < c.Game.BigBlind {
		return fmt.Errorf("start_chips %d must cover the big blind %d", c.Game.StartChips, c.Game.BigBlind)
	}
	if c.Game.BotThinkMs < 0 || c.Game.SettleDelayMs < 0 {
		return fmt.Errorf("delays must not be negative")
	}
	return nil
}
