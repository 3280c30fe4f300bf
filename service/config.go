package service

import (
	"fmt"

	"github.com/dimitarvdimitrov/planwatch/config"
	"github.com/dimitarvdimitrov/planwatch/metrics"
	"github.com/dimitarvdimitrov/planwatch/statemgr"
	"github.com/dimitarvdimitrov/planwatch/tmaster"
)

type Config struct {
	Topology string `toml:"topology"`
	// GRPCAddr and HTTPAddr are the listen addresses of the apis. An empty
	// address disables that api.
	GRPCAddr string `toml:"grpc_addr"`
	HTTPAddr string `toml:"http_addr"`
	LogLevel string `toml:"log_level"`

	StateManager statemgr.Config `toml:"state_manager"`
	TMaster      tmaster.Config  `toml:"tmaster"`
	Metrics      metrics.Config  `toml:"metrics"`
}

// LoadConfig reads, normalizes and validates the config file at location.
func LoadConfig(location string) (Config, error) {
	var cfg Config
	if err := config.Load(location, &cfg); err != nil {
		return Config{}, err
	}
	cfg.Normalize()
	return cfg, cfg.Validate()
}

func (c *Config) Normalize() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	c.StateManager.Normalize()
	c.TMaster.Normalize()
	c.Metrics.Normalize()
}

func (c Config) Validate() error {
	if c.Topology == "" {
		return fmt.Errorf("topology must be set")
	}
	if err := c.StateManager.Validate(); err != nil {
		return err
	}
	if err := c.TMaster.Validate(); err != nil {
		return err
	}
	return c.Metrics.Validate()
}
