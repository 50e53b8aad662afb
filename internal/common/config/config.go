// internal/common/config/config.go
package config

import (
	"fmt"
	"time"
)

// Config is the main application configuration struct.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Routing  RoutingConfig  `mapstructure:"routing"`
	Registry RegistryConfig `mapstructure:"registry"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// --- Core App Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// RoutingConfig holds the knobs of the routing and dispatch engine.
type RoutingConfig struct {
	MaxFanout      int `mapstructure:"max_fanout"`       // cap on selected agents per query
	WorkerCeiling  int `mapstructure:"worker_ceiling"`   // global cap on concurrent agent calls
	CallTimeout    int `mapstructure:"call_timeout_ms"`  // per-agent call timeout, milliseconds
	DefaultResults int `mapstructure:"default_results"`  // result cap when the caller does not set one
}

// CallTimeoutDuration returns the per-agent timeout as a time.Duration.
func (r RoutingConfig) CallTimeoutDuration() time.Duration {
	return time.Duration(r.CallTimeout) * time.Millisecond
}

// RegistryConfig points at the agent capability registry file. An empty path
// means the compiled-in defaults are used.
type RegistryConfig struct {
	Path string `mapstructure:"path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

func validateConfig(cfg *Config) error {
	if cfg.Routing.MaxFanout <= 0 {
		return fmt.Errorf("routing.max_fanout must be positive, got %d", cfg.Routing.MaxFanout)
	}
	if cfg.Routing.WorkerCeiling <= 0 {
		return fmt.Errorf("routing.worker_ceiling must be positive, got %d", cfg.Routing.WorkerCeiling)
	}
	if cfg.Routing.CallTimeout <= 0 {
		return fmt.Errorf("routing.call_timeout_ms must be positive, got %d", cfg.Routing.CallTimeout)
	}
	if cfg.Routing.DefaultResults <= 0 {
		return fmt.Errorf("routing.default_results must be positive, got %d", cfg.Routing.DefaultResults)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "jobsearch-router"
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = "development"
	}
	if cfg.Routing.MaxFanout == 0 {
		cfg.Routing.MaxFanout = 6
	}
	if cfg.Routing.WorkerCeiling == 0 {
		cfg.Routing.WorkerCeiling = 5
	}
	if cfg.Routing.CallTimeout == 0 {
		cfg.Routing.CallTimeout = 60000
	}
	if cfg.Routing.DefaultResults == 0 {
		cfg.Routing.DefaultResults = 50
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
}

// Default returns a Config populated with the built-in defaults, for callers
// that embed the engine without a config file.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}
