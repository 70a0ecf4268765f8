// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Observer configuration and a thread-safe store with reload propagation.

package control

import (
	"flag"
	"sync"

	"github.com/momentics/hioload-vec/api"
)

// Config holds observer settings.
type Config struct {
	// LogLevel filters LogObserver output: debug, info, warn or error.
	LogLevel string `yaml:"log_level"`

	// HistorySize bounds the number of growth events kept by DebugProbes.
	HistorySize int `yaml:"history_size"`

	// Namespace prefixes Prometheus metric names.
	Namespace string `yaml:"namespace"`
}

// DefaultConfig returns the settings used when no flags are parsed.
func DefaultConfig() Config {
	return Config{
		LogLevel:    "info",
		HistorySize: DefaultHistorySize,
		Namespace:   "hioload",
	}
}

// RegisterFlags registers the config fields on f with their defaults.
func (c *Config) RegisterFlags(f *flag.FlagSet) {
	def := DefaultConfig()
	f.StringVar(&c.LogLevel, "vector.log-level", def.LogLevel, "Log level for vector growth events (debug, info, warn, error).")
	f.IntVar(&c.HistorySize, "vector.history-size", def.HistorySize, "Number of recent growth events kept for debug dumps.")
	f.StringVar(&c.Namespace, "vector.metrics-namespace", def.Namespace, "Namespace for vector Prometheus metrics.")
}

// Validate checks the config.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return api.NewError(api.ErrCodeInvalidConfig, "unknown log level").WithContext("log_level", c.LogLevel)
	}
	if c.HistorySize < 0 {
		return api.NewError(api.ErrCodeInvalidConfig, "negative history size").WithContext("history_size", c.HistorySize)
	}
	if c.Namespace == "" {
		return api.NewError(api.ErrCodeInvalidConfig, "empty metrics namespace")
	}
	return nil
}

// ConfigStore holds the live Config and notifies listeners on change.
type ConfigStore struct {
	mu        sync.RWMutex
	config    Config
	listeners []func(Config)
}

// NewConfigStore initializes a store with cfg.
func NewConfigStore(cfg Config) *ConfigStore {
	return &ConfigStore{config: cfg}
}

// Get returns the current config.
func (cs *ConfigStore) Get() Config {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.config
}

// Set validates and stores cfg, then calls every listener with it in
// registration order. An invalid cfg is rejected and listeners are not called.
func (cs *ConfigStore) Set(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	cs.mu.Lock()
	cs.config = cfg
	listeners := append([]func(Config){}, cs.listeners...)
	cs.mu.Unlock()

	for _, fn := range listeners {
		fn(cfg)
	}
	return nil
}

// OnReload registers a listener called after each successful Set.
func (cs *ConfigStore) OnReload(fn func(Config)) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.listeners = append(cs.listeners, fn)
}
