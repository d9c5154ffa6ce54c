package api

import (
	"errors"
	"time"
)

const (
	DefaultAddress           = ":8000"
	DefaultReadHeaderTimeout = 10 * time.Second
	DefaultShutdownTimeout   = 15 * time.Second
)

// Config controls the public HTTP listener.
type Config struct {
	// Address is the listen address of the API server, e.g. ":8000".
	Address string `yaml:"address" envconfig:"SERVER_ADDRESS"`

	// Mode is the gin mode: "release", "debug" or "test".
	//
	// Default: "release"
	Mode string `yaml:"mode" envconfig:"SERVER_GIN_MODE"`

	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout" envconfig:"SERVER_READ_HEADER_TIMEOUT"`

	// ShutdownTimeout bounds how long in-flight requests may take to drain.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SERVER_SHUTDOWN_TIMEOUT"`

	// AllowedOrigins restricts CORS. Empty means any origin.
	AllowedOrigins []string `yaml:"allowed_origins" envconfig:"SERVER_ALLOWED_ORIGINS"`
}

func DefaultConfig() Config {
	return Config{
		Address:           DefaultAddress,
		Mode:              "release",
		ReadHeaderTimeout: DefaultReadHeaderTimeout,
		ShutdownTimeout:   DefaultShutdownTimeout,
	}
}

func (c *Config) applyDefaults() {
	d := DefaultConfig()
	if c.Address == "" {
		c.Address = d.Address
	}
	if c.Mode == "" {
		c.Mode = d.Mode
	}
	if c.ReadHeaderTimeout <= 0 {
		c.ReadHeaderTimeout = d.ReadHeaderTimeout
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = d.ShutdownTimeout
	}
}

func (c Config) Validate() error {
	switch c.Mode {
	case "", "release", "debug", "test":
	default:
		return errors.New("server mode must be one of release, debug, test")
	}
	return nil
}
