package cache

import (
	"fmt"
	"time"
)

const (
	DefaultHost        = "localhost"
	DefaultPort        = 6379
	DefaultTTL         = 24 * time.Hour
	DefaultKeyPrefix   = "embedding:"
	DefaultDialTimeout = 5 * time.Second
	DefaultReadTimeout = 3 * time.Second
	DefaultMaxRetries  = 3
)

// Config configures the optional Redis embedding cache.
type Config struct {
	// Enabled turns the cache on. When false the cache module is not installed.
	Enabled bool `yaml:"enabled" envconfig:"CACHE_ENABLED"`

	Host     string `yaml:"host" envconfig:"REDIS_HOST"`
	Port     int    `yaml:"port" envconfig:"REDIS_PORT"`
	Username string `yaml:"username" envconfig:"REDIS_USERNAME"`
	Password string `yaml:"password" envconfig:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" envconfig:"REDIS_DB"`

	// TTL is how long a cached vector lives. Zero means the default (24h),
	// negative disables expiry.
	TTL time.Duration `yaml:"ttl" envconfig:"CACHE_TTL"`

	// KeyPrefix namespaces all keys written by the service.
	KeyPrefix string `yaml:"key_prefix" envconfig:"CACHE_KEY_PREFIX"`

	PoolSize    int           `yaml:"pool_size" envconfig:"REDIS_POOL_SIZE"`
	MaxRetries  int           `yaml:"max_retries" envconfig:"REDIS_MAX_RETRIES"`
	DialTimeout time.Duration `yaml:"dial_timeout" envconfig:"REDIS_DIAL_TIMEOUT"`
	ReadTimeout time.Duration `yaml:"read_timeout" envconfig:"REDIS_READ_TIMEOUT"`
}

func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = DefaultHost
	}
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.TTL == 0 {
		c.TTL = DefaultTTL
	}
	if c.KeyPrefix == "" {
		c.KeyPrefix = DefaultKeyPrefix
	}
	if c.MaxRetries == 0 {
		c.MaxRetries = DefaultMaxRetries
	}
	if c.DialTimeout == 0 {
		c.DialTimeout = DefaultDialTimeout
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = DefaultReadTimeout
	}
}

// Validate checks the settings that matter when the cache is enabled.
func (c *Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("cache: invalid REDIS_PORT %d", c.Port)
	}
	if c.DB < 0 {
		return fmt.Errorf("cache: invalid REDIS_DB %d", c.DB)
	}
	return nil
}
