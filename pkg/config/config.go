package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/Aleph-Alpha/embedding-service/pkg/api"
	"github.com/Aleph-Alpha/embedding-service/pkg/cache"
	"github.com/Aleph-Alpha/embedding-service/pkg/embedding"
	"github.com/Aleph-Alpha/embedding-service/pkg/installer"
	"github.com/Aleph-Alpha/embedding-service/pkg/logger"
	"github.com/Aleph-Alpha/embedding-service/pkg/metrics"
	"github.com/Aleph-Alpha/embedding-service/pkg/minio"
	"github.com/Aleph-Alpha/embedding-service/pkg/tracer"
)

// ServiceName is used for log entries, metric labels and trace resources
// unless configured otherwise.
const ServiceName = "embedding-service"

// Config aggregates the configuration of every package.
type Config struct {
	Logger    logger.Config    `yaml:"logger"`
	Tracer    tracer.Config    `yaml:"tracer"`
	Metrics   metrics.Config   `yaml:"metrics"`
	Embedding embedding.Config `yaml:"embedding"`
	Cache     cache.Config     `yaml:"cache"`
	Server    api.Config       `yaml:"server"`
	Minio     minio.Config     `yaml:"minio"`
	Installer installer.Config `yaml:"installer"`
}

// Options selects the optional files Load reads.
type Options struct {
	// File is a YAML file. Empty skips it; a missing file is an error.
	File string

	// EnvFile is a dotenv file. A missing file is ignored so the same
	// binary works with plain environment variables.
	EnvFile string
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Logger: logger.Config{
			Level:       logger.Info,
			ServiceName: ServiceName,
		},
		Tracer: tracer.Config{
			ServiceName: ServiceName,
		},
		Metrics: metrics.Config{
			Address:                 metrics.DefaultMetricsAddress,
			EnableDefaultCollectors: true,
			ServiceName:             ServiceName,
		},
		Embedding: embedding.DefaultConfig(),
		Cache: cache.Config{
			Host:      cache.DefaultHost,
			Port:      cache.DefaultPort,
			TTL:       cache.DefaultTTL,
			KeyPrefix: cache.DefaultKeyPrefix,
		},
		Server: api.DefaultConfig(),
		Minio: minio.Config{
			BucketName: minio.DefaultBucket,
			Prefix:     minio.DefaultPrefix,
		},
		Installer: installer.DefaultConfig(),
	}
}

// Load layers defaults, the YAML file, the dotenv file and the process
// environment, later sources overriding earlier ones. Variables already set
// in the environment win over the dotenv file.
func Load(opts Options) (*Config, error) {
	cfg := Default()

	if opts.File != "" {
		data, err := os.ReadFile(opts.File)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", opts.File, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", opts.File, err)
		}
	}

	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config: load %s: %w", opts.EnvFile, err)
		}
	}

	sections := []interface{}{
		&cfg.Logger,
		&cfg.Tracer,
		&cfg.Metrics,
		&cfg.Embedding,
		&cfg.Cache,
		&cfg.Server,
		&cfg.Minio,
		&cfg.Installer,
	}
	for _, section := range sections {
		if err := envconfig.Process("", section); err != nil {
			return nil, fmt.Errorf("config: environment: %w", err)
		}
	}

	cfg.Installer.Minio = cfg.Minio
	return &cfg, nil
}

// Validate checks everything the serve command uses.
func (c *Config) Validate() error {
	return errors.Join(
		c.Embedding.Validate(),
		c.Cache.Validate(),
		c.Server.Validate(),
	)
}
