package minio

import "fmt"

const (
	DefaultBucket = "models"
	DefaultPrefix = "minilm"

	// minPartSize is the smallest part minio-go accepts for multipart uploads.
	minPartSize uint64 = 5 * 1024 * 1024
)

// Config describes the object store used as a model mirror.
type Config struct {
	Endpoint        string `yaml:"endpoint" envconfig:"MINIO_ENDPOINT"`
	AccessKeyID     string `yaml:"access_key_id" envconfig:"MINIO_ACCESS_KEY_ID"`
	SecretAccessKey string `yaml:"secret_access_key" envconfig:"MINIO_SECRET_ACCESS_KEY"`
	UseSSL          bool   `yaml:"use_ssl" envconfig:"MINIO_USE_SSL"`
	Region          string `yaml:"region" envconfig:"MINIO_REGION"`

	// BucketName holds mirrored models.
	BucketName string `yaml:"bucket" envconfig:"MINIO_BUCKET"`

	// Prefix is the key prefix of one model inside the bucket.
	Prefix string `yaml:"prefix" envconfig:"MINIO_MODEL_PREFIX"`

	// PartSize for multipart uploads of large weight files. Zero lets minio-go decide.
	PartSize uint64 `yaml:"part_size" envconfig:"MINIO_PART_SIZE"`
}

func (c *Config) applyDefaults() {
	if c.BucketName == "" {
		c.BucketName = DefaultBucket
	}
	if c.Prefix == "" {
		c.Prefix = DefaultPrefix
	}
}

// Validate checks that the connection settings are usable.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("minio: missing MINIO_ENDPOINT")
	}
	if c.PartSize != 0 && c.PartSize < minPartSize {
		return fmt.Errorf("minio: MINIO_PART_SIZE must be at least %d bytes", minPartSize)
	}
	return nil
}
