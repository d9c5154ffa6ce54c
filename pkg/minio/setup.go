package minio

import (
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/Aleph-Alpha/embedding-service/pkg/observability"
)

// Logger defines the interface for logging operations within the MinIO client.
//
//go:generate mockgen -source=setup.go -destination=mock_logger.go -package=minio
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// Minio wraps the minio-go client with the bucket and prefix a model lives under.
type Minio struct {
	// Client is the standard MinIO client for operations not wrapped here.
	Client *minio.Client

	cfg      Config
	logger   Logger
	observer observability.Observer
}

// NewClient connects to the object store and checks that it answers.
// It does not create the bucket; call EnsureBucket before writing.
func NewClient(cfg Config, logger Logger) (*Minio, error) {
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client, err := connectToMinio(cfg, logger)
	if err != nil {
		logger.Error("failed to connect to minio", err, map[string]interface{}{
			"endpoint": cfg.Endpoint,
			"region":   cfg.Region,
			"secure":   cfg.UseSSL,
		})
		return nil, err
	}

	m := &Minio{Client: client, cfg: cfg, logger: logger}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if _, err := m.BucketExists(ctx); err != nil {
		logger.Error("failed to validate minio connection", err, map[string]interface{}{
			"endpoint": cfg.Endpoint,
			"bucket":   cfg.BucketName,
		})
		return nil, err
	}

	return m, nil
}

// WithObserver reports each object transfer as a "minio" operation.
func (m *Minio) WithObserver(o observability.Observer) *Minio {
	m.observer = o
	return m
}

// Bucket returns the configured bucket name.
func (m *Minio) Bucket() string { return m.cfg.BucketName }

// Prefix returns the configured model prefix.
func (m *Minio) Prefix() string { return m.cfg.Prefix }

func connectToMinio(cfg Config, logger Logger) (*minio.Client, error) {
	logger.Info("Connecting to MinIO", nil, map[string]interface{}{
		"endpoint": cfg.Endpoint,
		"region":   cfg.Region,
		"secure":   cfg.UseSSL,
	})

	return minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
}

// BucketExists reports whether the configured bucket exists.
func (m *Minio) BucketExists(ctx context.Context) (bool, error) {
	exists, err := m.Client.BucketExists(ctx, m.cfg.BucketName)
	if err != nil {
		return false, fmt.Errorf("failed to check if bucket exists, bucket: %v, err: %w", m.cfg.BucketName, err)
	}
	return exists, nil
}

// EnsureBucket creates the configured bucket if it does not exist.
func (m *Minio) EnsureBucket(ctx context.Context) error {
	exists, err := m.BucketExists(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	m.logger.Info("Bucket does not exist, creating it", nil, map[string]interface{}{
		"bucket": m.cfg.BucketName,
		"region": m.cfg.Region,
	})
	if err := m.Client.MakeBucket(ctx, m.cfg.BucketName, minio.MakeBucketOptions{Region: m.cfg.Region}); err != nil {
		return err
	}
	m.logger.Info("Successfully created bucket", nil, map[string]interface{}{
		"bucket": m.cfg.BucketName,
	})
	return nil
}
