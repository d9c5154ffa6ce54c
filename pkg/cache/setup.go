package cache

import (
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/Aleph-Alpha/embedding-service/pkg/observability"
)

// Logger defines the logging operations the cache needs.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// Store is a Redis-backed vector cache. It is safe for concurrent use.
type Store struct {
	client redis.UniversalClient
	cfg    Config

	logger   Logger
	observer observability.Observer

	// mu guards client against use after Close.
	mu     sync.RWMutex
	closed bool
}

// NewStore creates a Store for a standalone Redis server. No connection is
// made until the first command; use Ping to check reachability.
func NewStore(cfg Config) (*Store, error) {
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := redis.NewClient(&redis.Options{
		Addr:        fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Username:    cfg.Username,
		Password:    cfg.Password,
		DB:          cfg.DB,
		PoolSize:    cfg.PoolSize,
		MaxRetries:  cfg.MaxRetries,
		DialTimeout: cfg.DialTimeout,
		ReadTimeout: cfg.ReadTimeout,
	})

	return newStoreWithClient(client, cfg), nil
}

func newStoreWithClient(client redis.UniversalClient, cfg Config) *Store {
	return &Store{client: client, cfg: cfg}
}

// WithObserver attaches an observer that receives one event per Redis round trip.
func (s *Store) WithObserver(o observability.Observer) *Store {
	s.observer = o
	return s
}

func (s *Store) WithLogger(l Logger) *Store {
	s.logger = l
	return s
}

// Close releases the connection pool. Further calls return ErrClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.client.Close()
}
