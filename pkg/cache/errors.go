package cache

import "errors"

var (
	// ErrMiss is returned when a key is not cached.
	ErrMiss = errors.New("cache: miss")

	// ErrClosed is returned after Close.
	ErrClosed = errors.New("cache: store is closed")
)

// IsMiss reports whether err is a cache miss.
func IsMiss(err error) bool {
	return errors.Is(err, ErrMiss)
}
