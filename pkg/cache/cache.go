// Package cache provides response caching for HTTP clients.
//
// Two backends are available: a file-based cache for normal CLI usage
// and a null cache for tests or --no-cache runs. Entries are stored
// with a time-to-live; expired entries are treated as misses and
// removed lazily on read.
//
// The package also carries the retry helpers used by HTTP clients:
// wrap transient failures with [Retryable] so [RetryWithBackoff] knows
// to attempt the operation again.
package cache

import (
	"context"
	"os"
	"path/filepath"
	"time"
)

// Cache is the interface for response cache backends.
type Cache interface {
	// Get retrieves a value by key. The second return value reports
	// whether the key was found (a fresh, non-expired entry).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value under key. A ttl of 0 means the entry never
	// expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// DefaultDir returns the default cache directory (~/.cache/plotkit).
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", "plotkit"), nil
}
