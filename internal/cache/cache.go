// Package cache provides byte caches used to persist revision hashes between
// runs: an in-memory layer, a disk layer and a layered combination of both.
package cache

import (
	"time"

	"github.com/ppiankov/wbmodel/internal/hashing"
)

// NoExpiration keeps an entry until it is deleted or the cache is cleared
const NoExpiration time.Duration = -1

// DefaultExpiration uses the cache's configured TTL
const DefaultExpiration time.Duration = 0

const keyPrefix = "wbmodel:v1:"

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// CacheKey derives a stable, filesystem-safe key from a namespace and parts
func CacheKey(namespace string, parts ...string) string {
	all := append([]string{namespace}, parts...)
	return keyPrefix + hashing.Combine(hashing.BLAKE3, all...)
}
