package cache

import (
	"time"

	"github.com/ppiankov/wbmodel/internal/errors"
)

// LayeredCache reads through a fast layer to a durable one and writes both
type LayeredCache struct {
	memory Cache
	disk   Cache
}

// NewLayeredCache combines a memory and a disk cache
func NewLayeredCache(memory, disk Cache) *LayeredCache {
	return &LayeredCache{
		memory: memory,
		disk:   disk,
	}
}

// NewDefaultLayeredCache builds a go-cache memory layer over a disk cache in dir
func NewDefaultLayeredCache(memoryTTL time.Duration, diskDir string, diskTTL time.Duration) *LayeredCache {
	return NewLayeredCache(
		NewMemoryCache(memoryTTL, 10*time.Minute),
		NewDiskCache(diskDir, diskTTL),
	)
}

// Get checks memory first, then disk, promoting disk hits
func (c *LayeredCache) Get(key string) ([]byte, bool) {
	if val, found := c.memory.Get(key); found {
		return val, true
	}

	if val, found := c.disk.Get(key); found {
		_ = c.memory.Set(key, val, DefaultExpiration)
		return val, true
	}

	return nil, false
}

// Set stores a value in both layers
func (c *LayeredCache) Set(key string, value []byte, ttl time.Duration) error {
	if err := c.memory.Set(key, value, ttl); err != nil {
		return errors.Wrap(err, "memory layer")
	}
	if err := c.disk.Set(key, value, ttl); err != nil {
		return errors.Wrap(err, "disk layer")
	}
	return nil
}

// Delete removes a value from both layers
func (c *LayeredCache) Delete(key string) error {
	memErr := c.memory.Delete(key)
	if err := c.disk.Delete(key); err != nil {
		return errors.Wrap(err, "disk layer")
	}
	return memErr
}

// Clear empties both layers
func (c *LayeredCache) Clear() error {
	memErr := c.memory.Clear()
	if err := c.disk.Clear(); err != nil {
		return errors.Wrap(err, "disk layer")
	}
	return memErr
}
