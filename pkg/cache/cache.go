// Package cache stores rendered sheets keyed by their inputs.
//
// A render is a pure function of the chart bytes, the layout settings and
// the metadata font, so the encoded PNG can be reused whenever all three
// match. [Keyer] turns those inputs into a key; [Cache] stores the bytes.
//
//	c, err := cache.NewFileCache(dir)
//	key := cache.NewDefaultKeyer().ArtifactKey(cache.Hash(chart), cache.ArtifactKeyOpts{
//	    Format: "png",
//	    Layout: settings,
//	})
//	if data, hit, err := c.Get(ctx, key); err == nil && hit {
//	    // reuse data
//	}
//
// [FileCache] backs the CLI. [NullCache] disables caching.
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long a rendered sheet stays cached.
const TTLArtifact = 30 * 24 * time.Hour

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the data stored under key. A missing or expired entry
	// is a miss, not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl <= 0 never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// NullCache never stores anything. Every Get is a miss.
type NullCache struct{}

// NewNullCache returns a cache that disables caching.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error                     { return nil }
func (NullCache) Close() error                                             { return nil }

var _ Cache = NullCache{}
