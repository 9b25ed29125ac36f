// Package cache stores interpretation results. Interpretation is
// idempotent over immutable catalogs, so a cached payload is always
// byte-identical to a fresh run against the same catalogs.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/orderlex/orderlex/internal/model"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives the cache key for a prompt. The catalog fingerprint is
// part of the key so a catalog change invalidates earlier results.
func Key(prompt, catalogFingerprint string) string {
	h := sha256.New()
	h.Write([]byte(catalogFingerprint))
	h.Write([]byte{0})
	h.Write([]byte(prompt))
	return "orderlex:v1:" + hex.EncodeToString(h.Sum(nil))
}

// New builds a cache from configuration: memory only by default, memory
// plus disk when a directory is configured. Returns nil when disabled.
func New(cfg model.CacheConfig) Cache {
	if !cfg.Enabled {
		return nil
	}
	if cfg.Dir != "" {
		return NewLayeredCache(cfg.MemoryTTL, cfg.Dir, cfg.DiskTTL)
	}
	return NewMemoryCache(cfg.MemoryTTL, 10*time.Minute)
}
