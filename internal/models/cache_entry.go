package models

import (
	json "github.com/goccy/go-json"
	"time"
)

// CacheEntry wraps one cached payload with its fetch epoch.
// CachedAt is a human-readable duplicate of Timestamp kept for diagnostics
// when inspecting persisted namespaces by hand.
type CacheEntry struct {
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"`
	CachedAt  string          `json:"cached_at"`
}

func NewCacheEntry(data json.RawMessage, now time.Time) *CacheEntry {
	return &CacheEntry{
		Data:      data,
		Timestamp: now.UnixMilli(),
		CachedAt:  now.UTC().Format(time.RFC3339),
	}
}

// Expired reports whether the entry is older than ttl relative to now.
func (e *CacheEntry) Expired(ttl time.Duration, now time.Time) bool {
	return now.UnixMilli()-e.Timestamp > ttl.Milliseconds()
}
