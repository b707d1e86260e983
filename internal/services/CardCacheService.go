package services

import (
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"

	"cardmirror/internal/models"
	"cardmirror/internal/providers"
	"cardmirror/internal/storage/interfaces"
	"cardmirror/internal/structures"
)

// Track selects one of the two independent cache namespaces. Printed-card
// data is near-immutable so the card track carries a long TTL; market
// prices are volatile so the price track expires daily.
type Track string

const (
	TrackCard  Track = "card"
	TrackPrice Track = "price"
)

const (
	cardTrackKey  = "cache:card"
	priceTrackKey = "cache:price"
)

type CardCacheServiceInterface interface {
	Get(track Track, name string) (json.RawMessage, bool)
	Put(track Track, name string, value any)
	Invalidate(name string)
	InvalidateAll()
}

// CardCacheService persists each track as one compressed JSON blob in the
// store: a mapping of normalized card name to CacheEntry. Entries expire
// lazily on read; there is no background sweep.
type CardCacheService struct {
	mu         sync.Mutex
	store      providers.StoreProviderInterface
	compressor interfaces.CompressorInterface
	logger     providers.Logger
	metrics    providers.MetricsProviderInterface
	ttls       map[Track]time.Duration
	tracks     map[Track]map[string]*models.CacheEntry
	now        func() time.Time
}

func NewCardCacheService(conf *structures.Config, store providers.StoreProviderInterface, compressor interfaces.CompressorInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) CardCacheServiceInterface {
	return &CardCacheService{
		store:      store,
		compressor: compressor,
		logger:     logger,
		metrics:    metrics,
		ttls: map[Track]time.Duration{
			TrackCard:  conf.Cache.CardTTL,
			TrackPrice: conf.Cache.PriceTTL,
		},
		tracks: make(map[Track]map[string]*models.CacheEntry),
		now:    time.Now,
	}
}

// NormalizeName is the cache identity function, applied identically on
// read and write.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func storeKey(track Track) string {
	if track == TrackPrice {
		return priceTrackKey
	}
	return cardTrackKey
}

// load brings a track's namespace into memory. Unreadable or malformed
// backing data degrades to an empty namespace: a cold cache, never an error.
func (s *CardCacheService) load(track Track) map[string]*models.CacheEntry {
	if ns, ok := s.tracks[track]; ok {
		return ns
	}

	ns := make(map[string]*models.CacheEntry)
	s.tracks[track] = ns

	blob, found := s.store.Get(storeKey(track))
	if !found {
		return ns
	}

	raw, err := s.compressor.Decompress(blob)
	if err != nil {
		s.logger.Warnf(providers.TypeApp, "Cache track %s is undecompressable, starting cold: %s", track, err)
		return ns
	}
	if err := json.Unmarshal(raw, &ns); err != nil {
		s.logger.Warnf(providers.TypeApp, "Cache track %s is malformed, starting cold: %s", track, err)
		s.tracks[track] = make(map[string]*models.CacheEntry)
		return s.tracks[track]
	}
	s.tracks[track] = ns
	return ns
}

func (s *CardCacheService) persist(track Track) {
	raw, err := json.Marshal(s.tracks[track])
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Cannot marshal cache track %s: %s", track, err)
		return
	}
	blob, err := s.compressor.Compress(raw)
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Cannot compress cache track %s: %s", track, err)
		return
	}
	if err := s.store.Set(storeKey(track), blob); err != nil {
		s.logger.Errorf(providers.TypeApp, "Cannot persist cache track %s: %s", track, err)
	}
}

// Get returns the cached payload for name, or absent. An entry older than
// the track's TTL is deleted (and the removal persisted) before reporting
// a miss: stale data is never exposed.
func (s *CardCacheService) Get(track Track, name string) (json.RawMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ns := s.load(track)
	key := NormalizeName(name)
	entry, ok := ns[key]
	if !ok {
		s.metrics.IncCacheMisses(string(track))
		return nil, false
	}
	if entry.Expired(s.ttls[track], s.now()) {
		delete(ns, key)
		s.persist(track)
		s.metrics.IncCacheEvictions(string(track))
		s.metrics.IncCacheMisses(string(track))
		return nil, false
	}
	s.metrics.IncCacheHits(string(track))
	return entry.Data, true
}

// Put upserts value under the normalized name, stamping the current time.
func (s *CardCacheService) Put(track Track, name string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Cannot marshal cache value for %q: %s", name, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ns := s.load(track)
	ns[NormalizeName(name)] = models.NewCacheEntry(raw, s.now())
	s.persist(track)
}

// Invalidate removes one name from both tracks.
func (s *CardCacheService) Invalidate(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := NormalizeName(name)
	for _, track := range []Track{TrackCard, TrackPrice} {
		ns := s.load(track)
		if _, ok := ns[key]; ok {
			delete(ns, key)
			s.persist(track)
		}
	}
}

// InvalidateAll clears both tracks entirely.
func (s *CardCacheService) InvalidateAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, track := range []Track{TrackCard, TrackPrice} {
		s.tracks[track] = make(map[string]*models.CacheEntry)
		if err := s.store.Delete(storeKey(track)); err != nil {
			s.logger.Errorf(providers.TypeApp, "Cannot clear cache track %s: %s", track, err)
		}
	}
}
