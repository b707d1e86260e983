package services

import (
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardmirror/internal/models"
	"cardmirror/internal/structures"
	"cardmirror/internal/testutil"
)

func cacheConfig() *structures.Config {
	return &structures.Config{
		Cache: structures.CacheTTLConfig{
			CardTTL:  180 * 24 * time.Hour,
			PriceTTL: 24 * time.Hour,
		},
	}
}

type cacheFixture struct {
	svc    *CardCacheService
	store  *testutil.MockStore
	logger *testutil.MockLogger
	clock  time.Time
}

func newCacheFixture(t *testing.T) *cacheFixture {
	t.Helper()
	f := &cacheFixture{
		store:  testutil.NewMockStore(),
		logger: &testutil.MockLogger{},
		clock:  time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
	svc := NewCardCacheService(cacheConfig(), f.store, &testutil.MockCompressor{}, f.logger, testutil.NewMockMetrics())
	f.svc = svc.(*CardCacheService)
	f.svc.now = func() time.Time { return f.clock }
	return f
}

func (f *cacheFixture) advance(d time.Duration) {
	f.clock = f.clock.Add(d)
}

func TestCardCache_GetAfterPutReturnsStoredValue(t *testing.T) {
	f := newCacheFixture(t)

	f.svc.Put(TrackCard, "Lightning Bolt", models.Card{Name: "Lightning Bolt", TypeLine: "Instant"})

	raw, ok := f.svc.Get(TrackCard, "Lightning Bolt")
	require.True(t, ok)

	var card models.Card
	require.NoError(t, json.Unmarshal(raw, &card))
	assert.Equal(t, "Lightning Bolt", card.Name)
	assert.Equal(t, "Instant", card.TypeLine)
}

func TestCardCache_NormalizationAppliedOnReadAndWrite(t *testing.T) {
	f := newCacheFixture(t)

	f.svc.Put(TrackCard, "  Lightning Bolt ", models.Card{Name: "Lightning Bolt"})

	_, ok := f.svc.Get(TrackCard, "lightning BOLT")
	assert.True(t, ok)
}

func TestCardCache_ExpiredEntryRemovedFromBacking(t *testing.T) {
	f := newCacheFixture(t)

	f.svc.Put(TrackPrice, "Lightning Bolt", map[string]string{"usd": "1.50"})
	f.advance(24*time.Hour + time.Minute)

	_, ok := f.svc.Get(TrackPrice, "Lightning Bolt")
	assert.False(t, ok)

	// the removal is persisted, not just hidden
	blob, found := f.store.Get("cache:price")
	require.True(t, found)
	var ns map[string]*models.CacheEntry
	require.NoError(t, json.Unmarshal(blob, &ns))
	assert.Empty(t, ns)
}

func TestCardCache_TrackTTLsAreIndependent(t *testing.T) {
	f := newCacheFixture(t)

	f.svc.Put(TrackCard, "Lightning Bolt", models.Card{Name: "Lightning Bolt"})
	f.svc.Put(TrackPrice, "Lightning Bolt", map[string]string{"usd": "1.50"})

	f.advance(25 * time.Hour)

	_, cardOK := f.svc.Get(TrackCard, "Lightning Bolt")
	_, priceOK := f.svc.Get(TrackPrice, "Lightning Bolt")
	assert.True(t, cardOK)
	assert.False(t, priceOK)
}

func TestCardCache_WithinTTLNotEvicted(t *testing.T) {
	f := newCacheFixture(t)

	f.svc.Put(TrackPrice, "Lightning Bolt", map[string]string{"usd": "1.50"})
	f.advance(23 * time.Hour)

	_, ok := f.svc.Get(TrackPrice, "Lightning Bolt")
	assert.True(t, ok)
}

func TestCardCache_InvalidateSingleNameBothTracks(t *testing.T) {
	f := newCacheFixture(t)

	f.svc.Put(TrackCard, "Lightning Bolt", models.Card{Name: "Lightning Bolt"})
	f.svc.Put(TrackPrice, "Lightning Bolt", map[string]string{"usd": "1.50"})
	f.svc.Put(TrackCard, "Counterspell", models.Card{Name: "Counterspell"})

	f.svc.Invalidate("Lightning Bolt")

	_, ok := f.svc.Get(TrackCard, "Lightning Bolt")
	assert.False(t, ok)
	_, ok = f.svc.Get(TrackPrice, "Lightning Bolt")
	assert.False(t, ok)
	_, ok = f.svc.Get(TrackCard, "Counterspell")
	assert.True(t, ok)
}

func TestCardCache_InvalidateAllClearsBothTracks(t *testing.T) {
	f := newCacheFixture(t)

	f.svc.Put(TrackCard, "Lightning Bolt", models.Card{Name: "Lightning Bolt"})
	f.svc.Put(TrackPrice, "Counterspell", map[string]string{"usd": "0.50"})

	f.svc.InvalidateAll()

	_, ok := f.svc.Get(TrackCard, "Lightning Bolt")
	assert.False(t, ok)
	_, ok = f.svc.Get(TrackPrice, "Counterspell")
	assert.False(t, ok)

	_, found := f.store.Get("cache:card")
	assert.False(t, found)
	_, found = f.store.Get("cache:price")
	assert.False(t, found)
}

func TestCardCache_MalformedBackingDataFailsOpen(t *testing.T) {
	f := newCacheFixture(t)
	require.NoError(t, f.store.Set("cache:card", []byte("not json at all")))

	_, ok := f.svc.Get(TrackCard, "Lightning Bolt")
	assert.False(t, ok)
	assert.True(t, f.logger.HasLevel("warn"))

	// the namespace is usable again after the cold start
	f.svc.Put(TrackCard, "Lightning Bolt", models.Card{Name: "Lightning Bolt"})
	_, ok = f.svc.Get(TrackCard, "Lightning Bolt")
	assert.True(t, ok)
}

func TestCardCache_UndecompressableBlobFailsOpen(t *testing.T) {
	f := newCacheFixture(t)
	f.svc.compressor = &testutil.MockCompressor{
		DecompressFn: func([]byte) ([]byte, error) {
			return nil, assert.AnError
		},
	}
	require.NoError(t, f.store.Set("cache:card", []byte{0x01, 0x02}))

	_, ok := f.svc.Get(TrackCard, "anything")
	assert.False(t, ok)
	assert.True(t, f.logger.HasLevel("warn"))
}

func TestCardCache_SurvivesRestartViaStore(t *testing.T) {
	f := newCacheFixture(t)
	f.svc.Put(TrackCard, "Lightning Bolt", models.Card{Name: "Lightning Bolt"})

	// second service over the same store simulates a process restart
	svc2 := NewCardCacheService(cacheConfig(), f.store, &testutil.MockCompressor{}, &testutil.MockLogger{}, testutil.NewMockMetrics()).(*CardCacheService)
	svc2.now = func() time.Time { return f.clock }

	_, ok := svc2.Get(TrackCard, "Lightning Bolt")
	assert.True(t, ok)
}

func TestCardCache_RoundTripsThroughRealCompressor(t *testing.T) {
	f := newCacheFixture(t)

	// the persisted blob is compressed, not raw JSON
	comp := &testutil.MockCompressor{
		CompressFn: func(b []byte) ([]byte, error) {
			return append([]byte("Z:"), b...), nil
		},
		DecompressFn: func(b []byte) ([]byte, error) {
			return b[2:], nil
		},
	}
	f.svc.compressor = comp
	f.svc.Put(TrackCard, "Lightning Bolt", models.Card{Name: "Lightning Bolt"})

	blob, found := f.store.Get("cache:card")
	require.True(t, found)
	assert.Equal(t, []byte("Z:"), blob[:2])

	svc2 := NewCardCacheService(cacheConfig(), f.store, comp, &testutil.MockLogger{}, testutil.NewMockMetrics()).(*CardCacheService)
	_, ok := svc2.Get(TrackCard, "Lightning Bolt")
	assert.True(t, ok)
}
