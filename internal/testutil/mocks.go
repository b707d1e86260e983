package testutil

import (
	"context"
	"sync"
	"time"

	"cardmirror/internal/models"
	"cardmirror/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// HasLevel reports whether any recorded entry carries the given level.
func (m *MockLogger) HasLevel(level string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.Logs {
		if e.Level == level {
			return true
		}
	}
	return false
}

// MockStore implements providers.StoreProviderInterface in memory.
type MockStore struct {
	mu   sync.Mutex
	Data map[string][]byte

	SetErr error
	GCRuns int
}

func NewMockStore() *MockStore {
	return &MockStore{Data: make(map[string][]byte)}
}

func (m *MockStore) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockStore) Set(key string, value []byte) error {
	if m.SetErr != nil {
		return m.SetErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	m.Data[key] = cp
	return nil
}

func (m *MockStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Data, key)
	return nil
}

func (m *MockStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data = make(map[string][]byte)
	return nil
}

func (m *MockStore) RunGC() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GCRuns++
	return nil
}

func (m *MockStore) Close() error { return nil }

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

func (m *MockCache) Del(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Data, key)
}

// MockCompressor implements interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	// Default: return as-is (identity)
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Close() {}

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu        sync.Mutex
	Hits      map[string]int
	Misses    map[string]int
	Evictions map[string]int
	APICalls  map[string]int
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{
		Hits:      make(map[string]int),
		Misses:    make(map[string]int),
		Evictions: make(map[string]int),
		APICalls:  make(map[string]int),
	}
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) ObserveGateWait(_ time.Duration)                  {}

func (m *MockMetrics) IncCacheHits(track string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Hits[track]++
}

func (m *MockMetrics) IncCacheMisses(track string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Misses[track]++
}

func (m *MockMetrics) IncCacheEvictions(track string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Evictions[track]++
}

func (m *MockMetrics) IncAPICall(endpoint string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.APICalls[endpoint]++
}

// MockCardAPI implements scryfall.ClientInterface with injectable behavior.
// Calls are recorded so tests can assert whether the network was touched.
type MockCardAPI struct {
	mu    sync.Mutex
	Calls []string

	ExactFn        func(name string) (*models.ScryfallCard, error)
	FuzzyFn        func(name string) (*models.ScryfallCard, error)
	SearchFn       func(query string, page int) (*models.ScryfallList, error)
	AutocompleteFn func(query string) ([]string, error)
}

func (m *MockCardAPI) record(call string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, call)
}

func (m *MockCardAPI) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

func (m *MockCardAPI) NamedExact(_ context.Context, name string) (*models.ScryfallCard, error) {
	m.record("exact:" + name)
	if m.ExactFn != nil {
		return m.ExactFn(name)
	}
	return nil, nil
}

func (m *MockCardAPI) NamedFuzzy(_ context.Context, name string) (*models.ScryfallCard, error) {
	m.record("fuzzy:" + name)
	if m.FuzzyFn != nil {
		return m.FuzzyFn(name)
	}
	return nil, nil
}

func (m *MockCardAPI) Search(_ context.Context, query string, page int) (*models.ScryfallList, error) {
	m.record("search:" + query)
	if m.SearchFn != nil {
		return m.SearchFn(query, page)
	}
	return &models.ScryfallList{Data: []models.ScryfallCard{}}, nil
}

func (m *MockCardAPI) Autocomplete(_ context.Context, query string) ([]string, error) {
	m.record("autocomplete:" + query)
	if m.AutocompleteFn != nil {
		return m.AutocompleteFn(query)
	}
	return nil, nil
}
