package providers

import (
	"cardmirror/internal/structures"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// StoreProviderInterface is the durable key-value capability backing the
// card-data cache. Consumers treat it as opaque get/set/delete/clear;
// a missing key is not an error.
type StoreProviderInterface interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
	Delete(key string) error
	Clear() error
	RunGC() error
	Close() error
}

type StoreProvider struct {
	db     *badger.DB
	logger Logger
}

func NewStoreProvider(conf *structures.Config, logger Logger) (StoreProviderInterface, error) {
	opts := badger.DefaultOptions(conf.Store.Dir)
	opts.Logger = nil
	opts.CompactL0OnClose = true

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	logger.Infof(TypeApp, "Store opened at %s", conf.Store.Dir)

	return &StoreProvider{db: db, logger: logger}, nil
}

func (s *StoreProvider) Get(key string) ([]byte, bool) {
	var out []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		out, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false
	}
	if err != nil {
		s.logger.Errorf(TypeApp, "Store read failed for %s: %s", key, err)
		return nil, false
	}
	return out, true
}

func (s *StoreProvider) Set(key string, value []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
}

func (s *StoreProvider) Delete(key string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

func (s *StoreProvider) Clear() error {
	return s.db.DropAll()
}

// RunGC triggers one badger value-log GC cycle. ErrNoRewrite means there
// was nothing to collect and is not a failure.
func (s *StoreProvider) RunGC() error {
	err := s.db.RunValueLogGC(0.5)
	if errors.Is(err, badger.ErrNoRewrite) {
		return nil
	}
	return err
}

func (s *StoreProvider) Close() error {
	return s.db.Close()
}
