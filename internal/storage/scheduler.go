package storage

import (
	"sync"
	"time"

	"github.com/roylee0704/gron"

	"cardmirror/internal/providers"
	"cardmirror/internal/storage/interfaces"
	"cardmirror/internal/structures"
)

// Scheduler drives the periodic maintenance of the backing store. Badger
// reclaims value-log space only when asked, so GC runs on a fixed interval.
type Scheduler struct {
	config *structures.Config
	logger providers.Logger
	store  providers.StoreProviderInterface
	cron   *gron.Cron
	opsMu  sync.Mutex
}

func (s *Scheduler) Init() {
	s.cron = gron.New()
	interval := s.config.Store.GCInterval
	if interval <= 0 {
		interval = time.Hour
	}

	s.cron.AddFunc(gron.Every(interval), func() {
		s.opsMu.Lock()
		defer s.opsMu.Unlock()

		if err := s.store.RunGC(); err != nil {
			s.logger.Errorf(providers.TypeApp, "Store GC error: %s", err)
			return
		}
		s.logger.Debugf(providers.TypeApp, "Store GC cycle finished")
	})

	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func NewScheduler(config *structures.Config, logger providers.Logger, store providers.StoreProviderInterface) interfaces.SchedulerInterface {
	return &Scheduler{
		config: config,
		logger: logger,
		store:  store,
	}
}
