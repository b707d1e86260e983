package scryfall

import (
	"context"
	"time"

	"go.uber.org/atomic"
	"golang.org/x/time/rate"

	"cardmirror/internal/providers"
	"cardmirror/internal/structures"
)

// Pacer is the single global gate in front of the external API. With a
// burst of 1 the limiter degenerates to fixed-interval pacing: two
// consecutive gated calls are never closer than MinInterval apart.
// The limiter owns the shared last-call state and updates it atomically
// with the check, so concurrent callers cannot squeeze through together.
type Pacer struct {
	limiter *rate.Limiter
	metrics providers.MetricsProviderInterface

	gatedCalls atomic.Int64
	totalWait  atomic.Duration
}

func NewPacer(conf *structures.Config, metrics providers.MetricsProviderInterface) *Pacer {
	return &Pacer{
		limiter: rate.NewLimiter(rate.Every(conf.Scryfall.MinInterval), 1),
		metrics: metrics,
	}
}

// Gate blocks until the minimum inter-call interval has elapsed since the
// previous gated call. It only fails when ctx is cancelled.
func (p *Pacer) Gate(ctx context.Context) error {
	start := time.Now()
	if err := p.limiter.Wait(ctx); err != nil {
		return err
	}
	waited := time.Since(start)
	p.gatedCalls.Inc()
	p.totalWait.Add(waited)
	p.metrics.ObserveGateWait(waited)
	return nil
}

// GatedCalls returns the number of calls that passed the gate.
func (p *Pacer) GatedCalls() int64 {
	return p.gatedCalls.Load()
}

// TotalWait returns the cumulative time callers spent blocked on the gate.
func (p *Pacer) TotalWait() time.Duration {
	return p.totalWait.Load()
}
