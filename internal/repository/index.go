// Package repository holds the process-wide memoized series caches. The
// caches are write-once-per-key and advisory: a cold restart simply
// re-fetches, and a scheduled refresh swaps the whole series atomically.
package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/alquilerapp/rent-service/internal/models"
	"github.com/sirupsen/logrus"
)

// ErrUpstreamUnavailable marks the price index provider as unreachable or
// malformed. It is the only error of the calculation core that crosses the
// HTTP boundary as a failure.
var ErrUpstreamUnavailable = errors.New("index provider unavailable")

// IndexProvider fetches the full price index series.
type IndexProvider interface {
	FetchSeries(ctx context.Context) (models.IndexSeries, error)
}

// IndexRepository memoizes the IPC series for the process lifetime.
type IndexRepository struct {
	provider IndexProvider
	log      *logrus.Logger

	mu     sync.RWMutex
	series models.IndexSeries
}

// NewIndexRepository initializes a new index repository.
func NewIndexRepository(provider IndexProvider, log *logrus.Logger) *IndexRepository {
	return &IndexRepository{provider: provider, log: log}
}

// Series returns the memoized IPC series, fetching it on first use.
// Repeated calls never re-fetch. Concurrent first calls may race to populate
// the cache; the last writer wins, which is harmless since published index
// values are stable.
func (r *IndexRepository) Series(ctx context.Context) (models.IndexSeries, error) {
	r.mu.RLock()
	series := r.series
	r.mu.RUnlock()
	if series != nil {
		return series, nil
	}

	series, err := r.provider.FetchSeries(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	r.mu.Lock()
	r.series = series
	r.mu.Unlock()

	r.log.Infof("Cached IPC series with %d months", len(series))
	return series, nil
}

// Refresh re-fetches the series and swaps the cache. On failure the previous
// series is kept; the index gains at most one month per calendar month, so a
// stale cache only delays the newest adjustment.
func (r *IndexRepository) Refresh(ctx context.Context) error {
	series, err := r.provider.FetchSeries(ctx)
	if err != nil {
		return fmt.Errorf("index refresh failed: %w", err)
	}

	r.mu.Lock()
	r.series = series
	r.mu.Unlock()

	r.log.Infof("Refreshed IPC series, now %d months", len(series))
	return nil
}
