package repository

import (
	"context"
	"sync"

	"github.com/alquilerapp/rent-service/internal/models"
	"github.com/sirupsen/logrus"
)

// FxHistoryProvider fetches a full historical FX series.
type FxHistoryProvider interface {
	Name() string
	FetchSeries(ctx context.Context) (models.FxSeries, error)
}

// FxRepository memoizes one historical FX series. Providers are tried in
// order; the first one that answers wins the cache and later calls do not
// re-query the others. FX data is an optional annotation, so a repository
// with every provider down yields no series rather than an error.
type FxRepository struct {
	providers []FxHistoryProvider
	log       *logrus.Logger

	mu     sync.RWMutex
	series models.FxSeries
	source string
}

// NewFxRepository initializes a new FX history repository.
func NewFxRepository(log *logrus.Logger, providers ...FxHistoryProvider) *FxRepository {
	return &FxRepository{providers: providers, log: log}
}

// Series returns the memoized historical series, fetching on first use.
// The second return is false when no provider could deliver the series;
// a later call will try again, since failure is never cached.
func (r *FxRepository) Series(ctx context.Context) (models.FxSeries, bool) {
	r.mu.RLock()
	series := r.series
	r.mu.RUnlock()
	if series != nil {
		return series, true
	}
	return r.fetch(ctx)
}

// Warm eagerly populates the cache. Meant to run concurrently with the
// index fetch at the start of a calculation.
func (r *FxRepository) Warm(ctx context.Context) {
	r.Series(ctx)
}

// Refresh re-fetches the series, keeping the previous one on failure.
func (r *FxRepository) Refresh(ctx context.Context) {
	if _, ok := r.fetch(ctx); !ok {
		r.log.Warn("FX history refresh failed, keeping previous series")
	}
}

func (r *FxRepository) fetch(ctx context.Context) (models.FxSeries, bool) {
	for _, p := range r.providers {
		series, err := p.FetchSeries(ctx)
		if err != nil {
			r.log.Warnf("FX history provider %s failed: %v", p.Name(), err)
			continue
		}
		if len(series) == 0 {
			r.log.Warnf("FX history provider %s returned an empty series", p.Name())
			continue
		}

		r.mu.Lock()
		r.series = series
		r.source = p.Name()
		r.mu.Unlock()

		r.log.Infof("Cached FX history from %s with %d days", p.Name(), len(series))
		return series, true
	}
	return nil, false
}

// Source reports which provider won the cache, for diagnostics.
func (r *FxRepository) Source() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.source
}
