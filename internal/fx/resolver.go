// Package fx resolves a blue-dollar quote for an arbitrary day through a
// prioritized chain of strategies. The chain exists because every upstream
// source is independently unreliable: a cached full-history series is
// preferred, a per-date endpoint comes next, and a "now"-only endpoint is
// the last resort. Failing every tier yields an absent value, never an
// error; FX figures only annotate an otherwise valid calculation.
package fx

import (
	"context"
	"errors"
	"time"

	"github.com/alquilerapp/rent-service/internal/integrations/dolar"
	"github.com/alquilerapp/rent-service/internal/models"
	"github.com/sirupsen/logrus"
)

// lookbackDays is how far a strategy walks backward from the requested day
// before giving up. Six days back covers any weekend-plus-holiday stretch
// without a market quote.
const lookbackDays = 6

// Strategy resolves a quote for a single day, reporting a miss with false.
type Strategy interface {
	Name() string
	Resolve(ctx context.Context, day time.Time) (float64, bool)
}

// Resolver tries its strategies in priority order and short-circuits on the
// first hit.
type Resolver struct {
	strategies []Strategy
	log        *logrus.Logger
}

// NewResolver initializes a resolver with the given strategy chain.
func NewResolver(log *logrus.Logger, strategies ...Strategy) *Resolver {
	return &Resolver{strategies: strategies, log: log}
}

// Resolve returns the quote for day, or false when every tier misses.
func (r *Resolver) Resolve(ctx context.Context, day time.Time) (float64, bool) {
	for _, s := range r.strategies {
		if v, ok := s.Resolve(ctx, day); ok {
			return v, true
		}
	}
	r.log.Debugf("No FX quote resolvable for %s", day.Format(models.DateFormat))
	return 0, false
}

// HistorySource provides the cached historical series.
type HistorySource interface {
	Series(ctx context.Context) (models.FxSeries, bool)
}

// HistoryStrategy looks the day up in the cached historical series, walking
// backward up to lookbackDays. All lookups are in-memory.
type HistoryStrategy struct {
	source HistorySource
}

// NewHistoryStrategy initializes the cached-history tier.
func NewHistoryStrategy(source HistorySource) *HistoryStrategy {
	return &HistoryStrategy{source: source}
}

func (s *HistoryStrategy) Name() string { return "history" }

func (s *HistoryStrategy) Resolve(ctx context.Context, day time.Time) (float64, bool) {
	series, ok := s.source.Series(ctx)
	if !ok {
		return 0, false
	}
	for i := 0; i <= lookbackDays; i++ {
		if v, ok := series.Rate(day.AddDate(0, 0, -i)); ok {
			return v, true
		}
	}
	return 0, false
}

// RateFetcher fetches the quote for one specific day over the network.
type RateFetcher interface {
	FetchRate(ctx context.Context, day time.Time) (float64, error)
}

// DateStrategy queries a per-date provider, one network call per attempted
// day, walking backward up to lookbackDays (seven calls at most).
type DateStrategy struct {
	client RateFetcher
	log    *logrus.Logger
}

// NewDateStrategy initializes the per-date tier.
func NewDateStrategy(client RateFetcher, log *logrus.Logger) *DateStrategy {
	return &DateStrategy{client: client, log: log}
}

func (s *DateStrategy) Name() string { return "per-date" }

func (s *DateStrategy) Resolve(ctx context.Context, day time.Time) (float64, bool) {
	for i := 0; i <= lookbackDays; i++ {
		if ctx.Err() != nil {
			return 0, false
		}
		v, err := s.client.FetchRate(ctx, day.AddDate(0, 0, -i))
		if err == nil {
			return v, true
		}
		if !errors.Is(err, dolar.ErrNoQuote) {
			s.log.Warnf("Per-date FX lookup failed: %v", err)
		}
	}
	return 0, false
}

// CurrentFetcher fetches the current quote, ignoring any requested date.
type CurrentFetcher interface {
	FetchCurrent(ctx context.Context) (float64, error)
}

// CurrentStrategy returns "now" regardless of the requested day. Last tier
// only: a current quote against a historical amount is a rough annotation,
// but better than none for recent dates.
type CurrentStrategy struct {
	client CurrentFetcher
	log    *logrus.Logger
}

// NewCurrentStrategy initializes the current-quote tier.
func NewCurrentStrategy(client CurrentFetcher, log *logrus.Logger) *CurrentStrategy {
	return &CurrentStrategy{client: client, log: log}
}

func (s *CurrentStrategy) Name() string { return "current" }

func (s *CurrentStrategy) Resolve(ctx context.Context, _ time.Time) (float64, bool) {
	v, err := s.client.FetchCurrent(ctx)
	if err != nil {
		s.log.Warnf("Current FX lookup failed: %v", err)
		return 0, false
	}
	return v, true
}
