package service

import (
	"context"
	"sync"
	"time"

	"github.com/alquilerapp/rent-service/internal/models"
	"github.com/alquilerapp/rent-service/internal/repository"
	"github.com/sirupsen/logrus"
)

// FxResolver resolves an FX quote for a day, reporting a miss with false.
type FxResolver interface {
	Resolve(ctx context.Context, day time.Time) (float64, bool)
}

// HistoryWarmer eagerly populates the FX history cache.
type HistoryWarmer interface {
	Warm(ctx context.Context)
}

// Service handles the rent calculation business logic.
type Service struct {
	index  *repository.IndexRepository
	warmer HistoryWarmer
	fx     FxResolver
	log    *logrus.Logger

	// now is captured once per calculation so "today" never advances
	// mid-run. Overridable in tests.
	now func() time.Time
}

// NewService initializes a new service.
func NewService(index *repository.IndexRepository, warmer HistoryWarmer, fx FxResolver, log *logrus.Logger) *Service {
	return &Service{
		index:  index,
		warmer: warmer,
		fx:     fx,
		log:    log,
		now:    time.Now,
	}
}

// CalculateRent computes the adjustment schedule, the monthly timeline and
// the summary figures for the given contract. Only an unavailable index
// provider fails the call; FX outages and index gaps degrade the payload
// instead.
func (s *Service) CalculateRent(ctx context.Context, input models.CalculationInput) (*models.CalculationResult, error) {
	today := models.NewDate(s.now()).Time

	// The index fetch and the FX history warm-up are independent network
	// calls; run them together, but both settle before the engine starts.
	var (
		wg     sync.WaitGroup
		series models.IndexSeries
		err    error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		series, err = s.index.Series(ctx)
	}()
	if s.warmer != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.warmer.Warm(ctx)
		}()
	}
	wg.Wait()
	if err != nil {
		return nil, err
	}

	events := s.buildEvents(ctx, input, series, today)
	timeline := s.buildTimeline(ctx, input, series, events, today)

	result := &models.CalculationResult{
		Events:   events,
		Timeline: timeline,
		Analysis: summarize(timeline),
	}
	s.log.Infof("Calculated rent evolution: %d events, %d timeline samples", len(events), len(timeline))
	return result, nil
}

// IndexSeries exposes the memoized IPC series for the proxy endpoint.
func (s *Service) IndexSeries(ctx context.Context) (models.IndexSeries, error) {
	return s.index.Series(ctx)
}
