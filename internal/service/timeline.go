package service

import (
	"context"
	"sync"
	"time"

	"github.com/alquilerapp/rent-service/internal/models"
)

// fxConcurrency bounds the worker pool that annotates timeline samples with
// FX amounts. Resolutions for different months are independent; results are
// written back by index so order is preserved.
const fxConcurrency = 4

// buildTimeline samples the contract monthly from the start date to today,
// producing the actual (step-function) amount, the continuously indexed
// ideal amount and an optional FX amount per month.
func (s *Service) buildTimeline(ctx context.Context, input models.CalculationInput, series models.IndexSeries, events []models.AdjustmentEvent, today time.Time) []models.TimelineSample {
	startMonth := models.MonthOf(input.StartDate.Time)
	endMonth := models.MonthOf(today)
	if endMonth.Before(startMonth) {
		return nil
	}

	// The ideal curve shares the engine's one-month publication lag on both
	// ends of the ratio, so it starts at the principal and meets the actual
	// curve at every adjustment date.
	baseIdx, haveBase := series.Value(startMonth.AddMonths(-1))

	var samples []models.TimelineSample
	actual := input.InitialAmount
	next := 0
	for m := startMonth; !m.After(endMonth); m = m.AddMonths(1) {
		day := m.FirstDay()

		// Advance the step function past every adjustment on or before
		// this sample. Gap events carry no amount and are skipped.
		for next < len(events) && !events[next].Date.After(day.Time) {
			if events[next].Amount != nil {
				actual = *events[next].Amount
			}
			next++
		}

		ideal := actual
		if v, ok := series.Value(m.AddMonths(-1)); ok && haveBase {
			ideal = input.InitialAmount * v / baseIdx
		}

		samples = append(samples, models.TimelineSample{
			Date:         day,
			ActualAmount: actual,
			IdealAmount:  ideal,
		})
	}

	s.annotateFx(ctx, samples)
	return samples
}

// annotateFx resolves FX amounts for all samples with a bounded worker pool.
// Each worker writes only its own index, so no lock is needed.
func (s *Service) annotateFx(ctx context.Context, samples []models.TimelineSample) {
	sem := make(chan struct{}, fxConcurrency)
	var wg sync.WaitGroup
	for i := range samples {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			if rate, ok := s.fx.Resolve(ctx, samples[i].Date.Time); ok {
				samples[i].FxAmount = models.Float(samples[i].ActualAmount / rate)
			}
		}(i)
	}
	wg.Wait()
}
