package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alquilerapp/rent-service/internal/models"
)

// buildEvents walks the adjustment schedule from the contract start to
// today, compounding the amount by the index ratio at every period.
//
// Contract conventions (fixed deliberately, see DESIGN.md):
//   - the sequence is seeded with a zero-percent event at the start date, so
//     event dates are exactly startDate + k*periodMonths for k >= 0;
//   - the Nth date is computed from the start date, not from the previous
//     cursor, so end-of-month rollover never compounds;
//   - both index lookups lag the adjustment date by one month, modelling the
//     official publication delay;
//   - a missing index value terminates the schedule with a single gap event
//     that carries only the date and a message; everything computed so far
//     is kept.
func (s *Service) buildEvents(ctx context.Context, input models.CalculationInput, series models.IndexSeries, today time.Time) []models.AdjustmentEvent {
	amount := input.InitialAmount
	start := input.StartDate.Time

	seed := models.AdjustmentEvent{
		Date:          models.NewDate(start),
		Amount:        models.Float(amount),
		PercentChange: models.Float(0),
	}
	if rate, ok := s.fx.Resolve(ctx, start); ok {
		seed.FxAmount = models.Float(amount / rate)
	}
	events := []models.AdjustmentEvent{seed}

	for k := 1; ; k++ {
		cursor := start.AddDate(0, k*input.PeriodMonths, 0)
		if cursor.After(today) {
			break
		}

		newMonth := models.MonthOf(cursor).AddMonths(-1)
		baseMonth := newMonth.AddMonths(-input.PeriodMonths)
		newIdx, okNew := series.Value(newMonth)
		baseIdx, okBase := series.Value(baseMonth)
		if !okNew || !okBase {
			events = append(events, models.AdjustmentEvent{
				Date:  models.NewDate(cursor),
				Error: fmt.Sprintf("no IPC data for the %s adjustment", models.MonthOf(cursor)),
			})
			s.log.Warnf("IPC gap at %s (new=%s base=%s), schedule truncated", models.MonthOf(cursor), newMonth, baseMonth)
			break
		}

		ratio := newIdx / baseIdx
		amount *= ratio
		event := models.AdjustmentEvent{
			Date:          models.NewDate(cursor),
			Amount:        models.Float(amount),
			PercentChange: models.Float((ratio - 1) * 100),
		}
		if rate, ok := s.fx.Resolve(ctx, cursor); ok {
			event.FxAmount = models.Float(amount / rate)
		}
		events = append(events, event)
	}
	return events
}
