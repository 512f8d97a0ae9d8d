package service

import "github.com/alquilerapp/rent-service/internal/models"

// summarize reduces the timeline to headline figures. It returns nil when
// fewer than two samples exist, and omits the FX change unless both
// endpoints carry a resolved FX amount.
func summarize(timeline []models.TimelineSample) *models.AnalysisSummary {
	if len(timeline) < 2 {
		return nil
	}
	first, last := timeline[0], timeline[len(timeline)-1]

	summary := &models.AnalysisSummary{
		TotalLocalChangePercent: (last.ActualAmount/first.ActualAmount - 1) * 100,
		ImpliedInflationPercent: (last.IdealAmount/first.IdealAmount - 1) * 100,
	}
	if first.FxAmount != nil && last.FxAmount != nil && *first.FxAmount > 0 {
		summary.TotalFxChangePercent = models.Float((*last.FxAmount / *first.FxAmount - 1) * 100)
	}
	return summary
}
