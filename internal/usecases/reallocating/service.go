package reallocating

import (
	"github.com/vfg2006/cv-report-api/internal/domain"
	"github.com/vfg2006/cv-report-api/pkg/utils"
)

// Reallocate redistribui o total confirmado entre os valores da dimensão na proporção
// das contagens brutas do feed. Nunca falha: sem linhas retorna no_data e sem eventos
// retorna fallback_ga4.
func Reallocate(dimension domain.Dimension, confirmedTotal int, breakdown []domain.DimensionBreakdownRow) *domain.DimensionAllocationResult {
	if confirmedTotal < 0 {
		confirmedTotal = 0
	}

	result := &domain.DimensionAllocationResult{
		Dimension:      dimension,
		ConfirmedTotal: confirmedTotal,
		Rows:           []domain.DimensionAllocationRow{},
	}

	if len(breakdown) == 0 {
		result.Status = domain.AllocationStatusNoData
		return result
	}

	weights := make([]int, len(breakdown))
	ga4Total := 0
	for i, row := range breakdown {
		if row.EventCount > 0 {
			weights[i] = row.EventCount
			ga4Total += row.EventCount
		}
	}
	result.GA4Total = ga4Total

	if ga4Total == 0 {
		result.Status = domain.AllocationStatusFallbackGA4
		for _, row := range breakdown {
			result.Rows = append(result.Rows, newRow(row, 0, 0))
		}
		return result
	}

	result.Status = domain.AllocationStatusOK
	result.ConfidenceRatio = utils.RoundTo(utils.Ratio(confirmedTotal, ga4Total), 4)

	shares := Apportion(confirmedTotal, weights)
	for i, row := range breakdown {
		ratio := utils.RoundTo(utils.Ratio(weights[i], ga4Total), 4)
		result.Rows = append(result.Rows, newRow(row, ratio, shares[i]))
	}

	return result
}

func newRow(row domain.DimensionBreakdownRow, ratio float64, reallocated int) domain.DimensionAllocationRow {
	return domain.DimensionAllocationRow{
		Label:            row.Label,
		Sessions:         row.Sessions,
		Users:            row.Users,
		Pageviews:        row.Pageviews,
		GA4Count:         row.EventCount,
		GA4Ratio:         ratio,
		ReallocatedCount: reallocated,
		ReallocatedCVR:   utils.RoundWithTwoDecimalPlace(utils.Ratio(reallocated, row.Sessions) * 100),
	}
}
