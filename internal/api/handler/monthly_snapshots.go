package handler

import (
	"net/http"

	"github.com/vfg2006/cv-report-api/internal/usecases/analyzing"
	"github.com/vfg2006/cv-report-api/pkg/log"
)

// GetMonthlySnapshots retorna os snapshots mensais de CV de todos os tenants para o período
func GetMonthlySnapshots(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params, ok := requireQuery(w, r, "period")
		if !ok {
			return
		}

		logger.WithField("period", params["period"]).Info("cv-snapshots: buscando snapshots mensais")

		snapshots, err := service.MonthlyReport(r.Context(), params["period"])
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar snapshots mensais")
			return
		}

		logger.WithFields(log.Fields{
			"period":           params["period"],
			"tenants_returned": len(snapshots),
		}).Info("cv-snapshots: snapshots recuperados com sucesso")

		writeJSON(w, r, http.StatusOK, snapshots)
	})
}

// GetAvailablePeriods retorna os períodos (meses e anos) com snapshot gravado
func GetAvailablePeriods(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		availablePeriods, err := service.AvailablePeriods(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar períodos disponíveis")
			return
		}

		logger.WithFields(log.Fields{
			"total_periods": len(availablePeriods.Periods),
			"years":         availablePeriods.Years,
		}).Info("cv-periods: períodos disponíveis recuperados com sucesso")

		writeJSON(w, r, http.StatusOK, availablePeriods)
	})
}
