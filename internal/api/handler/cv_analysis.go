package handler

import (
	"net/http"

	"github.com/vfg2006/cv-report-api/internal/domain"
	"github.com/vfg2006/cv-report-api/internal/usecases/analyzing"
	"github.com/vfg2006/cv-report-api/pkg/log"
)

// GetCVAnalysis retorna o CV efetivo e a realocação por dimensão do período e do mês anterior
func GetCVAnalysis(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params, ok := requireQuery(w, r, "tenant", "period")
		if !ok {
			return
		}

		analysis, err := service.Analyze(r.Context(), params["tenant"], params["period"])
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular análise de CV")
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"tenant": params["tenant"],
			"period": params["period"],
			"total":  analysis.Current.Effective.Total,
		}).Info("cv-analysis: análise calculada")

		writeJSON(w, r, http.StatusOK, analysis)
	})
}

// GetCVAllocation retorna a realocação de uma única dimensão
func GetCVAllocation(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params, ok := requireQuery(w, r, "tenant", "period", "dimension")
		if !ok {
			return
		}

		allocation, err := service.Allocate(r.Context(), params["tenant"], params["period"], domain.Dimension(params["dimension"]))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular realocação")
			return
		}

		writeJSON(w, r, http.StatusOK, allocation)
	})
}
