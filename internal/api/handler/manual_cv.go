package handler

import (
	"net/http"

	"github.com/vfg2006/cv-report-api/internal/domain"
	"github.com/vfg2006/cv-report-api/internal/usecases/manualcv"
	"github.com/vfg2006/cv-report-api/pkg/log"
)

// GetManualCV retorna a grade dia x rota de lançamentos manuais do mês
func GetManualCV(service manualcv.ManualCVService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params, ok := requireQuery(w, r, "tenant", "month")
		if !ok {
			return
		}

		month, err := service.GetMonthAllRoutes(r.Context(), params["tenant"], params["month"])
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar lançamentos manuais")
			return
		}

		writeJSON(w, r, http.StatusOK, month)
	})
}

// SaveManualCV grava um lote de lançamentos; count null remove o lançamento do dia
func SaveManualCV(service manualcv.ManualCVService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.SaveManualCVRequest
		if !decodeBody(w, r, &req) {
			return
		}

		resp, err := service.SaveBatch(r.Context(), &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gravar lançamentos manuais")
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"tenant":  req.Tenant,
			"period":  req.Month,
			"saved":   resp.Saved,
			"deleted": resp.Deleted,
		}).Info("manual-cv: lançamentos gravados")

		writeJSON(w, r, http.StatusOK, resp)
	})
}
