package handler

import (
	"net/http"

	"github.com/vfg2006/cv-report-api/internal/domain"
	"github.com/vfg2006/cv-report-api/internal/usecases/cvroutes"
	"github.com/vfg2006/cv-report-api/pkg/log"
)

// GetCVRoutes retorna as rotas de CV do tenant e as configurações de contagem
func GetCVRoutes(service cvroutes.RouteService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params, ok := requireQuery(w, r, "tenant")
		if !ok {
			return
		}

		settings, err := service.GetRoutesSettings(r.Context(), params["tenant"])
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar rotas de CV")
			return
		}

		writeJSON(w, r, http.StatusOK, settings)
	})
}

// SaveCVRoutes substitui as rotas de CV do tenant
func SaveCVRoutes(service cvroutes.RouteService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.SaveCVRoutesRequest
		if !decodeBody(w, r, &req) {
			return
		}

		resp, err := service.SaveRoutes(r.Context(), &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao salvar rotas de CV")
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"tenant":  req.Tenant,
			"updated": resp.Updated,
		}).Info("cv-routes: rotas salvas")

		writeJSON(w, r, http.StatusOK, resp)
	})
}
