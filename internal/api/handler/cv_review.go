package handler

import (
	"net/http"

	"github.com/vfg2006/cv-report-api/internal/domain"
	"github.com/vfg2006/cv-report-api/internal/usecases/reviewing"
	"github.com/vfg2006/cv-report-api/pkg/middleware"
)

func GetCVReview(service reviewing.ReviewService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params, ok := requireQuery(w, r, "tenant", "month")
		if !ok {
			return
		}

		resp, err := service.ListMonth(r.Context(), params["tenant"], params["month"])
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar linhas de revisão")
			return
		}

		writeJSON(w, r, http.StatusOK, resp)
	})
}

func UpdateCVReviewRow(service reviewing.ReviewService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.UpdateReviewRowRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if err := service.UpdateRow(r.Context(), &req, middleware.InspectorFromContext(r.Context())); err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar linha de revisão")
			return
		}

		writeJSON(w, r, http.StatusOK, domain.BulkUpdateReviewResponse{Updated: 1})
	})
}

func BulkUpdateCVReview(service reviewing.ReviewService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.BulkUpdateReviewRequest
		if !decodeBody(w, r, &req) {
			return
		}

		resp, err := service.BulkUpdateRows(r.Context(), &req, middleware.InspectorFromContext(r.Context()))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar linhas de revisão")
			return
		}

		writeJSON(w, r, http.StatusOK, resp)
	})
}
