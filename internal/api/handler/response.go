package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/cv-report-api/internal/domain"
	"github.com/vfg2006/cv-report-api/pkg/apiErrors"
	"github.com/vfg2006/cv-report-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao codificar resposta")
	}
}

// writeServiceError traduz os erros dos casos de uso para o formato padronizado da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	logger := log.ForContext(r.Context()).WithError(err)

	var cvErr *domain.CVError
	if errors.As(err, &cvErr) {
		details := map[string]any{"error_type": cvErr.Err.Error()}
		if cvErr.TenantID != "" {
			details["tenant"] = cvErr.TenantID
		}

		if apiErrors.StatusFor(cvErr.Code) >= http.StatusInternalServerError {
			logger.Error(fallback)
		} else {
			logger.Warn(fallback)
		}

		apiErrors.WriteError(w, cvErr.Code, cvErr.Error(), details)
		return
	}

	logger.Error(fallback)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}

// decodeBody decodifica e valida o corpo JSON; devolve false quando já respondeu com erro
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
		return false
	}

	if err := validateRequest(dst); err != nil {
		writeServiceError(w, r, err, "Requisição inválida")
		return false
	}

	return true
}

// requireQuery lê parâmetros obrigatórios da query string
func requireQuery(w http.ResponseWriter, r *http.Request, names ...string) (map[string]string, bool) {
	values := make(map[string]string, len(names))
	missing := []string{}

	for _, name := range names {
		value := r.URL.Query().Get(name)
		if value == "" {
			missing = append(missing, name)
			continue
		}
		values[name] = value
	}

	if len(missing) > 0 {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetros obrigatórios ausentes", map[string]any{
			"missing": missing,
		})
		return nil, false
	}

	return values, true
}
