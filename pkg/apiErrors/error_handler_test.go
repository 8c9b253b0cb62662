package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		wantStatus int
	}{
		{name: "Validação", code: ErrTooManyRoutes, wantStatus: http.StatusBadRequest},
		{name: "Hash inválido", code: ErrInvalidRowHash, wantStatus: http.StatusBadRequest},
		{name: "Tenant inexistente", code: ErrTenantNotFound, wantStatus: http.StatusNotFound},
		{name: "Rota inexistente", code: ErrRouteNotFound, wantStatus: http.StatusNotFound},
		{name: "Método não permitido", code: ErrMethodNotAllowed, wantStatus: http.StatusMethodNotAllowed},
		{name: "Feed externo", code: ErrExternalService, wantStatus: http.StatusBadGateway},
		{name: "Código desconhecido vira 500", code: "XYZ_999", wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.code, "mensagem", map[string]string{"campo": "valor"})

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
		})
	}
}

func TestFromError(t *testing.T) {
	assert.Equal(t, ErrInternalServer, FromError(nil, ErrInvalidRequest).Code)

	apiErr := FromError(errors.New("falhou"), ErrDatabaseOperation)
	assert.Equal(t, ErrDatabaseOperation, apiErr.Code)
	assert.Equal(t, "falhou", apiErr.Message)
}
