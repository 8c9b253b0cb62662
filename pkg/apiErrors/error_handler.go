package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrTooManyRoutes       = "VAL_004" // Mais rotas de CV que o permitido
	ErrInvalidManualCount  = "VAL_005" // Contagem manual fora do intervalo
	ErrInvalidReviewStatus = "VAL_006" // Status de revisão inválido
	ErrInvalidRowHash      = "VAL_007" // Hash de linha fora do formato
	ErrUnknownRoute        = "VAL_008" // Rota não configurada para o tenant

	// Erros de recurso (4000-4999)
	ErrTenantNotFound    = "RES_001" // Tenant não encontrado
	ErrReviewRowNotFound = "RES_002" // Linha de revisão não encontrada
	ErrRouteNotFound     = "RES_003" // Rota HTTP inexistente
	ErrMethodNotAllowed  = "RES_004" // Método HTTP não suportado na rota

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrCommunication     = "SRV_004" // Erro de comunicação
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrTooManyRoutes:       http.StatusBadRequest,
	ErrInvalidManualCount:  http.StatusBadRequest,
	ErrInvalidReviewStatus: http.StatusBadRequest,
	ErrInvalidRowHash:      http.StatusBadRequest,
	ErrUnknownRoute:        http.StatusBadRequest,
	ErrTenantNotFound:      http.StatusNotFound,
	ErrReviewRowNotFound:   http.StatusNotFound,
	ErrRouteNotFound:       http.StatusNotFound,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
	ErrCommunication:       http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP associado ao código
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}

	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
