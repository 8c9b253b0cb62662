package domain

import (
	"errors"
	"fmt"
)

// Erros do motor de conversões
var (
	// Erros de validação
	ErrTenantRequired      = errors.New("tenant is required")
	ErrTenantNotFound      = errors.New("tenant not found")
	ErrInvalidMonth        = errors.New("invalid month")
	ErrTooManyRoutes       = errors.New("too many cv routes")
	ErrEmptyRouteKey       = errors.New("route key is required")
	ErrDuplicateRouteKey   = errors.New("duplicate route key")
	ErrUnknownRoute        = errors.New("route is not configured for tenant")
	ErrInvalidManualCount  = errors.New("invalid manual count")
	ErrDateOutsideMonth    = errors.New("date outside of month")
	ErrInvalidReviewStatus = errors.New("invalid review status")
	ErrInvalidRowHash      = errors.New("invalid row hash")
	ErrReviewRowNotFound   = errors.New("review row not found")
	ErrInvalidDimension    = errors.New("invalid dimension")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
)

// CVError carrega o código de API e o tenant envolvido
type CVError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	TenantID string // Tenant envolvido (quando aplicável)
	Details  string // Detalhes adicionais
}

func (e *CVError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CVError) Unwrap() error {
	return e.Err
}

func NewCVError(err error, code string, details string) *CVError {
	return &CVError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewCVErrorWithTenant(err error, code string, tenantID string, details string) *CVError {
	return &CVError{
		Err:      err,
		Code:     code,
		TenantID: tenantID,
		Details:  details,
	}
}
