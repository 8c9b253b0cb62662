package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/vfg2006/cv-report-api/internal/domain"
	"github.com/vfg2006/cv-report-api/pkg/apiErrors"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	_ = validate.RegisterValidation("rowhash", validateRowHash)

	// Erros usam o nome do campo no JSON
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateRowHash(fl validator.FieldLevel) bool {
	return domain.ValidRowHash(fl.Field().String())
}

// validateRequest valida o DTO e converte a primeira falha no erro de domínio correspondente
func validateRequest(request any) error {
	err := validate.Struct(request)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return domain.NewCVError(errInvalidField, apiErrors.ErrInvalidRequest, err.Error())
	}

	field := validationErrors[0]
	details := fmt.Sprintf("campo %s falhou na regra %s", field.Namespace(), field.Tag())

	switch {
	case field.Tag() == "rowhash":
		return domain.NewCVError(domain.ErrInvalidRowHash, apiErrors.ErrInvalidRowHash, details)
	case field.Field() == "status":
		return domain.NewCVError(domain.ErrInvalidReviewStatus, apiErrors.ErrInvalidReviewStatus, details)
	case field.Field() == "routes" && field.Tag() == "max":
		return domain.NewCVError(domain.ErrTooManyRoutes, apiErrors.ErrTooManyRoutes, details)
	case field.Field() == "month" && field.Tag() == "datetime":
		return domain.NewCVError(domain.ErrInvalidMonth, apiErrors.ErrInvalidFormat, details)
	case field.Field() == "date" && field.Tag() == "datetime":
		return domain.NewCVError(domain.ErrDateOutsideMonth, apiErrors.ErrInvalidFormat, details)
	case field.Field() == "tenant":
		return domain.NewCVError(domain.ErrTenantRequired, apiErrors.ErrMissingRequiredData, details)
	case field.Field() == "route_key":
		return domain.NewCVError(domain.ErrEmptyRouteKey, apiErrors.ErrMissingRequiredData, details)
	case field.Tag() == "required":
		return domain.NewCVError(errMissingField, apiErrors.ErrMissingRequiredData, details)
	default:
		return domain.NewCVError(errInvalidField, apiErrors.ErrInvalidRequest, details)
	}
}

var (
	errMissingField = errors.New("missing required field")
	errInvalidField = errors.New("invalid field")
)
