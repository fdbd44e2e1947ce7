package validator

import (
	"github.com/go-playground/validator/v10"

	apperrors "github.com/parking-microservice/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate - валидация структуры. Validation failures map onto the
// INVALID_REQUEST taxonomy entry with per-field details.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	if fieldErrs, ok := err.(validator.ValidationErrors); ok {
		details := make(map[string]interface{}, len(fieldErrs))
		for _, fe := range fieldErrs {
			details[fe.Field()] = fe.Tag()
		}
		return apperrors.ErrInvalidRequest.WithDetails(details)
	}

	return apperrors.ErrInvalidRequest
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}
