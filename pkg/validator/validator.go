package validator

import (
	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	return &CustomValidator{
		validator: validator.New(),
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// FormatValidationErrors keys messages by the struct namespace so nested
// config sections (App.Port, Upstream.URL) stay distinguishable.
func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.StructNamespace()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "required_with":
				errors[field] = field + " is required when " + e.Param() + " is set"
			case "url":
				errors[field] = field + " must be a valid URL"
			case "numeric":
				errors[field] = field + " must be numeric"
			case "oneof":
				errors[field] = field + " must be one of: " + e.Param()
			case "gt":
				errors[field] = field + " must be greater than " + e.Param()
			case "gte":
				errors[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[field] = field + " must be less than or equal to " + e.Param()
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
