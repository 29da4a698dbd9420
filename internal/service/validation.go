package service

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"patient-transport-backend/internal/apperror"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func requestValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		// report fields by their JSON name
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})
		// blank strings count as missing
		validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	})
	return validate
}

// validateRequest checks the struct tags of a request and returns the first
// failing field as a validation error naming that field
func validateRequest(req interface{}) error {
	err := requestValidator().Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return apperror.Required(fieldErrs[0].Field())
	}
	return apperror.Internal(err, "failed to validate request")
}

// stringOr returns *p when set, otherwise fallback
func stringOr(p *string, fallback string) string {
	if p != nil {
		return *p
	}
	return fallback
}

func intOr(p *int, fallback int) int {
	if p != nil {
		return *p
	}
	return fallback
}

func floatOr(p *float64, fallback float64) float64 {
	if p != nil {
		return *p
	}
	return fallback
}

func uintPtrOr(p *uint, fallback *uint) *uint {
	if p != nil {
		return p
	}
	return fallback
}
