// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"reflect"
	"strings"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Validator validates request structs tagged with `validate:"..."`.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator that reports json field names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &Validator{validate: v}
}

// Validate returns a 400 domain error naming the first failing field.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	first := fieldErrs[0]
	switch first.Tag() {
	case "required":
		return domainerrors.Validation(first.Field() + " is required")
	case "oneof":
		return domainerrors.Validation(first.Field() + " must be " + strings.Join(strings.Fields(first.Param()), " or "))
	default:
		return domainerrors.Validation(first.Field() + " is invalid")
	}
}
