// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "nearby/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// FieldViolation is one failed rule, keyed by the JSON field name.
type FieldViolation struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// RequestValidator implements echo.Validator.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates a validator that reports JSON field names.
func New() *RequestValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return &RequestValidator{validate: validate}
}

// Validate returns ErrValidationFailed listing every violated field.
func (v *RequestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	violations := Violations(fieldErrs)
	parts := make([]string, 0, len(violations))
	for _, violation := range violations {
		if violation.Param != "" {
			parts = append(parts, fmt.Sprintf("%s:%s=%s", violation.Field, violation.Rule, violation.Param))
		} else {
			parts = append(parts, fmt.Sprintf("%s:%s", violation.Field, violation.Rule))
		}
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(parts, "; "))
}

// Violations flattens validator errors into field violations.
func Violations(fieldErrs validator.ValidationErrors) []FieldViolation {
	violations := make([]FieldViolation, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		violations = append(violations, FieldViolation{
			Field: fieldErr.Field(),
			Rule:  fieldErr.Tag(),
			Param: fieldErr.Param(),
		})
	}

	return violations
}
