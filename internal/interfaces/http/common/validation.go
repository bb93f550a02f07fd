package common

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator and reports fields by their JSON name.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return &Validator{validate: v}
}

// ValidateStruct validates a struct using struct tags.
func (v *Validator) ValidateStruct(s any) error {
	return v.validate.Struct(s)
}

// FormatValidationErrors converts validation errors to field messages.
func FormatValidationErrors(err error) map[string]string {
	fields := make(map[string]string)

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fields
	}
	for _, e := range validationErrs {
		field := e.Field()
		switch e.Tag() {
		case "required":
			fields[field] = fmt.Sprintf("%s is required", field)
		case "required_if":
			fields[field] = fmt.Sprintf("%s is required when %s", field, strings.Replace(e.Param(), " ", " is ", 1))
		case "email":
			fields[field] = "invalid email format"
		case "min":
			fields[field] = fmt.Sprintf("%s must be at least %s", field, e.Param())
		case "max":
			fields[field] = fmt.Sprintf("%s must be at most %s", field, e.Param())
		case "gte":
			fields[field] = fmt.Sprintf("%s must be greater than or equal to %s", field, e.Param())
		case "lte":
			fields[field] = fmt.Sprintf("%s must be less than or equal to %s", field, e.Param())
		case "oneof":
			fields[field] = fmt.Sprintf("%s must be one of %s", field, e.Param())
		default:
			fields[field] = fmt.Sprintf("%s is invalid", field)
		}
	}
	return fields
}
