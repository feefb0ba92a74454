package projects_controllers

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// bindingErrors turns gin binding failures into field-level validation detail.
func bindingErrors(err error) map[string]string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields[strings.ToLower(fieldErr.Field())] = fieldErr.Tag()
	}

	return fields
}
