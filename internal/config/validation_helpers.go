package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/alexisbeaulieu97/teeform/pkg/errors"
)

// convertValidationError normalizes validator errors into teeform validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		return apperrors.NewValidationError(field, messageFor(field, ve), err)
	}

	return apperrors.NewValidationError("config", err.Error(), err)
}

func messageFor(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "theme":
		return fmt.Sprintf("%s must be one of light, dark, colorful (got %q)", field, fe.Value())
	case "log_level":
		return fmt.Sprintf("%s must be one of trace, debug, info, warn, error, disabled (got %q)", field, fe.Value())
	case "gte", "lte":
		return fmt.Sprintf("%s must be %s %s", field, comparison(fe.Tag()), fe.Param())
	}
	return fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag())
}

func comparison(tag string) string {
	if tag == "gte" {
		return "at least"
	}
	return "at most"
}

// yamlishFieldName turns Config.Preview.Width into preview.width.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
