package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	atomicerrors "github.com/alexisbeaulieu97/atomic/pkg/errors"
)

// convertValidationError normalizes validator errors into atomic validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Param() != "" {
			msg += fmt.Sprintf(" (%s)", ve.Param())
		}
		return atomicerrors.NewValidationError(field, msg, err)
	}

	return atomicerrors.NewValidationError("document", err.Error(), err)
}

// yamlishFieldName turns Document.Components[0].Axes[1].Name into
// components[0].axes[1].name.
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

func fieldForComponent(index int, field string) string {
	return fmt.Sprintf("components[%d].%s", index, field)
}
