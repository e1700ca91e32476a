package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	ribbonerrors "github.com/alexisbeaulieu97/ribbon/pkg/errors"
)

// ValidateConfig performs structural and cross-field validation on an entire configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return ribbonerrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if len(cfg.Colors) > 0 && cfg.Theme != "custom" {
		return ribbonerrors.NewValidationError("colors", fmt.Sprintf("color overrides require theme \"custom\", got %q", cfg.Theme), nil)
	}

	for i, prefix := range cfg.Git.SkipStatusPrefixes {
		if strings.TrimSpace(prefix) == "" {
			return ribbonerrors.NewValidationError(fmt.Sprintf("git.skip_status_prefixes[%d]", i), "prefix must not be empty", nil)
		}
	}

	return nil
}

// convertValidationError normalizes validator errors into ribbon validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Value() != nil {
			msg = fmt.Sprintf("%s (value %v)", msg, ve.Value())
		}
		return ribbonerrors.NewValidationError(field, msg, err)
	}

	return ribbonerrors.NewValidationError("config", err.Error(), err)
}

var fieldNames = map[string]string{
	"maxdepth":           "max_depth",
	"homespecial":        "home_special",
	"probetimeout":       "probe_timeout",
	"skipstatusprefixes": "skip_status_prefixes",
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}

	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.ToLower(part)
		name, index, hasIndex := strings.Cut(part, "[")
		if mapped, ok := fieldNames[name]; ok {
			name = mapped
		}
		if hasIndex {
			name += "[" + index
		}
		lowered = append(lowered, name)
	}
	return strings.Join(lowered, ".")
}
