package config

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/ribbon/internal/providers"
	"github.com/alexisbeaulieu97/ribbon/internal/theme"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("segment_name", func(fl validator.FieldLevel) bool {
			return providers.IsKnown(fl.Field().String())
		})

		_ = v.RegisterValidation("theme_role", func(fl validator.FieldLevel) bool {
			return theme.IsRole(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}
