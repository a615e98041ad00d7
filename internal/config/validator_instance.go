package config

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/teeform/internal/ui/components"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	logLevels = map[string]struct{}{
		"trace": {}, "debug": {}, "info": {}, "warn": {}, "error": {}, "disabled": {},
	}
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("theme", func(fl validator.FieldLevel) bool {
			_, err := components.ParseThemeName(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("log_level", func(fl validator.FieldLevel) bool {
			_, ok := logLevels[strings.ToLower(fl.Field().String())]
			return ok
		})

		validateInst = v
	})

	return validateInst
}
