package config

import (
	apperrors "github.com/alexisbeaulieu97/teeform/pkg/errors"
)

// ValidateConfig checks a configuration after defaults, file values and flag
// overrides have been merged.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return apperrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}
	return nil
}
