package service

import (
	"strings"

	"storefront/internal/models"
)

// requireText trims value and fails when nothing is left.
func requireText(field, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", models.NewValidationError(field + " is required")
	}
	return trimmed, nil
}

// patchText validates a present patch field; nil stays nil.
func patchText(field string, value *string) (*string, error) {
	if value == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil, models.NewValidationError(field + " must not be empty")
	}
	return &trimmed, nil
}

func checkPrice(price *float64) error {
	if price == nil {
		return models.NewValidationError("price is required")
	}
	if *price < 0 {
		return models.NewValidationError("price must be non-negative")
	}
	return nil
}
