package validation

import (
	"strings"

	"github.com/tdejong/Trading-Journal-Backend/internal/api/request"
)

// ValidateCreateStrategy validates a strategy creation request.
// Only the name is required; description and image references are free-form.
func ValidateCreateStrategy(req request.CreateStrategyRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateStrategy validates a strategy update request.
func ValidateUpdateStrategy(req request.UpdateStrategyRequest) error {
	errors := make(map[string]string)

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		errors["name"] = "name is required"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
