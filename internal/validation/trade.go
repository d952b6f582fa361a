package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/tdejong/Trading-Journal-Backend/internal/api/request"
)

// ValidTradeDirection contains the allowed trade direction values.
var ValidTradeDirection = map[string]bool{
	"long": true, "short": true,
}

// ValidOrderType contains the allowed order type values. The field itself
// is optional.
var ValidOrderType = map[string]bool{
	"scalping": true, "swing": true,
}

// ValidateCreateTrade validates a trade creation request.
//
// Required fields:
//   - name: Non-empty symbol
//   - openPrice: Must be positive
//   - direction: Must be one of: long, short
//   - level: Leverage multiplier, must be at least 1
//   - volume: Must be positive
//
// Optional fields (validated if provided):
//   - openDate, closeDate: Must be in YYYY-MM-DD format
//   - closePrice: Must be positive
//   - orderType: Must be one of: scalping, swing
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateTrade(req request.CreateTradeRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}

	if req.OpenPrice <= 0.0 {
		errors["openPrice"] = "openPrice must be positive"
	}

	if req.ClosePrice != nil && *req.ClosePrice <= 0.0 {
		errors["closePrice"] = "closePrice must be positive"
	}

	if strings.TrimSpace(req.Direction) == "" {
		errors["direction"] = "direction is required"
	} else if !ValidTradeDirection[req.Direction] {
		errors["direction"] = fmt.Sprintf("invalid direction: %s", req.Direction)
	}

	if req.Level < 1 {
		errors["level"] = "level must be at least 1"
	}

	if req.Volume <= 0.0 {
		errors["volume"] = "volume must be positive"
	}

	if req.OrderType != "" && !ValidOrderType[req.OrderType] {
		errors["orderType"] = fmt.Sprintf("invalid orderType: %s", req.OrderType)
	}

	validateDateField(errors, "openDate", req.OpenDate)
	validateDateField(errors, "closeDate", req.CloseDate)

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateTrade validates a trade update request.
// All fields are optional, but if provided, they must meet the same constraints as create.
func ValidateUpdateTrade(req request.UpdateTradeRequest) error {
	errors := make(map[string]string)

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		errors["name"] = "name is required"
	}
	if req.OpenPrice != nil && *req.OpenPrice <= 0.0 {
		errors["openPrice"] = "openPrice must be positive"
	}
	if req.ClosePrice != nil && *req.ClosePrice <= 0.0 {
		errors["closePrice"] = "closePrice must be positive"
	}
	if req.Direction != nil {
		if strings.TrimSpace(*req.Direction) == "" {
			errors["direction"] = "direction is required"
		} else if !ValidTradeDirection[*req.Direction] {
			errors["direction"] = fmt.Sprintf("invalid direction: %s", *req.Direction)
		}
	}
	if req.Level != nil && *req.Level < 1 {
		errors["level"] = "level must be at least 1"
	}
	if req.Volume != nil && *req.Volume <= 0.0 {
		errors["volume"] = "volume must be positive"
	}
	if req.OrderType != nil && *req.OrderType != "" && !ValidOrderType[*req.OrderType] {
		errors["orderType"] = fmt.Sprintf("invalid orderType: %s", *req.OrderType)
	}
	if req.OpenDate != nil {
		validateDateField(errors, "openDate", *req.OpenDate)
	}
	if req.CloseDate != nil {
		validateDateField(errors, "closeDate", *req.CloseDate)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateTradePreview validates a what-if P&L preview request.
// The open price may be zero here; the calculator reports "no result" for
// that case rather than the boundary rejecting it.
func ValidateTradePreview(req request.PreviewTradeRequest) error {
	errors := make(map[string]string)

	if !ValidTradeDirection[req.Direction] {
		errors["direction"] = fmt.Sprintf("invalid direction: %s", req.Direction)
	}
	if req.Level < 1 {
		errors["level"] = "level must be at least 1"
	}
	if req.Volume <= 0.0 {
		errors["volume"] = "volume must be positive"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

func validateDateField(errors map[string]string, field, value string) {
	if value == "" {
		return
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		errors[field] = err.Error()
	}
}
