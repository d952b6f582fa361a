package validation

import (
	"fmt"
	"strconv"
)

// ErrInvalidID is returned for identifiers that are not positive integers.
var ErrInvalidID = fmt.Errorf("invalid ID format")

// ValidateID checks if a string is a valid positive integer identifier
// and returns the parsed value.
func ValidateID(id string) (int64, error) {
	parsed, err := strconv.ParseInt(id, 10, 64)
	if err != nil || parsed <= 0 {
		return 0, fmt.Errorf("%w: %s", ErrInvalidID, id)
	}
	return parsed, nil
}
