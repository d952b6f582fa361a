package repository

import (
	"encoding/json"
	"fmt"
	"time"
)

// timeFormats covers the date and timestamp forms stored by SQLite:
// plain dates, CURRENT_TIMESTAMP defaults and RFC3339 values.
var timeFormats = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// ParseTime parses a stored date or timestamp string.
// Note: mirrors the date handling in validation — both are intentionally kept local to avoid cross-layer imports.
func ParseTime(str string) (time.Time, error) {
	for _, format := range timeFormats {
		if parsed, err := time.Parse(format, str); err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("failed to parse date: %s", str)
}

// encodeStringList serializes a list column to its JSON storage form.
// A nil or empty list is stored as NULL.
func encodeStringList(list []string) (*string, error) {
	if len(list) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(list)
	if err != nil {
		return nil, fmt.Errorf("failed to encode list column: %w", err)
	}
	encoded := string(data)
	return &encoded, nil
}

// decodeStringList deserializes a JSON list column. NULL, empty and
// malformed values all decode to an empty list: a row with a corrupt
// list field must not fail the whole read.
func decodeStringList(raw *string) []string {
	if raw == nil || *raw == "" {
		return []string{}
	}
	var list []string
	if err := json.Unmarshal([]byte(*raw), &list); err != nil || list == nil {
		return []string{}
	}
	return list
}
