package repository

import (
	"reflect"
	"testing"
)

func TestParseTime(t *testing.T) {
	t.Run("parses plain date", func(t *testing.T) {
		parsed, err := ParseTime("2024-03-15")
		if err != nil {
			t.Fatalf("ParseTime() returned unexpected error: %v", err)
		}
		if parsed.Format("2006-01-02") != "2024-03-15" {
			t.Errorf("Expected 2024-03-15, got %v", parsed)
		}
	})

	t.Run("parses RFC3339 timestamp", func(t *testing.T) {
		parsed, err := ParseTime("2024-03-15T10:30:00Z")
		if err != nil {
			t.Fatalf("ParseTime() returned unexpected error: %v", err)
		}
		if parsed.Hour() != 10 {
			t.Errorf("Expected hour 10, got %d", parsed.Hour())
		}
	})

	t.Run("rejects garbage", func(t *testing.T) {
		if _, err := ParseTime("not-a-date"); err == nil {
			t.Error("Expected error for malformed date, got nil")
		}
	})
}

func TestStringListRoundTrip(t *testing.T) {
	t.Run("empty list stores as NULL", func(t *testing.T) {
		encoded, err := encodeStringList(nil)
		if err != nil {
			t.Fatalf("encodeStringList() returned unexpected error: %v", err)
		}
		if encoded != nil {
			t.Errorf("Expected nil for empty list, got %q", *encoded)
		}
	})

	t.Run("round trips a populated list", func(t *testing.T) {
		original := []string{"chart1.png", "chart2.png"}

		encoded, err := encodeStringList(original)
		if err != nil {
			t.Fatalf("encodeStringList() returned unexpected error: %v", err)
		}
		if encoded == nil {
			t.Fatal("Expected encoded value, got nil")
		}

		decoded := decodeStringList(encoded)
		if !reflect.DeepEqual(original, decoded) {
			t.Errorf("Expected %v, got %v", original, decoded)
		}
	})

	t.Run("malformed column decodes to empty list", func(t *testing.T) {
		cases := []string{"{not json", "42", `"a bare string"`, "null"}
		for _, raw := range cases {
			value := raw
			decoded := decodeStringList(&value)
			if decoded == nil {
				t.Errorf("Expected non-nil list for %q, got nil", raw)
			}
			if len(decoded) != 0 {
				t.Errorf("Expected empty list for %q, got %v", raw, decoded)
			}
		}
	})

	t.Run("NULL column decodes to empty list", func(t *testing.T) {
		decoded := decodeStringList(nil)
		if decoded == nil || len(decoded) != 0 {
			t.Errorf("Expected empty list, got %v", decoded)
		}
	})
}
