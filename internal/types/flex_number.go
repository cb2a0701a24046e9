package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexNumber is a float64 that can be unmarshaled from either a JSON number or a JSON string.
// Strings may carry a currency sign and use a decimal comma ("12,50 €").
type FlexNumber float64

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexNumber) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	// Try unmarshaling as a number first
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexNumber(n)
		return nil
	}

	// Try unmarshaling as a string
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		val, err := ParseNumber(s)
		if err != nil {
			return fmt.Errorf("FlexNumber: invalid number string %q: %w", s, err)
		}
		*f = FlexNumber(val)
		return nil
	}

	return fmt.Errorf("FlexNumber: unexpected type, expected number or string")
}

// MarshalJSON implements the json.Marshaler interface.
func (f FlexNumber) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(f))
}

// Float64 converts FlexNumber back to float64.
func (f FlexNumber) Float64() float64 {
	return float64(f)
}

// ParseNumber parses a loosely formatted amount such as "1.234,56", "1,234.56", "12,5" or "€ 40".
// The right-most separator is taken as the decimal mark when both kinds appear.
func ParseNumber(s string) (float64, error) {
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r == '.', r == ',', r == '-':
			return r
		}
		return -1
	}, s)
	if s == "" {
		return 0, fmt.Errorf("no digits")
	}

	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")
	switch {
	case lastDot >= 0 && lastComma >= 0:
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		if strings.Count(s, ",") > 1 {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.Replace(s, ",", ".", 1)
		}
	case strings.Count(s, ".") > 1:
		s = strings.ReplaceAll(s, ".", "")
	}

	return strconv.ParseFloat(s, 64)
}
