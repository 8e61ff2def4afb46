package types

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// FlexInt64 is an int64 that can be unmarshaled from either a JSON number
// or a JSON string. Fractional input truncates toward zero; non-numeric
// input normalizes to zero.
type FlexInt64 int64

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexInt64) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}

	var n int64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexInt64(n)
		return nil
	}

	var fl float64
	if err := json.Unmarshal(data, &fl); err == nil {
		*f = FlexInt64(fl)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		s = strings.TrimSpace(s)
		if v, err := strconv.ParseInt(s, 10, 64); err == nil {
			*f = FlexInt64(v)
			return nil
		}
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			*f = FlexInt64(v)
			return nil
		}
	}

	*f = 0
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (f FlexInt64) MarshalJSON() ([]byte, error) {
	return json.Marshal(int64(f))
}

// Int64 converts FlexInt64 back to int64.
func (f FlexInt64) Int64() int64 {
	return int64(f)
}

// FlexFloat64 is a float64 that can be unmarshaled from either a JSON
// number or a JSON string. Non-numeric input normalizes to NaN, which
// marshals back to JSON null, matching how the stored collections
// represent a price that never parsed.
type FlexFloat64 float64

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexFloat64) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*f = FlexFloat64(math.NaN())
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexFloat64(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			*f = FlexFloat64(math.NaN())
			return nil
		}
		*f = FlexFloat64(v)
		return nil
	}

	*f = FlexFloat64(math.NaN())
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (f FlexFloat64) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}

// Float64 converts FlexFloat64 back to float64.
func (f FlexFloat64) Float64() float64 {
	return float64(f)
}
