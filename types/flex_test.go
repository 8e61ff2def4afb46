package types

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexInt64Unmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int64
	}{
		{"number", `7`, 7},
		{"numeric string", `"7"`, 7},
		{"fractional number truncates", `7.9`, 7},
		{"fractional string truncates", `"7.9"`, 7},
		{"non-numeric string", `"abc"`, 0},
		{"null", `null`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexInt64
			require.NoError(t, json.Unmarshal([]byte(tt.in), &f))
			assert.Equal(t, tt.want, f.Int64())
		})
	}
}

func TestFlexInt64Marshal(t *testing.T) {
	data, err := json.Marshal(FlexInt64(42))
	require.NoError(t, err)
	assert.Equal(t, "42", string(data))
}

func TestFlexFloat64Unmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"number", `9.99`, 9.99},
		{"numeric string", `"9.99"`, 9.99},
		{"integer string", `"5"`, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexFloat64
			require.NoError(t, json.Unmarshal([]byte(tt.in), &f))
			assert.Equal(t, tt.want, f.Float64())
		})
	}
}

func TestFlexFloat64NonNumericIsNaN(t *testing.T) {
	var f FlexFloat64
	require.NoError(t, json.Unmarshal([]byte(`"abc"`), &f))
	assert.True(t, math.IsNaN(f.Float64()))
}

func TestFlexFloat64NaNMarshalsNull(t *testing.T) {
	data, err := json.Marshal(FlexFloat64(math.NaN()))
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))

	data, err = json.Marshal(FlexFloat64(9.99))
	require.NoError(t, err)
	assert.Equal(t, "9.99", string(data))
}
