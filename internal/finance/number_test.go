package finance

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNum(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"float", 12.5, 12.5},
		{"int", 7, 7},
		{"numeric string", "150.25", 150.25},
		{"padded string", "  42 ", 42},
		{"garbage string", "abc", 0},
		{"empty string", "", 0},
		{"nil", nil, 0},
		{"nan", math.NaN(), 0},
		{"inf", math.Inf(1), 0},
		{"struct", struct{}{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Num(tt.in))
		})
	}
}

func TestAmountUnmarshal(t *testing.T) {
	var payload struct {
		A Amount `json:"a"`
		B Amount `json:"b"`
		C Amount `json:"c"`
		D Amount `json:"d"`
	}
	err := json.Unmarshal([]byte(`{"a": 100, "b": "250.5", "c": null, "d": "oops"}`), &payload)
	require.NoError(t, err)

	assert.Equal(t, 100.0, payload.A.Float())
	assert.Equal(t, 250.5, payload.B.Float())
	assert.Equal(t, 0.0, payload.C.Float())
	assert.Equal(t, 0.0, payload.D.Float())
}

func TestSumBy(t *testing.T) {
	items := []map[string]any{
		{"amount": 100.0},
		{"amount": "50"},
		{"amount": nil},
		{"amount": "junk"},
	}
	got := SumBy(items, func(m map[string]any) any { return m["amount"] })
	assert.Equal(t, 150.0, got)
}
