package finance

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Num coerces an arbitrary value to float64. Anything that is not a finite
// number (nil, garbage strings, NaN, Inf) contributes 0, so a missing or
// malformed field never poisons a sum.
func Num(v any) float64 {
	switch x := v.(type) {
	case float64:
		return sanitize(x)
	case float32:
		return sanitize(float64(x))
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case uint:
		return float64(x)
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0
		}
		return sanitize(f)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0
		}
		return sanitize(f)
	case bool:
		if x {
			return 1
		}
		return 0
	default:
		return 0
	}
}

func sanitize(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Amount is a float64 that accepts JSON numbers, numeric strings, null and
// absent values. The store's older records keep amounts as strings, so every
// money field on a request body is an Amount.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*a = 0
		return nil
	}
	if s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			*a = 0
			return nil
		}
		*a = Amount(Num(str))
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		*a = 0
		return nil
	}
	*a = Amount(sanitize(f))
	return nil
}

func (a Amount) Float() float64 { return sanitize(float64(a)) }

// SumBy totals selector(item) over items with the usual coercion.
func SumBy[T any](items []T, selector func(T) any) float64 {
	var total float64
	for _, item := range items {
		total += Num(selector(item))
	}
	return total
}
