package eval

import (
	"fmt"
	"math"
	"strconv"
)

// Value is one of nil, bool, float64 or string.
type Value any

func isTrue(v Value) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	default:
		return true
	}
}

func isEqual(left, right Value) bool {
	switch x := left.(type) {
	case nil:
		return right == nil
	case bool:
		y, ok := right.(bool)
		return ok && x == y
	case float64:
		y, ok := right.(float64)
		return ok && x == y
	case string:
		y, ok := right.(string)
		return ok && x == y
	default:
		return false
	}
}

// Stringify gives the form used by print.
func Stringify(v Value) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return formatNumber(v)
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	default:
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
}
