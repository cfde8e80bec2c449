package bst

import (
	"fmt"
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Number is the set of value types a Node can hold. Ordering and equality
// come from the built-in operators and the zero value is the additive
// identity.
type Number interface {
	constraints.Integer | constraints.Float
}

// toInt32 converts v to a 32-bit integer, truncating floats toward zero.
// NaN and values outside the int32 range are rejected rather than wrapped.
func toInt32[T Number](v T) (int32, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || f <= math.MinInt32-1 || f >= math.MaxInt32+1 {
			return 0, fmt.Errorf("%w: %v", ErrHeightOverflow, v)
		}
		return int32(f), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := rv.Int()
		if i < math.MinInt32 || i > math.MaxInt32 {
			return 0, fmt.Errorf("%w: %v", ErrHeightOverflow, v)
		}
		return int32(i), nil
	default:
		u := rv.Uint()
		if u > math.MaxInt32 {
			return 0, fmt.Errorf("%w: %v", ErrHeightOverflow, v)
		}
		return int32(u), nil
	}
}
