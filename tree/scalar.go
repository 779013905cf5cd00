package tree

import (
	"encoding/json"
	"math"
)

// Scalar is a leaf value. The wrapped value is always nil, a string, an int64, a float64, or a bool.
type Scalar struct {
	v interface{}
}

// Null is the scalar that represents a missing value
var Null = Scalar{}

// WrapString returns a string Scalar
func WrapString(s string) Scalar {
	return Scalar{s}
}

// WrapInteger returns an integer Scalar
func WrapInteger(i int64) Scalar {
	return Scalar{i}
}

// WrapFloat returns a float Scalar
func WrapFloat(f float64) Scalar {
	return Scalar{f}
}

// WrapBoolean returns a boolean Scalar
func WrapBoolean(b bool) Scalar {
	return Scalar{b}
}

// Wrap converts the given Go value into a Scalar. All integer types become int64 and all float types
// become float64. An unsigned value that doesn't fit in an int64 becomes a float64. The second return
// value is false when the value is not a scalar.
func Wrap(v interface{}) (Scalar, bool) {
	switch x := v.(type) {
	case nil:
		return Null, true
	case Scalar:
		return x, true
	case string:
		return Scalar{x}, true
	case bool:
		return Scalar{x}, true
	case int:
		return Scalar{int64(x)}, true
	case int8:
		return Scalar{int64(x)}, true
	case int16:
		return Scalar{int64(x)}, true
	case int32:
		return Scalar{int64(x)}, true
	case int64:
		return Scalar{x}, true
	case uint:
		return wrapUnsigned(uint64(x)), true
	case uint8:
		return Scalar{int64(x)}, true
	case uint16:
		return Scalar{int64(x)}, true
	case uint32:
		return Scalar{int64(x)}, true
	case uint64:
		return wrapUnsigned(x), true
	case float32:
		return Scalar{float64(x)}, true
	case float64:
		return Scalar{x}, true
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return Scalar{i}, true
		}
		if f, err := x.Float64(); err == nil {
			return Scalar{f}, true
		}
		return Scalar{x.String()}, true
	}
	return Null, false
}

func wrapUnsigned(u uint64) Scalar {
	if u > math.MaxInt64 {
		return Scalar{float64(u)}
	}
	return Scalar{int64(u)}
}

// IsNull returns true if this is the Null scalar
func (s Scalar) IsNull() bool {
	return s.v == nil
}

// Interface returns the wrapped Go value
func (s Scalar) Interface() interface{} {
	return s.v
}

func (s Scalar) Kind() Kind {
	return ScalarKind
}

func (s Scalar) Equals(other Value) bool {
	if os, ok := other.(Scalar); ok {
		return s.v == os.v
	}
	return false
}

// String returns the JSON representation of the scalar
func (s Scalar) String() string {
	return stringOf(s)
}
