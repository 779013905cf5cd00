// Package tree contains the value model used for expanded records and merged output. A Value is one of
// Scalar, *Object, or *Array.
package tree

// Kind tells what shape a Value has
type Kind int

const (
	ScalarKind = Kind(iota)
	ObjectKind
	ArrayKind
)

// String returns the lower case name of the kind
func (k Kind) String() string {
	switch k {
	case ScalarKind:
		return `scalar`
	case ObjectKind:
		return `object`
	case ArrayKind:
		return `array`
	default:
		return `unknown`
	}
}

// Value is implemented by Scalar, *Object, and *Array. No other implementations exist.
type Value interface {
	// Kind returns the shape of the value
	Kind() Kind

	// Equals returns true when the given value has the same shape and content as the receiver.
	// Scalars are compared strictly, an integer is never equal to a float or a string.
	Equals(other Value) bool

	// String returns the JSON representation of the value
	String() string
}
