package tree

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes the scalar as a JSON null, string, number, or boolean
func (s Scalar) MarshalJSON() ([]byte, error) {
	return MarshalJSON(s)
}

// MarshalJSON encodes the object as a JSON object with keys in insertion order
func (o *Object) MarshalJSON() ([]byte, error) {
	return MarshalJSON(o)
}

// MarshalJSON encodes the array as a JSON array of objects
func (a *Array) MarshalJSON() ([]byte, error) {
	return MarshalJSON(a)
}

// MarshalJSON returns the JSON encoding of the given value. Unlike json.Marshal, characters that are
// significant in HTML are not escaped.
func MarshalJSON(v Value) ([]byte, error) {
	b := bytes.Buffer{}
	if err := writeJSON(&b, v); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func writeJSON(b *bytes.Buffer, v Value) error {
	switch v := v.(type) {
	case Scalar:
		return writeJSONScalar(b, v.v)
	case *Object:
		b.WriteByte('{')
		for i, k := range v.keys {
			if i > 0 {
				b.WriteByte(',')
			}
			if err := writeJSONScalar(b, k); err != nil {
				return err
			}
			b.WriteByte(':')
			if err := writeJSON(b, v.values[k]); err != nil {
				return err
			}
		}
		b.WriteByte('}')
	case *Array:
		b.WriteByte('[')
		for i, e := range v.entries {
			if i > 0 {
				b.WriteByte(',')
			}
			if err := writeJSON(b, e); err != nil {
				return err
			}
		}
		b.WriteByte(']')
	default:
		return fmt.Errorf(`unable to encode a %T as JSON`, v)
	}
	return nil
}

func writeJSONScalar(b *bytes.Buffer, v interface{}) error {
	enc := json.NewEncoder(b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	// Encode always terminates the value with a newline
	b.Truncate(b.Len() - 1)
	return nil
}

func stringOf(v Value) string {
	b := bytes.Buffer{}
	if err := writeJSON(&b, v); err != nil {
		return fmt.Sprintf(`<%s>`, err.Error())
	}
	return b.String()
}
