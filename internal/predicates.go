package internal

import "github.com/lyraproj/automerge/tree"

// allNull returns true if every scalar reachable from the given value is null. Empty containers
// are vacuously all null.
func allNull(v tree.Value) bool {
	switch v := v.(type) {
	case tree.Scalar:
		return v.IsNull()
	case *tree.Object:
		for _, k := range v.Keys() {
			if ev, _ := v.Get(k); !allNull(ev) {
				return false
			}
		}
	case *tree.Array:
		for _, e := range v.Entries() {
			if !allNull(e) {
				return false
			}
		}
	}
	return true
}

// isNullScalar returns true if the value is the Null scalar
func isNullScalar(v tree.Value) bool {
	s, ok := v.(tree.Scalar)
	return ok && s.IsNull()
}

// nestedKeys returns the keys of the given object whose values are nested objects
func nestedKeys(o *tree.Object) []string {
	var keys []string
	o.EachEntry(func(k string, v tree.Value) {
		if v.Kind() != tree.ScalarKind {
			keys = append(keys, k)
		}
	})
	return keys
}

// subPath returns a new slice with the key appended to the path
func subPath(path []string, key string) []string {
	p := make([]string, len(path)+1)
	copy(p, path)
	p[len(path)] = key
	return p
}
