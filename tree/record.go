package tree

import (
	"fmt"
	"sort"

	"github.com/lyraproj/automerge/api"
	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/pcore/px"
)

// Field is one named scalar of a flat record
type Field struct {
	Name  string
	Value Scalar
}

// Record is a flat input record. Field names are delimited composite names such as "user_address_city".
// The field order is the order in which the fields appeared in the source.
type Record []Field

// RecordFromMap creates a Record from a Go map. Since a map has no order, the fields are sorted by name.
func RecordFromMap(m map[string]interface{}) (Record, error) {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	r := make(Record, len(names))
	for i, n := range names {
		s, ok := Wrap(m[n])
		if !ok {
			return nil, px.Error(api.NotAScalar, issue.H{`field`: n, `index`: 0, `source`: `map`, `kind`: fmt.Sprintf(`%T`, m[n])})
		}
		r[i] = Field{Name: n, Value: s}
	}
	return r, nil
}

// Get returns the value of the last field with the given name
func (r Record) Get(name string) (Scalar, bool) {
	for i := len(r) - 1; i >= 0; i-- {
		if r[i].Name == name {
			return r[i].Value, true
		}
	}
	return Null, false
}
