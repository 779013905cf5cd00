package tree

import "fmt"

// Array is an ordered sequence of Object entries. Entries that carry an identifier are indexed by
// that identifier so that lookups don't need to scan the sequence. The index never holds more than
// one position per identifier.
type Array struct {
	entries []*Object
	index   map[Scalar]int
}

// NewArray returns a new empty Array
func NewArray() *Array {
	return &Array{index: make(map[Scalar]int)}
}

func (a *Array) Kind() Kind {
	return ArrayKind
}

// Len returns the number of entries
func (a *Array) Len() int {
	return len(a.entries)
}

// At returns the entry at the given position
func (a *Array) At(i int) *Object {
	return a.entries[i]
}

// Entries returns the entries in order. The returned slice must not be modified.
func (a *Array) Entries() []*Object {
	return a.entries
}

// IndexOf returns the position of the entry with the given identifier
func (a *Array) IndexOf(id Scalar) (int, bool) {
	if id.IsNull() {
		return 0, false
	}
	i, ok := a.index[id]
	return i, ok
}

// Append adds an entry last and returns its position. The entry is indexed under the given identifier
// unless the identifier is Null. Appending a second entry with an identifier that is already present
// is a programming error and causes a panic.
func (a *Array) Append(id Scalar, entry *Object) int {
	pos := len(a.entries)
	if !id.IsNull() {
		if _, ok := a.index[id]; ok {
			panic(fmt.Errorf(`attempt to append a second entry with identifier %s`, id))
		}
		if a.index == nil {
			a.index = make(map[Scalar]int)
		}
		a.index[id] = pos
	}
	a.entries = append(a.entries, entry)
	return pos
}

// Equals returns true if the other value is an Array with equal entries in the same order
func (a *Array) Equals(other Value) bool {
	oa, ok := other.(*Array)
	if !ok || len(a.entries) != len(oa.entries) {
		return false
	}
	for i, e := range a.entries {
		if !e.Equals(oa.entries[i]) {
			return false
		}
	}
	return true
}

func (a *Array) String() string {
	return stringOf(a)
}
