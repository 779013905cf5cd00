package tree

// Object is a mapping from string keys to values that remembers the order in which keys were added.
type Object struct {
	keys   []string
	values map[string]Value
}

// NewObject returns a new empty Object
func NewObject() *Object {
	return &Object{values: make(map[string]Value)}
}

func (o *Object) Kind() Kind {
	return ObjectKind
}

// Len returns the number of keys in the object
func (o *Object) Len() int {
	return len(o.keys)
}

// Keys returns the keys in insertion order. The returned slice must not be modified.
func (o *Object) Keys() []string {
	return o.keys
}

// Get returns the value stored under the given key
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Put stores a value under the given key. A new key is added last, an existing key keeps its position.
func (o *Object) Put(key string, value Value) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// EachEntry calls the given function once for each key in insertion order
func (o *Object) EachEntry(f func(key string, value Value)) {
	for _, k := range o.keys {
		f(k, o.values[k])
	}
}

// Equals returns true if the other value is an Object with the same keys and equal values. The key
// order is not significant.
func (o *Object) Equals(other Value) bool {
	oo, ok := other.(*Object)
	if !ok || len(o.keys) != len(oo.keys) {
		return false
	}
	for k, v := range o.values {
		ov, ok := oo.values[k]
		if !(ok && v.Equals(ov)) {
			return false
		}
	}
	return true
}

func (o *Object) String() string {
	return stringOf(o)
}
