package internal

import (
	"github.com/lyraproj/automerge/api"
	"github.com/lyraproj/automerge/tree"
	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/pcore/px"
)

// Expander converts flat records into nested trees. Parsed keys are cached so that a field name is only
// split once regardless of how many records that carry it.
type Expander struct {
	opts api.Options
	keys map[string]api.Key
}

// NewExpander creates an Expander for the given options. The options are assumed to be valid.
func NewExpander(opts api.Options) *Expander {
	return &Expander{opts: opts, keys: make(map[string]api.Key)}
}

// Expand converts the given record into a nested tree. Fields are processed in record order. The record
// is not modified.
func (e *Expander) Expand(r tree.Record) (*tree.Object, error) {
	result := tree.NewObject()
	for _, f := range r {
		k, err := e.key(f.Name)
		if err != nil {
			return nil, err
		}
		if err = setFieldValue(result, k, f.Value); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (e *Expander) key(field string) (api.Key, error) {
	if k, ok := e.keys[field]; ok {
		return k, nil
	}
	k, err := api.NewKey(field, e.opts)
	if err != nil {
		return nil, err
	}
	e.keys[field] = k
	return k, nil
}

// setFieldValue creates the objects leading up to the leaf of the key and stores the value there. A null
// scalar counts as absent, so "addr" = null gives way to "addr_city" and vice versa.
func setFieldValue(res *tree.Object, k api.Key, value tree.Scalar) error {
	parts := k.Parts()
	for i, p := range k.Parent() {
		v, ok := res.Get(p)
		if !ok || isNullScalar(v) {
			o := tree.NewObject()
			res.Put(p, o)
			res = o
			continue
		}
		o, ok := v.(*tree.Object)
		if !ok {
			return px.Error(api.KeyConflict, issue.H{`field`: k.String(), `shape`: v.Kind().String(), `path`: parts[:i+1]})
		}
		res = o
	}

	leaf := k.Leaf()
	if v, ok := res.Get(leaf); ok && v.Kind() != tree.ScalarKind {
		if value.IsNull() {
			return nil
		}
		return px.Error(api.KeyConflict, issue.H{`field`: k.String(), `shape`: v.Kind().String(), `path`: parts})
	}
	res.Put(leaf, value)
	return nil
}
