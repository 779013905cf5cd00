package tree

import (
	"github.com/lyraproj/pcore/px"
	"github.com/lyraproj/pcore/types"
)

// ToData converts the given value into its pcore counterpart. Objects become ordered *types.Hash values,
// arrays become *types.Array values, and Null becomes px.Undef.
func ToData(v Value) px.Value {
	switch v := v.(type) {
	case Scalar:
		switch x := v.v.(type) {
		case string:
			return types.WrapString(x)
		case int64:
			return types.WrapInteger(x)
		case bool:
			return types.WrapBoolean(x)
		case float64:
			return px.Wrap(nil, x)
		}
		return px.Undef
	case *Object:
		es := make([]*types.HashEntry, 0, len(v.keys))
		for _, k := range v.keys {
			es = append(es, types.WrapHashEntry2(k, ToData(v.values[k])))
		}
		return types.WrapHash(es)
	case *Array:
		vs := make([]px.Value, len(v.entries))
		for i, e := range v.entries {
			vs[i] = ToData(e)
		}
		return types.WrapValues(vs)
	}
	return px.Undef
}

// ToGo converts the given value into plain Go data: map[string]interface{}, []interface{}, string, int,
// float64, bool, and nil. The key order of objects is lost in the conversion.
func ToGo(v Value) interface{} {
	switch v := v.(type) {
	case Scalar:
		if i, ok := v.v.(int64); ok {
			return int(i)
		}
		return v.v
	case *Object:
		m := make(map[string]interface{}, len(v.keys))
		for _, k := range v.keys {
			m[k] = ToGo(v.values[k])
		}
		return m
	case *Array:
		a := make([]interface{}, len(v.entries))
		for i, e := range v.entries {
			a[i] = ToGo(e)
		}
		return a
	}
	return nil
}
