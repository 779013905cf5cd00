package internal_test

import (
	"testing"

	"github.com/lyraproj/automerge/api"
	"github.com/lyraproj/automerge/tree"
	"github.com/stretchr/testify/require"
)

func TestMerge_empty(t *testing.T) {
	requireMerged(t, `[]`)
}

func TestMerge_scalarOverwrite(t *testing.T) {
	requireMerged(t, `[{"Id":1,"name":"A2"},{"Id":2,"name":"B"}]`,
		rec(`Id`, 1, `name`, `A`),
		rec(`Id`, 2, `name`, `B`),
		rec(`Id`, 1, `name`, `A2`))
}

func TestMerge_nestedArray(t *testing.T) {
	requireMerged(t, `[{"Id":1,"items":[{"Id":10,"val":"x"},{"Id":11,"val":"y"}]}]`,
		rec(`Id`, 1, `items_Id`, 10, `items_val`, `x`),
		rec(`Id`, 1, `items_Id`, 11, `items_val`, `y`))
}

func TestMerge_nullIdentifier(t *testing.T) {
	requireMerged(t, `[]`, rec(`Id`, nil, `name`, `ghost`))
}

func TestMerge_nullIdentifierNoSideEffect(t *testing.T) {
	requireMerged(t, `[{"Id":1,"name":"A","items":[{"Id":10}]}]`,
		rec(`Id`, 1, `name`, `A`, `items_Id`, 10),
		rec(`Id`, nil, `name`, `ghost`, `items_Id`, 11))
}

func TestMerge_allNull(t *testing.T) {
	requireMerged(t, `[]`, rec(`name`, nil, `age`, nil))
}

func TestMerge_allNullNested(t *testing.T) {
	requireMerged(t, `[]`, rec(`name`, nil, `addr_city`, nil, `addr_geo_lat`, nil))
}

func TestMerge_deepObject(t *testing.T) {
	requireMerged(t, `[{"a":{"b":{"c":5}}}]`, rec(`a_b_c`, 5))
}

func TestMerge_identifierlessTopLevelAppends(t *testing.T) {
	requireMerged(t, `[{"name":"x"},{"name":"x"}]`, rec(`name`, `x`), rec(`name`, `x`))
}

func TestMerge_orderOfFirstAppearance(t *testing.T) {
	requireMerged(t, `[{"Id":3},{"Id":1},{"Id":2}]`,
		rec(`Id`, 3), rec(`Id`, 1), rec(`Id`, 3), rec(`Id`, 2), rec(`Id`, 1))
}

func TestMerge_strictIdentifierEquality(t *testing.T) {
	requireMerged(t, `[{"Id":1,"v":"int"},{"Id":"1","v":"string"},{"Id":1.5,"v":"float"}]`,
		rec(`Id`, 1, `v`, `int`),
		rec(`Id`, `1`, `v`, `string`),
		rec(`Id`, 1.5, `v`, `float`))
}

func TestMerge_leftJoinWithoutChild(t *testing.T) {
	requireMerged(t, `[{"Id":1,"items":[]},{"Id":2,"items":[{"Id":20,"val":"z"}]}]`,
		rec(`Id`, 1, `items_Id`, nil, `items_val`, nil),
		rec(`Id`, 2, `items_Id`, 20, `items_val`, `z`))
}

func TestMerge_allNullObjectLevel(t *testing.T) {
	requireMerged(t, `[{"Id":1,"addr":{}}]`, rec(`Id`, 1, `addr_city`, nil))
}

func TestMerge_objectLevelMergesInPlace(t *testing.T) {
	requireMerged(t, `[{"Id":1,"addr":{"city":"Oslo","zip":"0150"}}]`,
		rec(`Id`, 1, `addr_city`, `Oslo`, `addr_zip`, nil),
		rec(`Id`, 1, `addr_city`, nil, `addr_zip`, `0150`))
}

func TestMerge_nullDoesNotErase(t *testing.T) {
	requireMerged(t, `[{"Id":1,"name":"A"}]`,
		rec(`Id`, 1, `name`, `A`),
		rec(`Id`, 1, `name`, nil))
}

func TestMerge_newKeyInLaterRecord(t *testing.T) {
	requireMerged(t, `[{"Id":1,"name":"A","age":3}]`,
		rec(`Id`, 1, `name`, `A`),
		rec(`Id`, 1, `age`, 3))
}

func TestMerge_threeLevels(t *testing.T) {
	requireMerged(t,
		`[{"Id":1,"name":"order","lines":[{"Id":1,"sku":"a","tags":[{"Id":"red"},{"Id":"big"}]},{"Id":2,"sku":"b","tags":[]}]},`+
			`{"Id":2,"name":"other","lines":[{"Id":1,"sku":"c","tags":[{"Id":"red"}]}]}]`,
		rec(`Id`, 1, `name`, `order`, `lines_Id`, 1, `lines_sku`, `a`, `lines_tags_Id`, `red`),
		rec(`Id`, 1, `name`, `order`, `lines_Id`, 1, `lines_sku`, `a`, `lines_tags_Id`, `big`),
		rec(`Id`, 1, `name`, `order`, `lines_Id`, 2, `lines_sku`, `b`, `lines_tags_Id`, nil),
		rec(`Id`, 2, `name`, `other`, `lines_Id`, 1, `lines_sku`, `c`, `lines_tags_Id`, `red`))
}

func TestMerge_identifierlessNestedArrayAppends(t *testing.T) {
	requireMerged(t, `[{"Id":1,"items":[{"Id":10},{"val":"x"}]}]`,
		rec(`Id`, 1, `items_Id`, 10),
		rec(`Id`, 1, `items_val`, `x`),
		rec(`Id`, 1, `items_val`, nil))
}

func TestMerge_customIdentifier(t *testing.T) {
	opts := api.DefaultOptions()
	opts.Identifier = `key`
	result, err := mergeAll(opts,
		rec(`key`, `a`, `child_key`, 1),
		rec(`key`, `a`, `child_key`, 2),
		rec(`key`, `a`, `child_key`, 1))
	require.NoError(t, err)
	require.Equal(t, `[{"key":"a","child":[{"key":1},{"key":2}]}]`, result.String())
}

func TestMerge_noDuplicateIdentifiers(t *testing.T) {
	records := make([]tree.Record, 0, 60)
	for i := 0; i < 60; i++ {
		records = append(records, rec(`Id`, i%4, `sub_Id`, i%7, `sub_leaf_Id`, i%3))
	}
	result := requireMergedNoError(t, records...)
	requireUniqueIdentifiers(t, result)
	require.Equal(t, 4, result.Len())
}

func TestMerge_identifierlessChildMergesInPlace(t *testing.T) {
	requireMerged(t, `[{"Id":1,"phones":{"number":"b"}}]`,
		rec(`Id`, 1, `phones_number`, `a`),
		rec(`Id`, 1, `phones_number`, `b`))
}

func TestMerge_identifiedChildrenAreKeptApart(t *testing.T) {
	requireMerged(t, `[{"Id":1,"phones":[{"Id":1,"number":"a"},{"Id":2,"number":"b"}]}]`,
		rec(`Id`, 1, `phones_Id`, 1, `phones_number`, `a`),
		rec(`Id`, 1, `phones_Id`, 2, `phones_number`, `b`))
}

func TestMerge_nullScalarGivesWayToNested(t *testing.T) {
	requireMerged(t, `[{"Id":1,"addr":{"city":"x"},"tags":[{"Id":"a"}]}]`,
		rec(`Id`, 1, `addr`, nil, `tags`, nil),
		rec(`Id`, 1, `addr_city`, `x`, `tags_Id`, `a`),
		rec(`Id`, 1, `addr`, nil, `tags`, nil))
}

func TestMerge_shapeMismatchScalarThenNested(t *testing.T) {
	_, err := mergeAll(api.DefaultOptions(),
		rec(`Id`, 1, `addr`, `x`),
		rec(`Id`, 1, `addr_city`, `y`))
	requireIssue(t, api.ShapeMismatch, err)
}

func TestMerge_shapeMismatchNestedThenScalar(t *testing.T) {
	_, err := mergeAll(api.DefaultOptions(),
		rec(`Id`, 1, `addr_city`, `y`),
		rec(`Id`, 1, `addr`, `x`))
	requireIssue(t, api.ShapeMismatch, err)
}

func TestMerge_shapeMismatchObjectThenArray(t *testing.T) {
	_, err := mergeAll(api.DefaultOptions(),
		rec(`Id`, 1, `addr_city`, `y`),
		rec(`Id`, 1, `addr_Id`, 7))
	requireIssue(t, api.ShapeMismatch, err)
}

func TestMerge_nestedIdentifier(t *testing.T) {
	_, err := mergeAll(api.DefaultOptions(), rec(`Id_x`, 1))
	requireIssue(t, api.ShapeMismatch, err)
}

func requireMergedNoError(t *testing.T, records ...tree.Record) *tree.Array {
	t.Helper()
	result, err := mergeAll(api.DefaultOptions(), records...)
	require.NoError(t, err)
	return result
}

func requireUniqueIdentifiers(t *testing.T, a *tree.Array) {
	t.Helper()
	seen := make(map[tree.Scalar]bool, a.Len())
	for _, e := range a.Entries() {
		e.EachEntry(func(k string, v tree.Value) {
			if k == api.DefaultIdentifier {
				s := v.(tree.Scalar)
				require.False(t, seen[s], `duplicate identifier %s`, s)
				seen[s] = true
			}
			if sub, ok := v.(*tree.Array); ok {
				requireUniqueIdentifiers(t, sub)
			}
		})
	}
}
