package tree_test

import (
	"testing"

	"github.com/lyraproj/automerge/tree"
	"github.com/stretchr/testify/require"
)

func TestArray_index(t *testing.T) {
	a := tree.NewArray()
	require.Equal(t, 0, a.Append(tree.WrapInteger(10), tree.NewObject()))
	require.Equal(t, 1, a.Append(tree.Null, tree.NewObject()))
	require.Equal(t, 2, a.Append(tree.WrapString(`10`), tree.NewObject()))
	require.Equal(t, 3, a.Len())

	i, ok := a.IndexOf(tree.WrapInteger(10))
	require.True(t, ok)
	require.Equal(t, 0, i)

	i, ok = a.IndexOf(tree.WrapString(`10`))
	require.True(t, ok)
	require.Equal(t, 2, i)

	_, ok = a.IndexOf(tree.WrapFloat(10))
	require.False(t, ok)

	_, ok = a.IndexOf(tree.Null)
	require.False(t, ok)
}

func TestArray_appendDuplicatePanics(t *testing.T) {
	a := tree.NewArray()
	a.Append(tree.WrapInteger(1), tree.NewObject())
	require.Panics(t, func() { a.Append(tree.WrapInteger(1), tree.NewObject()) })
}

func TestArray_zeroValue(t *testing.T) {
	var a tree.Array
	a.Append(tree.WrapInteger(1), tree.NewObject())
	_, ok := a.IndexOf(tree.WrapInteger(1))
	require.True(t, ok)
}

func TestArray_Equals(t *testing.T) {
	e1 := tree.NewObject()
	e1.Put(`Id`, tree.WrapInteger(1))
	e2 := tree.NewObject()
	e2.Put(`Id`, tree.WrapInteger(2))

	a := tree.NewArray()
	a.Append(tree.WrapInteger(1), e1)
	a.Append(tree.WrapInteger(2), e2)

	b := tree.NewArray()
	b.Append(tree.WrapInteger(2), e2)
	b.Append(tree.WrapInteger(1), e1)

	require.False(t, a.Equals(b))
	require.True(t, a.Equals(a))
	require.Equal(t, `[{"Id":1},{"Id":2}]`, a.String())
	require.Equal(t, `[]`, tree.NewArray().String())
}
