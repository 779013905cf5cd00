package internal_test

import (
	"fmt"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/hashicorp/go-hclog"
	"github.com/lyraproj/automerge/api"
	"github.com/lyraproj/automerge/internal"
	"github.com/lyraproj/automerge/tree"
	"github.com/lyraproj/issue/issue"
	"github.com/stretchr/testify/require"
)

// rec creates a record from alternating names and values
func rec(nvs ...interface{}) tree.Record {
	if len(nvs)%2 != 0 {
		panic(fmt.Errorf(`odd number of arguments to rec`))
	}
	r := make(tree.Record, 0, len(nvs)/2)
	for i := 0; i < len(nvs); i += 2 {
		s, ok := tree.Wrap(nvs[i+1])
		if !ok {
			panic(fmt.Errorf(`%T is not a scalar`, nvs[i+1]))
		}
		r = append(r, tree.Field{Name: nvs[i].(string), Value: s})
	}
	return r
}

func mergeAll(opts api.Options, records ...tree.Record) (*tree.Array, error) {
	e := internal.NewExpander(opts)
	m := internal.NewMerger(opts, hclog.New(&hclog.LoggerOptions{Name: `test`, Level: hclog.Trace}))
	output := tree.NewArray()
	for _, r := range records {
		x, err := e.Expand(r)
		if err != nil {
			return nil, err
		}
		if err = m.MergeInto(output, x); err != nil {
			return nil, err
		}
	}
	return output, nil
}

func requireMerged(t *testing.T, expected string, records ...tree.Record) *tree.Array {
	t.Helper()
	result, err := mergeAll(api.DefaultOptions(), records...)
	require.NoError(t, err)
	require.Equal(t, expected, result.String(), spew.Sdump(records))
	return result
}

func requireIssue(t *testing.T, code string, err error) {
	t.Helper()
	require.Error(t, err)
	re, ok := err.(issue.Reported)
	require.True(t, ok, `expected an issue.Reported, got %T`, err)
	require.Equal(t, issue.Code(code), re.Code())
}
