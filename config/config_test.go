package config_test

import (
	"os"
	"testing"

	"github.com/lyraproj/automerge/api"
	"github.com/lyraproj/automerge/config"
	"github.com/lyraproj/issue/issue"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	c, err := config.Load(`testdata/`+config.FileName, true)
	require.NoError(t, err)
	require.Equal(t, `testdata/automerge.yaml`, c.Path())
	require.Equal(t, `json`, c.RenderAs)
	require.Equal(t, api.Options{Identifier: `uid`, Delimiter: `.`, EmptySegments: api.RejectEmptySegments}, c.Options())
}

func TestLoad_missingDefault(t *testing.T) {
	c, err := config.Load(`testdata/nothere.yaml`, false)
	require.NoError(t, err)
	require.Equal(t, config.Default(), c)
	require.Equal(t, api.DefaultOptions(), c.Options())
	require.Equal(t, ``, c.Path())
}

func TestLoad_missingExplicit(t *testing.T) {
	_, err := config.Load(`testdata/nothere.yaml`, true)
	require.Error(t, err)
	require.True(t, os.IsNotExist(err))
}

func TestParse_empty(t *testing.T) {
	c, err := config.Parse(`empty.yaml`, []byte(``))
	require.NoError(t, err)
	require.Equal(t, config.Version, c.Version)
	require.Equal(t, api.DefaultOptions(), c.Options())
}

func TestParse_unknownKey(t *testing.T) {
	_, err := config.Parse(`bad.yaml`, []byte("version: 1\nseparator: .\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), `bad.yaml`)
}

func TestParse_unsupportedVersion(t *testing.T) {
	_, err := config.Parse(`v2.yaml`, []byte("version: 2\n"))
	require.Error(t, err)
	re, ok := err.(issue.Reported)
	require.True(t, ok)
	require.Equal(t, issue.Code(api.UnsupportedConfigVersion), re.Code())
}

func TestParse_invalidPolicy(t *testing.T) {
	_, err := config.Parse(`p.yaml`, []byte("empty_segments: drop\n"))
	require.Error(t, err)
	re, ok := err.(issue.Reported)
	require.True(t, ok)
	require.Equal(t, issue.Code(api.UnknownSegmentPolicy), re.Code())
}
