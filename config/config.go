// Package config contains the code to load the automerge configuration file
package config

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/lyraproj/automerge/api"
	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/pcore/px"
	"gopkg.in/yaml.v3"
)

// FileName is the default file name for the automerge configuration file.
const FileName = `automerge.yaml`

// Version is the only configuration version that is currently understood
const Version = 1

// Config contains the defaults that the CLI and the server use when no explicit option is given
type Config struct {
	Version       int               `yaml:"version"`
	Identifier    string            `yaml:"identifier,omitempty"`
	Delimiter     string            `yaml:"delimiter,omitempty"`
	EmptySegments api.SegmentPolicy `yaml:"empty_segments,omitempty"`
	RenderAs      string            `yaml:"render_as,omitempty"`

	path string
}

// Default returns the configuration that is used when no configuration file exists
func Default() *Config {
	o := api.DefaultOptions()
	return &Config{
		Version:       Version,
		Identifier:    o.Identifier,
		Delimiter:     o.Delimiter,
		EmptySegments: o.EmptySegments,
		RenderAs:      `yaml`}
}

// Load reads the configuration from the given path. When the path does not exist, the default
// configuration is returned unless explicit is true, in which case the os error is returned.
func Load(configPath string, explicit bool) (*Config, error) {
	content, err := ioutil.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return nil, err
	}
	return Parse(configPath, content)
}

// Parse parses the given content. Unset keys get their default values. Unknown keys are errors.
func Parse(configPath string, content []byte) (*Config, error) {
	c := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && err != io.EOF {
		return nil, fmt.Errorf(`unable to parse '%s': %w`, configPath, err)
	}

	switch c.Version {
	case 0:
		c.Version = Version
	case Version:
	default:
		return nil, px.Error(api.UnsupportedConfigVersion, issue.H{`path`: configPath, `version`: c.Version})
	}
	c.path = configPath

	d := Default()
	if c.Identifier == `` {
		c.Identifier = d.Identifier
	}
	if c.Delimiter == `` {
		c.Delimiter = d.Delimiter
	}
	if c.EmptySegments == `` {
		c.EmptySegments = d.EmptySegments
	}
	if c.RenderAs == `` {
		c.RenderAs = d.RenderAs
	}
	if err := c.Options().Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Path returns the path that the configuration was loaded from or the empty string for the default
// configuration
func (c *Config) Path() string {
	return c.path
}

// Options returns the expansion and merge options of the configuration
func (c *Config) Options() api.Options {
	return api.Options{Identifier: c.Identifier, Delimiter: c.Delimiter, EmptySegments: c.EmptySegments}
}
