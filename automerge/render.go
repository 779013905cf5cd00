package automerge

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/itchyny/gojq"
	"github.com/lyraproj/automerge/api"
	"github.com/lyraproj/automerge/tree"
	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/pcore/px"
	"gopkg.in/yaml.v3"
)

// RenderName is the name of the option value that describes how to render output
type RenderName string

const (
	// YAML render output in YAML
	YAML = RenderName(`yaml`)
	// JSON render output in JSON
	JSON = RenderName(`json`)
	// Text render output as plain text
	Text = RenderName(`s`)
)

// ParseRenderName returns the RenderName with the given name. The empty string is YAML.
func ParseRenderName(name string) (RenderName, error) {
	switch rn := RenderName(name); rn {
	case ``:
		return YAML, nil
	case YAML, JSON, Text:
		return rn, nil
	}
	return ``, px.Error(api.UnknownRendering, issue.H{`name`: name})
}

// Render renders a value on a writer using a specified RenderName. JSON output is indented when indent
// is true and compact otherwise.
func Render(renderAs RenderName, value tree.Value, indent bool, out io.Writer) error {
	switch renderAs {
	case JSON:
		bs, err := tree.MarshalJSON(value)
		if err != nil {
			return err
		}
		if indent {
			b := bytes.Buffer{}
			if err = json.Indent(&b, bs, ``, `  `); err != nil {
				return err
			}
			bs = b.Bytes()
		}
		_, err = fmt.Fprintln(out, string(bs))
		return err

	case YAML:
		n, err := tree.ToYAML(value)
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err = enc.Encode(n); err != nil {
			return err
		}
		return enc.Close()

	case Text:
		_, err := fmt.Fprintln(out, tree.ToData(value))
		return err
	}
	return px.Error(api.UnknownRendering, issue.H{`name`: renderAs})
}

// Query runs the given jq expression against the plain data form of the value and writes each
// result on a line of its own as compact JSON.
func Query(query string, value tree.Value, out io.Writer) error {
	parsed, err := gojq.Parse(query)
	if err != nil {
		return fmt.Errorf(`invalid query: %w`, err)
	}
	code, err := gojq.Compile(parsed)
	if err != nil {
		return fmt.Errorf(`invalid query: %w`, err)
	}

	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	iter := code.Run(tree.ToGo(value))
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := v.(error); isErr {
			return fmt.Errorf(`query error: %w`, err)
		}
		if err = enc.Encode(v); err != nil {
			return err
		}
	}
	return nil
}
