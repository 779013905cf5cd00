package automerge

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"io/ioutil"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar"
	"github.com/lyraproj/automerge/api"
	"github.com/lyraproj/automerge/tree"
	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/pcore/px"
	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// InputFormat is the name of a supported record format
type InputFormat string

const (
	// AutoFormat selects the format from the file extension
	AutoFormat = InputFormat(`auto`)
	// JSONFormat is a JSON array of objects or a single object
	JSONFormat = InputFormat(`json`)
	// YAMLFormat is a YAML sequence of mappings, a single mapping, or a stream of mapping documents
	YAMLFormat = InputFormat(`yaml`)
	// CSVFormat is comma separated values with a header row
	CSVFormat = InputFormat(`csv`)
)

// Stdin is the location that denotes standard input
const Stdin = `-`

// ParseInputFormat returns the InputFormat with the given name. The empty string is AutoFormat.
func ParseInputFormat(name string) (InputFormat, error) {
	switch f := InputFormat(strings.ToLower(name)); f {
	case ``:
		return AutoFormat, nil
	case AutoFormat, JSONFormat, YAMLFormat, CSVFormat:
		return f, nil
	case `yml`:
		return YAMLFormat, nil
	}
	return ``, px.Error(api.UnknownInputFormat, issue.H{`name`: name})
}

// FormatFromPath returns the format that corresponds to the extension of the given path. YAMLFormat is
// returned for unknown extensions since YAML also accepts JSON.
func FormatFromPath(path string) InputFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case `.json`:
		return JSONFormat
	case `.csv`:
		return CSVFormat
	}
	return YAMLFormat
}

// ReadRecords parses the given data into records. The source is used to select the format when the
// format is AutoFormat and to identify the data in error messages.
func ReadRecords(source string, data []byte, format InputFormat) ([]tree.Record, error) {
	if format == AutoFormat || format == `` {
		format = FormatFromPath(source)
	}
	switch format {
	case CSVFormat:
		return readCSV(source, data)
	case JSONFormat, YAMLFormat:
		// JSON is parsed as YAML to retain the field order of each record
		return readYAML(source, data)
	}
	return nil, px.Error(api.UnknownInputFormat, issue.H{`name`: format})
}

// ReadLocations reads the records of all given locations and returns them in order. A location is either
// Stdin, a URL such as s3://bucket/data.json, or a file path which may contain doublestar glob patterns.
func ReadLocations(ctx context.Context, locations []string, format InputFormat, stdin io.Reader) ([]tree.Record, error) {
	var records []tree.Record
	add := func(source string, data []byte) error {
		rs, err := ReadRecords(source, data, format)
		if err == nil {
			records = append(records, rs...)
		}
		return err
	}

	for _, loc := range locations {
		switch {
		case loc == Stdin:
			data, err := ioutil.ReadAll(stdin)
			if err != nil {
				return nil, fmt.Errorf(`unable to read stdin: %w`, err)
			}
			if err = add(loc, data); err != nil {
				return nil, err
			}
		case strings.Contains(loc, `://`):
			data, err := afs.New().DownloadWithURL(ctx, loc)
			if err != nil {
				return nil, fmt.Errorf(`unable to download '%s': %w`, loc, err)
			}
			if err = add(loc, data); err != nil {
				return nil, err
			}
		default:
			matches, err := doublestar.Glob(loc)
			if err != nil {
				return nil, fmt.Errorf(`invalid location pattern '%s': %w`, loc, err)
			}
			if len(matches) == 0 {
				return nil, px.Error(api.NoInputMatch, issue.H{`pattern`: loc})
			}
			sort.Strings(matches)
			for _, m := range matches {
				data, err := ioutil.ReadFile(m)
				if err != nil {
					return nil, err
				}
				if err = add(m, data); err != nil {
					return nil, err
				}
			}
		}
	}
	return records, nil
}

func readYAML(source string, data []byte) ([]tree.Record, error) {
	var records []tree.Record
	dec := yaml.NewDecoder(bytes.NewReader(data))
	for {
		var doc yaml.Node
		err := dec.Decode(&doc)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf(`unable to parse '%s': %w`, source, err)
		}
		n := resolve(&doc)
		if n.Kind == yaml.DocumentNode {
			if len(n.Content) == 0 {
				continue
			}
			n = resolve(n.Content[0])
		}
		switch n.Kind {
		case yaml.SequenceNode:
			for _, en := range n.Content {
				r, err := recordFromNode(source, len(records), resolve(en))
				if err != nil {
					return nil, err
				}
				records = append(records, r)
			}
		case yaml.MappingNode:
			r, err := recordFromNode(source, len(records), n)
			if err != nil {
				return nil, err
			}
			records = append(records, r)
		default:
			if n.Kind == yaml.ScalarNode && n.Tag == `!!null` {
				continue
			}
			return nil, px.Error(api.InputNotSequence, issue.H{`source`: source})
		}
	}
	return records, nil
}

func recordFromNode(source string, index int, n *yaml.Node) (tree.Record, error) {
	if n.Kind != yaml.MappingNode {
		return nil, px.Error(api.RecordNotHash, issue.H{`source`: source, `index`: index})
	}
	r := make(tree.Record, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		name := resolve(n.Content[i]).Value
		vn := resolve(n.Content[i+1])
		if vn.Kind != yaml.ScalarNode {
			return nil, px.Error(api.NotAScalar, issue.H{`field`: name, `index`: index, `source`: source, `kind`: kindName(vn)})
		}
		s, err := scalarFromNode(vn)
		if err != nil {
			return nil, fmt.Errorf(`unable to parse field '%s' of record %d in '%s': %w`, name, index, source, err)
		}
		r = append(r, tree.Field{Name: name, Value: s})
	}
	return r, nil
}

func scalarFromNode(n *yaml.Node) (tree.Scalar, error) {
	var v interface{}
	if err := n.Decode(&v); err != nil {
		return tree.Null, err
	}
	if s, ok := tree.Wrap(v); ok {
		return s, nil
	}
	// Timestamps and binaries keep their textual form
	return tree.WrapString(n.Value), nil
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func kindName(n *yaml.Node) string {
	switch n.Kind {
	case yaml.MappingNode:
		return `mapping`
	case yaml.SequenceNode:
		return `sequence`
	}
	return `non scalar`
}

func readCSV(source string, data []byte) ([]tree.Record, error) {
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return nil, fmt.Errorf(`unable to parse '%s': %w`, source, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	header := rows[0]
	records := make([]tree.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		r := make(tree.Record, len(header))
		for i, name := range header {
			// An empty cell is a missing value, everything else is a string
			s := tree.Null
			if row[i] != `` {
				s = tree.WrapString(row[i])
			}
			r[i] = tree.Field{Name: name, Value: s}
		}
		records = append(records, r)
	}
	return records, nil
}
