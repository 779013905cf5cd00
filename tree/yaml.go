package tree

import (
	"gopkg.in/yaml.v3"
)

// ToYAML converts the given value into a yaml.Node. Mapping nodes keep the key order of objects.
func ToYAML(v Value) (*yaml.Node, error) {
	switch v := v.(type) {
	case Scalar:
		n := &yaml.Node{}
		if err := n.Encode(v.v); err != nil {
			return nil, err
		}
		return n, nil
	case *Object:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: `!!map`, Content: make([]*yaml.Node, 0, 2*len(v.keys))}
		for _, k := range v.keys {
			vn, err := ToYAML(v.values[k])
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: `!!str`, Value: k}, vn)
		}
		return n, nil
	case *Array:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: `!!seq`, Content: make([]*yaml.Node, 0, len(v.entries))}
		for _, e := range v.entries {
			en, err := ToYAML(e)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, en)
		}
		return n, nil
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: `!!null`, Value: `null`}, nil
}
