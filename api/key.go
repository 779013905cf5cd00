package api

import (
	"fmt"
	"strings"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/pcore/px"
)

// A Key is a parsed version of a delimited flat field name such as "user_address_city". The parts of a key
// are the path segments of the nested structure where the field value belongs.
type Key interface {
	fmt.Stringer

	// Parts returns the path segments of this key. There is always at least one segment
	Parts() []string

	// Root returns the first segment
	Root() string

	// Leaf returns the last segment, i.e. the key under which the value is stored
	Leaf() string

	// Parent returns the segments leading to the leaf. The slice is empty for a key with one part
	Parent() []string
}

type key struct {
	orig  string
	parts []string
}

// NewKey splits the given field name on the delimiter of the given options. Splitting is purely syntactic,
// there is no way to escape the delimiter. An empty segment is an error unless the options allow it.
func NewKey(field string, opts Options) (Key, error) {
	parts := strings.Split(field, opts.Delimiter)
	if opts.EmptySegments != KeepEmptySegments {
		for _, p := range parts {
			if p == `` {
				return nil, px.Error(EmptyKeySegment, issue.H{`field`: field})
			}
		}
	}
	return &key{orig: field, parts: parts}, nil
}

func (k *key) Parts() []string {
	return k.parts
}

func (k *key) Root() string {
	return k.parts[0]
}

func (k *key) Leaf() string {
	return k.parts[len(k.parts)-1]
}

func (k *key) Parent() []string {
	return k.parts[:len(k.parts)-1]
}

func (k *key) String() string {
	return k.orig
}
