package internal

import (
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/lyraproj/automerge/api"
	"github.com/lyraproj/automerge/tree"
	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/pcore/px"
)

// Merger folds expanded records into an output collection. At each array level, an expanded sub-record is
// matched with an existing entry by its identifier. A match is merged into that entry, anything else is
// appended as a new entry.
//
// A nested key becomes an array level only when the sub-record that first introduces it carries the
// identifier field. Without it the key is a single object that later records merge into in place, so
// repeating children such as phones_number need an identifier column (phones_Id) to be kept apart.
type Merger struct {
	opts   api.Options
	logger hclog.Logger
}

// NewMerger creates a Merger for the given options. The options are assumed to be valid. A nil logger
// means hclog.Default().
func NewMerger(opts api.Options, logger hclog.Logger) *Merger {
	if logger == nil {
		logger = hclog.Default()
	}
	return &Merger{opts: opts, logger: logger}
}

// MergeInto folds the expanded record into the output collection. A record whose identifier is null,
// or a record without identifier where all values are null, leaves the output untouched.
//
// The output may be partially modified when an error is returned.
func (m *Merger) MergeInto(output *tree.Array, expanded *tree.Object) error {
	return m.mergeLevel(output, expanded, nil)
}

func (m *Merger) mergeLevel(output *tree.Array, expanded *tree.Object, path []string) error {
	id := tree.Null
	idx := -1
	if iv, ok := expanded.Get(m.opts.Identifier); ok {
		s, ok := iv.(tree.Scalar)
		if !ok {
			return shapeMismatch(subPath(path, m.opts.Identifier), tree.ScalarKind, iv.Kind())
		}
		if s.IsNull() {
			m.logger.Debug(`dropping entry with null identifier`, `level`, m.levelName(path))
			return nil
		}
		id = s
		if i, found := output.IndexOf(id); found {
			idx = i
		}
	} else if allNull(expanded) {
		m.logger.Debug(`dropping entry where all values are null`, `level`, m.levelName(path))
		return nil
	}

	var entry *tree.Object
	if idx < 0 {
		entry = tree.NewObject()
		idx = output.Append(id, entry)
		if m.logger.IsTrace() {
			m.logger.Trace(`new entry`, `level`, m.levelName(path), `position`, idx, `id`, id.String())
		}
	} else {
		entry = output.At(idx)
	}
	return m.mergeEntry(entry, expanded, path)
}

// mergeEntry merges all keys of the expanded record into the entry. Scalars are stored directly and
// nested values get an empty container of the right shape. Each nested value is then merged into
// its container.
func (m *Merger) mergeEntry(entry, expanded *tree.Object, path []string) error {
	for _, k := range expanded.Keys() {
		v, _ := expanded.Get(k)
		ev, exists := entry.Get(k)
		if !exists {
			if s, ok := v.(tree.Scalar); ok {
				entry.Put(k, s)
			} else {
				entry.Put(k, m.placeholder(v.(*tree.Object)))
			}
			continue
		}

		if s, ok := v.(tree.Scalar); ok {
			if ev.Kind() != tree.ScalarKind {
				if s.IsNull() {
					continue
				}
				return shapeMismatch(subPath(path, k), ev.Kind(), tree.ScalarKind)
			}
			// A null never erases a value that an earlier record supplied
			if !s.IsNull() {
				entry.Put(k, s)
			}
		}
	}

	for _, k := range nestedKeys(expanded) {
		v, _ := expanded.Get(k)
		sub := v.(*tree.Object)
		kp := subPath(path, k)
		ev, _ := entry.Get(k)
		if isNullScalar(ev) {
			// a null stored by an earlier record does not establish a shape
			ev = m.placeholder(sub)
			entry.Put(k, ev)
		}
		switch ec := ev.(type) {
		case *tree.Array:
			if err := m.mergeLevel(ec, sub, kp); err != nil {
				return err
			}
		case *tree.Object:
			if m.isArrayLevel(sub) {
				return shapeMismatch(kp, tree.ObjectKind, tree.ArrayKind)
			}
			if allNull(sub) {
				continue
			}
			if err := m.mergeEntry(ec, sub, kp); err != nil {
				return err
			}
		default:
			return shapeMismatch(kp, tree.ScalarKind, m.shapeOf(sub))
		}
	}
	return nil
}

// isArrayLevel returns true when the sub-record carries the identifier field. Such a sub-record
// represents one of possibly many sibling entries.
func (m *Merger) isArrayLevel(sub *tree.Object) bool {
	_, ok := sub.Get(m.opts.Identifier)
	return ok
}

func (m *Merger) shapeOf(sub *tree.Object) tree.Kind {
	if m.isArrayLevel(sub) {
		return tree.ArrayKind
	}
	return tree.ObjectKind
}

func (m *Merger) placeholder(sub *tree.Object) tree.Value {
	if m.isArrayLevel(sub) {
		return tree.NewArray()
	}
	return tree.NewObject()
}

func (m *Merger) levelName(path []string) string {
	if len(path) == 0 {
		return `<root>`
	}
	return strings.Join(path, m.opts.Delimiter)
}

func shapeMismatch(path []string, expected, actual tree.Kind) error {
	return px.Error(api.ShapeMismatch, issue.H{`path`: path, `expected`: expected.String(), `actual`: actual.String()})
}
