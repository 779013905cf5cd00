// Package automerge contains the functions to use when reconstituting nested objects from flat records
// with automerge as a library.
package automerge

import (
	"github.com/hashicorp/go-hclog"
	"github.com/lyraproj/automerge/api"
	"github.com/lyraproj/automerge/internal"
	"github.com/lyraproj/automerge/tree"
)

// A Session accumulates the merged output of the records that are added to it. A Session is not safe
// for concurrent use.
type Session struct {
	opts     api.Options
	logger   hclog.Logger
	expander *internal.Expander
	merger   *internal.Merger
	output   *tree.Array
	added    int
}

// NewSession fills in defaults for unset options, validates them, and creates a Session with an empty
// output collection. A nil logger means hclog.Default().
func NewSession(opts api.Options, logger hclog.Logger) (*Session, error) {
	opts = opts.Resolved()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = hclog.Default()
	}
	return &Session{
		opts:     opts,
		logger:   logger,
		expander: internal.NewExpander(opts),
		merger:   internal.NewMerger(opts, logger),
		output:   tree.NewArray()}, nil
}

// Add expands the given record and merges it into the output collection. When an error is returned, the
// output may contain parts of the failing record and the session should be discarded.
func (s *Session) Add(r tree.Record) error {
	x, err := s.expander.Expand(r)
	if err != nil {
		return err
	}
	if err = s.merger.MergeInto(s.output, x); err != nil {
		return err
	}
	s.added++
	return nil
}

// AddAll adds all records in order and stops at the first error
func (s *Session) AddAll(records []tree.Record) error {
	for _, r := range records {
		if err := s.Add(r); err != nil {
			return err
		}
	}
	s.logger.Debug(`records merged`, `records`, s.added, `entries`, s.output.Len())
	return nil
}

// Options returns the resolved options of the session
func (s *Session) Options() api.Options {
	return s.opts
}

// Result returns the output collection. It is owned by the session and will change if more records
// are added.
func (s *Session) Result() *tree.Array {
	return s.output
}

// AutoMerge expands each record and merges it into a new output collection which is then returned. No
// output is returned when an error occurs.
func AutoMerge(records []tree.Record, opts api.Options) (*tree.Array, error) {
	return AutoMergeWithLogger(records, opts, nil)
}

// AutoMergeWithLogger is like AutoMerge but uses the given logger
func AutoMergeWithLogger(records []tree.Record, opts api.Options, logger hclog.Logger) (*tree.Array, error) {
	s, err := NewSession(opts, logger)
	if err != nil {
		return nil, err
	}
	if err = s.AddAll(records); err != nil {
		return nil, err
	}
	return s.Result(), nil
}
