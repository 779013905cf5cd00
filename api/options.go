package api

import (
	"strings"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/pcore/px"
)

// Options controls how flat records are expanded and merged. Unset fields are given their default
// values by Resolved.
type Options struct {
	// Identifier is the name of the field that is used as the join key at every nesting level
	Identifier string

	// Delimiter is the separator used to split flat field names into nested paths
	Delimiter string

	// EmptySegments decides what happens when a field name produces an empty path segment
	EmptySegments SegmentPolicy
}

// DefaultOptions returns the options used when nothing has been configured
func DefaultOptions() Options {
	return Options{Identifier: DefaultIdentifier, Delimiter: DefaultDelimiter, EmptySegments: RejectEmptySegments}
}

// Resolved returns a copy of the receiver where all unset values have been replaced by their defaults
func (o Options) Resolved() Options {
	if o.Identifier == `` {
		o.Identifier = DefaultIdentifier
	}
	if o.Delimiter == `` {
		o.Delimiter = DefaultDelimiter
	}
	if o.EmptySegments == `` {
		o.EmptySegments = RejectEmptySegments
	}
	return o
}

// Validate checks that the receiver can be used as is. Unset values are not replaced by defaults so a
// caller that wants defaults must call Resolved first. The identifier must not contain the delimiter
// since it would then be split into a path and never be found at any level.
func (o Options) Validate() error {
	if o.Identifier == `` {
		return px.Error(EmptyIdentifier, issue.NoArgs)
	}
	if o.Delimiter == `` {
		return px.Error(EmptyDelimiter, issue.NoArgs)
	}
	if strings.Contains(o.Identifier, o.Delimiter) {
		return px.Error(IdentifierContainsDelimiter, issue.H{`identifier`: o.Identifier, `delimiter`: o.Delimiter})
	}
	switch o.EmptySegments {
	case RejectEmptySegments, KeepEmptySegments:
		return nil
	default:
		return px.Error(UnknownSegmentPolicy, issue.H{`name`: o.EmptySegments})
	}
}
