// Package api contains the options, keys and issue codes that are used throughout the automerge code base
package api

// DefaultIdentifier is the name of the field that is used as the join key when no identifier is configured
const DefaultIdentifier = `Id`

// DefaultDelimiter is the separator used to split flat field names when no delimiter is configured
const DefaultDelimiter = `_`

// SegmentPolicy controls how a field name that produces an empty segment is treated, e.g. "a__b" or "_a".
type SegmentPolicy string

const (
	// RejectEmptySegments makes the parse of a key with an empty segment fail with EmptyKeySegment
	RejectEmptySegments = SegmentPolicy(`reject`)

	// KeepEmptySegments keeps an empty segment as a literal empty string key
	KeepEmptySegments = SegmentPolicy(`keep`)
)
