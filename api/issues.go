package api

import (
	"fmt"
	"strings"

	"github.com/lyraproj/issue/issue"
)

const (
	EmptyDelimiter              = `AUTOMERGE_EMPTY_DELIMITER`
	EmptyIdentifier             = `AUTOMERGE_EMPTY_IDENTIFIER`
	EmptyKeySegment             = `AUTOMERGE_EMPTY_KEY_SEGMENT`
	IdentifierContainsDelimiter = `AUTOMERGE_IDENTIFIER_CONTAINS_DELIMITER`
	InputNotSequence            = `AUTOMERGE_INPUT_NOT_SEQUENCE`
	KeyConflict                 = `AUTOMERGE_KEY_CONFLICT`
	MalformedInput              = `AUTOMERGE_MALFORMED_INPUT`
	NoInputMatch                = `AUTOMERGE_NO_INPUT_MATCH`
	NotAScalar                  = `AUTOMERGE_NOT_A_SCALAR`
	RecordNotHash               = `AUTOMERGE_RECORD_NOT_HASH`
	ShapeMismatch               = `AUTOMERGE_SHAPE_MISMATCH`
	UnknownInputFormat          = `AUTOMERGE_UNKNOWN_INPUT_FORMAT`
	UnknownRendering            = `AUTOMERGE_UNKNOWN_RENDERING`
	UnknownSegmentPolicy        = `AUTOMERGE_UNKNOWN_SEGMENT_POLICY`
	UnsupportedConfigVersion    = `AUTOMERGE_UNSUPPORTED_CONFIG_VERSION`
)

func joinPath(v interface{}) string {
	if path, ok := v.([]string); ok {
		return strings.Join(path, `.`)
	}
	return fmt.Sprintf("%v", v)
}

func init() {
	issue.Hard(EmptyDelimiter, `The delimiter used to split field names cannot be empty`)

	issue.Hard(EmptyIdentifier, `The identifier field name cannot be empty`)

	issue.Hard(EmptyKeySegment, `Field '%{field}' contains an empty segment`)

	issue.Hard(IdentifierContainsDelimiter,
		`The identifier '%{identifier}' contains the delimiter '%{delimiter}' and would be split into a path`)

	issue.Hard(InputNotSequence, `Input '%{source}' does not contain a sequence of records`)

	issue.Hard2(KeyConflict, `Field '%{field}' conflicts with the %{shape} already set at '%{path}'`,
		issue.HF{`path`: joinPath})

	issue.Hard(MalformedInput, `Unable to read %{source}: %{detail}`)

	issue.Hard(NoInputMatch, `No input matches '%{pattern}'`)

	issue.Hard(NotAScalar, `Field '%{field}' in record %{index} of '%{source}' has a %{kind} value, a scalar was expected`)

	issue.Hard(RecordNotHash, `Record %{index} of '%{source}' is not a mapping`)

	issue.Hard2(ShapeMismatch, `Key '%{path}' was established as %{expected} but a record supplies %{actual}`,
		issue.HF{`path`: joinPath})

	issue.Hard(UnknownInputFormat, `Unknown input format '%{name}'`)

	issue.Hard(UnknownRendering, `Unknown rendering '%{name}'`)

	issue.Hard(UnknownSegmentPolicy, `Unknown empty segment policy '%{name}', expected reject or keep`)

	issue.Hard(UnsupportedConfigVersion, `Configuration '%{path}' has unsupported version %{version}`)
}
