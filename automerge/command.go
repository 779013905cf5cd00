package automerge

import (
	"context"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/lyraproj/automerge/api"
)

// A CommandOptions contains the options given to the CLI unflatten command
type CommandOptions struct {
	// Options controls expansion and merge
	Options api.Options

	// Format is the name of the input format, the empty string or "auto" means that the format is
	// chosen from the extension of each location
	Format string

	// RenderAs is the name of the desired rendering
	RenderAs string

	// Query is an optional jq expression applied to the merged output. It replaces RenderAs when set.
	Query string

	// Indent makes JSON output indented
	Indent bool
}

// MergeAndRender reads all records found in the given locations, merges them, and renders the result
// on the given io.Writer in accordance with the RenderAs or Query option.
//
// The options are validated as given. An empty identifier or delimiter is an error here rather than a
// request for the default.
func MergeAndRender(ctx context.Context, opts *CommandOptions, locations []string, stdin io.Reader, out io.Writer, logger hclog.Logger) error {
	if err := opts.Options.Validate(); err != nil {
		return err
	}
	format, err := ParseInputFormat(opts.Format)
	if err != nil {
		return err
	}
	renderAs, err := ParseRenderName(opts.RenderAs)
	if err != nil {
		return err
	}
	if len(locations) == 0 {
		locations = []string{Stdin}
	}

	records, err := ReadLocations(ctx, locations, format, stdin)
	if err != nil {
		return err
	}
	result, err := AutoMergeWithLogger(records, opts.Options, logger)
	if err != nil {
		return err
	}
	if opts.Query != `` {
		return Query(opts.Query, result, out)
	}
	return Render(renderAs, result, opts.Indent, out)
}
