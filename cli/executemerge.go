package cli

import (
	"bytes"
	"io"

	"github.com/lyraproj/automerge/automerge"
)

// ExecuteMerge runs the unflatten command with the given arguments and returns what it wrote on stdout.
// It's primarily intended for testing purposes.
func ExecuteMerge(args ...string) (output []byte, err error) {
	return ExecuteMergeWithInput(nil, args...)
}

// ExecuteMergeWithInput is like ExecuteMerge but reads stdin from the given reader
func ExecuteMergeWithInput(stdin io.Reader, args ...string) (output []byte, err error) {
	cmdOpts = automerge.CommandOptions{}
	identifier = OptString{}
	delimiter = OptString{}
	emptySegments = OptString{}
	renderAs = OptString{}
	logLevel = ``
	configPath = ``
	outputPath = ``

	cmd := NewCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	if stdin != nil {
		cmd.SetIn(stdin)
	}
	cmd.SetArgs(args)

	err = cmd.Execute()

	return buf.Bytes(), err
}
