package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/gofrs/flock"
	"github.com/hashicorp/go-hclog"
	"github.com/lyraproj/automerge/api"
	"github.com/lyraproj/automerge/automerge"
	"github.com/lyraproj/automerge/config"
	"github.com/lyraproj/issue/issue"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var helpTemplate = `Description:
  {{rpad .Long 10}}

Usage:{{if .Runnable}}{{if .HasAvailableFlags}}
  {{appendIfNotPresent .UseLine "[flags]"}}{{else}}{{.UseLine}}{{end}}{{end}}{{if gt .Aliases 0}}

Aliases:
  {{.NameAndAliases}}{{end}}{{if .HasExample }}

Examples:
  {{ .Example }}{{end}}{{ if .HasAvailableLocalFlags}}

Flags:
{{.LocalFlags.FlagUsages | trimRightSpace}}{{end}}
`

// OptString is a string option that can differentiate between an empty string and no value
type OptString struct {
	value *string
}

// Type of option
func (s *OptString) Type() string {
	return "stringpointer"
}

// String value
func (s *OptString) String() string {
	if s == nil || s.value == nil {
		return ``
	}
	return *s.value
}

// Set sets the string value
func (s *OptString) Set(v string) error {
	s.value = &v
	return nil
}

// StringPointer returns the internal value pointer, nil when the option was not given
func (s *OptString) StringPointer() *string {
	return s.value
}

var (
	cmdOpts       automerge.CommandOptions
	identifier    OptString
	delimiter     OptString
	emptySegments OptString
	renderAs      OptString
	logLevel      string
	configPath    string
	outputPath    string
)

// NewCommand creates the unflatten Command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unflatten [<location> ...]",
		Short: `Unflatten - Merge flat records into nested objects`,
		Long: `Unflatten - Expand the delimited field names of flat records into nested objects and merge
    the records that share identifiers. A location is a file, a glob pattern, a URL, or - for stdin.
    Find more information at: https://github.com/lyraproj/automerge`,
		Example: `unflatten --render-as json 'exports/**/*.csv'
  psql -c "..." --csv | unflatten --format csv --id id --query '.[].name'`,
		Version: fmt.Sprintf("%v", getVersion()),
		PreRun:  initialize,
		RunE:    cmdMerge,
		Args:    cobra.ArbitraryArgs}

	flags := cmd.Flags()
	flags.StringVar(&logLevel, `loglevel`, `error`,
		`error/warn/info/debug/trace`)
	flags.StringVar(&configPath, `config`, ``,
		`path to the automerge config file. Overrides <current directory>/`+config.FileName)
	flags.Var(&identifier, `id`,
		`name of the identifier field used to match records at every level (default "`+api.DefaultIdentifier+`")`)
	flags.Var(&delimiter, `delimiter`,
		`separator used to split field names into nested paths (default "`+api.DefaultDelimiter+`")`)
	flags.Var(&emptySegments, `empty-segments`,
		`reject/keep: how to treat field names that contain empty segments (default "reject")`)
	flags.StringVar(&cmdOpts.Format, `format`, `auto`,
		`auto/json/yaml/csv: the format of the input, auto selects it from the file extension`)
	flags.Var(&renderAs, `render-as`,
		`s/json/yaml: Specify the output format of the results; s means plain text (default "yaml")`)
	flags.StringVar(&cmdOpts.Query, `query`, ``,
		`a jq expression applied to the merged result, each result is written as JSON`)
	flags.StringVar(&outputPath, `output`, ``,
		`write the result to this file instead of stdout`)

	cmd.SetHelpTemplate(helpTemplate)
	return cmd
}

func initialize(_ *cobra.Command, _ []string) {
	issue.IncludeStacktrace(logLevel == `debug` || logLevel == `trace`)
	hclog.DefaultOptions = &hclog.LoggerOptions{
		Name:  `unflatten`,
		Level: hclog.LevelFromString(logLevel),
	}
}

func cmdMerge(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	logOpts := *hclog.DefaultOptions
	logOpts.Output = cmd.ErrOrStderr()
	logger := hclog.New(&logOpts)

	cfgPath := configPath
	if cfgPath == `` {
		cfgPath = config.FileName
	}
	cfg, err := config.Load(cfgPath, configPath != ``)
	if err != nil {
		return err
	}
	logger.Debug(`configuration loaded`, `path`, cfg.Path())

	opts := cmdOpts
	opts.Options = applyFlags(cfg.Options())
	opts.RenderAs = cfg.RenderAs
	if rp := renderAs.StringPointer(); rp != nil {
		opts.RenderAs = *rp
	}

	if outputPath == `` {
		out := cmd.OutOrStdout()
		opts.Indent = isTerminal(out)
		return automerge.MergeAndRender(context.Background(), &opts, args, cmd.InOrStdin(), out, logger)
	}

	buf := bytes.Buffer{}
	if err = automerge.MergeAndRender(context.Background(), &opts, args, cmd.InOrStdin(), &buf, logger); err != nil {
		return err
	}
	return writeLocked(outputPath, buf.Bytes(), logger)
}

// applyFlags overrides the configured options with the ones given on the command line
func applyFlags(o api.Options) api.Options {
	if p := identifier.StringPointer(); p != nil {
		o.Identifier = *p
	}
	if p := delimiter.StringPointer(); p != nil {
		o.Delimiter = *p
	}
	if p := emptySegments.StringPointer(); p != nil {
		o.EmptySegments = api.SegmentPolicy(*p)
	}
	return o
}

// writeLocked replaces the content of the file at path while holding an exclusive lock on it so that
// concurrent runs that target the same file don't interleave their output.
func writeLocked(path string, data []byte, logger hclog.Logger) error {
	lock := flock.New(path)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf(`unable to lock '%s': %w`, path, err)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logger.Warn(`unable to unlock output`, `path`, path, `error`, err)
		}
	}()

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	logger.Debug(`output written`, `path`, path, `bytes`, len(data))
	return f.Close()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
