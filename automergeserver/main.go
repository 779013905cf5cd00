package main

import (
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/hashicorp/go-hclog"
	"github.com/lyraproj/automerge/config"
	"github.com/lyraproj/issue/issue"
	"github.com/spf13/cobra"
)

func main() {
	cmd := newCommand()
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintln(cmd.OutOrStderr(), err)
		os.Exit(1)
	}
}

var (
	logLevel   string
	addr       string
	configPath string
	port       int
)

func newCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "automergeserver",
		Short: `Server - Start an automerge REST server`,
		Long: `Server - Start a REST server that merges flat records into nested objects.
  Records are posted to the /merge endpoint`,
		PreRun: initialize,
		RunE:   startServer,
		Args:   cobra.NoArgs}

	flags := cmd.Flags()
	flags.StringVar(&logLevel, `loglevel`, `error`,
		`error/warn/info/debug/trace`)
	flags.StringVar(&configPath, `config`, ``,
		`path to the automerge config file. Overrides <current directory>/`+config.FileName)
	flags.StringVar(&addr, `addr`, ``, `ip address to listen on`)
	flags.IntVar(&port, `port`, 8080, `port number to listen to`)
	return cmd
}

func initialize(_ *cobra.Command, _ []string) {
	issue.IncludeStacktrace(logLevel == `debug` || logLevel == `trace`)
	hclog.DefaultOptions = &hclog.LoggerOptions{
		Name:  `automergeserver`,
		Level: hclog.LevelFromString(logLevel),
	}
}

func startServer(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true
	cfgPath := configPath
	if cfgPath == `` {
		cfgPath = config.FileName
	}
	cfg, err := config.Load(cfgPath, configPath != ``)
	if err != nil {
		return err
	}

	logger := hclog.New(hclog.DefaultOptions)
	e := newServer(cfg, logger)
	e.Logger.SetOutput(cmd.OutOrStdout())
	listen := net.JoinHostPort(addr, strconv.Itoa(port))
	logger.Info(`starting server`, `addr`, listen, `config`, cfg.Path())
	return e.Start(listen)
}
