// Package cli holds the nfagrep command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"nfaregex/internal/config"
	"nfaregex/internal/logger"
	"nfaregex/regexlib"
)

var (
	// ErrNoMatch is returned by match when no subject was printed.
	ErrNoMatch = errors.New("no subject matched")
	// ErrSuiteFailed is returned by suite when an expectation does not hold.
	ErrSuiteFailed = errors.New("suite failed")
)

// Exit codes follow grep: 0 found, 1 not found, 2 trouble.
const (
	ExitOK      = 0
	ExitNoMatch = 1
	ExitError   = 2
)

func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrNoMatch), errors.Is(err, ErrSuiteFailed):
		return ExitNoMatch
	default:
		return ExitError
	}
}

// Execute runs nfagrep with args and returns the process exit code. Errors
// other than ErrNoMatch are printed to stderr.
func Execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := NewRootCommand(stdin, stdout, stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, ErrNoMatch) {
		fmt.Fprintf(stderr, "nfagrep: %v\n", err)
	}
	return ExitCode(err)
}

type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	log     *slog.Logger
}

// NewRootCommand builds the nfagrep command reading from stdin and writing
// results to stdout and logs to stderr.
func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		v:      config.New(),
		log:    logger.New(stderr),
	}

	root := &cobra.Command{
		Use:   "nfagrep",
		Short: "Match strings against patterns compiled to Thompson NFAs.",
		Long: `nfagrep compiles a pattern built from literals, concatenation, union (|),
repetition (* + ?), grouping (parentheses) and character ranges ([a-z])
into a nondeterministic finite automaton and tests whole strings against it.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (yaml, json or toml)")
	root.PersistentFlags().String("log-level", "info", "log level: error, warn, info or debug")

	root.AddCommand(
		a.matchCommand(),
		a.testCommand(),
		a.dotCommand(),
		a.postfixCommand(),
		a.suiteCommand(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := config.BindFlags(a.v, cmd.Flags()); err != nil {
		return err
	}
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	logger.Level.SetByName(cfg.LogLevel)
	a.log.Debug("configuration loaded", "workers", cfg.Workers, "cache", cfg.Cache, "file", a.cfgFile)
	return nil
}

func (a *app) compile(pattern string) (*regexlib.Regex, error) {
	re, err := regexlib.Compile(pattern)
	if err != nil {
		return nil, err
	}
	a.log.Debug("pattern compiled", "pattern", pattern, "postfix", re.Postfix(), "states", re.NFA().Len())
	return re, nil
}
