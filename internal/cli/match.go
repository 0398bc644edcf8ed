package cli

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"nfaregex/regexlib"
)

type matchOptions struct {
	invert bool
	count  bool
}

func (a *app) matchCommand() *cobra.Command {
	var opts matchOptions
	cmd := &cobra.Command{
		Use:   "match PATTERN [SUBJECT...]",
		Short: "Print the subjects the pattern accepts.",
		Long: `match prints every subject whose whole text is accepted by PATTERN.
Without SUBJECT arguments it reads one subject per line from standard input.`,
		Example: `  nfagrep match 'a(b|c)*d' ad abcd abed
  seq 1 100 | nfagrep match -c '[1-9]?5'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMatch(cmd, args[0], args[1:], opts)
		},
	}
	cmd.Flags().BoolVarP(&opts.invert, "invert", "v", false, "print the subjects that are rejected instead")
	cmd.Flags().BoolVarP(&opts.count, "count", "c", false, "print only the number of selected subjects")
	cmd.Flags().Int("workers", 4, "number of subjects tested in parallel")
	cmd.Flags().Bool("cache", true, "memoize verdicts for repeated subjects")
	return cmd
}

type inverted struct{ regexlib.Tester }

func (t inverted) Test(s string) bool { return !t.Tester.Test(s) }

func (a *app) runMatch(cmd *cobra.Command, pattern string, subjects []string, opts matchOptions) error {
	re, err := a.compile(pattern)
	if err != nil {
		return err
	}

	if len(subjects) == 0 {
		subjects, err = readLines(cmd)
		if err != nil {
			return err
		}
	}

	var tester regexlib.Tester = re
	if a.cfg.Cache {
		tester = regexlib.WithCache(tester)
	}
	if opts.invert {
		tester = inverted{tester}
	}

	selected, err := regexlib.FilterContext(cmd.Context(), tester, subjects, a.cfg.Workers)
	if err != nil {
		return err
	}
	a.log.Debug("match finished", "subjects", len(subjects), "selected", len(selected))

	out := cmd.OutOrStdout()
	if opts.count {
		fmt.Fprintln(out, len(selected))
	} else {
		for _, s := range selected {
			fmt.Fprintln(out, s)
		}
	}
	if len(selected) == 0 {
		return ErrNoMatch
	}
	return nil
}

func readLines(cmd *cobra.Command) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(cmd.InOrStdin())
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read subjects: %w", err)
	}
	return lines, nil
}
