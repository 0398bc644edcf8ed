package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"nfaregex/internal/suite"
)

func (a *app) suiteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suite FILE...",
		Short: "Run expectation files against the matcher.",
		Long: `suite runs files of cases such as

    pattern "a(b|c)*d" accept "ad" "abcd" reject "abed";
    pattern "(a" malformed;

and reports every expectation that does not hold.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failed := 0
			for _, file := range args {
				s, err := suite.ParseFile(file)
				if err != nil {
					return err
				}
				report, err := suite.Run(cmd.Context(), s, suite.Options{
					Workers: a.cfg.Workers,
					Cache:   a.cfg.Cache,
					Logger:  a.log.With("file", file),
				})
				if err != nil {
					return err
				}
				for _, r := range report.Failures() {
					fmt.Fprintln(out, "FAIL", r)
				}
				fmt.Fprintf(out, "%s: %d passed, %d failed\n", file, report.Passed(), report.Failed())
				failed += report.Failed()
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d expectations did not hold", ErrSuiteFailed, failed)
			}
			return nil
		},
	}
	cmd.Flags().Int("workers", 4, "number of cases run in parallel")
	cmd.Flags().Bool("cache", true, "memoize verdicts for repeated subjects")
	return cmd
}
