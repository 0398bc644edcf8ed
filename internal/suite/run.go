package suite

import (
	"context"
	"io"
	"log/slog"

	"github.com/sourcegraph/conc/pool"

	"nfaregex/regexlib"
)

type Options struct {
	Workers int
	Cache   bool
	Logger  *slog.Logger
}

// Run compiles every case of s and checks its expectations. Cases run in
// parallel; results keep the order of the file.
func Run(ctx context.Context, s *Suite, opts Options) (*Report, error) {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	perCase := make([][]Result, len(s.Cases))
	p := pool.New().WithContext(ctx).WithMaxGoroutines(opts.Workers).WithFirstError()
	for i, c := range s.Cases {
		i, c := i, c
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			perCase[i] = runCase(c, opts)
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	report := &Report{}
	for _, results := range perCase {
		report.Results = append(report.Results, results...)
	}
	opts.Logger.Info("suite finished",
		"cases", len(s.Cases),
		"passed", report.Passed(),
		"failed", report.Failed(),
	)
	return report, nil
}

func runCase(c *Case, opts Options) []Result {
	log := opts.Logger.With("pattern", c.Pattern, "pos", c.Pos.String())

	re, err := regexlib.Compile(c.Pattern)
	if c.Malformed {
		log.Debug("expecting compile failure", "err", err)
		return []Result{{Pos: c.Pos, Pattern: c.Pattern, Malformed: true, Err: err}}
	}
	if err != nil {
		log.Warn("pattern does not compile", "err", err)
		return []Result{{Pos: c.Pos, Pattern: c.Pattern, Err: err}}
	}
	log.Debug("compiled", "postfix", re.Postfix(), "states", re.NFA().Len())

	var tester regexlib.Tester = re
	if opts.Cache {
		tester = regexlib.WithCache(re)
	}

	var results []Result
	for _, check := range c.Checks {
		for _, subject := range check.Subjects {
			results = append(results, Result{
				Pos:     c.Pos,
				Pattern: c.Pattern,
				Subject: subject,
				Want:    check.Accept(),
				Got:     tester.Test(subject),
			})
		}
	}
	return results
}
