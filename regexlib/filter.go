package regexlib

import (
	"context"

	"github.com/sourcegraph/conc/pool"
)

// Filter returns the subjects t accepts, in input order.
func Filter(t Tester, subjects []string) []string {
	var out []string
	for _, s := range subjects {
		if t.Test(s) {
			out = append(out, s)
		}
	}
	return out
}

// FilterContext is Filter spread over at most workers goroutines. Order is
// preserved. If ctx is cancelled the partial result is discarded and the
// context error is returned.
func FilterContext(ctx context.Context, t Tester, subjects []string, workers int) ([]string, error) {
	if workers < 1 {
		workers = 1
	}

	keep := make([]bool, len(subjects))
	p := pool.New().WithContext(ctx).WithMaxGoroutines(workers).WithFirstError()
	for i, s := range subjects {
		i, s := i, s
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			keep[i] = t.Test(s)
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	var out []string
	for i, ok := range keep {
		if ok {
			out = append(out, subjects[i])
		}
	}
	return out, nil
}

// Filter returns the subjects r accepts, in input order.
func (r *Regex) Filter(subjects []string) []string { return Filter(r, subjects) }
