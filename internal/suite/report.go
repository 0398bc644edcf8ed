package suite

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"

	"nfaregex/regexlib"
)

// Result is the outcome of one expectation: one subject of a check, or the
// compile step of a case.
type Result struct {
	Pos     lexer.Position
	Pattern string
	Subject string

	// Malformed marks the compile expectation of a "malformed" case.
	Malformed bool
	Want      bool
	Got       bool
	Err       error
}

func (r Result) Passed() bool {
	if r.Malformed {
		return errors.Is(r.Err, regexlib.ErrMalformedPattern)
	}
	return r.Err == nil && r.Want == r.Got
}

func (r Result) String() string {
	switch {
	case r.Malformed && r.Err == nil:
		return fmt.Sprintf("%s: pattern %q: want compile error, compiled", r.Pos, r.Pattern)
	case r.Malformed:
		return fmt.Sprintf("%s: pattern %q: %v", r.Pos, r.Pattern, r.Err)
	case r.Err != nil:
		return fmt.Sprintf("%s: pattern %q: %v", r.Pos, r.Pattern, r.Err)
	}
	return fmt.Sprintf("%s: pattern %q on %q: want %s, got %s", r.Pos, r.Pattern, r.Subject, verdict(r.Want), verdict(r.Got))
}

func verdict(accept bool) string {
	if accept {
		return "accept"
	}
	return "reject"
}

type Report struct {
	Results []Result
}

func (r *Report) Passed() int { return len(r.Results) - r.Failed() }

func (r *Report) Failed() int { return len(r.Failures()) }

func (r *Report) Failures() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.Passed() {
			out = append(out, res)
		}
	}
	return out
}

func (r *Report) OK() bool { return r.Failed() == 0 }
