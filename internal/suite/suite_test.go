package suite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const basic = `
// concatenation and union
pattern "ab" accept "ab" reject "ac";
pattern "a|b" accept "a" "b" reject "c";

pattern "a*" accept "" "a" "aaa" reject "ab" "aab";
pattern "a+" accept "a" "aaa" reject "" "ab";
pattern ` + "`a\\*`" + ` accept "a*";
pattern "(a" malformed;
`

func TestParse(t *testing.T) {
	s, err := Parse("basic.suite", basic)
	require.NoError(t, err)
	require.Len(t, s.Cases, 6)

	c := s.Cases[0]
	assert.Equal(t, "ab", c.Pattern)
	assert.Equal(t, 3, c.Pos.Line)
	assert.Equal(t, "basic.suite", c.Pos.Filename)
	require.Len(t, c.Checks, 2)
	assert.True(t, c.Checks[0].Accept())
	assert.Equal(t, []string{"ab"}, c.Checks[0].Subjects)
	assert.False(t, c.Checks[1].Accept())

	assert.Equal(t, []string{"", "a", "aaa"}, s.Cases[2].Checks[0].Subjects)
	assert.Equal(t, `a\*`, s.Cases[4].Pattern)
	assert.True(t, s.Cases[5].Malformed)
	assert.Empty(t, s.Cases[5].Checks)
}

func TestParse_errors(t *testing.T) {
	tests := map[string]string{
		"missing semicolon":   `pattern "a" accept "a"`,
		"unknown verdict":     `pattern "a" maybe "a";`,
		"no subjects":         `pattern "a" accept;`,
		"malformed with subj": `pattern "(" malformed accept "a";`,
		"bare pattern":        `pattern a accept "a";`,
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse("bad.suite", data)
			assert.Error(t, err)
		})
	}
}

func TestRun(t *testing.T) {
	s, err := Parse("basic.suite", basic)
	require.NoError(t, err)

	for _, workers := range []int{1, 4} {
		report, err := Run(context.Background(), s, Options{Workers: workers, Cache: workers > 1})
		require.NoError(t, err)
		assert.True(t, report.OK(), "failures: %v", report.Failures())
		assert.Equal(t, 16, report.Passed())
		assert.Equal(t, "ab", report.Results[0].Pattern)
		assert.Equal(t, "ab", report.Results[0].Subject)
	}
}

func TestRun_failures(t *testing.T) {
	s, err := Parse("fail.suite", `
pattern "a+" accept "";
pattern "a" malformed;
pattern "a|" accept "a";
pattern "b" accept "b";
`)
	require.NoError(t, err)

	report, err := Run(context.Background(), s, Options{Workers: 2})
	require.NoError(t, err)
	assert.False(t, report.OK())
	assert.Equal(t, 1, report.Passed())

	failures := report.Failures()
	require.Len(t, failures, 3)
	assert.Equal(t, `fail.suite:2:1: pattern "a+" on "": want accept, got reject`, failures[0].String())
	assert.Equal(t, `fail.suite:3:1: pattern "a": want compile error, compiled`, failures[1].String())
	assert.Contains(t, failures[2].String(), "missing an operand")
}

func TestRun_cancelled(t *testing.T) {
	s, err := Parse("basic.suite", basic)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Run(ctx, s, Options{Workers: 2})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.suite")
	require.NoError(t, os.WriteFile(path, []byte(`pattern "(ab)*" accept "" "abab" reject "aba";`), 0o644))

	s, err := ParseFile(path)
	require.NoError(t, err)
	require.Len(t, s.Cases, 1)
	assert.Equal(t, path, s.Cases[0].Pos.Filename)

	_, err = ParseFile(filepath.Join(t.TempDir(), "absent.suite"))
	assert.Error(t, err)
}
