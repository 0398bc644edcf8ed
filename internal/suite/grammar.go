// Package suite checks batches of expectations against compiled patterns.
//
// A suite file lists cases, one per statement:
//
//	// comments are allowed
//	pattern "a*" accept "" "a" "aaa" reject "ab";
//	pattern `(ab)*` accept "abab" reject "aba";
//	pattern "(a" malformed;
//
// Raw (backquoted) strings are taken verbatim, which keeps escapes such as
// `a\*` readable.
package suite

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

type Suite struct {
	Cases []*Case `parser:"@@*"`
}

type Case struct {
	Pos lexer.Position

	Pattern   string   `parser:"'pattern' @(String | RawString)"`
	Malformed bool     `parser:"@'malformed'?"`
	Checks    []*Check `parser:"@@* ';'"`
}

type Check struct {
	Verdict  string   `parser:"@('accept' | 'reject')"`
	Subjects []string `parser:"@(String | RawString)+"`
}

func (c *Check) Accept() bool { return c.Verdict == "accept" }

var parser = participle.MustBuild[Suite](
	participle.Unquote("String"),
	participle.Map(stripBackquotes, "RawString"),
)

func stripBackquotes(t lexer.Token) (lexer.Token, error) {
	t.Value = t.Value[1 : len(t.Value)-1]
	return t, nil
}

// Parse reads a suite from data; name is used in positions and errors.
func Parse(name, data string) (*Suite, error) {
	s, err := parser.ParseString(name, data)
	if err != nil {
		return nil, err
	}
	for _, c := range s.Cases {
		if c.Malformed && len(c.Checks) > 0 {
			return nil, fmt.Errorf("%s: a malformed case cannot list subjects", c.Pos)
		}
	}
	return s, nil
}

// ParseFile reads and parses the suite stored at path.
func ParseFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, string(data))
}
