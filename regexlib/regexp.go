package regexlib

// Tester decides whether a subject string belongs to a language.
type Tester interface {
	Test(s string) bool
}

// Regex is a compiled pattern. It is safe for concurrent use.
type Regex struct {
	pattern string
	postfix []Token
	nfa     *NFA
}

var _ Tester = (*Regex)(nil)

// Compile parses pattern and builds its automaton. All failures are
// *MalformedPatternError values matching ErrMalformedPattern.
func Compile(pattern string) (*Regex, error) {
	if pattern == "" {
		return nil, malformed(pattern, -1, "empty pattern")
	}

	tokens, err := Tokenize(pattern)
	if err != nil {
		return nil, err
	}
	postfix, err := toPostfix(pattern, insertConcat(tokens))
	if err != nil {
		return nil, err
	}
	nfa, err := build(pattern, postfix)
	if err != nil {
		return nil, err
	}

	return &Regex{
		pattern: pattern,
		postfix: postfix,
		nfa:     nfa,
	}, nil
}

func MustCompile(pattern string) *Regex {
	r, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return r
}

// Test reports whether the whole of s is in the pattern's language.
func (r *Regex) Test(s string) bool { return r.nfa.Match(s) }

func (r *Regex) String() string { return r.pattern }

// Postfix returns the pattern in postfix order, e.g. "ab.c." for "abc".
func (r *Regex) Postfix() string { return Render(r.postfix) }

func (r *Regex) NFA() *NFA { return r.nfa }
