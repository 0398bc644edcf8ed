package regexlib

// insertConcat makes implicit concatenation explicit by placing an OpConcat
// token between every two adjacent tokens that start separate operands.
func insertConcat(tokens []Token) []Token {
	if len(tokens) == 0 {
		return nil
	}
	out := make([]Token, 0, 2*len(tokens))
	for i, c := range tokens {
		out = append(out, c)
		if i+1 < len(tokens) && joins(c, tokens[i+1]) {
			out = append(out, operatorToken(OpConcat, tokens[i+1].pos))
		}
	}
	return out
}

func joins(c, next Token) bool {
	if c.is(OpOpenParen) || c.is(OpUnion) || c.is(OpConcat) {
		return false
	}
	if op, ok := next.Op(); ok {
		switch op {
		case OpCloseParen, OpUnion, OpConcat, OpStar, OpPlus, OpQuestion:
			return false
		}
	}
	return true
}

// InsertConcat returns pattern with explicit "." concatenation markers, e.g.
// "abc" becomes "a.b.c" and "a(b|c)*d" becomes "a.(b|c)*.d".
func InsertConcat(pattern string) (string, error) {
	tokens, err := Tokenize(pattern)
	if err != nil {
		return "", err
	}
	return Render(insertConcat(tokens)), nil
}
