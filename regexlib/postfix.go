package regexlib

// toPostfix reorders an infix token stream with explicit concatenation into
// postfix order using the shunting-yard algorithm. Parentheses are consumed
// and never appear in the output.
func toPostfix(pattern string, infix []Token) ([]Token, error) {
	out := make([]Token, 0, len(infix))
	var stack []Token

	for _, t := range infix {
		op, isOp := t.Op()
		if !isOp {
			out = append(out, t)
			continue
		}
		switch op {
		case OpOpenParen:
			stack = append(stack, t)
		case OpCloseParen:
			for {
				if len(stack) == 0 {
					return nil, malformed(pattern, t.pos, "unmatched )")
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.is(OpOpenParen) {
					break
				}
				out = append(out, top)
			}
		default:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.is(OpOpenParen) || top.op.precedence() < op.precedence() {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, t)
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.is(OpOpenParen) {
			return nil, malformed(pattern, top.pos, "unclosed (")
		}
		out = append(out, top)
	}
	return out, nil
}

// ToPostfix converts a concatenation-explicit infix expression to postfix,
// e.g. "a.b.c" becomes "ab.c." and "a|b.c" becomes "abc.|".
// No concatenation markers are inserted; see InsertConcat.
func ToPostfix(infix string) (string, error) {
	tokens, err := Tokenize(infix)
	if err != nil {
		return "", err
	}
	post, err := toPostfix(infix, tokens)
	if err != nil {
		return "", err
	}
	return Render(post), nil
}
