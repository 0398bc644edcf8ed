package regexlib

import "strings"

type tokenKind int

const (
	tLiteral tokenKind = iota
	tOperator
)

// Op is an operator symbol of the pattern language.
type Op int

const (
	OpConcat     Op = iota // .
	OpUnion                // |
	OpStar                 // *
	OpPlus                 // +
	OpQuestion             // ?
	OpOpenParen            // (
	OpCloseParen           // )
)

var opSymbols = [...]string{
	OpConcat:     ".",
	OpUnion:      "|",
	OpStar:       "*",
	OpPlus:       "+",
	OpQuestion:   "?",
	OpOpenParen:  "(",
	OpCloseParen: ")",
}

func (o Op) String() string {
	if o < 0 || int(o) >= len(opSymbols) {
		return "?op"
	}
	return opSymbols[o]
}

// precedence: repetition > concatenation > union; parens never compare.
func (o Op) precedence() int {
	switch o {
	case OpStar, OpPlus, OpQuestion:
		return 3
	case OpConcat:
		return 2
	case OpUnion:
		return 1
	default:
		return 0
	}
}

func (o Op) unary() bool {
	return o == OpStar || o == OpPlus || o == OpQuestion
}

func opFromRune(r rune) (Op, bool) {
	switch r {
	case '.':
		return OpConcat, true
	case '|':
		return OpUnion, true
	case '*':
		return OpStar, true
	case '+':
		return OpPlus, true
	case '?':
		return OpQuestion, true
	case '(':
		return OpOpenParen, true
	case ')':
		return OpCloseParen, true
	}
	return 0, false
}

// RuneRange is an inclusive span of runes.
type RuneRange struct {
	Lo, Hi rune
}

// CharSet is a non-empty set of runes matched by a literal. The zero value is
// not useful; build one with SingleChar or NewCharSet.
type CharSet struct {
	ranges  []RuneRange
	negated bool
}

func SingleChar(r rune) CharSet {
	return CharSet{ranges: []RuneRange{{Lo: r, Hi: r}}}
}

func NewCharSet(negated bool, ranges ...RuneRange) CharSet {
	rs := make([]RuneRange, len(ranges))
	copy(rs, ranges)
	return CharSet{ranges: rs, negated: negated}
}

// Contains reports whether r is a member of the set.
func (cs CharSet) Contains(r rune) bool {
	in := false
	for _, rr := range cs.ranges {
		if r >= rr.Lo && r <= rr.Hi {
			in = true
			break
		}
	}
	return in != cs.negated
}

// Ranges returns a copy of the spans making up the set.
func (cs CharSet) Ranges() []RuneRange {
	out := make([]RuneRange, len(cs.ranges))
	copy(out, cs.ranges)
	return out
}

func (cs CharSet) Negated() bool { return cs.negated }

func (cs CharSet) String() string {
	if !cs.negated && len(cs.ranges) == 1 && cs.ranges[0].Lo == cs.ranges[0].Hi {
		return escapeRune(cs.ranges[0].Lo)
	}
	var b strings.Builder
	b.WriteByte('[')
	if cs.negated {
		b.WriteByte('^')
	}
	for _, rr := range cs.ranges {
		b.WriteString(escapeClassRune(rr.Lo))
		if rr.Hi != rr.Lo {
			b.WriteByte('-')
			b.WriteString(escapeClassRune(rr.Hi))
		}
	}
	b.WriteByte(']')
	return b.String()
}

func escapeRune(r rune) string {
	switch r {
	case '.', '|', '*', '+', '?', '(', ')', '[', ']', '\\':
		return `\` + string(r)
	}
	return string(r)
}

func escapeClassRune(r rune) string {
	switch r {
	case ']', '\\', '-', '^':
		return `\` + string(r)
	}
	return string(r)
}

// Token is a single unit of a pattern: a literal character set or an operator.
// Tokens are never mutated once produced.
type Token struct {
	kind tokenKind
	op   Op
	set  CharSet
	text string
	pos  int
}

func literalToken(set CharSet, text string, pos int) Token {
	return Token{kind: tLiteral, set: set, text: text, pos: pos}
}

func operatorToken(op Op, pos int) Token {
	return Token{kind: tOperator, op: op, text: op.String(), pos: pos}
}

func (t Token) IsLiteral() bool { return t.kind == tLiteral }

// Op returns the operator of an operator token.
func (t Token) Op() (Op, bool) {
	if t.kind != tOperator {
		return 0, false
	}
	return t.op, true
}

// Set returns the character set of a literal token.
func (t Token) Set() (CharSet, bool) {
	if t.kind != tLiteral {
		return CharSet{}, false
	}
	return t.set, true
}

// Pos is the byte offset of the token in the source pattern.
func (t Token) Pos() int { return t.pos }

func (t Token) String() string { return t.text }

func (t Token) is(op Op) bool { return t.kind == tOperator && t.op == op }

// Render joins the source text of tokens.
func Render(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.text)
	}
	return b.String()
}
