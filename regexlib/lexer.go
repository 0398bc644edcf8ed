package regexlib

import (
	"errors"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"
)

// Rules are tried in order; the first match wins.
var patternLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Escaped", Pattern: `\\(?s:.)`},
	{Name: "Range", Pattern: `\[(?:\\(?s:.)|[^\]\\])*\]`},
	{Name: "OpenRange", Pattern: `\[`},
	{Name: "Operator", Pattern: `[.|*+?()]`},
	{Name: "Char", Pattern: `(?s:.)`},
})

var (
	symEscaped   = patternLexer.Symbols()["Escaped"]
	symRange     = patternLexer.Symbols()["Range"]
	symOpenRange = patternLexer.Symbols()["OpenRange"]
	symOperator  = patternLexer.Symbols()["Operator"]
)

// Tokenize splits a pattern into literal and operator tokens. A bracketed
// range becomes a single literal token.
func Tokenize(pattern string) ([]Token, error) {
	lex, err := patternLexer.LexString("", pattern)
	if err != nil {
		return nil, lexError(pattern, err)
	}
	raw, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, lexError(pattern, err)
	}

	tokens := make([]Token, 0, len(raw))
	for _, rt := range raw {
		if rt.EOF() {
			break
		}
		pos := rt.Pos.Offset
		switch rt.Type {
		case symEscaped:
			r, _ := utf8.DecodeRuneInString(rt.Value[1:])
			tokens = append(tokens, literalToken(SingleChar(r), rt.Value, pos))
		case symRange:
			set, err := parseRange(pattern, rt.Value, pos)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, literalToken(set, rt.Value, pos))
		case symOpenRange:
			return nil, malformed(pattern, pos, "unterminated character range")
		case symOperator:
			op, _ := opFromRune(rune(rt.Value[0]))
			tokens = append(tokens, operatorToken(op, pos))
		default:
			r, _ := utf8.DecodeRuneInString(rt.Value)
			tokens = append(tokens, literalToken(SingleChar(r), rt.Value, pos))
		}
	}
	return tokens, nil
}

func lexError(pattern string, err error) error {
	var lerr *lexer.Error
	if errors.As(err, &lerr) {
		return malformed(pattern, lerr.Pos.Offset, "%s", lerr.Msg)
	}
	return malformed(pattern, -1, "%v", err)
}

type classItem struct {
	r       rune
	escaped bool
}

// parseRange decodes the body of a bracketed range such as [a-z0-9_] or [^ab].
func parseRange(pattern, text string, pos int) (CharSet, error) {
	body := text[1 : len(text)-1]
	negated := false
	if len(body) > 0 && body[0] == '^' {
		negated = true
		body = body[1:]
	}

	var items []classItem
	for i := 0; i < len(body); {
		r, size := utf8.DecodeRuneInString(body[i:])
		i += size
		if r == '\\' && i < len(body) {
			r, size = utf8.DecodeRuneInString(body[i:])
			i += size
			items = append(items, classItem{r: r, escaped: true})
			continue
		}
		items = append(items, classItem{r: r})
	}
	if len(items) == 0 {
		return CharSet{}, malformed(pattern, pos, "empty character range %s", text)
	}

	var ranges []RuneRange
	for i := 0; i < len(items); {
		lo := items[i].r
		if i+2 < len(items) && items[i+1].r == '-' && !items[i+1].escaped {
			hi := items[i+2].r
			if hi < lo {
				return CharSet{}, malformed(pattern, pos, "reversed span %c-%c in %s", lo, hi, text)
			}
			ranges = append(ranges, RuneRange{Lo: lo, Hi: hi})
			i += 3
			continue
		}
		ranges = append(ranges, RuneRange{Lo: lo, Hi: lo})
		i++
	}
	return CharSet{ranges: ranges, negated: negated}, nil
}
