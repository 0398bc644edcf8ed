package regexlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func describe(tokens []Token) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t.IsLiteral() {
			out = append(out, "L:"+t.String())
		} else {
			out = append(out, "O:"+t.String())
		}
	}
	return out
}

func TestTokenize(t *testing.T) {
	tokens, err := Tokenize(`a\*[b-d]|(e)+?.`)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"L:a", `L:\*`, "L:[b-d]", "O:|", "O:(", "L:e", "O:)", "O:+", "O:?", "O:.",
	}, describe(tokens))

	var offsets []int
	for _, tok := range tokens {
		offsets = append(offsets, tok.Pos())
	}
	assert.Equal(t, []int{0, 1, 3, 8, 9, 10, 11, 12, 13, 14}, offsets)
}

func TestTokenize_escapes(t *testing.T) {
	tokens, err := Tokenize(`\.`)
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	set, ok := tokens[0].Set()
	require.True(t, ok)
	assert.True(t, set.Contains('.'))
	assert.False(t, set.Contains('a'))

	// a lone trailing backslash is a literal
	tokens, err = Tokenize(`a\`)
	require.NoError(t, err)
	assert.Equal(t, []string{"L:a", `L:\`}, describe(tokens))
}

func TestTokenize_unicode(t *testing.T) {
	tokens, err := Tokenize("é[α-ω]")
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, 2, tokens[1].Pos())

	set, _ := tokens[1].Set()
	assert.True(t, set.Contains('β'))
	assert.False(t, set.Contains('a'))
}

func TestCharSet(t *testing.T) {
	tests := map[string]struct {
		pattern string
		in      string
		out     string
	}{
		"span":            {pattern: "[b-d]", in: "bcd", out: "ae"},
		"list":            {pattern: "[xyz]", in: "xyz", out: "aw"},
		"mixed":           {pattern: "[a-c0-2_]", in: "ac02_", out: "d3-"},
		"negated":         {pattern: "[^0-9]", in: "a-z", out: "059"},
		"leading dash":    {pattern: "[-a]", in: "-a", out: "b"},
		"trailing dash":   {pattern: "[a-]", in: "-a", out: "b"},
		"escaped bracket": {pattern: `[\]]`, in: "]", out: "["},
		"escaped dash":    {pattern: `[a\-z]`, in: "a-z", out: "b"},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			tokens, err := Tokenize(test.pattern)
			require.NoError(t, err)
			require.Len(t, tokens, 1)
			set, ok := tokens[0].Set()
			require.True(t, ok)

			for _, r := range test.in {
				assert.Truef(t, set.Contains(r), "%q should contain %q", test.pattern, r)
			}
			for _, r := range test.out {
				assert.Falsef(t, set.Contains(r), "%q should not contain %q", test.pattern, r)
			}
		})
	}
}

func TestCharSet_String(t *testing.T) {
	assert.Equal(t, "a", SingleChar('a').String())
	assert.Equal(t, `\*`, SingleChar('*').String())
	assert.Equal(t, "[^a-z_]", NewCharSet(true, RuneRange{'a', 'z'}, RuneRange{'_', '_'}).String())
}

func TestTokenize_malformed(t *testing.T) {
	tests := map[string]struct {
		pattern string
		pos     int
	}{
		"unterminated range":     {pattern: "x[abc", pos: 1},
		"escaped closer":         {pattern: `[a\]`, pos: 0},
		"empty range":            {pattern: "a[]", pos: 1},
		"empty negated range":    {pattern: "[^]", pos: 0},
		"reversed span":          {pattern: "[z-a]", pos: 0},
		"reversed span in class": {pattern: "ab[0-9z-a]", pos: 2},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Tokenize(test.pattern)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedPattern)

			var merr *MalformedPatternError
			require.ErrorAs(t, err, &merr)
			assert.Equal(t, test.pos, merr.Pos)
			assert.Equal(t, test.pattern, merr.Pattern)
		})
	}
}
