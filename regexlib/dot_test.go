package regexlib

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportDOT(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportDOT(&buf, MustCompile("a*").NFA()))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "digraph G {\n"))
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Contains(t, out, `n1 -> n0 [label="ε"];`)
	assert.Contains(t, out, `n1 -> n2 [label="ε"];`)
	assert.Contains(t, out, `n0 -> n1 [label="a"];`)
	assert.Contains(t, out, "n2 [shape=doublecircle];")
	assert.Contains(t, out, "n0 [shape=circle];")
	assert.Contains(t, out, "_start -> n1;")
}

func TestExportDOT_visitsEveryState(t *testing.T) {
	n := MustCompile("(a|b)*[x-z]+c?").NFA()

	var buf bytes.Buffer
	require.NoError(t, ExportDOT(&buf, n))
	assert.Equal(t, n.Len(), strings.Count(buf.String(), "[shape=circle]")+strings.Count(buf.String(), "[shape=doublecircle]"))
	assert.Contains(t, buf.String(), `[label="[x-z]"]`)
}
