package regexlib

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// ExportDOT writes a Graphviz digraph of n to w. States are visited in
// depth-first order from the start state; accept states are drawn as double
// circles and epsilon edges as "ε".
func ExportDOT(w io.Writer, n *NFA) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph G {")
	fmt.Fprintln(bw, "    rankdir=LR;")

	visited := make([]bool, n.Len())
	var dfs func(StateID)
	dfs = func(id StateID) {
		if visited[id] {
			return
		}
		visited[id] = true
		st := n.State(id)
		shape := "circle"
		if st.IsAccept() {
			shape = "doublecircle"
		}
		fmt.Fprintf(bw, "    n%d [shape=%s];\n", id, shape)
		for _, e := range st.Edges() {
			fmt.Fprintf(bw, "    n%d -> n%d [label=%s];\n", id, e.To, strconv.Quote(e.Matcher.String()))
		}
		for _, e := range st.Edges() {
			dfs(e.To)
		}
	}
	dfs(n.Start())

	fmt.Fprintf(bw, "    _start [shape=point]; _start -> n%d;\n", n.Start())
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}
