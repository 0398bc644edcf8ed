package regexlib

// Build assembles an NFA from a postfix token stream with Thompson's
// construction.
func Build(postfix []Token) (*NFA, error) {
	return build(Render(postfix), postfix)
}

func build(pattern string, postfix []Token) (*NFA, error) {
	n := &NFA{start: Dangling}
	var stack []fragment

	pop := func() fragment {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return f
	}

	for _, t := range postfix {
		op, isOp := t.Op()
		if !isOp {
			s := n.newState()
			e := n.addEdge(s, Chars(t.set), Dangling)
			stack = append(stack, fragment{start: s, out: []edgeRef{e}})
			continue
		}

		need := 2
		if op.unary() {
			need = 1
		}
		if len(stack) < need {
			return nil, malformed(pattern, t.pos, "operator %s is missing an operand", op)
		}

		switch op {
		case OpConcat:
			f2, f1 := pop(), pop()
			n.patch(&f1, f2.start)
			stack = append(stack, fragment{start: f1.start, out: f2.out})
		case OpUnion:
			f2, f1 := pop(), pop()
			s := n.newState()
			n.addEdge(s, Epsilon(), f1.start)
			n.addEdge(s, Epsilon(), f2.start)
			stack = append(stack, fragment{start: s, out: append(f1.out, f2.out...)})
		case OpStar:
			// s loops into f and owns the bypass; f's exits return to s.
			f := pop()
			s := n.newState()
			n.addEdge(s, Epsilon(), f.start)
			bypass := n.addEdge(s, Epsilon(), Dangling)
			n.patch(&f, s)
			stack = append(stack, fragment{start: s, out: []edgeRef{bypass}})
		case OpPlus:
			// f runs once, then l either loops back to f or continues.
			f := pop()
			l := n.newState()
			n.addEdge(l, Epsilon(), f.start)
			cont := n.addEdge(l, Epsilon(), Dangling)
			n.patch(&f, l)
			stack = append(stack, fragment{start: f.start, out: []edgeRef{cont}})
		case OpQuestion:
			f := pop()
			s := n.newState()
			n.addEdge(s, Epsilon(), f.start)
			bypass := n.addEdge(s, Epsilon(), Dangling)
			stack = append(stack, fragment{start: s, out: append(f.out, bypass)})
		default:
			return nil, malformed(pattern, t.pos, "unexpected %s in postfix stream", op)
		}
	}

	switch len(stack) {
	case 0:
		return nil, malformed(pattern, -1, "nothing to match")
	case 1:
	default:
		return nil, malformed(pattern, -1, "%d unjoined sub-expressions left after build", len(stack))
	}

	f := pop()
	accept := n.newState()
	n.states[accept].accept = true
	n.patch(&f, accept)
	n.start = f.start
	return n, nil
}
