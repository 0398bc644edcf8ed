package regexlib

import "sort"

type stateSet map[StateID]struct{}

// Closure returns the epsilon-closure of ids in ascending order.
func (n *NFA) Closure(ids ...StateID) []StateID {
	set := make(stateSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	out := make([]StateID, 0, len(set))
	for id := range n.closure(set) {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// closure extends set with every state reachable over epsilon edges and
// returns it. The walk runs to a fixed point, so chains of epsilon edges of
// any length and epsilon cycles are both covered.
func (n *NFA) closure(set stateSet) stateSet {
	stack := make([]StateID, 0, len(set))
	for s := range set {
		stack = append(stack, s)
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range n.states[s].Edges() {
			if !e.Matcher.IsEpsilon() || e.Dangling() {
				continue
			}
			if _, ok := set[e.To]; !ok {
				set[e.To] = struct{}{}
				stack = append(stack, e.To)
			}
		}
	}
	return set
}

// step returns the states reached from set by consuming r, before closure.
func (n *NFA) step(set stateSet, r rune) stateSet {
	next := make(stateSet)
	for s := range set {
		for _, e := range n.states[s].Edges() {
			if e.Matcher.Matches(r) && !e.Dangling() {
				next[e.To] = struct{}{}
			}
		}
	}
	return next
}

func (n *NFA) accepts(set stateSet) bool {
	for s := range set {
		if n.states[s].accept {
			return true
		}
	}
	return false
}

// Match simulates the automaton on s, tracking every active state at once.
// It never modifies n and may be called from several goroutines.
func (n *NFA) Match(s string) bool {
	active := n.closure(stateSet{n.start: {}})
	for _, r := range s {
		active = n.closure(n.step(active, r))
		if len(active) == 0 {
			return false
		}
	}
	return n.accepts(active)
}
