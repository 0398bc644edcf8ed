package regexlib

// StateID addresses a state inside its NFA.
type StateID int32

// Dangling is the target of an edge that has not been patched yet.
const Dangling StateID = -1

// Matcher labels an edge: epsilon, or a character set.
type Matcher struct {
	epsilon bool
	set     CharSet
}

func Epsilon() Matcher { return Matcher{epsilon: true} }

func Chars(cs CharSet) Matcher { return Matcher{set: cs} }

func (m Matcher) IsEpsilon() bool { return m.epsilon }

// Matches reports whether m consumes r. Epsilon never consumes input.
func (m Matcher) Matches(r rune) bool {
	return !m.epsilon && m.set.Contains(r)
}

func (m Matcher) String() string {
	if m.epsilon {
		return "ε"
	}
	return m.set.String()
}

// Edge is a transition to another state.
type Edge struct {
	Matcher Matcher
	To      StateID
}

func (e Edge) Dangling() bool { return e.To == Dangling }

// State has at most two outgoing edges.
type State struct {
	out    [2]Edge
	n      uint8
	accept bool
}

func (s *State) Edges() []Edge { return s.out[:s.n] }

func (s *State) IsAccept() bool { return s.accept }

// NFA is an automaton whose states live in a single arena and refer to each
// other by StateID. It is immutable once returned by Build.
type NFA struct {
	states []State
	start  StateID
}

func (n *NFA) Start() StateID { return n.start }

func (n *NFA) Len() int { return len(n.states) }

// State returns the state with the given id. The pointer must not be used to
// modify the automaton.
func (n *NFA) State(id StateID) *State { return &n.states[id] }

// Accepting lists the accept states.
func (n *NFA) Accepting() []StateID {
	var ids []StateID
	for i := range n.states {
		if n.states[i].accept {
			ids = append(ids, StateID(i))
		}
	}
	return ids
}

// edgeRef points at one outgoing slot of a state.
type edgeRef struct {
	state StateID
	slot  uint8
}

// fragment is a partially built automaton: a start state plus the edges
// still waiting for a target.
type fragment struct {
	start StateID
	out   []edgeRef
}

func (n *NFA) newState() StateID {
	n.states = append(n.states, State{})
	return StateID(len(n.states) - 1)
}

// addEdge appends an edge to state s and returns a reference to it.
func (n *NFA) addEdge(s StateID, m Matcher, to StateID) edgeRef {
	st := &n.states[s]
	if st.n == uint8(len(st.out)) {
		panic("regexlib: state already has two edges")
	}
	st.out[st.n] = Edge{Matcher: m, To: to}
	st.n++
	return edgeRef{state: s, slot: st.n - 1}
}

// patch points every dangling edge of f at target and empties f.out.
func (n *NFA) patch(f *fragment, target StateID) {
	for _, ref := range f.out {
		e := &n.states[ref.state].out[ref.slot]
		if !e.Dangling() {
			panic("regexlib: patching an edge that already has a target")
		}
		e.To = target
	}
	f.out = nil
}
