package suffixautomaton

// stateID addresses a state in an arena. IDs are assigned in creation order
// and stay valid until the arena is reset.
type stateID int

// The root is always the first state allocated after a reset.
const rootID stateID = 0

// optState is a suffix link that may be absent. The zero value is "no link".
type optState struct {
	id stateID
	ok bool
}

func linkTo(id stateID) optState {
	return optState{id: id, ok: true}
}

type state[S comparable] struct {
	// Length of the longest string in this state's class.
	length   int
	link     optState
	next     map[S]stateID
	terminal bool
}

// arena owns every state of an automaton. States are only ever appended;
// the whole arena can be dropped with reset.
type arena[S comparable] struct {
	states []state[S]
}

func (a *arena[S]) allocate() stateID {
	a.states = append(a.states, state[S]{next: make(map[S]stateID)})
	return stateID(len(a.states) - 1)
}

// reset discards all states and allocates a fresh root.
func (a *arena[S]) reset() {
	a.states = nil
	if root := a.allocate(); root != rootID {
		panic("suffixautomaton: root allocated at unexpected id")
	}
}

func (a *arena[S]) at(id stateID) *state[S] {
	return &a.states[id]
}

func (a *arena[S]) len() int {
	return len(a.states)
}
