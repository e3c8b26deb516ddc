// Package suffixautomaton implements an online suffix automaton: the minimal
// deterministic automaton accepting exactly the substrings of a text, built
// one symbol at a time.
package suffixautomaton

import (
	"golang.org/x/exp/maps"
)

// Automaton recognizes the substrings of every symbol appended to it.
//
// An Automaton is not safe for concurrent mutation. Contains, HasSuffix and
// the counters may run concurrently with each other, but callers must
// serialize them against Extend, AddString and Clear.
type Automaton[S comparable] struct {
	arena arena[S]
	last  stateID
	n     int
}

// New returns an automaton holding only the root state.
func New[S comparable]() *Automaton[S] {
	a := &Automaton[S]{}
	a.Clear()
	return a
}

// Build returns an automaton for text, with its suffixes marked terminal.
// O(len(text)) time.
func Build[S comparable](text []S) *Automaton[S] {
	a := New[S]()
	a.AddString(text)
	return a
}

// Clear discards everything appended so far.
func (a *Automaton[S]) Clear() {
	a.arena.reset()
	a.last = rootID
	a.n = 0
}

// AddString appends every symbol of text, then marks the states holding
// suffixes of the text so far as terminal. Repeated calls keep extending the
// same text.
func (a *Automaton[S]) AddString(text []S) {
	for _, sym := range text {
		a.Extend(sym)
	}
	a.markTerminal()
}

// Extend appends a single symbol. It does not mark terminal states.
// O(1) amortized.
func (a *Automaton[S]) Extend(sym S) {
	st := &a.arena
	cur := st.allocate()
	st.at(cur).length = st.at(a.last).length + 1

	prev := linkTo(a.last)
	for prev.ok {
		p := st.at(prev.id)
		if _, found := p.next[sym]; found {
			break
		}
		p.next[sym] = cur
		prev = p.link
	}

	if !prev.ok {
		st.at(cur).link = linkTo(rootID)
		a.finishExtend(cur)
		return
	}

	next := st.at(prev.id).next[sym]
	if st.at(prev.id).length+1 == st.at(next).length {
		st.at(cur).link = linkTo(next)
		a.finishExtend(cur)
		return
	}

	// next holds strings longer than prev+sym; split off the shorter ones.
	clone := st.allocate()
	src, dst := st.at(next), st.at(clone)
	dst.length = st.at(prev.id).length + 1
	dst.next = maps.Clone(src.next)
	dst.link = src.link
	// Every string of a terminal class was a suffix when it was marked.
	dst.terminal = src.terminal

	for prev.ok {
		p := st.at(prev.id)
		if to, found := p.next[sym]; !found || to != next {
			break
		}
		p.next[sym] = clone
		prev = p.link
	}

	st.at(next).link = linkTo(clone)
	st.at(cur).link = linkTo(clone)
	a.finishExtend(cur)
}

func (a *Automaton[S]) finishExtend(cur stateID) {
	a.last = cur
	a.n++
}

// markTerminal marks every state on the suffix-link path from last, root
// included.
func (a *Automaton[S]) markTerminal() {
	for at := linkTo(a.last); at.ok; {
		s := a.arena.at(at.id)
		s.terminal = true
		at = s.link
	}
}

// walk follows query from the root and reports the state reached.
func (a *Automaton[S]) walk(query []S) (stateID, bool) {
	at := rootID
	for _, sym := range query {
		to, found := a.arena.at(at).next[sym]
		if !found {
			return 0, false
		}
		at = to
	}
	return at, true
}

// Contains reports whether query is a substring of the text appended so far.
// The empty query is always contained. O(len(query)).
func (a *Automaton[S]) Contains(query []S) bool {
	_, ok := a.walk(query)
	return ok
}

// HasSuffix reports whether query was a suffix of the text at the end of
// some AddString call since the last Clear.
func (a *Automaton[S]) HasSuffix(query []S) bool {
	at, ok := a.walk(query)
	return ok && a.arena.at(at).terminal
}

// Len returns the number of symbols appended since the last Clear.
func (a *Automaton[S]) Len() int {
	return a.n
}

// NumStates returns the number of states, root included.
func (a *Automaton[S]) NumStates() int {
	return a.arena.len()
}

// NumTransitions returns the total number of transitions.
func (a *Automaton[S]) NumTransitions() int {
	total := 0
	for i := range a.arena.states {
		total += len(a.arena.states[i].next)
	}
	return total
}
