package rete

import (
	"reflect"
	"sort"

	"github.com/google/uuid"
)

// Activation is a fully matched rule waiting to fire.
type Activation struct {
	RuleID     uuid.UUID
	RuleName   string
	Priority   int
	sequence   uint64
	MatchTuple []Fact
	action     reflect.Value
	arity      int
}

// Agenda is a priority-ordered collection of Activations: higher priority
// first, ties broken by enqueue order.
type Agenda struct {
	items []Activation
}

func newAgenda() *Agenda {
	return &Agenda{}
}

// push inserts act and restores priority-descending, stable order. Since
// act is always appended after every previously pushed activation, a
// stable sort keyed only on Priority leaves equal-priority activations in
// their original enqueue order.
func (a *Agenda) push(act Activation) {
	a.items = append(a.items, act)
	sort.SliceStable(a.items, func(i, j int) bool {
		return a.items[i].Priority > a.items[j].Priority
	})
}

// pop removes and returns the highest-priority, oldest Activation.
func (a *Agenda) pop() (Activation, bool) {
	if len(a.items) == 0 {
		return Activation{}, false
	}
	act := a.items[0]
	a.items = a.items[1:]
	return act, true
}

// Len reports the number of pending activations.
func (a *Agenda) Len() int {
	return len(a.items)
}

// clear empties the agenda.
func (a *Agenda) clear() {
	a.items = nil
}
