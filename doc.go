// Package rete implements a forward-chaining production-rule engine on top
// of the Rete match algorithm.
//
// Client code declares facts as ordinary comparable Go struct values, rules
// as an ordered list of Patterns with optional shared Bindings, and an
// action function invoked once a rule's patterns are jointly satisfied.
// Declared facts are pushed through a discriminating network of type,
// attribute and join nodes; complete matches are queued on a priority
// Agenda and fired in order by Engine.Run.
//
// The network is assert-only: there is no retraction or truth maintenance,
// and joins support equality on at most one shared field per pattern pair.
package rete
