package rete

import (
	"fmt"
	"reflect"

	"github.com/google/uuid"
)

// Rule is an ordered sequence of Patterns plus a priority and an action.
// Pattern order is significant: it determines join topology and
// variable-discovery order during compilation.
//
// Action may be any Go func whose positional parameters are assignable
// from the corresponding Patterns' schemas, in order; its declared arity
// (0..len(Patterns)) controls how many matched facts it receives when the
// rule fires (see Engine.Run).
type Rule struct {
	ID       uuid.UUID
	Name     string
	Priority int
	Patterns []Pattern
	Action   any
}

// NewRule builds a Rule with priority 0 by default; pass priority
// explicitly via NewRuleWithPriority when firing order across rules
// matters.
func NewRule(name string, action any, patterns ...Pattern) Rule {
	return NewRuleWithPriority(name, 0, action, patterns...)
}

// NewRuleWithPriority builds a Rule with an explicit priority. Higher
// priorities fire first.
func NewRuleWithPriority(name string, priority int, action any, patterns ...Pattern) Rule {
	return Rule{
		ID:       uuid.New(),
		Name:     name,
		Priority: priority,
		Patterns: append([]Pattern(nil), patterns...),
		Action:   action,
	}
}

// validate checks the compile-time contract: Action must be a func, the
// rule must have at least one pattern, and Action's parameters must line
// up with the leading Patterns' schemas in order.
func (r *Rule) validate() (reflect.Value, int, error) {
	if len(r.Patterns) == 0 {
		return reflect.Value{}, 0, fmt.Errorf("%w: rule %q has no patterns", ErrInvalidRule, r.Name)
	}
	if r.Action == nil {
		return reflect.Value{}, 0, fmt.Errorf("%w: rule %q has a nil action", ErrInvalidRule, r.Name)
	}
	av := reflect.ValueOf(r.Action)
	at := av.Type()
	if at.Kind() != reflect.Func {
		return reflect.Value{}, 0, fmt.Errorf("%w: rule %q action is not a func", ErrInvalidRule, r.Name)
	}
	arity := at.NumIn()
	if arity > len(r.Patterns) {
		return reflect.Value{}, 0, fmt.Errorf(
			"%w: rule %q action takes %d params but only %d patterns are declared",
			ErrInvalidRule, r.Name, arity, len(r.Patterns))
	}
	for i := 0; i < arity; i++ {
		paramType := at.In(i)
		schema := r.Patterns[i].Schema
		if schema == nil {
			continue
		}
		if !schema.AssignableTo(paramType) && schema != paramType {
			return reflect.Value{}, 0, fmt.Errorf(
				"%w: rule %q action param %d is %s, pattern %d targets %s",
				ErrInvalidRule, r.Name, i, paramType, i, schema)
		}
	}
	return av, arity, nil
}
