package rete

import (
	"reflect"
	"strings"
)

// Op names the comparison applied at an Alpha node.
type Op string

const (
	Eq  Op = "eq"
	Neq Op = "neq"
	Gt  Op = "gt"
	Gte Op = "gte"
	Lt  Op = "lt"
	Lte Op = "lte"
)

// Constraint is one (field, op, value) triple inside a Pattern. Value is
// either a literal (compared against the fact's field per Op) or a Binding
// (matches unconditionally at the alpha layer; may induce an equi-join at
// the beta layer).
type Constraint struct {
	Field string
	Op    Op
	Value any
}

// C builds a Constraint from a "field" or "field__op" key, splitting on the
// rightmost "__"; a missing separator implies Op = Eq.
func C(key string, value any) Constraint {
	field, op := splitFieldOp(key)
	return Constraint{Field: field, Op: op, Value: value}
}

func splitFieldOp(key string) (string, Op) {
	idx := strings.LastIndex(key, "__")
	if idx < 0 {
		return key, Eq
	}
	op := Op(key[idx+2:])
	switch op {
	case Eq, Neq, Gt, Gte, Lt, Lte:
		return key[:idx], op
	default:
		// Not a recognized operator suffix: treat the whole key as a
		// literal field name (e.g. a field that is itself named "a__b").
		return key, Eq
	}
}

// Pattern is the pair (target schema, constraint list). Constraints are
// frozen in declaration order at construction: that order drives both the
// "__"-operator split and the compiler's first-binding-reuse scan.
type Pattern struct {
	Schema      reflect.Type
	Constraints []Constraint
}

// NewPattern builds a Pattern targeting the schema of sample (a zero or
// representative value of the fact struct) with the given constraints in
// declaration order.
func NewPattern(sample Fact, constraints ...Constraint) Pattern {
	return Pattern{
		Schema:      schemaOf(sample),
		Constraints: append([]Constraint(nil), constraints...),
	}
}
