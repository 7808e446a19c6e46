package rete

import (
	"fmt"
	"reflect"
)

// boundVar records where a variable name was first introduced: the
// pattern index that produced it and the field it was bound to there.
type boundVar struct {
	patternIndex int
	field        string
}

// compileRule translates rule's pattern list into network nodes, reusing
// Alpha chains where possible and attaching a fresh Terminal. It mutates
// e's arena and, for multi-pattern rules, seeds the newly created first
// beta node with the root token exactly once.
func (e *Engine) compileRule(rule *Rule) error {
	action, arity, err := rule.validate()
	if err != nil {
		return err
	}

	if len(rule.Patterns) == 1 {
		typeNode := e.typeNodeFor(rule.Patterns[0].Schema)
		tail := e.buildAlphaChain(typeNode, rule.Patterns[0].Constraints)
		e.attachTerminal(tail, rule, action, arity)
		return nil
	}

	knownVars := make(map[string]boundVar)
	p0 := rule.Patterns[0]
	for _, c := range p0.Constraints {
		if b, ok := c.Value.(Binding); ok {
			if _, exists := knownVars[b.Name]; !exists {
				knownVars[b.Name] = boundVar{patternIndex: 0, field: c.Field}
			}
		}
	}

	typeNode0 := e.typeNodeFor(p0.Schema)
	alphaTail0 := e.buildAlphaChain(typeNode0, p0.Constraints)

	// The first beta node wraps P[0]'s matched facts into one-fact tokens:
	// its left input is the single shared root token (seeded once, never
	// again), its right input is alpha_tail_0. It is always a fresh,
	// unshared Cartesian-Beta — there is nothing on the left to hash
	// against, and Beta nodes are never shared across rules even when the
	// Alpha chain feeding them is.
	firstBeta := newBetaNode(KindCartesianBeta)
	firstBetaID := e.addNode(firstBeta)
	e.addChild(alphaTail0, firstBetaID)
	e.seedFirstBeta(firstBetaID)

	currentLeft := firstBetaID

	for i := 1; i < len(rule.Patterns); i++ {
		p := rule.Patterns[i]
		typeNodeI := e.typeNodeFor(p.Schema)
		alphaTailI := e.buildAlphaChain(typeNodeI, p.Constraints)

		joinID, _ := e.buildJoin(p, i, knownVars)
		e.addChild(currentLeft, joinID)
		e.addChild(alphaTailI, joinID)
		currentLeft = joinID
	}

	e.attachTerminal(currentLeft, rule, action, arity)
	return nil
}

// buildJoin creates the beta node for pattern index i: a Hash-Beta keyed
// on the first binding in p that was already known, or a Cartesian-Beta
// if p reuses no existing binding. Any other binding in p that is new gets
// registered at (i, its field) for later patterns to reuse.
func (e *Engine) buildJoin(p Pattern, i int, knownVars map[string]boundVar) (NodeID, bool) {
	var reused *boundVar
	var rightField string

	for _, c := range p.Constraints {
		b, ok := c.Value.(Binding)
		if !ok {
			continue
		}
		if bound, exists := knownVars[b.Name]; exists && reused == nil {
			bv := bound
			reused = &bv
			rightField = c.Field
			continue
		}
		if _, exists := knownVars[b.Name]; !exists {
			knownVars[b.Name] = boundVar{patternIndex: i, field: c.Field}
		}
	}

	var n *node
	if reused != nil {
		n = newBetaNode(KindHashBeta)
		n.leftIdx = reused.patternIndex
		n.leftField = reused.field
		n.rightField = rightField
	} else {
		n = newBetaNode(KindCartesianBeta)
	}
	id := e.addNode(n)
	return id, true
}

// seedFirstBeta emits the shared empty root token into node's left input
// exactly once, guarded by a per-node bit so repeated calls (there never
// are any for a freshly created node, but the guard documents the
// invariant the original dummy-root double-seed bug violated) are safe.
func (e *Engine) seedFirstBeta(id NodeID) {
	n := e.node(id)
	if n.seeded {
		return
	}
	n.seeded = true
	e.leftActivateBeta(n, rootToken)
}

// buildAlphaChain builds or reuses the Alpha chain for constraints under
// parent, returning the tail node. Two Alpha children with identical
// (field, op, value) under the same parent are never both created.
func (e *Engine) buildAlphaChain(parent NodeID, constraints []Constraint) NodeID {
	cur := parent
	for _, c := range constraints {
		key := fmt.Sprintf("%d\x00%s\x00%s\x00%s", cur, c.Field, c.Op, stableKey(c.Value))
		if id, ok := e.alphaShare[key]; ok {
			cur = id
			continue
		}
		n := &node{kind: KindAlpha, field: c.Field, op: c.Op, value: c.Value}
		id := e.addNode(n)
		e.addChild(cur, id)
		e.alphaShare[key] = id
		cur = id
	}
	return cur
}

// attachTerminal builds and attaches a Terminal node carrying rule's
// identity, compiled action and priority as the parent's child.
func (e *Engine) attachTerminal(parent NodeID, rule *Rule, action reflect.Value, arity int) {
	n := &node{
		kind:     KindTerminal,
		ruleID:   rule.ID,
		ruleName: rule.Name,
		action:   action,
		arity:    arity,
		priority: rule.Priority,
	}
	id := e.addNode(n)
	e.addChild(parent, id)
}
