package rete

// Token is a node in a persistent singly-linked chain representing a
// partial match: (parent, fact). The empty root token has neither parent
// nor a fact and seeds every rule's first join.
type Token struct {
	parent *Token
	fact   Fact
	hasFct bool

	flat   []Fact
	cached bool
}

// rootToken is the single shared empty root token that seedFirstBeta
// emits into each multi-pattern rule's first beta node.
var rootToken = &Token{}

// newToken extends parent with fact, forming the next partial match in a
// join chain.
func newToken(parent *Token, fact Fact) *Token {
	return &Token{parent: parent, fact: fact, hasFct: true}
}

// FlatTuple lazily materializes the token's match tuple: ancestor facts
// from root to leaf, root excluded. The result is memoized on first call
// and never rebuilt.
func (t *Token) FlatTuple() []Fact {
	if t.cached {
		return t.flat
	}
	var depth int
	for n := t; n != nil && n.hasFct; n = n.parent {
		depth++
	}
	flat := make([]Fact, depth)
	n := t
	for i := depth - 1; i >= 0; i-- {
		flat[i] = n.fact
		n = n.parent
	}
	t.flat = flat
	t.cached = true
	return t.flat
}

// FactAt returns the i-th fact of the token's match tuple, or (nil, false)
// if i is out of range.
func (t *Token) FactAt(i int) (Fact, bool) {
	tuple := t.FlatTuple()
	if i < 0 || i >= len(tuple) {
		return nil, false
	}
	return tuple[i], true
}
