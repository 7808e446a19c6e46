package rete

import (
	"reflect"

	"go.uber.org/zap"
)

// Engine owns the compiled network: the node arena, the Type-node index,
// the Agenda, and the set of rules compiled so far. All declare/run
// activity happens on the caller's goroutine; nothing here is safe for
// concurrent use from multiple goroutines at once (see §5).
type Engine struct {
	nodes      []*node
	typeNodes  map[reflect.Type]NodeID
	alphaShare map[string]NodeID
	// dummyRoot is a single inert marker node, kept only so the arena's
	// node count and diagnostics read the way the design describes them.
	// It carries no live traffic: each multi-pattern rule builds its own
	// private first-beta node (see compileRule), since Beta nodes are
	// never shared across rules.
	dummyRoot NodeID
	rules     []Rule
	agenda    *Agenda
	seq       uint64
	logger    *zap.Logger
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithLogger attaches a structured logger for compilation summaries,
// recovered action panics, and step-cap exhaustion. The default is a
// no-op logger, so diagnostics never gate correctness.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New constructs an empty Engine configured by opts. It compiles no rules
// itself: rules are compiled one at a time by AddRule, which reports any
// compilation error. The returned error is always nil.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	e.resetNetwork()
	return e, nil
}

// resetNetwork rebuilds the arena, Type-node index, alpha-sharing map,
// Dummy root and Agenda, discarding all node memories. It does not touch
// e.rules.
func (e *Engine) resetNetwork() {
	e.nodes = nil
	e.typeNodes = make(map[reflect.Type]NodeID)
	e.alphaShare = make(map[string]NodeID)
	e.agenda = newAgenda()
	e.dummyRoot = e.addNode(&node{kind: KindDummyRoot})
}

// AddRule compiles rule into the network and registers it, assigning it a
// fresh NodeID-backed Terminal. Node sharing in the Alpha sub-network means
// this may extend an existing Alpha chain rather than build a new one.
func (e *Engine) AddRule(rule Rule) error {
	if err := e.compileRule(&rule); err != nil {
		return err
	}
	e.rules = append(e.rules, rule)
	e.logger.Debug("compiled rule",
		zap.String("rule", rule.Name),
		zap.String("rule_id", rule.ID.String()),
		zap.Int("priority", rule.Priority),
		zap.Int("patterns", len(rule.Patterns)),
		zap.Int("nodes", len(e.nodes)),
	)
	return nil
}

// Reset replaces the agenda, type-node map, alpha-sharing map and Dummy
// root, then recompiles every rule added so far from scratch. Declared
// facts are forgotten: Run fires nothing until new facts are declared.
func (e *Engine) Reset() error {
	rules := e.rules
	e.rules = nil
	e.resetNetwork()
	for _, r := range rules {
		if err := e.AddRule(r); err != nil {
			return err
		}
	}
	return nil
}

// Rules returns the rules compiled into the engine so far, in registration
// order.
func (e *Engine) Rules() []Rule {
	return append([]Rule(nil), e.rules...)
}

func (e *Engine) addNode(n *node) NodeID {
	n.id = NodeID(len(e.nodes))
	e.nodes = append(e.nodes, n)
	return n.id
}

func (e *Engine) node(id NodeID) *node {
	return e.nodes[id]
}

func (e *Engine) addChild(parent, child NodeID) {
	p := e.node(parent)
	p.children = append(p.children, child)
}

// typeNodeFor returns the Type node for schema, creating it on first use.
func (e *Engine) typeNodeFor(schema reflect.Type) NodeID {
	if id, ok := e.typeNodes[schema]; ok {
		return id
	}
	id := e.addNode(&node{kind: KindType, schema: schema})
	e.typeNodes[schema] = id
	return id
}

// Declare propagates fact into the network. If no rule references fact's
// schema, this is a no-op: there is no Type node to receive it.
func (e *Engine) Declare(fact Fact) {
	t := factType(fact)
	id, ok := e.typeNodes[t]
	if !ok {
		return
	}
	tn := e.node(id)
	for _, c := range tn.children {
		e.dispatchFact(c, fact)
	}
}

// dispatchFact routes fact to child according to child's kind: Alpha nodes
// test and recurse, Beta nodes join on their right input, Terminal nodes
// enqueue a single-fact activation. This single switch is the "dispatch
// pattern" every fact-carrying propagation step uses.
func (e *Engine) dispatchFact(id NodeID, fact Fact) {
	n := e.node(id)
	switch n.kind {
	case KindAlpha:
		e.testAlpha(n, fact)
	case KindCartesianBeta, KindHashBeta:
		e.rightActivateBeta(n, fact)
	case KindTerminal:
		e.activateTerminalFact(n, fact)
	}
}

// dispatchToken routes token to child: Beta nodes join on their left
// input, Terminal nodes enqueue a token activation.
func (e *Engine) dispatchToken(id NodeID, tok *Token) {
	n := e.node(id)
	switch n.kind {
	case KindCartesianBeta, KindHashBeta:
		e.leftActivateBeta(n, tok)
	case KindTerminal:
		e.activateTerminalToken(n, tok)
	}
}

func (e *Engine) testAlpha(n *node, fact Fact) {
	if !alphaTest(n, fact) {
		return
	}
	n.alpha = append(n.alpha, fact)
	for _, c := range n.children {
		e.dispatchFact(c, fact)
	}
}

// alphaTest applies the node's (field, op, value) constraint. A binding
// value always passes (the real check happens at the beta layer); a
// missing field always fails.
func alphaTest(n *node, fact Fact) bool {
	if _, isBinding := n.value.(Binding); isBinding {
		return true
	}
	fv, ok := factField(fact, n.field)
	if !ok {
		return false
	}
	return compareOp(n.op, fv.Interface(), n.value)
}

func (e *Engine) rightActivateBeta(n *node, fact Fact) {
	switch n.kind {
	case KindCartesianBeta:
		n.rightMemory = append(n.rightMemory, fact)
		for _, tok := range n.leftMemory {
			e.emitJoin(n, tok, fact)
		}
	case KindHashBeta:
		key := fieldKey(fact, n.rightField)
		n.rightIndex[key] = append(n.rightIndex[key], fact)
		for _, tok := range n.leftIndex[key] {
			e.emitJoin(n, tok, fact)
		}
	}
}

func (e *Engine) leftActivateBeta(n *node, tok *Token) {
	switch n.kind {
	case KindCartesianBeta:
		n.leftMemory = append(n.leftMemory, tok)
		for _, fact := range n.rightMemory {
			e.emitJoin(n, tok, fact)
		}
	case KindHashBeta:
		fact, ok := tok.FactAt(n.leftIdx)
		if !ok {
			return
		}
		key := fieldKey(fact, n.leftField)
		n.leftIndex[key] = append(n.leftIndex[key], tok)
		for _, rf := range n.rightIndex[key] {
			e.emitJoin(n, tok, rf)
		}
	}
}

func (e *Engine) emitJoin(n *node, parent *Token, fact Fact) {
	nt := newToken(parent, fact)
	for _, c := range n.children {
		e.dispatchToken(c, nt)
	}
}

func (e *Engine) activateTerminalFact(n *node, fact Fact) {
	e.enqueue(n, []Fact{fact})
}

func (e *Engine) activateTerminalToken(n *node, tok *Token) {
	e.enqueue(n, tok.FlatTuple())
}

func (e *Engine) enqueue(n *node, tuple []Fact) {
	e.seq++
	e.agenda.push(Activation{
		RuleID:     n.ruleID,
		RuleName:   n.ruleName,
		Priority:   n.priority,
		sequence:   e.seq,
		MatchTuple: append([]Fact(nil), tuple...),
		action:     n.action,
		arity:      n.arity,
	})
}

// maxSteps bounds Run against runaway rule-induced cascades.
const maxSteps = 1000

// Run fires queued activations in descending-priority order, oldest first
// among ties, until the agenda is empty or 1000 activations have fired.
// Reaching the step cap is not an error. A recovered action panic is
// logged with the firing rule's name and ID and does not abort the loop.
func (e *Engine) Run() {
	for i := 0; i < maxSteps; i++ {
		act, ok := e.agenda.pop()
		if !ok {
			return
		}
		e.fire(act)
	}
	e.logger.Warn("run stopped at step cap", zap.Int("max_steps", maxSteps))
}

func (e *Engine) fire(act Activation) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("action panic",
				zap.String("rule", act.RuleName),
				zap.String("rule_id", act.RuleID.String()),
				zap.Any("panic", r),
			)
		}
	}()
	n := act.arity
	if n > len(act.MatchTuple) {
		n = len(act.MatchTuple)
	}
	args := make([]reflect.Value, n)
	for i := 0; i < n; i++ {
		args[i] = reflect.ValueOf(act.MatchTuple[i])
	}
	act.action.Call(args)
}
