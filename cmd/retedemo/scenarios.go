package main

import (
	"fmt"
	"sort"

	"github.com/lindenhall/retenet"
)

// scenario builds a fresh engine and declares a fixed batch of facts; the
// caller decides whether to Run it. Each one mirrors a worked example from the engine's
// own test suite (the cartesian join, the hash join, priority ordering,
// ...) so `retedemo run <name>` gives a newcomer something concrete to
// poke at without writing Go.
type scenario struct {
	name        string
	description string
	build       func(opts ...rete.Option) (*rete.Engine, *[]string)
}

type person struct {
	Age  int
	Name string
}

type order struct {
	CustID int
	OID    int
}

type customer struct {
	ID   int
	Name string
}

var scenarios = []scenario{
	{
		name:        "adults",
		description: "single-pattern alpha chain: fires once per person aged 18+",
		build: func(opts ...rete.Option) (*rete.Engine, *[]string) {
			var fired []string
			e, err := rete.New(opts...)
			if err != nil {
				panic(err)
			}
			rule := rete.NewRule("adults", func(p person) {
				fired = append(fired, fmt.Sprintf("%s (%d)", p.Name, p.Age))
			}, rete.NewPattern(person{}, rete.C("Age__gte", 18)))
			if err := e.AddRule(rule); err != nil {
				panic(err)
			}
			e.Declare(person{Age: 17, Name: "ada"})
			e.Declare(person{Age: 18, Name: "bram"})
			e.Declare(person{Age: 42, Name: "cleo"})
			return e, &fired
		},
	},
	{
		name:        "cartesian",
		description: "two-pattern cartesian join: every person paired with every order",
		build: func(opts ...rete.Option) (*rete.Engine, *[]string) {
			var fired []string
			e, err := rete.New(opts...)
			if err != nil {
				panic(err)
			}
			rule := rete.NewRule("assign", func(p person, o order) {
				fired = append(fired, fmt.Sprintf("%s <-> order %d", p.Name, o.OID))
			}, rete.NewPattern(person{}), rete.NewPattern(order{}))
			if err := e.AddRule(rule); err != nil {
				panic(err)
			}
			e.Declare(person{Age: 30, Name: "ada"})
			e.Declare(person{Age: 40, Name: "bram"})
			e.Declare(order{OID: 1})
			e.Declare(order{OID: 2})
			return e, &fired
		},
	},
	{
		name:        "hashjoin",
		description: "two-pattern hash join on a shared customer id variable",
		build: func(opts ...rete.Option) (*rete.Engine, *[]string) {
			var fired []string
			e, err := rete.New(opts...)
			if err != nil {
				panic(err)
			}
			rule := rete.NewRule("customer-orders", func(c customer, o order) {
				fired = append(fired, fmt.Sprintf("%s placed order %d", c.Name, o.OID))
			},
				rete.NewPattern(customer{}, rete.C("ID", rete.Var("c"))),
				rete.NewPattern(order{}, rete.C("CustID", rete.Var("c"))),
			)
			if err := e.AddRule(rule); err != nil {
				panic(err)
			}
			e.Declare(customer{ID: 1, Name: "ada"})
			e.Declare(customer{ID: 2, Name: "bram"})
			e.Declare(order{CustID: 1, OID: 10})
			e.Declare(order{CustID: 2, OID: 20})
			e.Declare(order{CustID: 1, OID: 11})
			return e, &fired
		},
	},
	{
		name:        "priority",
		description: "two rules over the same schema, high priority fires first",
		build: func(opts ...rete.Option) (*rete.Engine, *[]string) {
			var fired []string
			e, err := rete.New(opts...)
			if err != nil {
				panic(err)
			}
			high := rete.NewRuleWithPriority("greet-formally", 10, func(p person) {
				fired = append(fired, "Good evening, "+p.Name)
			}, rete.NewPattern(person{}))
			low := rete.NewRuleWithPriority("greet-casually", 0, func(p person) {
				fired = append(fired, "hey "+p.Name)
			}, rete.NewPattern(person{}))
			if err := e.AddRule(high); err != nil {
				panic(err)
			}
			if err := e.AddRule(low); err != nil {
				panic(err)
			}
			e.Declare(person{Age: 30, Name: "ada"})
			return e, &fired
		},
	},
}

func scenarioByName(name string) (scenario, bool) {
	for _, s := range scenarios {
		if s.name == name {
			return s, true
		}
	}
	return scenario{}, false
}

func scenarioNames() []string {
	names := make([]string, 0, len(scenarios))
	for _, s := range scenarios {
		names = append(names, s.name)
	}
	sort.Strings(names)
	return names
}
