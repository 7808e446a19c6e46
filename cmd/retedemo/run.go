package main

import (
	"fmt"

	"github.com/lindenhall/retenet"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <scenario>",
	Short: "Compile a scenario, declare its facts, and print fired activations in order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, ok := scenarioByName(args[0])
		if !ok {
			return fmt.Errorf("unknown scenario %q; known scenarios: %v", args[0], scenarioNames())
		}
		logger := newLogger()
		defer func() { _ = logger.Sync() }()

		e, fired := s.build(rete.WithLogger(logger))
		e.Run()

		if len(*fired) == 0 {
			fmt.Println("(no activations fired)")
			return nil
		}
		for i, line := range *fired {
			fmt.Printf("%d: %s\n", i+1, line)
		}
		return nil
	},
}
