package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/lindenhall/retenet"
	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules <scenario>",
	Short: "List the rules a scenario compiles, with their priority and ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, ok := scenarioByName(args[0])
		if !ok {
			return fmt.Errorf("unknown scenario %q; known scenarios: %v", args[0], scenarioNames())
		}
		logger := newLogger()
		defer func() { _ = logger.Sync() }()

		e, _ := s.build(rete.WithLogger(logger))

		w := tabwriter.NewWriter(os.Stdout, 0, 2, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tPRIORITY\tPATTERNS\tID")
		for _, r := range e.Rules() {
			fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", r.Name, r.Priority, len(r.Patterns), r.ID)
		}
		return w.Flush()
	},
}

var listCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List the available canned scenarios",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, s := range scenarios {
			fmt.Printf("%-12s %s\n", s.name, s.description)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
