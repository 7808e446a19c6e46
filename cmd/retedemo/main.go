// Command retedemo is a small, runnable harness over the rete engine: it
// compiles one of a handful of canned scenarios and either lists the rules
// a scenario compiles to, or runs it and prints the activations it fires,
// in firing order.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "retedemo",
	Short: "Exercise the rete rule engine against canned scenarios",
	Long: `retedemo compiles and runs the worked examples from the rete engine's
own test suite (an alpha-filtered rule, a cartesian join, a hash join on a
shared variable, and priority ordering between two rules) so the engine can be explored
without writing Go.`,
}

func newLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log compiler and firing diagnostics at debug level")
	rootCmd.AddCommand(runCmd, rulesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
