package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/all-an/nimlisp"
)

var evalCmd = &cobra.Command{
	Use:   "eval EXPR",
	Short: "Evaluate a single expression and print the result",
	Args:  cobra.ExactArgs(1),
	RunE:  runEval,
}

func runEval(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), nimlisp.EvalString(args[0]))
	return nil
}
